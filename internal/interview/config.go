package interview

// DefaultQuestionCount is used when a session does not specify how many
// questions to generate.
const DefaultQuestionCount = 5

// GeneratorConfig controls question generation.
type GeneratorConfig struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Generation
	// runs warm so repeated sessions get varied questions.
	Temperature float64
}

// DefaultGeneratorConfig returns the recommended generation settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// EvaluatorConfig controls answer grading.
type EvaluatorConfig struct {
	MaxTokens int

	// Temperature is kept low so the same answer grades consistently.
	Temperature float64
}

// DefaultEvaluatorConfig returns the recommended grading settings.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// ReviewerConfig controls the whole-session review.
type ReviewerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultReviewerConfig returns the recommended review settings.
func DefaultReviewerConfig() ReviewerConfig {
	return ReviewerConfig{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}
