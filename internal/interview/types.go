package interview

// SessionSetup describes the interview a candidate wants to practice.
// It is the input to question generation and carries through to review.
type SessionSetup struct {
	InterviewType   string // "technical", "behavioral", "hr", or "group-discussion"
	JobDescription  string
	ExperienceLevel string // "entry", "mid", "senior"
	TargetRole      string
	QuestionCount   int
}

// GeneratedQuestion is a single interview question produced by the LLM.
type GeneratedQuestion struct {
	Text           string
	Type           string // "technical" or "behavioral"
	Difficulty     string // "easy", "medium", "hard"
	ExpectedAnswer string // model answer used for grading, never shown to the candidate
}

// EvaluationInput is everything the evaluator needs to grade one answer.
type EvaluationInput struct {
	Question       string
	ExpectedAnswer string
	UserAnswer     string
	QuestionType   string
	TargetRole     string
}

// Evaluation is the graded result for a single answer.
type Evaluation struct {
	Score        int // 0-100
	Feedback     string
	Strengths    []string
	Improvements []string
}

// AnsweredQuestion pairs a question with its graded answer for the
// final review.
type AnsweredQuestion struct {
	Question   string
	UserAnswer string
	Score      int
	Feedback   string
	Skipped    bool
}

// ReviewInput is the input to the whole-session performance review.
type ReviewInput struct {
	Setup        SessionSetup
	OverallScore int
	Questions    []AnsweredQuestion
}

// ReviewResult is the LLM's holistic assessment of a completed session.
type ReviewResult struct {
	OverallScore    int
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Analysis        string
}
