package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGeneratorMessage(t *testing.T) {
	msg := buildGeneratorMessage(SessionSetup{
		InterviewType:   "group-discussion",
		JobDescription:  "  Own the billing platform.  ",
		ExperienceLevel: "senior",
		TargetRole:      "Staff Engineer",
		QuestionCount:   7,
	})

	// Every setup field must reach the prompt.
	assert.Contains(t, msg, "Interview type: group-discussion")
	assert.Contains(t, msg, "Target role: Staff Engineer")
	assert.Contains(t, msg, "Experience level: senior")
	assert.Contains(t, msg, "Number of questions: 7")
	assert.Contains(t, msg, "Own the billing platform.")
	assert.NotContains(t, msg, "  Own the billing platform.  ", "job description should be trimmed")
}

func TestBuildEvaluatorMessage(t *testing.T) {
	msg := buildEvaluatorMessage(EvaluationInput{
		Question:       "Explain eventual consistency.",
		ExpectedAnswer: "Replicas converge; reads may be stale.",
		UserAnswer:     "Writes propagate asynchronously.",
		QuestionType:   "technical",
		TargetRole:     "Backend Engineer",
	})

	assert.Contains(t, msg, "Target role: Backend Engineer")
	assert.Contains(t, msg, "Question type: technical")
	assert.Contains(t, msg, "Explain eventual consistency.")
	assert.Contains(t, msg, "Replicas converge; reads may be stale.")
	assert.Contains(t, msg, "Writes propagate asynchronously.")
}

func TestBuildReviewerMessage(t *testing.T) {
	msg, err := buildReviewerMessage(ReviewInput{
		Setup: SessionSetup{
			InterviewType:   "behavioral",
			ExperienceLevel: "entry",
			TargetRole:      "Support Engineer",
		},
		OverallScore: 64,
		Questions: []AnsweredQuestion{
			{Question: "Tell me about a difficult customer.", UserAnswer: "I stayed calm and listened.", Score: 64, Feedback: "Add a concrete outcome."},
			{Question: "Describe a time you missed a deadline.", Skipped: true},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, msg, "Interview type: behavioral")
	assert.Contains(t, msg, "Aggregate score: 64/100")
	assert.Contains(t, msg, "1. Question: Tell me about a difficult customer.")
	assert.Contains(t, msg, "Score: 64/100")
	assert.Contains(t, msg, "2. Question: Describe a time you missed a deadline.")
	assert.Contains(t, msg, "(skipped)")
	// A skipped question carries no answer line.
	assert.NotContains(t, msg, "Answer: Question skipped")
}
