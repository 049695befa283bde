package interview

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nandita/prepwise/internal/llm"
)

func testEvaluationInput() EvaluationInput {
	return EvaluationInput{
		Question:       "Explain how a hash map handles collisions.",
		ExpectedAnswer: "Chaining or open addressing; load factor triggers resize.",
		UserAnswer:     "I would use chaining, each bucket holds a linked list of entries.",
		QuestionType:   "technical",
		TargetRole:     "Backend Engineer",
	}
}

func evaluationJSON(score int) json.RawMessage {
	return json.RawMessage(`{
		"score": ` + jsonInt(score) + `,
		"feedback": "You correctly described chaining but did not mention resizing.",
		"strengths": ["accurate description of chaining"],
		"improvements": ["mention load factor and resizing"]
	}`)
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: evaluationJSON(85)})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	result, err := ev.Evaluate(context.Background(), testEvaluationInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 85 {
		t.Errorf("score = %d, want 85", result.Score)
	}
	if result.Feedback == "" {
		t.Error("feedback must not be empty")
	}
	if len(result.Improvements) != 1 {
		t.Errorf("expected 1 improvement, got %d", len(result.Improvements))
	}
}

func TestEvaluate_ScoreOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		score int
	}{
		{"negative", -5},
		{"above max", 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: evaluationJSON(tt.score)})
			ev := NewEvaluator(mock, DefaultEvaluatorConfig())

			_, err := ev.Evaluate(context.Background(), testEvaluationInput())
			var evalErr *EvaluationError
			if !errors.As(err, &evalErr) {
				t.Fatalf("expected *EvaluationError, got %v", err)
			}
		})
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("slow down")},
	})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	_, err := ev.Evaluate(context.Background(), testEvaluationInput())
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	var rateLimit *llm.ErrRateLimit
	if !errors.As(err, &rateLimit) {
		t.Error("underlying rate limit error should remain unwrappable")
	}
}

func TestEvaluate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	ev := NewEvaluator(mock, DefaultEvaluatorConfig())

	_, err := ev.Evaluate(context.Background(), testEvaluationInput())
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
}
