package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nandita/prepwise/internal/llm"
)

func testSetup() SessionSetup {
	return SessionSetup{
		InterviewType:   "technical",
		JobDescription:  "We are hiring a backend engineer to build Go services.",
		ExperienceLevel: "mid",
		TargetRole:      "Backend Engineer",
		QuestionCount:   2,
	}
}

func questionListJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question_text": "Explain how a hash map handles collisions.",
				"question_type": "technical",
				"difficulty": "medium",
				"expected_answer": "Chaining or open addressing; load factor triggers resize."
			},
			{
				"question_text": "How would you design a rate limiter for an API?",
				"question_type": "technical",
				"difficulty": "hard",
				"expected_answer": "Token bucket or sliding window, shared state, fail-open tradeoffs."
			}
		]
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionListJSON(),
	})
	gen := NewGenerator(mock, DefaultGeneratorConfig())

	qs, err := gen.Generate(context.Background(), testSetup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Text != "Explain how a hash map handles collisions." {
		t.Errorf("unexpected first question: %q", qs[0].Text)
	}
	if qs[1].Difficulty != "hard" {
		t.Errorf("expected hard difficulty, got %q", qs[1].Difficulty)
	}
	if qs[0].ExpectedAnswer == "" {
		t.Error("expected answer must be carried through for grading")
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionListJSON(),
	})
	gen := NewGenerator(mock, DefaultGeneratorConfig())

	setup := testSetup()
	setup.QuestionCount = 0 // falls back to DefaultQuestionCount

	if _, err := gen.Generate(context.Background(), setup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Number of questions: 5") {
		t.Errorf("prompt should request the default count:\n%s", prompt)
	}
}

func TestGenerate_ShortSetAccepted(t *testing.T) {
	// One question instead of the two requested: usable as-is.
	short := json.RawMessage(`{"questions": [{
		"question_text": "Explain how a hash map handles collisions.",
		"question_type": "technical",
		"difficulty": "medium",
		"expected_answer": "Chaining or open addressing."
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: short})
	gen := NewGenerator(mock, DefaultGeneratorConfig())

	qs, err := gen.Generate(context.Background(), testSetup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
}

func TestGenerate_EmptySetRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := gen.Generate(context.Background(), testSetup())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
}

func TestGenerate_IncompleteQuestionRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"blank expected answer", `{"questions": [{
			"question_text": "Explain how a hash map handles collisions.",
			"question_type": "technical",
			"difficulty": "medium",
			"expected_answer": "   "
		}]}`},
		{"missing type", `{"questions": [{
			"question_text": "Explain how a hash map handles collisions.",
			"difficulty": "medium",
			"expected_answer": "Chaining or open addressing."
		}]}`},
		{"missing difficulty", `{"questions": [{
			"question_text": "Explain how a hash map handles collisions.",
			"question_type": "technical",
			"expected_answer": "Chaining or open addressing."
		}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tc.body)})
			gen := NewGenerator(mock, DefaultGeneratorConfig())

			_, err := gen.Generate(context.Background(), testSetup())
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *GenerationError, got %v", err)
			}
		})
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	providerErr := &llm.ErrProviderUnavailable{Err: errors.New("boom")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: providerErr})
	gen := NewGenerator(mock, DefaultGeneratorConfig())

	_, err := gen.Generate(context.Background(), testSetup())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Error("underlying provider error should remain unwrappable")
	}
}

func TestGenerate_SetsPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: questionListJSON(),
	})
	gen := NewGenerator(mock, DefaultGeneratorConfig())

	if _, err := gen.Generate(context.Background(), testSetup()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != QuestionListSchema {
		t.Error("request should carry the question list schema")
	}
}
