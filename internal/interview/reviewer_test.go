package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nandita/prepwise/internal/llm"
)

func testReviewInput() ReviewInput {
	return ReviewInput{
		Setup: SessionSetup{
			InterviewType:   "technical",
			ExperienceLevel: "mid",
			TargetRole:      "Backend Engineer",
		},
		OverallScore: 82,
		Questions: []AnsweredQuestion{
			{Question: "Explain hash map collisions.", UserAnswer: "Chaining with linked lists.", Score: 85, Feedback: "Good."},
			{Question: "Design a rate limiter.", UserAnswer: "Token bucket per client.", Score: 79, Feedback: "Missing distributed case."},
			{Question: "Describe a conflict you resolved.", Skipped: true},
		},
	}
}

func reviewJSON() json.RawMessage {
	return json.RawMessage(`{
		"overall_score": 82,
		"strengths": ["strong data structure fundamentals"],
		"weaknesses": ["distributed systems depth", "skipped the behavioral question"],
		"recommendations": ["practice system design", "attempt every question"],
		"analysis": "You showed solid fundamentals with room to grow in distributed design."
	}`)
}

func TestReview(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: reviewJSON()})
	rev := NewReviewer(mock, DefaultReviewerConfig())

	result, err := rev.Review(context.Background(), testReviewInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallScore != 82 {
		t.Errorf("overall score = %d, want 82", result.OverallScore)
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(result.Recommendations))
	}
	if result.Analysis == "" {
		t.Error("analysis must not be empty")
	}
}

func TestReview_PromptIncludesSkips(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: reviewJSON()})
	rev := NewReviewer(mock, DefaultReviewerConfig())

	if _, err := rev.Review(context.Background(), testReviewInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "(skipped)") {
		t.Errorf("prompt should flag skipped questions:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Aggregate score: 82/100") {
		t.Errorf("prompt should carry the aggregate score:\n%s", prompt)
	}
	if !strings.Contains(prompt, "1. Question: Explain hash map collisions.") {
		t.Errorf("questions should be numbered from 1:\n%s", prompt)
	}
}

func TestReview_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	rev := NewReviewer(mock, DefaultReviewerConfig())

	_, err := rev.Review(context.Background(), testReviewInput())
	var reviewErr *ReviewError
	if !errors.As(err, &reviewErr) {
		t.Fatalf("expected *ReviewError, got %v", err)
	}
}
