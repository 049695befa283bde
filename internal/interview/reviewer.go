package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nandita/prepwise/internal/llm"
)

// Reviewer produces the whole-session performance review using the LLM.
type Reviewer struct {
	provider llm.Provider
	cfg      ReviewerConfig
}

// NewReviewer creates a Reviewer with the given provider and config.
func NewReviewer(provider llm.Provider, cfg ReviewerConfig) *Reviewer {
	return &Reviewer{provider: provider, cfg: cfg}
}

// reviewOutput is the raw LLM response before validation.
type reviewOutput struct {
	OverallScore    int      `json:"overall_score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Analysis        string   `json:"analysis"`
}

// Review assesses a completed session. On any failure it returns a
// *ReviewError; per-question results are already persisted by then, so
// callers treat this as degraded output rather than a fatal error.
func (r *Reviewer) Review(ctx context.Context, input ReviewInput) (*ReviewResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeReviewGen)

	userMsg, err := buildReviewerMessage(input)
	if err != nil {
		return nil, &ReviewError{Err: fmt.Errorf("build prompt: %w", err)}
	}

	req := llm.Request{
		System: reviewerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ReviewSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ReviewError{Err: err}
	}

	var raw reviewOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &ReviewError{Err: fmt.Errorf("parse response: %w", err)}
	}

	if raw.OverallScore < 0 || raw.OverallScore > 100 {
		return nil, &ReviewError{Err: fmt.Errorf("overall score %d out of range [0,100]", raw.OverallScore)}
	}

	return &ReviewResult{
		OverallScore:    raw.OverallScore,
		Strengths:       raw.Strengths,
		Weaknesses:      raw.Weaknesses,
		Recommendations: raw.Recommendations,
		Analysis:        raw.Analysis,
	}, nil
}
