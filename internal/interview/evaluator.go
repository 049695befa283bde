package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nandita/prepwise/internal/llm"
)

// Evaluator grades a single interview answer using the LLM.
type Evaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewEvaluator creates an Evaluator with the given provider and config.
func NewEvaluator(provider llm.Provider, cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// evaluationOutput is the raw LLM response before validation.
type evaluationOutput struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Evaluate grades one answer. On any failure it returns an
// *EvaluationError and the answer is not recorded.
func (e *Evaluator) Evaluate(ctx context.Context, input EvaluationInput) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAnswerEval)

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluatorMessage(input)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &EvaluationError{Err: fmt.Errorf("parse response: %w", err)}
	}

	// The schema bounds the score, but a provider that skipped schema
	// enforcement could still return garbage.
	if raw.Score < 0 || raw.Score > 100 {
		return nil, &EvaluationError{Err: fmt.Errorf("score %d out of range [0,100]", raw.Score)}
	}

	return &Evaluation{
		Score:        raw.Score,
		Feedback:     raw.Feedback,
		Strengths:    raw.Strengths,
		Improvements: raw.Improvements,
	}, nil
}
