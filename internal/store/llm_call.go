package store

import (
	"context"
	"fmt"

	"github.com/nandita/prepwise/ent"
	"github.com/nandita/prepwise/ent/llmcall"
)

type llmCallRepo struct {
	client *ent.Client
}

func (r *llmCallRepo) AppendLLMCall(ctx context.Context, data LLMCallData) error {
	_, err := r.client.LLMCall.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm call: %w", err)
	}
	return nil
}

func (r *llmCallRepo) ListLLMCalls(ctx context.Context, limit int) ([]LLMCall, error) {
	q := r.client.LLMCall.Query().
		Order(ent.Desc(llmcall.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list llm calls: %w", err)
	}

	calls := make([]LLMCall, 0, len(rows))
	for _, row := range rows {
		calls = append(calls, LLMCall{
			ID:           row.ID,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
			CreatedAt:    row.CreatedAt,
		})
	}
	return calls, nil
}

func (r *llmCallRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input"`
		OutputTokens int     `json:"output"`
		AvgLatencyMs float64 `json:"avg_latency"`
	}
	err := r.client.LLMCall.Query().
		GroupBy(llmcall.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmcall.FieldInputTokens), "input"),
			ent.As(ent.Sum(llmcall.FieldOutputTokens), "output"),
			ent.As(ent.Mean(llmcall.FieldLatencyMs), "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	usage := make([]LLMUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, LLMUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	return usage, nil
}

func (r *llmCallRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input"`
		OutputTokens int    `json:"output"`
	}
	err := r.client.LLMCall.Query().
		GroupBy(llmcall.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmcall.FieldInputTokens), "input"),
			ent.As(ent.Sum(llmcall.FieldOutputTokens), "output"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate model usage: %w", err)
	}

	usage := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return usage, nil
}
