package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"score":85}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"score":40}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"score":85}` {
		t.Fatalf("unexpected content: %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"score":40}` {
		t.Fatalf("unexpected content: %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "you are an interviewer",
		Messages: []Message{{Role: RoleUser, Content: "generate questions"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 recorded call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "you are an interviewer" {
		t.Fatalf("recorded call lost system prompt: %q", mock.Calls[0].System)
	}
}

func TestMockTranscriber(t *testing.T) {
	mt := &MockTranscriber{Text: "I would use a hash map"}

	got, err := mt.Transcribe(context.Background(), strings.NewReader("fake-audio"), "answer.webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "I would use a hash map" {
		t.Fatalf("unexpected transcript: %q", got)
	}
	if mt.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mt.CallCount())
	}
}

func TestMockTranscriber_Error(t *testing.T) {
	mt := &MockTranscriber{Err: &ErrProviderUnavailable{}}

	_, err := mt.Transcribe(context.Background(), strings.NewReader(""), "answer.webm")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Fatalf("expected 'unknown' without purpose, got %q", got)
	}

	ctx = WithPurpose(ctx, PurposeAnswerEval)
	if got := PurposeFrom(ctx); got != PurposeAnswerEval {
		t.Fatalf("expected %q, got %q", PurposeAnswerEval, got)
	}
}
