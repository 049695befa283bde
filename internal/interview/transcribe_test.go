package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nandita/prepwise/internal/llm"
)

func TestTranscribe(t *testing.T) {
	mock := &llm.MockTranscriber{Text: "  I would use a hash map for constant time lookups.  "}
	svc := NewTranscriptionService(mock)

	text, err := svc.Transcribe(context.Background(), strings.NewReader("fake-audio"), "answer.webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "I would use a hash map for constant time lookups." {
		t.Errorf("transcript not trimmed: %q", text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestTranscribe_Error(t *testing.T) {
	mock := &llm.MockTranscriber{Err: errors.New("unsupported codec")}
	svc := NewTranscriptionService(mock)

	_, err := svc.Transcribe(context.Background(), strings.NewReader("fake-audio"), "answer.webm")
	var trErr *TranscriptionError
	if !errors.As(err, &trErr) {
		t.Fatalf("expected *TranscriptionError, got %v", err)
	}
}
