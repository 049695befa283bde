package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nandita/prepwise/internal/interview"
)

func TestUnavailableTranscriber(t *testing.T) {
	_, err := unavailableTranscriber{}.Transcribe(context.Background(), strings.NewReader("audio bytes"), "clip.webm")
	if err == nil {
		t.Fatal("expected an error")
	}

	// The stub must surface as a transcription failure so the HTTP
	// layer returns 502, not a generic 500.
	var terr *interview.TranscriptionError
	if !errors.As(err, &terr) {
		t.Fatalf("error %T, want *interview.TranscriptionError", err)
	}
}
