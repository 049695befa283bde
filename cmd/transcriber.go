package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/nandita/prepwise/internal/interview"
)

// unavailableTranscriber stands in when no speech-to-text backend is
// configured. Text answers still work; voice uploads get the standard
// transcription failure so clients can fall back to typing.
type unavailableTranscriber struct{}

func (unavailableTranscriber) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	_, _ = io.Copy(io.Discard, audio)
	return "", &interview.TranscriptionError{Err: errors.New("transcription is not configured on this server")}
}
