package interview

import (
	"context"
	"io"
	"strings"

	"github.com/nandita/prepwise/internal/llm"
)

// TranscriptionService converts recorded spoken answers to text.
type TranscriptionService struct {
	transcriber llm.Transcriber
}

// NewTranscriptionService creates a TranscriptionService over the given
// speech-to-text backend.
func NewTranscriptionService(t llm.Transcriber) *TranscriptionService {
	return &TranscriptionService{transcriber: t}
}

// Transcribe converts one audio recording to text. On failure it
// returns a *TranscriptionError; the candidate can re-record or type
// the answer instead, so nothing is persisted here.
func (s *TranscriptionService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTranscription)

	text, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	return strings.TrimSpace(text), nil
}
