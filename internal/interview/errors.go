package interview

import "fmt"

// GenerationError indicates question generation failed; the session
// cannot start without questions.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// EvaluationError indicates grading a single answer failed. The answer
// is not recorded and the candidate may retry.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("answer evaluation failed: %v", e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// TranscriptionError indicates speech-to-text failed. The recorded
// audio is discarded; the candidate can re-record or type instead.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// ReviewError indicates the final session review failed. Per-question
// results and the aggregate score are already saved, so this is
// degraded output rather than data loss.
type ReviewError struct {
	Err error
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("session review failed: %v", e.Err)
}

func (e *ReviewError) Unwrap() error { return e.Err }
