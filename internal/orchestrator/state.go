package orchestrator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Phase is the orchestrator's position in the session workflow.
type Phase int

const (
	// PhaseInitializing means no session exists yet; Initialize is the
	// only valid operation.
	PhaseInitializing Phase = iota

	// PhaseAwaitingAnswer means question CurrentIndex is presented and
	// the candidate may answer or skip.
	PhaseAwaitingAnswer

	// PhaseEvaluating means an answer is being graded.
	PhaseEvaluating

	// PhaseCompleting means the last question was answered and the
	// aggregate score is being computed and persisted.
	PhaseCompleting

	// PhaseReviewing means the final AI review is being generated.
	PhaseReviewing

	// PhaseDone means the session is fully reviewed; terminal.
	PhaseDone

	// PhaseFailed means an unrecoverable step failed. Initialize may be
	// re-invoked to start a fresh session.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseCompleting:
		return "completing"
	case PhaseReviewing:
		return "reviewing"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrBusy is returned when an operation is invoked while another
// operation on the same orchestrator is still running.
var ErrBusy = errors.New("another operation is in progress")

// ValidationError rejects bad input locally, before any AI call or
// state change.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// PhaseError rejects an operation invoked in the wrong phase.
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s not valid in phase %s", e.Op, e.Phase)
}

// QuestionView is one question as the presentation layer may see it.
// It deliberately omits the expected answer.
type QuestionView struct {
	ID         uuid.UUID
	Order      int
	Text       string
	Type       string
	Difficulty string
}

// Snapshot is a read-only view of the orchestrator state.
type Snapshot struct {
	Phase         Phase
	SessionID     uuid.UUID
	CurrentIndex  int
	QuestionCount int
	AnsweredCount int
	Questions     []QuestionView
	TotalScore    *int // set once the session completes
	Err           error
}
