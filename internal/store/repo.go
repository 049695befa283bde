package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session status values. Transitions only move forward:
// created → in_progress → completed → reviewed.
const (
	StatusCreated    = "created"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusReviewed   = "reviewed"
)

var (
	// ErrNotFound is returned when a record does not exist or is owned by
	// a different user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when registering an email that is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidTransition is returned when a session status update would
	// move backwards or skip a state.
	ErrInvalidTransition = errors.New("invalid session status transition")
)

// User is an account record. The password hash never leaves this package's
// callers except for login comparison.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// SessionConfig is the user-supplied interview setup.
type SessionConfig struct {
	InterviewType   string
	JobDescription  string
	ExperienceLevel string
	TargetRole      string
}

// Session is one interview attempt.
type Session struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	InterviewType   string
	JobDescription  string
	ExperienceLevel string
	TargetRole      string
	Status          string
	TotalScore      *int
	TotalQuestions  int
	DurationSeconds int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
}

// QuestionData is a generated question ready for persistence.
type QuestionData struct {
	Text           string
	Type           string
	Difficulty     string
	ExpectedAnswer string
}

// Question is a persisted interview question.
type Question struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	Text           string
	Type           string
	Difficulty     string
	ExpectedAnswer string
	Order          int
}

// AnswerData is an evaluated (or skipped) answer ready for persistence.
type AnswerData struct {
	QuestionID       uuid.UUID
	SessionID        uuid.UUID
	Text             string
	Score            int
	Feedback         string
	Strengths        []string
	Improvements     []string
	Method           string
	TimeTakenSeconds int
}

// Answer is a persisted answer with its evaluation.
type Answer struct {
	ID               uuid.UUID
	QuestionID       uuid.UUID
	SessionID        uuid.UUID
	Text             string
	Score            *int
	Feedback         string
	Strengths        []string
	Improvements     []string
	Method           string
	TimeTakenSeconds int
	CreatedAt        time.Time
}

// ReviewData is a generated session review ready for persistence.
type ReviewData struct {
	OverallScore    int
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Analysis        string
}

// Review is the persisted end-of-session assessment.
type Review struct {
	ID              uuid.UUID
	SessionID       uuid.UUID
	OverallScore    int
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Analysis        string
	CreatedAt       time.Time
}

// SessionDetail is a session joined with its dependent records.
type SessionDetail struct {
	Session   Session
	Questions []Question
	Answers   []Answer
	Review    *Review
}

// UserRepo manages account records.
type UserRepo interface {
	// Create inserts a new user. Returns ErrDuplicateEmail if taken.
	Create(ctx context.Context, email, name, passwordHash string) (*User, error)

	// ByEmail looks a user up by email. Returns ErrNotFound when absent.
	ByEmail(ctx context.Context, email string) (*User, error)

	// ByID looks a user up by ID. Returns ErrNotFound when absent.
	ByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// SessionRepo manages interview sessions and their dependent records.
// Every reading or creating operation is scoped by the owning user's ID,
// passed explicitly so ownership checks stay testable.
type SessionRepo interface {
	// CreateSession inserts a new session with status created.
	CreateSession(ctx context.Context, userID uuid.UUID, cfg SessionConfig) (*Session, error)

	// SaveQuestions bulk-inserts questions with contiguous 1-based order,
	// records the question count, and moves the session to in_progress.
	SaveQuestions(ctx context.Context, sessionID uuid.UUID, questions []QuestionData) ([]Question, error)

	// SaveAnswer inserts one evaluated or skipped answer.
	SaveAnswer(ctx context.Context, data AnswerData) (*Answer, error)

	// CompleteSession records the aggregate score and duration and moves
	// the session from in_progress to completed. Returns
	// ErrInvalidTransition if the session is not in_progress.
	CompleteSession(ctx context.Context, sessionID uuid.UUID, totalScore, durationSeconds int) error

	// SaveReview inserts the session review.
	SaveReview(ctx context.Context, sessionID uuid.UUID, data ReviewData) (*Review, error)

	// MarkReviewed moves the session from completed to reviewed. Returns
	// ErrInvalidTransition if the session is not completed.
	MarkReviewed(ctx context.Context, sessionID uuid.UUID) error

	// ListSessions returns the user's sessions, newest first.
	ListSessions(ctx context.Context, userID uuid.UUID) ([]Session, error)

	// SessionDetail returns one of the user's sessions with questions
	// (in order), answers, and review joined. Returns ErrNotFound for
	// missing sessions and sessions owned by other users alike.
	SessionDetail(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetail, error)
}

// LLMCallData captures one request to the LLM provider.
type LLMCallData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMCall is one persisted provider call.
type LLMCall struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	CreatedAt    time.Time
}

// LLMUsage aggregates provider calls by purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates provider calls by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMCallRepo provides access to LLM call telemetry.
type LLMCallRepo interface {
	// AppendLLMCall records an LLM API call.
	AppendLLMCall(ctx context.Context, data LLMCallData) error

	// ListLLMCalls returns the most recent calls, newest first.
	ListLLMCalls(ctx context.Context, limit int) ([]LLMCall, error)

	// LLMUsageByPurpose returns token and latency totals per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel returns token totals per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
