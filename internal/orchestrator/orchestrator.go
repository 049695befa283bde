package orchestrator

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nandita/prepwise/internal/interview"
	"github.com/nandita/prepwise/internal/store"
)

// Skip sentinels persisted in place of a real evaluation when the
// candidate skips a question.
const (
	SkippedAnswerText     = "Question skipped"
	SkippedFeedback       = "Question was skipped"
	SkippedAnswerMethod   = "skip"
	skippedImprovementMsg = "Consider attempting all questions"
)

// QuestionGenerator produces the question set for a new session.
type QuestionGenerator interface {
	Generate(ctx context.Context, setup interview.SessionSetup) ([]interview.GeneratedQuestion, error)
}

// AnswerEvaluator grades one answer.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, input interview.EvaluationInput) (*interview.Evaluation, error)
}

// SessionReviewer assesses a completed session.
type SessionReviewer interface {
	Review(ctx context.Context, input interview.ReviewInput) (*interview.ReviewResult, error)
}

// Orchestrator drives one practice session through its workflow:
// generate questions, collect and grade answers one at a time, compute
// the aggregate score, then produce the final review. It owns exactly
// one session at a time and rejects overlapping operations.
type Orchestrator struct {
	sessions  store.SessionRepo
	generator QuestionGenerator
	evaluator AnswerEvaluator
	reviewer  SessionReviewer
	userID    uuid.UUID

	mu   sync.Mutex
	busy bool

	phase      Phase
	session    *store.Session
	setup      interview.SessionSetup
	questions  []store.Question
	answers    []store.AnswerData
	current    int
	startedAt  time.Time
	askedAt    time.Time
	totalScore *int
	lastErr    error
}

// New creates an Orchestrator for one user's session.
func New(sessions store.SessionRepo, gen QuestionGenerator, eval AnswerEvaluator, rev SessionReviewer, userID uuid.UUID) *Orchestrator {
	return &Orchestrator{
		sessions:  sessions,
		generator: gen,
		evaluator: eval,
		reviewer:  rev,
		userID:    userID,
		phase:     PhaseInitializing,
	}
}

// StepResult reports what one answer or skip accomplished.
type StepResult struct {
	// Evaluation is the grading for the submitted answer. For skips it
	// holds the synthesized skip record.
	Evaluation *interview.Evaluation

	// Completed is true when this step finished the last question.
	Completed bool

	// TotalScore is the aggregate session score, set when Completed.
	TotalScore int

	// Review is the final assessment, set when the review succeeded.
	Review *interview.ReviewResult

	// ReviewErr is set when completion succeeded but the review failed.
	// Per-question results and the aggregate score are already saved.
	ReviewErr error
}

// acquire claims the orchestrator for one operation.
func (o *Orchestrator) acquire() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.busy {
		return ErrBusy
	}
	o.busy = true
	return nil
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	o.busy = false
	o.mu.Unlock()
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

func (o *Orchestrator) fail(err error) error {
	o.mu.Lock()
	o.phase = PhaseFailed
	o.lastErr = err
	o.mu.Unlock()
	return err
}

// Initialize creates the session, generates and persists its questions,
// and presents the first one. Valid from the initial state and from
// Failed, where re-invoking it starts a fresh session.
func (o *Orchestrator) Initialize(ctx context.Context, setup interview.SessionSetup) error {
	if err := o.acquire(); err != nil {
		return err
	}
	defer o.release()

	if o.phase != PhaseInitializing && o.phase != PhaseFailed {
		return &PhaseError{Op: "initialize", Phase: o.phase}
	}

	if strings.TrimSpace(setup.TargetRole) == "" {
		return &ValidationError{Msg: "target role is required"}
	}
	if strings.TrimSpace(setup.JobDescription) == "" {
		return &ValidationError{Msg: "job description is required"}
	}

	// A fresh run discards any state left over from a failed attempt.
	o.mu.Lock()
	o.phase = PhaseInitializing
	o.session = nil
	o.questions = nil
	o.answers = nil
	o.current = 0
	o.totalScore = nil
	o.lastErr = nil
	o.mu.Unlock()

	sess, err := o.sessions.CreateSession(ctx, o.userID, store.SessionConfig{
		InterviewType:   setup.InterviewType,
		JobDescription:  setup.JobDescription,
		ExperienceLevel: setup.ExperienceLevel,
		TargetRole:      setup.TargetRole,
	})
	if err != nil {
		return o.fail(fmt.Errorf("create session: %w", err))
	}

	generated, err := o.generator.Generate(ctx, setup)
	if err != nil {
		return o.fail(err)
	}

	data := make([]store.QuestionData, 0, len(generated))
	for _, q := range generated {
		data = append(data, store.QuestionData{
			Text:           q.Text,
			Type:           q.Type,
			Difficulty:     q.Difficulty,
			ExpectedAnswer: q.ExpectedAnswer,
		})
	}

	saved, err := o.sessions.SaveQuestions(ctx, sess.ID, data)
	if err != nil {
		return o.fail(fmt.Errorf("save questions: %w", err))
	}

	now := time.Now()
	o.mu.Lock()
	o.session = sess
	o.setup = setup
	o.questions = saved
	o.startedAt = now
	o.askedAt = now
	o.phase = PhaseAwaitingAnswer
	o.mu.Unlock()
	return nil
}

// SubmitAnswer grades the current question's answer, persists it, and
// advances. Answering the last question triggers completion and review.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, text, method string) (*StepResult, error) {
	if err := o.acquire(); err != nil {
		return nil, err
	}
	defer o.release()

	if o.phase != PhaseAwaitingAnswer {
		return nil, &PhaseError{Op: "submit answer", Phase: o.phase}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Msg: "answer must not be blank"}
	}

	q := o.questions[o.current]
	o.setPhase(PhaseEvaluating)

	eval, err := o.evaluator.Evaluate(ctx, interview.EvaluationInput{
		Question:       q.Text,
		ExpectedAnswer: q.ExpectedAnswer,
		UserAnswer:     text,
		QuestionType:   q.Type,
		TargetRole:     o.setup.TargetRole,
	})
	if err != nil {
		return nil, o.fail(err)
	}

	answer := store.AnswerData{
		QuestionID:       q.ID,
		SessionID:        o.session.ID,
		Text:             text,
		Score:            eval.Score,
		Feedback:         eval.Feedback,
		Strengths:        eval.Strengths,
		Improvements:     eval.Improvements,
		Method:           method,
		TimeTakenSeconds: int(time.Since(o.askedAt).Seconds()),
	}
	if err := o.recordAnswer(ctx, answer); err != nil {
		return nil, o.fail(err)
	}

	return o.advance(ctx, eval)
}

// SkipQuestion records the fixed skip outcome for the current question
// and advances like SubmitAnswer, without any AI call.
func (o *Orchestrator) SkipQuestion(ctx context.Context) (*StepResult, error) {
	if err := o.acquire(); err != nil {
		return nil, err
	}
	defer o.release()

	if o.phase != PhaseAwaitingAnswer {
		return nil, &PhaseError{Op: "skip question", Phase: o.phase}
	}

	q := o.questions[o.current]
	eval := &interview.Evaluation{
		Score:        0,
		Feedback:     SkippedFeedback,
		Strengths:    []string{},
		Improvements: []string{skippedImprovementMsg},
	}

	answer := store.AnswerData{
		QuestionID:       q.ID,
		SessionID:        o.session.ID,
		Text:             SkippedAnswerText,
		Score:            eval.Score,
		Feedback:         eval.Feedback,
		Strengths:        eval.Strengths,
		Improvements:     eval.Improvements,
		Method:           SkippedAnswerMethod,
		TimeTakenSeconds: int(time.Since(o.askedAt).Seconds()),
	}
	if err := o.recordAnswer(ctx, answer); err != nil {
		return nil, o.fail(err)
	}

	return o.advance(ctx, eval)
}

func (o *Orchestrator) recordAnswer(ctx context.Context, answer store.AnswerData) error {
	if _, err := o.sessions.SaveAnswer(ctx, answer); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	o.mu.Lock()
	o.answers = append(o.answers, answer)
	o.mu.Unlock()
	return nil
}

// advance moves to the next question, or runs completion and review
// after the last one.
func (o *Orchestrator) advance(ctx context.Context, eval *interview.Evaluation) (*StepResult, error) {
	result := &StepResult{Evaluation: eval}

	o.mu.Lock()
	o.current++
	o.askedAt = time.Now()
	done := o.current >= len(o.questions)
	if !done {
		o.phase = PhaseAwaitingAnswer
	} else {
		o.phase = PhaseCompleting
	}
	o.mu.Unlock()

	if !done {
		return result, nil
	}

	total := aggregateScore(o.answers)
	duration := int(time.Since(o.startedAt).Seconds())
	if err := o.sessions.CompleteSession(ctx, o.session.ID, total, duration); err != nil {
		return nil, o.fail(fmt.Errorf("complete session: %w", err))
	}

	o.mu.Lock()
	o.totalScore = &total
	o.phase = PhaseReviewing
	o.mu.Unlock()

	result.Completed = true
	result.TotalScore = total

	review, err := o.runReview(ctx, total)
	if err != nil {
		// Degraded: everything up to the review is saved, so the
		// session stays completed with its score intact.
		o.fail(err)
		result.ReviewErr = err
		return result, nil
	}

	result.Review = review
	o.setPhase(PhaseDone)
	return result, nil
}

func (o *Orchestrator) runReview(ctx context.Context, total int) (*interview.ReviewResult, error) {
	input := interview.ReviewInput{
		Setup:        o.setup,
		OverallScore: total,
		Questions:    make([]interview.AnsweredQuestion, 0, len(o.answers)),
	}
	for i, a := range o.answers {
		input.Questions = append(input.Questions, interview.AnsweredQuestion{
			Question:   o.questions[i].Text,
			UserAnswer: a.Text,
			Score:      a.Score,
			Feedback:   a.Feedback,
			Skipped:    a.Method == SkippedAnswerMethod,
		})
	}

	review, err := o.reviewer.Review(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := o.sessions.SaveReview(ctx, o.session.ID, store.ReviewData{
		OverallScore:    review.OverallScore,
		Strengths:       review.Strengths,
		Weaknesses:      review.Weaknesses,
		Recommendations: review.Recommendations,
		Analysis:        review.Analysis,
	}); err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	if err := o.sessions.MarkReviewed(ctx, o.session.ID); err != nil {
		return nil, fmt.Errorf("mark reviewed: %w", err)
	}
	return review, nil
}

// aggregateScore is the rounded mean of all recorded answer scores,
// skips included. Zero answers yields zero.
func aggregateScore(answers []store.AnswerData) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	return int(math.Round(float64(sum) / float64(len(answers))))
}

// Snapshot returns a read-only view of the current state. It is safe to
// call while an operation is running.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		Phase:         o.phase,
		CurrentIndex:  o.current,
		QuestionCount: len(o.questions),
		AnsweredCount: len(o.answers),
		TotalScore:    o.totalScore,
		Err:           o.lastErr,
	}
	if o.session != nil {
		snap.SessionID = o.session.ID
	}
	for _, q := range o.questions {
		snap.Questions = append(snap.Questions, QuestionView{
			ID:         q.ID,
			Order:      q.Order,
			Text:       q.Text,
			Type:       q.Type,
			Difficulty: q.Difficulty,
		})
	}
	return snap
}
