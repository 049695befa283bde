package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nandita/prepwise/internal/interview"
	"github.com/nandita/prepwise/internal/llm"
	"github.com/nandita/prepwise/internal/store"
)

// fakeRepo is an in-memory store.SessionRepo that tracks status
// transitions the way the real store does.
type fakeRepo struct {
	mu sync.Mutex

	session   *store.Session
	questions []store.Question
	answers   []store.Answer
	review    *store.Review

	createErr   error
	questionErr error
	answerErr   error
	completeErr error
	reviewErr   error
}

func (f *fakeRepo) CreateSession(_ context.Context, userID uuid.UUID, cfg store.SessionConfig) (*store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.session = &store.Session{
		ID:              uuid.New(),
		UserID:          userID,
		InterviewType:   cfg.InterviewType,
		JobDescription:  cfg.JobDescription,
		ExperienceLevel: cfg.ExperienceLevel,
		TargetRole:      cfg.TargetRole,
		Status:          store.StatusCreated,
		CreatedAt:       time.Now(),
	}
	f.questions = nil
	f.answers = nil
	f.review = nil
	return f.session, nil
}

func (f *fakeRepo) SaveQuestions(_ context.Context, sessionID uuid.UUID, data []store.QuestionData) ([]store.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.questionErr != nil {
		return nil, f.questionErr
	}
	for i, q := range data {
		f.questions = append(f.questions, store.Question{
			ID:             uuid.New(),
			SessionID:      sessionID,
			Text:           q.Text,
			Type:           q.Type,
			Difficulty:     q.Difficulty,
			ExpectedAnswer: q.ExpectedAnswer,
			Order:          i + 1,
		})
	}
	f.session.TotalQuestions = len(data)
	f.session.Status = store.StatusInProgress
	return f.questions, nil
}

func (f *fakeRepo) SaveAnswer(_ context.Context, data store.AnswerData) (*store.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.answerErr != nil {
		return nil, f.answerErr
	}
	score := data.Score
	a := store.Answer{
		ID:           uuid.New(),
		QuestionID:   data.QuestionID,
		SessionID:    data.SessionID,
		Text:         data.Text,
		Score:        &score,
		Feedback:     data.Feedback,
		Strengths:    data.Strengths,
		Improvements: data.Improvements,
		Method:       data.Method,
		CreatedAt:    time.Now(),
	}
	f.answers = append(f.answers, a)
	return &a, nil
}

func (f *fakeRepo) CompleteSession(_ context.Context, _ uuid.UUID, totalScore, durationSeconds int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completeErr != nil {
		return f.completeErr
	}
	if f.session.Status != store.StatusInProgress {
		return store.ErrInvalidTransition
	}
	f.session.Status = store.StatusCompleted
	f.session.TotalScore = &totalScore
	f.session.DurationSeconds = durationSeconds
	return nil
}

func (f *fakeRepo) SaveReview(_ context.Context, sessionID uuid.UUID, data store.ReviewData) (*store.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	f.review = &store.Review{
		ID:              uuid.New(),
		SessionID:       sessionID,
		OverallScore:    data.OverallScore,
		Strengths:       data.Strengths,
		Weaknesses:      data.Weaknesses,
		Recommendations: data.Recommendations,
		Analysis:        data.Analysis,
		CreatedAt:       time.Now(),
	}
	return f.review, nil
}

func (f *fakeRepo) MarkReviewed(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session.Status != store.StatusCompleted {
		return store.ErrInvalidTransition
	}
	f.session.Status = store.StatusReviewed
	return nil
}

func (f *fakeRepo) ListSessions(_ context.Context, _ uuid.UUID) ([]store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return nil, nil
	}
	return []store.Session{*f.session}, nil
}

func (f *fakeRepo) SessionDetail(_ context.Context, _, _ uuid.UUID) (*store.SessionDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &store.SessionDetail{
		Session:   *f.session,
		Questions: f.questions,
		Answers:   f.answers,
		Review:    f.review,
	}, nil
}

// fixed-outcome gateway fakes

type fakeGenerator struct {
	questions []interview.GeneratedQuestion
	err       error
	calls     int
}

func (g *fakeGenerator) Generate(_ context.Context, _ interview.SessionSetup) ([]interview.GeneratedQuestion, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

type fakeEvaluator struct {
	scores []int // consumed FIFO
	err    error
	calls  atomic.Int32
	block  chan struct{} // when set, Evaluate waits until closed
}

func (e *fakeEvaluator) Evaluate(_ context.Context, _ interview.EvaluationInput) (*interview.Evaluation, error) {
	e.calls.Add(1)
	if e.block != nil {
		<-e.block
	}
	if e.err != nil {
		return nil, e.err
	}
	score := e.scores[0]
	e.scores = e.scores[1:]
	return &interview.Evaluation{
		Score:        score,
		Feedback:     fmt.Sprintf("scored %d", score),
		Strengths:    []string{"clarity"},
		Improvements: []string{"depth"},
	}, nil
}

type fakeReviewer struct {
	err   error
	calls int
}

func (r *fakeReviewer) Review(_ context.Context, input interview.ReviewInput) (*interview.ReviewResult, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &interview.ReviewResult{
		OverallScore:    input.OverallScore,
		Strengths:       []string{"consistency"},
		Weaknesses:      []string{"depth"},
		Recommendations: []string{"practice system design"},
		Analysis:        "Solid session overall.",
	}, nil
}

func nQuestions(n int) []interview.GeneratedQuestion {
	qs := make([]interview.GeneratedQuestion, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, interview.GeneratedQuestion{
			Text:           fmt.Sprintf("Question %d?", i+1),
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: fmt.Sprintf("Expected answer %d.", i+1),
		})
	}
	return qs
}

func testSetup() interview.SessionSetup {
	return interview.SessionSetup{
		InterviewType:   "technical",
		JobDescription:  "Backend services in Go.",
		ExperienceLevel: "mid",
		TargetRole:      "Backend Engineer",
		QuestionCount:   3,
	}
}

func newTestOrchestrator(repo *fakeRepo, gen *fakeGenerator, eval *fakeEvaluator, rev *fakeReviewer) *Orchestrator {
	return New(repo, gen, eval, rev, uuid.New())
}

func mustInitialize(t *testing.T, o *Orchestrator) {
	t.Helper()
	if err := o.Initialize(context.Background(), testSetup()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
}

func TestInitialize(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{questions: nQuestions(3)}
	o := newTestOrchestrator(repo, gen, &fakeEvaluator{}, &fakeReviewer{})

	mustInitialize(t, o)

	snap := o.Snapshot()
	if snap.Phase != PhaseAwaitingAnswer {
		t.Fatalf("phase = %s, want awaiting_answer", snap.Phase)
	}
	if snap.CurrentIndex != 0 {
		t.Errorf("current index = %d, want 0", snap.CurrentIndex)
	}
	if snap.QuestionCount != 3 {
		t.Fatalf("question count = %d, want 3", snap.QuestionCount)
	}
	for i, q := range snap.Questions {
		if q.Order != i+1 {
			t.Errorf("question %d has order %d, want %d", i, q.Order, i+1)
		}
	}
	if repo.session.Status != store.StatusInProgress {
		t.Errorf("session status = %q, want in_progress", repo.session.Status)
	}
}

func TestInitialize_GenerationFails(t *testing.T) {
	repo := &fakeRepo{}
	gen := &fakeGenerator{err: &interview.GenerationError{Err: errors.New("provider down")}}
	o := newTestOrchestrator(repo, gen, &fakeEvaluator{}, &fakeReviewer{})

	err := o.Initialize(context.Background(), testSetup())
	var genErr *interview.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if o.Snapshot().Phase != PhaseFailed {
		t.Fatalf("phase = %s, want failed", o.Snapshot().Phase)
	}

	// Retry is re-invoking Initialize; a fresh session starts cleanly.
	gen.err = nil
	gen.questions = nQuestions(3)
	mustInitialize(t, o)
	if o.Snapshot().Phase != PhaseAwaitingAnswer {
		t.Fatalf("retry should reach awaiting_answer, got %s", o.Snapshot().Phase)
	}
}

func TestInitialize_Validation(t *testing.T) {
	o := newTestOrchestrator(&fakeRepo{}, &fakeGenerator{questions: nQuestions(3)}, &fakeEvaluator{}, &fakeReviewer{})

	setup := testSetup()
	setup.TargetRole = "   "
	_, isValidation := errAs[*ValidationError](o.Initialize(context.Background(), setup))
	if !isValidation {
		t.Fatal("expected ValidationError for blank target role")
	}
	// Rejected input leaves the orchestrator ready to initialize.
	if o.Snapshot().Phase != PhaseInitializing {
		t.Fatalf("phase = %s, want initializing", o.Snapshot().Phase)
	}
}

func errAs[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}

func TestSubmitAnswer_Blank(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{scores: []int{85}}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, &fakeReviewer{})
	mustInitialize(t, o)

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := o.SubmitAnswer(context.Background(), text, "text")
		if _, ok := errAs[*ValidationError](err); !ok {
			t.Fatalf("text %q: expected ValidationError, got %v", text, err)
		}
	}

	snap := o.Snapshot()
	if snap.Phase != PhaseAwaitingAnswer || snap.CurrentIndex != 0 {
		t.Errorf("blank answers must not change state: phase=%s index=%d", snap.Phase, snap.CurrentIndex)
	}
	if eval.calls.Load() != 0 {
		t.Errorf("blank answers must not reach the evaluator, got %d calls", eval.calls.Load())
	}
	if len(repo.answers) != 0 {
		t.Errorf("blank answers must not be persisted, got %d rows", len(repo.answers))
	}
}

func TestSubmitAnswer_Advances(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{scores: []int{85}}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, &fakeReviewer{})
	mustInitialize(t, o)

	result, err := o.SubmitAnswer(context.Background(), "Chaining with linked lists.", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Evaluation.Score != 85 {
		t.Errorf("score = %d, want 85", result.Evaluation.Score)
	}
	if result.Completed {
		t.Error("first of three answers must not complete the session")
	}

	snap := o.Snapshot()
	if snap.Phase != PhaseAwaitingAnswer || snap.CurrentIndex != 1 {
		t.Errorf("expected awaiting_answer at index 1, got %s at %d", snap.Phase, snap.CurrentIndex)
	}
	if len(repo.answers) != 1 {
		t.Fatalf("expected 1 persisted answer, got %d", len(repo.answers))
	}
}

func TestSubmitAnswer_EvaluationFails(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{err: &interview.EvaluationError{Err: errors.New("bad json")}}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, &fakeReviewer{})
	mustInitialize(t, o)

	_, err := o.SubmitAnswer(context.Background(), "An attempt.", "text")
	var evalErr *interview.EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if o.Snapshot().Phase != PhaseFailed {
		t.Errorf("phase = %s, want failed", o.Snapshot().Phase)
	}
	if len(repo.answers) != 0 {
		t.Errorf("failed evaluation must not persist an answer, got %d rows", len(repo.answers))
	}
}

func TestSkipQuestion(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, &fakeReviewer{})
	mustInitialize(t, o)

	result, err := o.SkipQuestion(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.calls.Load() != 0 {
		t.Errorf("skip must not call the evaluator, got %d calls", eval.calls.Load())
	}
	if result.Evaluation.Score != 0 {
		t.Errorf("skip score = %d, want 0", result.Evaluation.Score)
	}

	if len(repo.answers) != 1 {
		t.Fatalf("expected 1 persisted answer, got %d", len(repo.answers))
	}
	a := repo.answers[0]
	if a.Text != "Question skipped" {
		t.Errorf("answer text = %q", a.Text)
	}
	if a.Feedback != "Question was skipped" {
		t.Errorf("feedback = %q", a.Feedback)
	}
	if len(a.Improvements) != 1 || a.Improvements[0] != "Consider attempting all questions" {
		t.Errorf("improvements = %v", a.Improvements)
	}
	if *a.Score != 0 {
		t.Errorf("persisted score = %d, want 0", *a.Score)
	}
	if o.Snapshot().CurrentIndex != 1 {
		t.Errorf("skip must advance, index = %d", o.Snapshot().CurrentIndex)
	}
}

func TestFullSession(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{scores: []int{85, 70, 90}}
	rev := &fakeReviewer{}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, rev)
	mustInitialize(t, o)

	answers := []string{"Answer one.", "Answer two.", "Answer three."}
	var last *StepResult
	for _, a := range answers {
		result, err := o.SubmitAnswer(context.Background(), a, "text")
		if err != nil {
			t.Fatalf("submit %q: %v", a, err)
		}
		last = result
	}

	if !last.Completed {
		t.Fatal("last answer must complete the session")
	}
	if last.TotalScore != 82 { // round(mean(85, 70, 90)) = round(81.67)
		t.Errorf("total score = %d, want 82", last.TotalScore)
	}
	if last.Review == nil {
		t.Fatal("expected a review result")
	}

	if o.Snapshot().Phase != PhaseDone {
		t.Errorf("phase = %s, want done", o.Snapshot().Phase)
	}
	if repo.session.Status != store.StatusReviewed {
		t.Errorf("session status = %q, want reviewed", repo.session.Status)
	}
	if repo.session.TotalScore == nil || *repo.session.TotalScore != 82 {
		t.Errorf("persisted score = %v, want 82", repo.session.TotalScore)
	}
	if repo.review == nil {
		t.Error("expected a persisted review")
	}
	if rev.calls != 1 {
		t.Errorf("reviewer calls = %d, want 1", rev.calls)
	}
}

func TestReviewFailure_Degraded(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{scores: []int{85, 70, 90}}
	rev := &fakeReviewer{err: &interview.ReviewError{Err: errors.New("provider down")}}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, rev)
	mustInitialize(t, o)

	var last *StepResult
	for _, a := range []string{"One.", "Two.", "Three."} {
		result, err := o.SubmitAnswer(context.Background(), a, "text")
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		last = result
	}

	if !last.Completed || last.TotalScore != 82 {
		t.Fatalf("completion must survive review failure: completed=%t score=%d", last.Completed, last.TotalScore)
	}
	var reviewErr *interview.ReviewError
	if !errors.As(last.ReviewErr, &reviewErr) {
		t.Fatalf("expected *ReviewError, got %v", last.ReviewErr)
	}

	if o.Snapshot().Phase != PhaseFailed {
		t.Errorf("phase = %s, want failed", o.Snapshot().Phase)
	}
	if repo.session.Status != store.StatusCompleted {
		t.Errorf("session status = %q, want completed", repo.session.Status)
	}
	if repo.session.TotalScore == nil || *repo.session.TotalScore != 82 {
		t.Errorf("persisted score = %v, want 82", repo.session.TotalScore)
	}
	if repo.review != nil {
		t.Error("no review row may exist after a failed review")
	}
}

func TestLastQuestionSkip(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{scores: []int{80}}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(2)}, eval, &fakeReviewer{})
	mustInitialize(t, o)

	if _, err := o.SubmitAnswer(context.Background(), "An answer.", "text"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	result, err := o.SkipQuestion(context.Background())
	if err != nil {
		t.Fatalf("skip on last question: %v", err)
	}
	if !result.Completed {
		t.Fatal("skipping the last question must complete the session")
	}
	if result.TotalScore != 40 { // round(mean(80, 0))
		t.Errorf("total score = %d, want 40", result.TotalScore)
	}
}

func TestAggregateScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"no answers", nil, 0},
		{"single", []int{85}, 85},
		{"rounds up", []int{85, 70, 90}, 82},
		{"rounds half up", []int{80, 85}, 83}, // 82.5
		{"all skipped", []int{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make([]store.AnswerData, 0, len(tt.scores))
			for _, s := range tt.scores {
				answers = append(answers, store.AnswerData{Score: s})
			}
			if got := aggregateScore(answers); got != tt.want {
				t.Errorf("aggregateScore(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}

func TestOverlappingCallsRejected(t *testing.T) {
	repo := &fakeRepo{}
	eval := &fakeEvaluator{scores: []int{85}, block: make(chan struct{})}
	o := newTestOrchestrator(repo, &fakeGenerator{questions: nQuestions(3)}, eval, &fakeReviewer{})
	mustInitialize(t, o)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := o.SubmitAnswer(context.Background(), "Slow answer.", "text"); err != nil {
			t.Errorf("first submit: %v", err)
		}
	}()

	// Wait for the first call to reach the evaluator.
	for eval.calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	if _, err := o.SubmitAnswer(context.Background(), "Interleaved.", "text"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if _, err := o.SkipQuestion(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	close(eval.block)
	<-done

	if o.Snapshot().CurrentIndex != 1 {
		t.Errorf("only the first call may advance, index = %d", o.Snapshot().CurrentIndex)
	}
}

func TestWrongPhaseRejected(t *testing.T) {
	o := newTestOrchestrator(&fakeRepo{}, &fakeGenerator{questions: nQuestions(1)}, &fakeEvaluator{}, &fakeReviewer{})

	if _, err := o.SubmitAnswer(context.Background(), "Too early.", "text"); err == nil {
		t.Fatal("submit before initialize must fail")
	}
	if _, err := o.SkipQuestion(context.Background()); err == nil {
		t.Fatal("skip before initialize must fail")
	}

	mustInitialize(t, o)
	if err := o.Initialize(context.Background(), testSetup()); err == nil {
		t.Fatal("initialize during an active session must fail")
	}
}

// Exercises the real interview gateways end to end against a mock
// provider, matching what the HTTP layer wires together.
func TestFullSession_RealGateways(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions": [
			{"question_text": "Explain indexing.", "question_type": "technical", "difficulty": "medium", "expected_answer": "B-trees."}
		]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"score": 90, "feedback": "Strong.", "strengths": ["depth"], "improvements": []}`)},
		llm.MockResponse{Content: json.RawMessage(`{"overall_score": 90, "strengths": ["depth"], "weaknesses": [], "recommendations": ["keep practicing"], "analysis": "Excellent."}`)},
	)
	repo := &fakeRepo{}
	o := New(repo,
		interview.NewGenerator(mock, interview.DefaultGeneratorConfig()),
		interview.NewEvaluator(mock, interview.DefaultEvaluatorConfig()),
		interview.NewReviewer(mock, interview.DefaultReviewerConfig()),
		uuid.New())

	mustInitialize(t, o)
	result, err := o.SubmitAnswer(context.Background(), "Indexes are B-trees.", "text")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Completed || result.TotalScore != 90 {
		t.Fatalf("completed=%t score=%d, want completed with 90", result.Completed, result.TotalScore)
	}
	if repo.session.Status != store.StatusReviewed {
		t.Errorf("session status = %q, want reviewed", repo.session.Status)
	}
}
