package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Store) *User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), uuid.NewString()+"@example.com", "Test User", "hash")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u
}

func createTestSession(t *testing.T, s *Store, userID uuid.UUID) *Session {
	t.Helper()
	sess, err := s.Sessions().CreateSession(context.Background(), userID, SessionConfig{
		InterviewType:   "technical",
		JobDescription:  "Build and operate backend services.",
		ExperienceLevel: "mid",
		TargetRole:      "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("create test session: %v", err)
	}
	return sess
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, err := s.Users().Create(ctx, "Priya@Example.com", "Priya", "bcrypt-hash")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "priya@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}

	got, err := s.Users().ByEmail(ctx, "priya@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("lookup returned wrong user")
	}

	if _, err := s.Users().Create(ctx, "priya@example.com", "Other", "hash"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if _, err := s.Users().ByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s)
	sess := createTestSession(t, s, u.ID)

	if sess.Status != StatusCreated {
		t.Fatalf("new session status = %q, want %q", sess.Status, StatusCreated)
	}

	qs, err := s.Sessions().SaveQuestions(ctx, sess.ID, []QuestionData{
		{Text: "What is a goroutine?", Type: "technical", Difficulty: "easy", ExpectedAnswer: "A lightweight thread managed by the Go runtime."},
		{Text: "Explain database indexing.", Type: "technical", Difficulty: "medium", ExpectedAnswer: "A structure that speeds up lookups at the cost of writes."},
	})
	if err != nil {
		t.Fatalf("save questions: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.Order != i+1 {
			t.Fatalf("question %d has order %d", i, q.Order)
		}
	}

	if _, err := s.Sessions().SaveAnswer(ctx, AnswerData{
		QuestionID:       qs[0].ID,
		SessionID:        sess.ID,
		Text:             "A lightweight thread.",
		Score:            85,
		Feedback:         "Good, concise answer.",
		Strengths:        []string{"accuracy"},
		Improvements:     []string{"mention the scheduler"},
		Method:           "text",
		TimeTakenSeconds: 42,
	}); err != nil {
		t.Fatalf("save answer: %v", err)
	}

	if err := s.Sessions().CompleteSession(ctx, sess.ID, 85, 300); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Completing twice must fail: status already moved past in_progress.
	if err := s.Sessions().CompleteSession(ctx, sess.ID, 85, 300); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	if _, err := s.Sessions().SaveReview(ctx, sess.ID, ReviewData{
		OverallScore:    85,
		Strengths:       []string{"clear communication"},
		Weaknesses:      []string{"little depth on internals"},
		Recommendations: []string{"study runtime scheduling"},
		Analysis:        "Solid fundamentals overall.",
	}); err != nil {
		t.Fatalf("save review: %v", err)
	}
	if err := s.Sessions().MarkReviewed(ctx, sess.ID); err != nil {
		t.Fatalf("mark reviewed: %v", err)
	}

	detail, err := s.Sessions().SessionDetail(ctx, u.ID, sess.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Session.Status != StatusReviewed {
		t.Fatalf("status = %q, want %q", detail.Session.Status, StatusReviewed)
	}
	if detail.Session.TotalScore == nil || *detail.Session.TotalScore != 85 {
		t.Fatalf("total score = %v, want 85", detail.Session.TotalScore)
	}
	if len(detail.Questions) != 2 || len(detail.Answers) != 1 {
		t.Fatalf("detail joined %d questions / %d answers", len(detail.Questions), len(detail.Answers))
	}
	if detail.Review == nil || detail.Review.OverallScore != 85 {
		t.Fatal("expected joined review with score 85")
	}
}

func TestSessionOwnership(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, s)
	stranger := createTestUser(t, s)
	sess := createTestSession(t, s, owner.ID)

	if _, err := s.Sessions().SessionDetail(ctx, stranger.ID, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}

	mine, err := s.Sessions().ListSessions(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("owner should see 1 session, got %d", len(mine))
	}

	theirs, err := s.Sessions().ListSessions(ctx, stranger.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("stranger should see 0 sessions, got %d", len(theirs))
	}
}

func TestLLMCallTelemetry(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	calls := []LLMCallData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "question-gen", InputTokens: 900, OutputTokens: 600, LatencyMs: 2100, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "answer-eval", InputTokens: 420, OutputTokens: 180, LatencyMs: 950, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "answer-eval", InputTokens: 380, OutputTokens: 160, LatencyMs: 1050, Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		if err := s.LLMCalls().AppendLLMCall(ctx, c); err != nil {
			t.Fatalf("append llm call: %v", err)
		}
	}

	listed, err := s.LLMCalls().ListLLMCalls(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 calls with limit 2, got %d", len(listed))
	}

	usage, err := s.LLMCalls().LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]LLMUsage, len(usage))
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	if got := byPurpose["answer-eval"]; got.Calls != 2 || got.InputTokens != 800 {
		t.Errorf("answer-eval usage = %+v, want 2 calls / 800 input tokens", got)
	}
	if got := byPurpose["question-gen"]; got.Calls != 1 || got.OutputTokens != 600 {
		t.Errorf("question-gen usage = %+v, want 1 call / 600 output tokens", got)
	}

	byModel, err := s.LLMCalls().LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("model usage: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("expected 1 model row, got %d", len(byModel))
	}
	if got := byModel[0]; got.Model != "gpt-4o" || got.Calls != 3 || got.InputTokens != 1700 || got.OutputTokens != 940 {
		t.Errorf("gpt-4o usage = %+v, want 3 calls / 1700 in / 940 out", got)
	}
}
