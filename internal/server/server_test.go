package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nandita/prepwise/internal/interview"
	"github.com/nandita/prepwise/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// in-memory fakes

type memUsers struct {
	mu    sync.Mutex
	users map[string]*store.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*store.User)}
}

func (m *memUsers) Create(_ context.Context, email, name, passwordHash string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email = strings.ToLower(email)
	if _, ok := m.users[email]; ok {
		return nil, store.ErrDuplicateEmail
	}
	u := &store.User{ID: uuid.New(), Email: email, Name: name, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.users[email] = u
	return u, nil
}

func (m *memUsers) ByEmail(_ context.Context, email string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) ByID(_ context.Context, id uuid.UUID) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

type memSessionRecord struct {
	session   store.Session
	questions []store.Question
	answers   []store.Answer
	review    *store.Review
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*memSessionRecord
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[uuid.UUID]*memSessionRecord)}
}

func (m *memSessions) CreateSession(_ context.Context, userID uuid.UUID, cfg store.SessionConfig) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := &memSessionRecord{session: store.Session{
		ID:              uuid.New(),
		UserID:          userID,
		InterviewType:   cfg.InterviewType,
		JobDescription:  cfg.JobDescription,
		ExperienceLevel: cfg.ExperienceLevel,
		TargetRole:      cfg.TargetRole,
		Status:          store.StatusCreated,
		CreatedAt:       time.Now(),
	}}
	m.sessions[rec.session.ID] = rec
	return &rec.session, nil
}

func (m *memSessions) SaveQuestions(_ context.Context, sessionID uuid.UUID, data []store.QuestionData) ([]store.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.sessions[sessionID]
	for i, q := range data {
		rec.questions = append(rec.questions, store.Question{
			ID: uuid.New(), SessionID: sessionID,
			Text: q.Text, Type: q.Type, Difficulty: q.Difficulty,
			ExpectedAnswer: q.ExpectedAnswer, Order: i + 1,
		})
	}
	rec.session.TotalQuestions = len(data)
	rec.session.Status = store.StatusInProgress
	return rec.questions, nil
}

func (m *memSessions) SaveAnswer(_ context.Context, data store.AnswerData) (*store.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.sessions[data.SessionID]
	score := data.Score
	a := store.Answer{
		ID: uuid.New(), QuestionID: data.QuestionID, SessionID: data.SessionID,
		Text: data.Text, Score: &score, Feedback: data.Feedback,
		Strengths: data.Strengths, Improvements: data.Improvements,
		Method: data.Method, CreatedAt: time.Now(),
	}
	rec.answers = append(rec.answers, a)
	return &a, nil
}

func (m *memSessions) CompleteSession(_ context.Context, sessionID uuid.UUID, totalScore, durationSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.sessions[sessionID]
	if rec.session.Status != store.StatusInProgress {
		return store.ErrInvalidTransition
	}
	rec.session.Status = store.StatusCompleted
	rec.session.TotalScore = &totalScore
	rec.session.DurationSeconds = durationSeconds
	return nil
}

func (m *memSessions) SaveReview(_ context.Context, sessionID uuid.UUID, data store.ReviewData) (*store.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.sessions[sessionID]
	rec.review = &store.Review{
		ID: uuid.New(), SessionID: sessionID,
		OverallScore: data.OverallScore, Strengths: data.Strengths,
		Weaknesses: data.Weaknesses, Recommendations: data.Recommendations,
		Analysis: data.Analysis, CreatedAt: time.Now(),
	}
	return rec.review, nil
}

func (m *memSessions) MarkReviewed(_ context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.sessions[sessionID]
	if rec.session.Status != store.StatusCompleted {
		return store.ErrInvalidTransition
	}
	rec.session.Status = store.StatusReviewed
	return nil
}

func (m *memSessions) ListSessions(_ context.Context, userID uuid.UUID) ([]store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.Session
	for _, rec := range m.sessions {
		if rec.session.UserID == userID {
			out = append(out, rec.session)
		}
	}
	return out, nil
}

func (m *memSessions) SessionDetail(_ context.Context, userID, sessionID uuid.UUID) (*store.SessionDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.sessions[sessionID]
	if !ok || rec.session.UserID != userID {
		return nil, store.ErrNotFound
	}
	return &store.SessionDetail{
		Session:   rec.session,
		Questions: rec.questions,
		Answers:   rec.answers,
		Review:    rec.review,
	}, nil
}

type stubGenerator struct{ count int }

func (g *stubGenerator) Generate(_ context.Context, setup interview.SessionSetup) ([]interview.GeneratedQuestion, error) {
	n := g.count
	if n == 0 {
		n = setup.QuestionCount
	}
	qs := make([]interview.GeneratedQuestion, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, interview.GeneratedQuestion{
			Text:           fmt.Sprintf("Question %d?", i+1),
			Type:           "technical",
			Difficulty:     "medium",
			ExpectedAnswer: fmt.Sprintf("Secret grading key %d", i+1),
		})
	}
	return qs, nil
}

type stubEvaluator struct{ score int }

func (e *stubEvaluator) Evaluate(_ context.Context, _ interview.EvaluationInput) (*interview.Evaluation, error) {
	return &interview.Evaluation{
		Score: e.score, Feedback: "Fine.",
		Strengths: []string{"clarity"}, Improvements: []string{"depth"},
	}, nil
}

type stubReviewer struct{}

func (r *stubReviewer) Review(_ context.Context, input interview.ReviewInput) (*interview.ReviewResult, error) {
	return &interview.ReviewResult{
		OverallScore: input.OverallScore,
		Strengths:    []string{"consistency"}, Weaknesses: []string{"depth"},
		Recommendations: []string{"practice"}, Analysis: "Decent session.",
	}, nil
}

type stubTranscriber struct {
	text string
	err  error
}

func (s *stubTranscriber) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	_, _ = io.Copy(io.Discard, audio)
	return s.text, s.err
}

// harness

type testServer struct {
	router      *gin.Engine
	transcriber *stubTranscriber
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	transcriber := &stubTranscriber{text: "I would use a hash map."}
	srv := New(newMemUsers(), newMemSessions(),
		&stubGenerator{}, &stubEvaluator{score: 85}, &stubReviewer{},
		transcriber,
		Config{JWTSecret: "test-secret", TokenTTL: time.Hour, QuestionCount: 5})
	return &testServer{router: srv.Router(), transcriber: transcriber}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func (ts *testServer) register(t *testing.T, email string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": email, "name": "Test User", "password": "long-enough-password",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d: %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "priya@example.com")
	if token == "" {
		t.Fatal("register must return a token")
	}

	// Duplicate email.
	w := ts.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": "priya@example.com", "name": "Other", "password": "long-enough-password",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register: status %d, want 409", w.Code)
	}

	w = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "priya@example.com", "password": "long-enough-password",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login: status %d, want 200", w.Code)
	}

	w = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "priya@example.com", "password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/v1/sessions"},
		{http.MethodPost, "/api/v1/sessions"},
		{http.MethodPost, "/api/v1/transcriptions"},
	}
	for _, p := range paths {
		if w := ts.do(t, p.method, p.path, "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status %d, want 401", p.method, p.path, w.Code)
		}
	}

	if w := ts.do(t, http.MethodGet, "/api/v1/sessions", "bogus-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("bogus token: status %d, want 401", w.Code)
	}
}

func createSession(t *testing.T, ts *testServer, token string, count int) (string, map[string]any) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/v1/sessions", token, gin.H{
		"interview_type":   "technical",
		"job_description":  "Go backend services.",
		"experience_level": "mid",
		"target_role":      "Backend Engineer",
		"question_count":   count,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	return body["session_id"].(string), body
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "priya@example.com")

	_, body := createSession(t, ts, token, 3)

	questions := body["questions"].([]any)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if body["current_index"].(float64) != 0 {
		t.Errorf("current_index = %v, want 0", body["current_index"])
	}
}

func TestCreateSession_SetupEnums(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "priya@example.com")

	tests := []struct {
		name            string
		interviewType   string
		experienceLevel string
		wantStatus      int
	}{
		{"technical", "technical", "mid", http.StatusCreated},
		{"behavioral", "behavioral", "senior", http.StatusCreated},
		{"hr", "hr", "entry", http.StatusCreated},
		{"group discussion", "group-discussion", "mid", http.StatusCreated},
		{"unknown type", "pair-programming", "mid", http.StatusBadRequest},
		{"unknown level", "technical", "principal", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/api/v1/sessions", token, gin.H{
				"interview_type":   tc.interviewType,
				"job_description":  "Go backend services.",
				"experience_level": tc.experienceLevel,
				"target_role":      "Backend Engineer",
				"question_count":   2,
			})
			if w.Code != tc.wantStatus {
				t.Errorf("status %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestExpectedAnswersNeverSerialized(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "priya@example.com")

	sessionID, _ := createSession(t, ts, token, 2)

	w := ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers", token, gin.H{
		"answer": "Something.", "method": "text",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: status %d: %s", w.Code, w.Body.String())
	}

	detail := ts.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID, token, nil)
	if detail.Code != http.StatusOK {
		t.Fatalf("detail: status %d", detail.Code)
	}

	for name, body := range map[string]string{
		"create": w.Body.String(),
		"detail": detail.Body.String(),
	} {
		if strings.Contains(body, "Secret grading key") {
			t.Errorf("%s response leaks the expected answer:\n%s", name, body)
		}
	}
}

func TestFullSessionOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "priya@example.com")

	sessionID, _ := createSession(t, ts, token, 2)

	w := ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers", token, gin.H{
		"answer": "First answer.", "method": "text",
	})
	body := decode(t, w)
	if body["completed"].(bool) {
		t.Fatal("first of two answers must not complete")
	}

	w = ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/skip", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("skip: status %d: %s", w.Code, w.Body.String())
	}
	body = decode(t, w)
	if !body["completed"].(bool) {
		t.Fatal("skipping the last question must complete")
	}
	if body["total_score"].(float64) != 43 { // round(mean(85, 0)) = round(42.5)
		t.Errorf("total_score = %v, want 43", body["total_score"])
	}
	if body["review"] == nil {
		t.Error("expected a review in the completion response")
	}

	// The session is over; further submissions find nothing active.
	w = ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers", token, gin.H{
		"answer": "Too late.", "method": "text",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("post-completion submit: status %d, want 404", w.Code)
	}

	// Listing shows the reviewed session.
	w = ts.do(t, http.MethodGet, "/api/v1/sessions", token, nil)
	sessions := decode(t, w)["sessions"].([]any)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if status := sessions[0].(map[string]any)["status"].(string); status != "reviewed" {
		t.Errorf("status = %q, want reviewed", status)
	}
}

func TestSessionOwnership(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.register(t, "owner@example.com")
	stranger := ts.register(t, "stranger@example.com")

	sessionID, _ := createSession(t, ts, owner, 2)

	if w := ts.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID, stranger, nil); w.Code != http.StatusNotFound {
		t.Errorf("foreign detail: status %d, want 404", w.Code)
	}
	w := ts.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers", stranger, gin.H{
		"answer": "Hijack attempt.", "method": "text",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign submit: status %d, want 404", w.Code)
	}
}

func TestTranscription(t *testing.T) {
	ts := newTestServer(t)
	token := ts.register(t, "priya@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("audio", "answer.webm")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake-audio-bytes")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("transcribe: status %d: %s", w.Code, w.Body.String())
	}
	if text := decode(t, w)["text"].(string); text != "I would use a hash map." {
		t.Errorf("text = %q", text)
	}
}

func TestTranscriptionFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.transcriber.err = &interview.TranscriptionError{Err: errors.New("unsupported codec")}
	token := ts.register(t, "priya@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("audio", "answer.webm")
	_, _ = part.Write([]byte("fake"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("failed transcription: status %d, want 502", w.Code)
	}
}
