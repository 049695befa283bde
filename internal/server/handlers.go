package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nandita/prepwise/internal/interview"
	"github.com/nandita/prepwise/internal/orchestrator"
	"github.com/nandita/prepwise/internal/store"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userJSON struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process password"})
		return
	}

	user, err := s.users.Create(c.Request.Context(), req.Email, req.Name, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userJSON{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.users.ByEmail(c.Request.Context(), req.Email)
	if err != nil || !checkPassword(user.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userJSON{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

type createSessionRequest struct {
	InterviewType   string `json:"interview_type" binding:"required,oneof=technical behavioral hr group-discussion"`
	JobDescription  string `json:"job_description" binding:"required"`
	ExperienceLevel string `json:"experience_level" binding:"required,oneof=entry mid senior"`
	TargetRole      string `json:"target_role" binding:"required"`
	QuestionCount   int    `json:"question_count"`
}

// questionJSON is a question as clients see it. The expected answer is
// grading material and never leaves the server.
type questionJSON struct {
	ID         uuid.UUID `json:"id"`
	Order      int       `json:"order"`
	Text       string    `json:"text"`
	Type       string    `json:"type"`
	Difficulty string    `json:"difficulty"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := req.QuestionCount
	if count == 0 {
		count = s.cfg.QuestionCount
	}
	if count < 1 || count > 20 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_count must be between 1 and 20"})
		return
	}

	userID := currentUser(c)
	orch := orchestrator.New(s.sessions, s.generator, s.evaluator, s.reviewer, userID)

	err := orch.Initialize(c.Request.Context(), interview.SessionSetup{
		InterviewType:   req.InterviewType,
		JobDescription:  req.JobDescription,
		ExperienceLevel: req.ExperienceLevel,
		TargetRole:      req.TargetRole,
		QuestionCount:   count,
	})
	if err != nil {
		writeWorkflowError(c, err)
		return
	}

	snap := orch.Snapshot()
	s.trackActive(snap.SessionID, userID, orch)

	questions := make([]questionJSON, 0, len(snap.Questions))
	for _, q := range snap.Questions {
		questions = append(questions, questionJSON{
			ID: q.ID, Order: q.Order, Text: q.Text, Type: q.Type, Difficulty: q.Difficulty,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id":    snap.SessionID,
		"questions":     questions,
		"current_index": snap.CurrentIndex,
	})
}

type sessionJSON struct {
	ID              uuid.UUID  `json:"id"`
	InterviewType   string     `json:"interview_type"`
	JobDescription  string     `json:"job_description"`
	ExperienceLevel string     `json:"experience_level"`
	TargetRole      string     `json:"target_role"`
	Status          string     `json:"status"`
	TotalScore      *int       `json:"total_score"`
	TotalQuestions  int        `json:"total_questions"`
	DurationSeconds int        `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at"`
}

func toSessionJSON(s store.Session) sessionJSON {
	return sessionJSON{
		ID:              s.ID,
		InterviewType:   s.InterviewType,
		JobDescription:  s.JobDescription,
		ExperienceLevel: s.ExperienceLevel,
		TargetRole:      s.TargetRole,
		Status:          s.Status,
		TotalScore:      s.TotalScore,
		TotalQuestions:  s.TotalQuestions,
		DurationSeconds: s.DurationSeconds,
		CreatedAt:       s.CreatedAt,
		CompletedAt:     s.CompletedAt,
	}
}

func (s *Server) handleListSessions(c *gin.Context) {
	sessions, err := s.sessions.ListSessions(c.Request.Context(), currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}

	out := make([]sessionJSON, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, toSessionJSON(sess))
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

type answerJSON struct {
	ID               uuid.UUID `json:"id"`
	QuestionID       uuid.UUID `json:"question_id"`
	Text             string    `json:"text"`
	Score            *int      `json:"score"`
	Feedback         string    `json:"feedback"`
	Strengths        []string  `json:"strengths"`
	Improvements     []string  `json:"improvements"`
	Method           string    `json:"method"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
}

type reviewJSON struct {
	OverallScore    int      `json:"overall_score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	Analysis        string   `json:"analysis"`
}

func (s *Server) handleSessionDetail(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	detail, err := s.sessions.SessionDetail(c.Request.Context(), currentUser(c), sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	questions := make([]questionJSON, 0, len(detail.Questions))
	for _, q := range detail.Questions {
		questions = append(questions, questionJSON{
			ID: q.ID, Order: q.Order, Text: q.Text, Type: q.Type, Difficulty: q.Difficulty,
		})
	}
	answers := make([]answerJSON, 0, len(detail.Answers))
	for _, a := range detail.Answers {
		answers = append(answers, answerJSON{
			ID:               a.ID,
			QuestionID:       a.QuestionID,
			Text:             a.Text,
			Score:            a.Score,
			Feedback:         a.Feedback,
			Strengths:        a.Strengths,
			Improvements:     a.Improvements,
			Method:           a.Method,
			TimeTakenSeconds: a.TimeTakenSeconds,
		})
	}

	resp := gin.H{
		"session":   toSessionJSON(detail.Session),
		"questions": questions,
		"answers":   answers,
	}
	if detail.Review != nil {
		resp["review"] = reviewJSON{
			OverallScore:    detail.Review.OverallScore,
			Strengths:       detail.Review.Strengths,
			Weaknesses:      detail.Review.Weaknesses,
			Recommendations: detail.Review.Recommendations,
			Analysis:        detail.Review.Analysis,
		}
	}
	c.JSON(http.StatusOK, resp)
}

type submitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
	Method string `json:"method" binding:"required,oneof=text voice"`
}

func (s *Server) handleSubmitAnswer(c *gin.Context) {
	orch, ok := s.activeForRequest(c)
	if !ok {
		return
	}

	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := orch.SubmitAnswer(c.Request.Context(), req.Answer, req.Method)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	s.writeStepResult(c, orch, result)
}

func (s *Server) handleSkipQuestion(c *gin.Context) {
	orch, ok := s.activeForRequest(c)
	if !ok {
		return
	}

	result, err := orch.SkipQuestion(c.Request.Context())
	if err != nil {
		writeWorkflowError(c, err)
		return
	}
	s.writeStepResult(c, orch, result)
}

// activeForRequest resolves the :id parameter to the caller's live
// orchestrator, writing the error response itself on failure.
func (s *Server) activeForRequest(c *gin.Context) (*orchestrator.Orchestrator, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}

	orch, ok := s.lookupActive(sessionID, currentUser(c))
	if !ok {
		// Unknown, finished, and foreign sessions all look the same.
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return nil, false
	}
	return orch, true
}

func (s *Server) writeStepResult(c *gin.Context, orch *orchestrator.Orchestrator, result *orchestrator.StepResult) {
	snap := orch.Snapshot()

	resp := gin.H{
		"evaluation": gin.H{
			"score":        result.Evaluation.Score,
			"feedback":     result.Evaluation.Feedback,
			"strengths":    result.Evaluation.Strengths,
			"improvements": result.Evaluation.Improvements,
		},
		"completed":     result.Completed,
		"current_index": snap.CurrentIndex,
	}

	if result.Completed {
		s.dropActive(snap.SessionID)
		resp["total_score"] = result.TotalScore
		if result.Review != nil {
			resp["review"] = reviewJSON{
				OverallScore:    result.Review.OverallScore,
				Strengths:       result.Review.Strengths,
				Weaknesses:      result.Review.Weaknesses,
				Recommendations: result.Review.Recommendations,
				Analysis:        result.Review.Analysis,
			}
		}
		if result.ReviewErr != nil {
			resp["review_error"] = "final review is unavailable; your answers and score are saved"
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleTranscribe(c *gin.Context) {
	header, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open audio file"})
		return
	}
	defer file.Close()

	text, err := s.transcriber.Transcribe(c.Request.Context(), file, header.Filename)
	if err != nil {
		writeWorkflowError(c, err)
		return
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "transcription produced no text, try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// writeWorkflowError maps workflow and AI errors to HTTP responses.
// AI failures are retryable from the client's point of view.
func writeWorkflowError(c *gin.Context, err error) {
	var (
		validationErr    *orchestrator.ValidationError
		phaseErr         *orchestrator.PhaseError
		generationErr    *interview.GenerationError
		evaluationErr    *interview.EvaluationError
		transcriptionErr *interview.TranscriptionError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.Is(err, orchestrator.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "another operation is in progress"})
	case errors.As(err, &phaseErr):
		c.JSON(http.StatusConflict, gin.H{"error": phaseErr.Error()})
	case errors.As(err, &generationErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "question generation failed, try again"})
	case errors.As(err, &evaluationErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "answer evaluation failed, try again"})
	case errors.As(err, &transcriptionErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "transcription failed, re-record or type your answer"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
