// Package server exposes the practice workflow over an HTTP API:
// registration and login, session lifecycle, answer submission, and
// audio transcription.
package server

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nandita/prepwise/internal/orchestrator"
	"github.com/nandita/prepwise/internal/store"
)

// Transcriber converts recorded audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// Config holds the server's own settings.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration

	// QuestionCount is the default questions per session when the
	// client does not ask for a specific number.
	QuestionCount int
}

// Server wires the HTTP API to the stores and AI gateways.
type Server struct {
	users       store.UserRepo
	sessions    store.SessionRepo
	generator   orchestrator.QuestionGenerator
	evaluator   orchestrator.AnswerEvaluator
	reviewer    orchestrator.SessionReviewer
	transcriber Transcriber
	tokens      *TokenIssuer
	cfg         Config

	mu     sync.Mutex
	active map[uuid.UUID]*activeSession
}

// activeSession is a live orchestrator owned by one user. Sessions are
// in-memory; a restart ends any in-flight interviews (their persisted
// records survive).
type activeSession struct {
	owner uuid.UUID
	orch  *orchestrator.Orchestrator
}

// New creates a Server.
func New(users store.UserRepo, sessions store.SessionRepo,
	gen orchestrator.QuestionGenerator, eval orchestrator.AnswerEvaluator, rev orchestrator.SessionReviewer,
	transcriber Transcriber, cfg Config) *Server {
	return &Server{
		users:       users,
		sessions:    sessions,
		generator:   gen,
		evaluator:   eval,
		reviewer:    rev,
		transcriber: transcriber,
		tokens:      NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		cfg:         cfg,
		active:      make(map[uuid.UUID]*activeSession),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	api := router.Group("/api/v1")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	authed := api.Group("", s.requireAuth)
	authed.POST("/sessions", s.handleCreateSession)
	authed.GET("/sessions", s.handleListSessions)
	authed.GET("/sessions/:id", s.handleSessionDetail)
	authed.POST("/sessions/:id/answers", s.handleSubmitAnswer)
	authed.POST("/sessions/:id/skip", s.handleSkipQuestion)
	authed.POST("/transcriptions", s.handleTranscribe)

	return router
}

// lookupActive returns the user's live orchestrator for a session.
func (s *Server) lookupActive(sessionID, userID uuid.UUID) (*orchestrator.Orchestrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.active[sessionID]
	if !ok || entry.owner != userID {
		return nil, false
	}
	return entry.orch, true
}

func (s *Server) trackActive(sessionID, userID uuid.UUID, orch *orchestrator.Orchestrator) {
	s.mu.Lock()
	s.active[sessionID] = &activeSession{owner: userID, orch: orch}
	s.mu.Unlock()
}

func (s *Server) dropActive(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.active, sessionID)
	s.mu.Unlock()
}
