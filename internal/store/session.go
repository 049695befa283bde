package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nandita/prepwise/ent"
	"github.com/nandita/prepwise/ent/answer"
	"github.com/nandita/prepwise/ent/question"
	"github.com/nandita/prepwise/ent/review"
	"github.com/nandita/prepwise/ent/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) CreateSession(ctx context.Context, userID uuid.UUID, cfg SessionConfig) (*Session, error) {
	s, err := r.client.Session.Create().
		SetUserID(userID).
		SetInterviewType(cfg.InterviewType).
		SetJobDescription(cfg.JobDescription).
		SetExperienceLevel(cfg.ExperienceLevel).
		SetTargetRole(cfg.TargetRole).
		SetStatus(StatusCreated).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return mapSession(s), nil
}

func (r *sessionRepo) SaveQuestions(ctx context.Context, sessionID uuid.UUID, questions []QuestionData) ([]Question, error) {
	builders := make([]*ent.QuestionCreate, len(questions))
	for i, q := range questions {
		builders[i] = r.client.Question.Create().
			SetSessionID(sessionID).
			SetQuestionText(q.Text).
			SetQuestionType(q.Type).
			SetDifficulty(q.Difficulty).
			SetExpectedAnswer(q.ExpectedAnswer).
			SetQuestionOrder(i + 1)
	}

	created, err := r.client.Question.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save questions: %w", err)
	}

	n, err := r.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(StatusCreated)).
		SetStatus(StatusInProgress).
		SetTotalQuestions(len(questions)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark session in progress: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	out := make([]Question, len(created))
	for i, q := range created {
		out[i] = *mapQuestion(q)
	}
	return out, nil
}

func (r *sessionRepo) SaveAnswer(ctx context.Context, data AnswerData) (*Answer, error) {
	a, err := r.client.Answer.Create().
		SetQuestionID(data.QuestionID).
		SetSessionID(data.SessionID).
		SetUserAnswer(data.Text).
		SetScore(data.Score).
		SetFeedback(data.Feedback).
		SetStrengths(data.Strengths).
		SetImprovements(data.Improvements).
		SetAnswerMethod(data.Method).
		SetTimeTakenSeconds(data.TimeTakenSeconds).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}
	return mapAnswer(a), nil
}

func (r *sessionRepo) CompleteSession(ctx context.Context, sessionID uuid.UUID, totalScore, durationSeconds int) error {
	n, err := r.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(StatusInProgress)).
		SetStatus(StatusCompleted).
		SetTotalScore(totalScore).
		SetDurationSeconds(durationSeconds).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (r *sessionRepo) SaveReview(ctx context.Context, sessionID uuid.UUID, data ReviewData) (*Review, error) {
	rv, err := r.client.Review.Create().
		SetSessionID(sessionID).
		SetOverallScore(data.OverallScore).
		SetStrengths(data.Strengths).
		SetWeaknesses(data.Weaknesses).
		SetRecommendations(data.Recommendations).
		SetAnalysis(data.Analysis).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	return mapReview(rv), nil
}

func (r *sessionRepo) MarkReviewed(ctx context.Context, sessionID uuid.UUID) error {
	n, err := r.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(StatusCompleted)).
		SetStatus(StatusReviewed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark session reviewed: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (r *sessionRepo) ListSessions(ctx context.Context, userID uuid.UUID) ([]Session, error) {
	rows, err := r.client.Session.Query().
		Where(session.UserIDEQ(userID)).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]Session, len(rows))
	for i, s := range rows {
		out[i] = *mapSession(s)
	}
	return out, nil
}

func (r *sessionRepo) SessionDetail(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetail, error) {
	s, err := r.client.Session.Query().
		Where(session.IDEQ(sessionID), session.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	qs, err := r.client.Question.Query().
		Where(question.SessionIDEQ(sessionID)).
		Order(ent.Asc(question.FieldQuestionOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	as, err := r.client.Answer.Query().
		Where(answer.SessionIDEQ(sessionID)).
		Order(ent.Asc(answer.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	detail := &SessionDetail{Session: *mapSession(s)}
	for _, q := range qs {
		detail.Questions = append(detail.Questions, *mapQuestion(q))
	}
	for _, a := range as {
		detail.Answers = append(detail.Answers, *mapAnswer(a))
	}

	rv, err := r.client.Review.Query().
		Where(review.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query review: %w", err)
		}
	} else {
		detail.Review = mapReview(rv)
	}

	return detail, nil
}

func mapSession(s *ent.Session) *Session {
	return &Session{
		ID:              s.ID,
		UserID:          s.UserID,
		InterviewType:   s.InterviewType,
		JobDescription:  s.JobDescription,
		ExperienceLevel: s.ExperienceLevel,
		TargetRole:      s.TargetRole,
		Status:          s.Status,
		TotalScore:      s.TotalScore,
		TotalQuestions:  s.TotalQuestions,
		DurationSeconds: s.DurationSeconds,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		CompletedAt:     s.CompletedAt,
	}
}

func mapQuestion(q *ent.Question) *Question {
	return &Question{
		ID:             q.ID,
		SessionID:      q.SessionID,
		Text:           q.QuestionText,
		Type:           q.QuestionType,
		Difficulty:     q.Difficulty,
		ExpectedAnswer: q.ExpectedAnswer,
		Order:          q.QuestionOrder,
	}
}

func mapAnswer(a *ent.Answer) *Answer {
	return &Answer{
		ID:               a.ID,
		QuestionID:       a.QuestionID,
		SessionID:        a.SessionID,
		Text:             a.UserAnswer,
		Score:            a.Score,
		Feedback:         a.Feedback,
		Strengths:        a.Strengths,
		Improvements:     a.Improvements,
		Method:           a.AnswerMethod,
		TimeTakenSeconds: a.TimeTakenSeconds,
		CreatedAt:        a.CreatedAt,
	}
}

func mapReview(rv *ent.Review) *Review {
	return &Review{
		ID:              rv.ID,
		SessionID:       rv.SessionID,
		OverallScore:    rv.OverallScore,
		Strengths:       rv.Strengths,
		Weaknesses:      rv.Weaknesses,
		Recommendations: rv.Recommendations,
		Analysis:        rv.Analysis,
		CreatedAt:       rv.CreatedAt,
	}
}
