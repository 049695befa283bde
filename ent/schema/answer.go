package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Answer is the user's response to one question, with its AI evaluation.
// Skipped questions get a zero-score placeholder row.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("question_id", uuid.UUID{}).
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Immutable(),
		field.Text("user_answer").
			NotEmpty(),
		field.Int("score").
			Optional().
			Nillable().
			Comment("0-100, nil until evaluated"),
		field.Text("feedback").
			Default(""),
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("improvements", []string{}).
			Optional(),
		field.String("answer_method").
			Default("text").
			Comment("text or voice"),
		field.Int("time_taken_seconds").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id").
			Unique(),
	}
}
