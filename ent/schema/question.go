package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Question is one generated interview question. Immutable once created.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Immutable(),
		field.Text("question_text").
			NotEmpty().
			Immutable(),
		field.String("question_type").
			NotEmpty().
			Immutable().
			Comment("behavioral, technical, situational, ..."),
		field.String("difficulty").
			NotEmpty().
			Immutable().
			Comment("easy, medium, or hard"),
		field.Text("expected_answer").
			NotEmpty().
			Immutable().
			Comment("Model answer used for evaluation; never sent to the client"),
		field.Int("question_order").
			Immutable().
			Comment("1-based position within the session, contiguous"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "question_order").
			Unique(),
	}
}
