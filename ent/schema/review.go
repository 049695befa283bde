package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Review is the end-of-session AI assessment. At most one per session.
type Review struct {
	ent.Schema
}

func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.Int("overall_score").
			Comment("0-100"),
		field.JSON("strengths", []string{}).
			Optional(),
		field.JSON("weaknesses", []string{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.Text("analysis").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
