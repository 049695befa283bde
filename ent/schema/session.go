package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Session is one interview attempt. It is the aggregate root for
// questions, answers and the review.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable().
			Comment("Owning user"),
		field.String("interview_type").
			NotEmpty().
			Comment("technical, behavioral, hr, or group-discussion"),
		field.Text("job_description").
			Default(""),
		field.String("experience_level").
			NotEmpty().
			Comment("entry, mid, or senior"),
		field.String("target_role").
			NotEmpty(),
		field.String("status").
			Default("created").
			Comment("created, in_progress, completed, or reviewed; only moves forward"),
		field.Int("total_score").
			Optional().
			Nillable().
			Comment("0-100 aggregate, set once at completion"),
		field.Int("total_questions").
			Default(0),
		field.Int("duration_seconds").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "created_at"),
		index.Fields("status"),
	}
}
