package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyTask is one block of scheduled work. Rows survive replans only
// in terminal or frozen states; pending and scheduled rows are rewritten
// wholesale by each regeneration.
type StudyTask struct {
	ent.Schema
}

func (StudyTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Unique().
			NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.String("topic_name").
			Default("").
			Comment("Denormalized for display without a topic lookup"),
		field.String("course_id").NotEmpty(),
		field.String("assessment_id").Optional(),
		field.String("title").NotEmpty(),
		field.String("task_type").
			Default("practice").
			Comment("practice, review or drill"),
		field.String("difficulty").
			Default("medium"),
		field.Int("duration_min"),
		field.Float("priority"),
		field.Time("start_at").Optional(),
		field.Time("end_at").Optional(),
		field.String("status").
			Default("pending").
			Comment("pending, scheduled, in_progress, completed or skipped"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StudyTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("status"),
		index.Fields("start_at"),
		index.Fields("topic_id"),
	}
}
