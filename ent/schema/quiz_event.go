package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one graded result feeding the mastery estimator.
// Mastery records hold only the current state; this log is the history
// behind trend detection and stats.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").NotEmpty(),
		field.Float("score").
			Comment("Percentage score, 0-100"),
		field.Int("question_count").Default(0),
		field.Bool("is_exam").Default(false),
		field.Float("alpha").
			Comment("EWMA learning rate applied for this result"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
