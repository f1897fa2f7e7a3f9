package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the current mastery state for one topic. One row per
// topic, rewritten on every practice or quiz update; the QuizEvent log
// keeps the history.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			Unique().
			NotEmpty(),
		field.Float("score").
			Comment("Estimated mastery, 0-100"),
		field.Float("confidence").
			Comment("Confidence interval width around the score"),
		field.String("trend").
			Default("new").
			Comment("improving, stable, declining or new"),
		field.Int("practice_count").Default(0),
		field.Int("quiz_count").Default(0),
		field.Time("last_practiced").Optional(),
		field.Time("next_review").Optional(),
		field.Int("interval_days").
			Default(0).
			Comment("Current spaced-repetition interval"),
		field.Float("easiness").
			Default(2.5).
			Comment("Spaced-repetition easiness factor"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("next_review"),
	}
}
