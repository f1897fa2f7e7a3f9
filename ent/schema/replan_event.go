package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReplanEvent is an audit record of one replanning run: what triggered
// it, how much of the schedule it touched, and any notices it raised.
type ReplanEvent struct {
	ent.Schema
}

func (ReplanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReplanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("trigger").NotEmpty(),
		field.Int("tasks_touched").Default(0),
		field.JSON("notices", []string{}).
			Optional().
			Comment("Human-readable warnings surfaced to the student"),
	}
}

func (ReplanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger"),
	}
}
