package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is the unit of mastery tracking and task generation.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			Unique().
			NotEmpty(),
		field.String("course_id").
			NotEmpty().
			Comment("Owning course"),
		field.String("name").NotEmpty(),
		field.Int("position").
			Default(0).
			Comment("Display order within the course"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("course_id"),
	}
}
