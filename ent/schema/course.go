package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is a unit of enrollment that topics and assessments hang off.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			NotEmpty().
			Comment("UUID referenced by topics and assessments"),
		field.String("name").NotEmpty(),
		field.String("code").
			Optional().
			Comment("Short course code, e.g. MATH201"),
		field.Bool("archived").
			Default(false).
			Comment("Archived courses are excluded from planning"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("archived"),
	}
}
