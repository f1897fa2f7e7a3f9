package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is a dated, weighted evaluation (exam, quiz, project)
// covering one or more topics. Due dates drive priority urgency.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Unique().
			NotEmpty(),
		field.String("course_id").NotEmpty(),
		field.String("title").NotEmpty(),
		field.String("kind").
			Default("exam").
			Comment("exam, quiz, project or homework"),
		field.Float("weight").
			Comment("Grade weight percentage, 0-100"),
		field.Time("due_date"),
		field.JSON("topic_ids", []string{}).
			Comment("Topics this assessment covers"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("course_id"),
		index.Fields("due_date"),
	}
}
