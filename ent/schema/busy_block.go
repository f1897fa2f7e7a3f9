package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BusyBlock is an interval the student is unavailable: a class, a
// calendar event, an appointment. Free-slot resolution subtracts these
// from the availability windows.
type BusyBlock struct {
	ent.Schema
}

func (BusyBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("block_id").
			Unique().
			NotEmpty(),
		field.String("label").Optional(),
		field.Time("start_at"),
		field.Time("end_at"),
		field.String("source").
			Default("manual").
			Comment("manual or calendar"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BusyBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("block_id"),
		index.Fields("start_at", "end_at"),
	}
}
