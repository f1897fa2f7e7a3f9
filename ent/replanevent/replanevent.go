// Code generated by ent, DO NOT EDIT.

package replanevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the replanevent type in the database.
	Label = "replan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldTasksTouched holds the string denoting the tasks_touched field in the database.
	FieldTasksTouched = "tasks_touched"
	// FieldNotices holds the string denoting the notices field in the database.
	FieldNotices = "notices"
	// Table holds the table name of the replanevent in the database.
	Table = "replan_events"
)

// Columns holds all SQL columns for replanevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTrigger,
	FieldTasksTouched,
	FieldNotices,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	TriggerValidator func(string) error
	// DefaultTasksTouched holds the default value on creation for the "tasks_touched" field.
	DefaultTasksTouched int
)

// OrderOption defines the ordering options for the ReplanEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByTasksTouched orders the results by the tasks_touched field.
func ByTasksTouched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksTouched, opts...).ToFunc()
}
