// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyplanhq/studyplan/ent/replanevent"
)

// ReplanEvent is the model entity for the ReplanEvent schema.
type ReplanEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event order, shared across logs
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger string `json:"trigger,omitempty"`
	// TasksTouched holds the value of the "tasks_touched" field.
	TasksTouched int `json:"tasks_touched,omitempty"`
	// Human-readable warnings surfaced to the student
	Notices      []string `json:"notices,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReplanEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case replanevent.FieldNotices:
			values[i] = new([]byte)
		case replanevent.FieldID, replanevent.FieldSequence, replanevent.FieldTasksTouched:
			values[i] = new(sql.NullInt64)
		case replanevent.FieldTrigger:
			values[i] = new(sql.NullString)
		case replanevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReplanEvent fields.
func (_m *ReplanEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case replanevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case replanevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case replanevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case replanevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case replanevent.FieldTasksTouched:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_touched", values[i])
			} else if value.Valid {
				_m.TasksTouched = int(value.Int64)
			}
		case replanevent.FieldNotices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notices", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Notices); err != nil {
					return fmt.Errorf("unmarshal field notices: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReplanEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReplanEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReplanEvent.
// Note that you need to call ReplanEvent.Unwrap() before calling this method if this ReplanEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReplanEvent) Update() *ReplanEventUpdateOne {
	return NewReplanEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReplanEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReplanEvent) Unwrap() *ReplanEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReplanEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReplanEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReplanEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("tasks_touched=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksTouched))
	builder.WriteString(", ")
	builder.WriteString("notices=")
	builder.WriteString(fmt.Sprintf("%v", _m.Notices))
	builder.WriteByte(')')
	return builder.String()
}

// ReplanEvents is a parsable slice of ReplanEvent.
type ReplanEvents []*ReplanEvent
