// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyplanhq/studyplan/ent/masteryrecord"
)

// MasteryRecord is the model entity for the MasteryRecord schema.
type MasteryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Estimated mastery, 0-100
	Score float64 `json:"score,omitempty"`
	// Confidence interval width around the score
	Confidence float64 `json:"confidence,omitempty"`
	// improving, stable, declining or new
	Trend string `json:"trend,omitempty"`
	// PracticeCount holds the value of the "practice_count" field.
	PracticeCount int `json:"practice_count,omitempty"`
	// QuizCount holds the value of the "quiz_count" field.
	QuizCount int `json:"quiz_count,omitempty"`
	// LastPracticed holds the value of the "last_practiced" field.
	LastPracticed time.Time `json:"last_practiced,omitempty"`
	// NextReview holds the value of the "next_review" field.
	NextReview time.Time `json:"next_review,omitempty"`
	// Current spaced-repetition interval
	IntervalDays int `json:"interval_days,omitempty"`
	// Spaced-repetition easiness factor
	Easiness     float64 `json:"easiness,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldScore, masteryrecord.FieldConfidence, masteryrecord.FieldEasiness:
			values[i] = new(sql.NullFloat64)
		case masteryrecord.FieldID, masteryrecord.FieldPracticeCount, masteryrecord.FieldQuizCount, masteryrecord.FieldIntervalDays:
			values[i] = new(sql.NullInt64)
		case masteryrecord.FieldTopicID, masteryrecord.FieldTrend:
			values[i] = new(sql.NullString)
		case masteryrecord.FieldLastPracticed, masteryrecord.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryRecord fields.
func (_m *MasteryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryrecord.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case masteryrecord.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case masteryrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case masteryrecord.FieldTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trend", values[i])
			} else if value.Valid {
				_m.Trend = value.String
			}
		case masteryrecord.FieldPracticeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_count", values[i])
			} else if value.Valid {
				_m.PracticeCount = int(value.Int64)
			}
		case masteryrecord.FieldQuizCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_count", values[i])
			} else if value.Valid {
				_m.QuizCount = int(value.Int64)
			}
		case masteryrecord.FieldLastPracticed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced", values[i])
			} else if value.Valid {
				_m.LastPracticed = value.Time
			}
		case masteryrecord.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		case masteryrecord.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case masteryrecord.FieldEasiness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field easiness", values[i])
			} else if value.Valid {
				_m.Easiness = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryRecord.
// Note that you need to call MasteryRecord.Unwrap() before calling this method if this MasteryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryRecord) Update() *MasteryRecordUpdateOne {
	return NewMasteryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryRecord) Unwrap() *MasteryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("trend=")
	builder.WriteString(_m.Trend)
	builder.WriteString(", ")
	builder.WriteString("practice_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCount))
	builder.WriteString(", ")
	builder.WriteString("quiz_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizCount))
	builder.WriteString(", ")
	builder.WriteString("last_practiced=")
	builder.WriteString(_m.LastPracticed.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("easiness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Easiness))
	builder.WriteByte(')')
	return builder.String()
}

// MasteryRecords is a parsable slice of MasteryRecord.
type MasteryRecords []*MasteryRecord
