// Code generated by ent, DO NOT EDIT.

package replanevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studyplanhq/studyplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldTrigger, v))
}

// TasksTouched applies equality check predicate on the "tasks_touched" field. It's identical to TasksTouchedEQ.
func TasksTouched(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldTasksTouched, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// TasksTouchedEQ applies the EQ predicate on the "tasks_touched" field.
func TasksTouchedEQ(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldEQ(FieldTasksTouched, v))
}

// TasksTouchedNEQ applies the NEQ predicate on the "tasks_touched" field.
func TasksTouchedNEQ(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNEQ(FieldTasksTouched, v))
}

// TasksTouchedIn applies the In predicate on the "tasks_touched" field.
func TasksTouchedIn(vs ...int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldIn(FieldTasksTouched, vs...))
}

// TasksTouchedNotIn applies the NotIn predicate on the "tasks_touched" field.
func TasksTouchedNotIn(vs ...int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNotIn(FieldTasksTouched, vs...))
}

// TasksTouchedGT applies the GT predicate on the "tasks_touched" field.
func TasksTouchedGT(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGT(FieldTasksTouched, v))
}

// TasksTouchedGTE applies the GTE predicate on the "tasks_touched" field.
func TasksTouchedGTE(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldGTE(FieldTasksTouched, v))
}

// TasksTouchedLT applies the LT predicate on the "tasks_touched" field.
func TasksTouchedLT(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLT(FieldTasksTouched, v))
}

// TasksTouchedLTE applies the LTE predicate on the "tasks_touched" field.
func TasksTouchedLTE(v int) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldLTE(FieldTasksTouched, v))
}

// NoticesIsNil applies the IsNil predicate on the "notices" field.
func NoticesIsNil() predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldIsNull(FieldNotices))
}

// NoticesNotNil applies the NotNil predicate on the "notices" field.
func NoticesNotNil() predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.FieldNotNull(FieldNotices))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReplanEvent) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReplanEvent) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReplanEvent) predicate.ReplanEvent {
	return predicate.ReplanEvent(sql.NotPredicates(p))
}
