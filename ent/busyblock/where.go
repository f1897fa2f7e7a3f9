// Code generated by ent, DO NOT EDIT.

package busyblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studyplanhq/studyplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldID, id))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldBlockID, v))
}

// StartAt applies equality check predicate on the "start_at" field. It's identical to StartAtEQ.
func StartAt(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldStartAt, v))
}

// EndAt applies equality check predicate on the "end_at" field. It's identical to EndAtEQ.
func EndAt(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldEndAt, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldBlockID, vs...))
}

// BlockIDGT applies the GT predicate on the "block_id" field.
func BlockIDGT(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldBlockID, v))
}

// BlockIDGTE applies the GTE predicate on the "block_id" field.
func BlockIDGTE(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldBlockID, v))
}

// BlockIDLT applies the LT predicate on the "block_id" field.
func BlockIDLT(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldBlockID, v))
}

// BlockIDLTE applies the LTE predicate on the "block_id" field.
func BlockIDLTE(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldBlockID, v))
}

// BlockIDContains applies the Contains predicate on the "block_id" field.
func BlockIDContains(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldContains(FieldBlockID, v))
}

// BlockIDHasPrefix applies the HasPrefix predicate on the "block_id" field.
func BlockIDHasPrefix(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldHasPrefix(FieldBlockID, v))
}

// BlockIDHasSuffix applies the HasSuffix predicate on the "block_id" field.
func BlockIDHasSuffix(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldHasSuffix(FieldBlockID, v))
}

// BlockIDEqualFold applies the EqualFold predicate on the "block_id" field.
func BlockIDEqualFold(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEqualFold(FieldBlockID, v))
}

// BlockIDContainsFold applies the ContainsFold predicate on the "block_id" field.
func BlockIDContainsFold(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldContainsFold(FieldBlockID, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelIsNil applies the IsNil predicate on the "label" field.
func LabelIsNil() predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIsNull(FieldLabel))
}

// LabelNotNil applies the NotNil predicate on the "label" field.
func LabelNotNil() predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotNull(FieldLabel))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldContainsFold(FieldLabel, v))
}

// StartAtEQ applies the EQ predicate on the "start_at" field.
func StartAtEQ(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldStartAt, v))
}

// StartAtNEQ applies the NEQ predicate on the "start_at" field.
func StartAtNEQ(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldStartAt, v))
}

// StartAtIn applies the In predicate on the "start_at" field.
func StartAtIn(vs ...time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldStartAt, vs...))
}

// StartAtNotIn applies the NotIn predicate on the "start_at" field.
func StartAtNotIn(vs ...time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldStartAt, vs...))
}

// StartAtGT applies the GT predicate on the "start_at" field.
func StartAtGT(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldStartAt, v))
}

// StartAtGTE applies the GTE predicate on the "start_at" field.
func StartAtGTE(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldStartAt, v))
}

// StartAtLT applies the LT predicate on the "start_at" field.
func StartAtLT(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldStartAt, v))
}

// StartAtLTE applies the LTE predicate on the "start_at" field.
func StartAtLTE(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldStartAt, v))
}

// EndAtEQ applies the EQ predicate on the "end_at" field.
func EndAtEQ(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldEndAt, v))
}

// EndAtNEQ applies the NEQ predicate on the "end_at" field.
func EndAtNEQ(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldEndAt, v))
}

// EndAtIn applies the In predicate on the "end_at" field.
func EndAtIn(vs ...time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldEndAt, vs...))
}

// EndAtNotIn applies the NotIn predicate on the "end_at" field.
func EndAtNotIn(vs ...time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldEndAt, vs...))
}

// EndAtGT applies the GT predicate on the "end_at" field.
func EndAtGT(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldEndAt, v))
}

// EndAtGTE applies the GTE predicate on the "end_at" field.
func EndAtGTE(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldEndAt, v))
}

// EndAtLT applies the LT predicate on the "end_at" field.
func EndAtLT(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldEndAt, v))
}

// EndAtLTE applies the LTE predicate on the "end_at" field.
func EndAtLTE(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldEndAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldContainsFold(FieldSource, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BusyBlock {
	return predicate.BusyBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusyBlock) predicate.BusyBlock {
	return predicate.BusyBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusyBlock) predicate.BusyBlock {
	return predicate.BusyBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusyBlock) predicate.BusyBlock {
	return predicate.BusyBlock(sql.NotPredicates(p))
}
