// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studyplanhq/studyplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTopicID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldConfidence, v))
}

// Trend applies equality check predicate on the "trend" field. It's identical to TrendEQ.
func Trend(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTrend, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldPracticeCount, v))
}

// QuizCount applies equality check predicate on the "quiz_count" field. It's identical to QuizCountEQ.
func QuizCount(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldQuizCount, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticed, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNextReview, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// Easiness applies equality check predicate on the "easiness" field. It's identical to EasinessEQ.
func Easiness(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldEasiness, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldTopicID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldScore, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldConfidence, v))
}

// TrendEQ applies the EQ predicate on the "trend" field.
func TrendEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTrend, v))
}

// TrendNEQ applies the NEQ predicate on the "trend" field.
func TrendNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldTrend, v))
}

// TrendIn applies the In predicate on the "trend" field.
func TrendIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldTrend, vs...))
}

// TrendNotIn applies the NotIn predicate on the "trend" field.
func TrendNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldTrend, vs...))
}

// TrendGT applies the GT predicate on the "trend" field.
func TrendGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldTrend, v))
}

// TrendGTE applies the GTE predicate on the "trend" field.
func TrendGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldTrend, v))
}

// TrendLT applies the LT predicate on the "trend" field.
func TrendLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldTrend, v))
}

// TrendLTE applies the LTE predicate on the "trend" field.
func TrendLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldTrend, v))
}

// TrendContains applies the Contains predicate on the "trend" field.
func TrendContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldTrend, v))
}

// TrendHasPrefix applies the HasPrefix predicate on the "trend" field.
func TrendHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldTrend, v))
}

// TrendHasSuffix applies the HasSuffix predicate on the "trend" field.
func TrendHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldTrend, v))
}

// TrendEqualFold applies the EqualFold predicate on the "trend" field.
func TrendEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldTrend, v))
}

// TrendContainsFold applies the ContainsFold predicate on the "trend" field.
func TrendContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldTrend, v))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldPracticeCount, v))
}

// QuizCountEQ applies the EQ predicate on the "quiz_count" field.
func QuizCountEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldQuizCount, v))
}

// QuizCountNEQ applies the NEQ predicate on the "quiz_count" field.
func QuizCountNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldQuizCount, v))
}

// QuizCountIn applies the In predicate on the "quiz_count" field.
func QuizCountIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldQuizCount, vs...))
}

// QuizCountNotIn applies the NotIn predicate on the "quiz_count" field.
func QuizCountNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldQuizCount, vs...))
}

// QuizCountGT applies the GT predicate on the "quiz_count" field.
func QuizCountGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldQuizCount, v))
}

// QuizCountGTE applies the GTE predicate on the "quiz_count" field.
func QuizCountGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldQuizCount, v))
}

// QuizCountLT applies the LT predicate on the "quiz_count" field.
func QuizCountLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldQuizCount, v))
}

// QuizCountLTE applies the LTE predicate on the "quiz_count" field.
func QuizCountLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldQuizCount, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastPracticed, v))
}

// LastPracticedIsNil applies the IsNil predicate on the "last_practiced" field.
func LastPracticedIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldLastPracticed))
}

// LastPracticedNotNil applies the NotNil predicate on the "last_practiced" field.
func LastPracticedNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldLastPracticed))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldNextReview, v))
}

// NextReviewIsNil applies the IsNil predicate on the "next_review" field.
func NextReviewIsNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIsNull(FieldNextReview))
}

// NextReviewNotNil applies the NotNil predicate on the "next_review" field.
func NextReviewNotNil() predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotNull(FieldNextReview))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldIntervalDays, v))
}

// EasinessEQ applies the EQ predicate on the "easiness" field.
func EasinessEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldEasiness, v))
}

// EasinessNEQ applies the NEQ predicate on the "easiness" field.
func EasinessNEQ(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldEasiness, v))
}

// EasinessIn applies the In predicate on the "easiness" field.
func EasinessIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldEasiness, vs...))
}

// EasinessNotIn applies the NotIn predicate on the "easiness" field.
func EasinessNotIn(vs ...float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldEasiness, vs...))
}

// EasinessGT applies the GT predicate on the "easiness" field.
func EasinessGT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldEasiness, v))
}

// EasinessGTE applies the GTE predicate on the "easiness" field.
func EasinessGTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldEasiness, v))
}

// EasinessLT applies the LT predicate on the "easiness" field.
func EasinessLT(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldEasiness, v))
}

// EasinessLTE applies the LTE predicate on the "easiness" field.
func EasinessLTE(v float64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldEasiness, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.NotPredicates(p))
}
