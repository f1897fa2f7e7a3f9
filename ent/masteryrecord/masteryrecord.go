// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldTrend holds the string denoting the trend field in the database.
	FieldTrend = "trend"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldQuizCount holds the string denoting the quiz_count field in the database.
	FieldQuizCount = "quiz_count"
	// FieldLastPracticed holds the string denoting the last_practiced field in the database.
	FieldLastPracticed = "last_practiced"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldEasiness holds the string denoting the easiness field in the database.
	FieldEasiness = "easiness"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldScore,
	FieldConfidence,
	FieldTrend,
	FieldPracticeCount,
	FieldQuizCount,
	FieldLastPracticed,
	FieldNextReview,
	FieldIntervalDays,
	FieldEasiness,
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
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultTrend holds the default value on creation for the "trend" field.
	DefaultTrend string
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// DefaultQuizCount holds the default value on creation for the "quiz_count" field.
	DefaultQuizCount int
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultEasiness holds the default value on creation for the "easiness" field.
	DefaultEasiness float64
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByTrend orders the results by the trend field.
func ByTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrend, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByQuizCount orders the results by the quiz_count field.
func ByQuizCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizCount, opts...).ToFunc()
}

// ByLastPracticed orders the results by the last_practiced field.
func ByLastPracticed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticed, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByEasiness orders the results by the easiness field.
func ByEasiness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasiness, opts...).ToFunc()
}
