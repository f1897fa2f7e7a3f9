// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// BusyBlock is the predicate function for busyblock builders.
type BusyBlock func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// QuizEvent is the predicate function for quizevent builders.
type QuizEvent func(*sql.Selector)

// ReplanEvent is the predicate function for replanevent builders.
type ReplanEvent func(*sql.Selector)

// StudyTask is the predicate function for studytask builders.
type StudyTask func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
