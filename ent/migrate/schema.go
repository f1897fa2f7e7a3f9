// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "exam"},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "topic_ids", Type: field.TypeJSON},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_assessment_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_course_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
			{
				Name:    "assessment_due_date",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[6]},
			},
		},
	}
	// BusyBlocksColumns holds the columns for the "busy_blocks" table.
	BusyBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "block_id", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "end_at", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString, Default: "manual"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BusyBlocksTable holds the schema information for the "busy_blocks" table.
	BusyBlocksTable = &schema.Table{
		Name:       "busy_blocks",
		Columns:    BusyBlocksColumns,
		PrimaryKey: []*schema.Column{BusyBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "busyblock_block_id",
				Unique:  false,
				Columns: []*schema.Column{BusyBlocksColumns[1]},
			},
			{
				Name:    "busyblock_start_at_end_at",
				Unique:  false,
				Columns: []*schema.Column{BusyBlocksColumns[3], BusyBlocksColumns[4]},
			},
		},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "code", Type: field.TypeString, Nullable: true},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_course_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[1]},
			},
			{
				Name:    "course_archived",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[4]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "trend", Type: field.TypeString, Default: "new"},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "quiz_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced", Type: field.TypeTime, Nullable: true},
		{Name: "next_review", Type: field.TypeTime, Nullable: true},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "easiness", Type: field.TypeFloat64, Default: 2.5},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_topic_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
			{
				Name:    "masteryrecord_next_review",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[8]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "is_exam", Type: field.TypeBool, Default: false},
		{Name: "alpha", Type: field.TypeFloat64},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
		},
	}
	// ReplanEventsColumns holds the columns for the "replan_events" table.
	ReplanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "trigger", Type: field.TypeString},
		{Name: "tasks_touched", Type: field.TypeInt, Default: 0},
		{Name: "notices", Type: field.TypeJSON, Nullable: true},
	}
	// ReplanEventsTable holds the schema information for the "replan_events" table.
	ReplanEventsTable = &schema.Table{
		Name:       "replan_events",
		Columns:    ReplanEventsColumns,
		PrimaryKey: []*schema.Column{ReplanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "replanevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReplanEventsColumns[1]},
			},
			{
				Name:    "replanevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReplanEventsColumns[2]},
			},
			{
				Name:    "replanevent_trigger",
				Unique:  false,
				Columns: []*schema.Column{ReplanEventsColumns[3]},
			},
		},
	}
	// StudyTasksColumns holds the columns for the "study_tasks" table.
	StudyTasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "topic_name", Type: field.TypeString, Default: ""},
		{Name: "course_id", Type: field.TypeString},
		{Name: "assessment_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString, Default: "practice"},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "priority", Type: field.TypeFloat64},
		{Name: "start_at", Type: field.TypeTime, Nullable: true},
		{Name: "end_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudyTasksTable holds the schema information for the "study_tasks" table.
	StudyTasksTable = &schema.Table{
		Name:       "study_tasks",
		Columns:    StudyTasksColumns,
		PrimaryKey: []*schema.Column{StudyTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studytask_task_id",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[1]},
			},
			{
				Name:    "studytask_status",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[13]},
			},
			{
				Name:    "studytask_start_at",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[11]},
			},
			{
				Name:    "studytask_topic_id",
				Unique:  false,
				Columns: []*schema.Column{StudyTasksColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[1]},
			},
			{
				Name:    "topic_course_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		BusyBlocksTable,
		CoursesTable,
		MasteryRecordsTable,
		QuizEventsTable,
		ReplanEventsTable,
		StudyTasksTable,
		TopicsTable,
	}
)

func init() {
}
