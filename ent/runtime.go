// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studyplanhq/studyplan/ent/assessment"
	"github.com/studyplanhq/studyplan/ent/busyblock"
	"github.com/studyplanhq/studyplan/ent/course"
	"github.com/studyplanhq/studyplan/ent/masteryrecord"
	"github.com/studyplanhq/studyplan/ent/quizevent"
	"github.com/studyplanhq/studyplan/ent/replanevent"
	"github.com/studyplanhq/studyplan/ent/schema"
	"github.com/studyplanhq/studyplan/ent/studytask"
	"github.com/studyplanhq/studyplan/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentDescAssessmentID := assessmentFields[0].Descriptor()
	// assessment.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessment.AssessmentIDValidator = assessmentDescAssessmentID.Validators[0].(func(string) error)
	// assessmentDescCourseID is the schema descriptor for course_id field.
	assessmentDescCourseID := assessmentFields[1].Descriptor()
	// assessment.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	assessment.CourseIDValidator = assessmentDescCourseID.Validators[0].(func(string) error)
	// assessmentDescTitle is the schema descriptor for title field.
	assessmentDescTitle := assessmentFields[2].Descriptor()
	// assessment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assessment.TitleValidator = assessmentDescTitle.Validators[0].(func(string) error)
	// assessmentDescKind is the schema descriptor for kind field.
	assessmentDescKind := assessmentFields[3].Descriptor()
	// assessment.DefaultKind holds the default value on creation for the kind field.
	assessment.DefaultKind = assessmentDescKind.Default.(string)
	busyblockFields := schema.BusyBlock{}.Fields()
	_ = busyblockFields
	// busyblockDescBlockID is the schema descriptor for block_id field.
	busyblockDescBlockID := busyblockFields[0].Descriptor()
	// busyblock.BlockIDValidator is a validator for the "block_id" field. It is called by the builders before save.
	busyblock.BlockIDValidator = busyblockDescBlockID.Validators[0].(func(string) error)
	// busyblockDescSource is the schema descriptor for source field.
	busyblockDescSource := busyblockFields[4].Descriptor()
	// busyblock.DefaultSource holds the default value on creation for the source field.
	busyblock.DefaultSource = busyblockDescSource.Default.(string)
	// busyblockDescCreatedAt is the schema descriptor for created_at field.
	busyblockDescCreatedAt := busyblockFields[5].Descriptor()
	// busyblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	busyblock.DefaultCreatedAt = busyblockDescCreatedAt.Default.(func() time.Time)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescCourseID is the schema descriptor for course_id field.
	courseDescCourseID := courseFields[0].Descriptor()
	// course.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	course.CourseIDValidator = courseDescCourseID.Validators[0].(func(string) error)
	// courseDescName is the schema descriptor for name field.
	courseDescName := courseFields[1].Descriptor()
	// course.NameValidator is a validator for the "name" field. It is called by the builders before save.
	course.NameValidator = courseDescName.Validators[0].(func(string) error)
	// courseDescArchived is the schema descriptor for archived field.
	courseDescArchived := courseFields[3].Descriptor()
	// course.DefaultArchived holds the default value on creation for the archived field.
	course.DefaultArchived = courseDescArchived.Default.(bool)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[4].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescTopicID is the schema descriptor for topic_id field.
	masteryrecordDescTopicID := masteryrecordFields[0].Descriptor()
	// masteryrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	masteryrecord.TopicIDValidator = masteryrecordDescTopicID.Validators[0].(func(string) error)
	// masteryrecordDescTrend is the schema descriptor for trend field.
	masteryrecordDescTrend := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultTrend holds the default value on creation for the trend field.
	masteryrecord.DefaultTrend = masteryrecordDescTrend.Default.(string)
	// masteryrecordDescPracticeCount is the schema descriptor for practice_count field.
	masteryrecordDescPracticeCount := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultPracticeCount holds the default value on creation for the practice_count field.
	masteryrecord.DefaultPracticeCount = masteryrecordDescPracticeCount.Default.(int)
	// masteryrecordDescQuizCount is the schema descriptor for quiz_count field.
	masteryrecordDescQuizCount := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultQuizCount holds the default value on creation for the quiz_count field.
	masteryrecord.DefaultQuizCount = masteryrecordDescQuizCount.Default.(int)
	// masteryrecordDescIntervalDays is the schema descriptor for interval_days field.
	masteryrecordDescIntervalDays := masteryrecordFields[8].Descriptor()
	// masteryrecord.DefaultIntervalDays holds the default value on creation for the interval_days field.
	masteryrecord.DefaultIntervalDays = masteryrecordDescIntervalDays.Default.(int)
	// masteryrecordDescEasiness is the schema descriptor for easiness field.
	masteryrecordDescEasiness := masteryrecordFields[9].Descriptor()
	// masteryrecord.DefaultEasiness holds the default value on creation for the easiness field.
	masteryrecord.DefaultEasiness = masteryrecordDescEasiness.Default.(float64)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescTopicID is the schema descriptor for topic_id field.
	quizeventDescTopicID := quizeventFields[0].Descriptor()
	// quizevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	quizevent.TopicIDValidator = quizeventDescTopicID.Validators[0].(func(string) error)
	// quizeventDescQuestionCount is the schema descriptor for question_count field.
	quizeventDescQuestionCount := quizeventFields[2].Descriptor()
	// quizevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	quizevent.DefaultQuestionCount = quizeventDescQuestionCount.Default.(int)
	// quizeventDescIsExam is the schema descriptor for is_exam field.
	quizeventDescIsExam := quizeventFields[3].Descriptor()
	// quizevent.DefaultIsExam holds the default value on creation for the is_exam field.
	quizevent.DefaultIsExam = quizeventDescIsExam.Default.(bool)
	replaneventMixin := schema.ReplanEvent{}.Mixin()
	replaneventMixinFields0 := replaneventMixin[0].Fields()
	_ = replaneventMixinFields0
	replaneventFields := schema.ReplanEvent{}.Fields()
	_ = replaneventFields
	// replaneventDescTimestamp is the schema descriptor for timestamp field.
	replaneventDescTimestamp := replaneventMixinFields0[1].Descriptor()
	// replanevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	replanevent.DefaultTimestamp = replaneventDescTimestamp.Default.(func() time.Time)
	// replaneventDescTrigger is the schema descriptor for trigger field.
	replaneventDescTrigger := replaneventFields[0].Descriptor()
	// replanevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	replanevent.TriggerValidator = replaneventDescTrigger.Validators[0].(func(string) error)
	// replaneventDescTasksTouched is the schema descriptor for tasks_touched field.
	replaneventDescTasksTouched := replaneventFields[1].Descriptor()
	// replanevent.DefaultTasksTouched holds the default value on creation for the tasks_touched field.
	replanevent.DefaultTasksTouched = replaneventDescTasksTouched.Default.(int)
	studytaskFields := schema.StudyTask{}.Fields()
	_ = studytaskFields
	// studytaskDescTaskID is the schema descriptor for task_id field.
	studytaskDescTaskID := studytaskFields[0].Descriptor()
	// studytask.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	studytask.TaskIDValidator = studytaskDescTaskID.Validators[0].(func(string) error)
	// studytaskDescTopicID is the schema descriptor for topic_id field.
	studytaskDescTopicID := studytaskFields[1].Descriptor()
	// studytask.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	studytask.TopicIDValidator = studytaskDescTopicID.Validators[0].(func(string) error)
	// studytaskDescTopicName is the schema descriptor for topic_name field.
	studytaskDescTopicName := studytaskFields[2].Descriptor()
	// studytask.DefaultTopicName holds the default value on creation for the topic_name field.
	studytask.DefaultTopicName = studytaskDescTopicName.Default.(string)
	// studytaskDescCourseID is the schema descriptor for course_id field.
	studytaskDescCourseID := studytaskFields[3].Descriptor()
	// studytask.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	studytask.CourseIDValidator = studytaskDescCourseID.Validators[0].(func(string) error)
	// studytaskDescTitle is the schema descriptor for title field.
	studytaskDescTitle := studytaskFields[5].Descriptor()
	// studytask.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	studytask.TitleValidator = studytaskDescTitle.Validators[0].(func(string) error)
	// studytaskDescTaskType is the schema descriptor for task_type field.
	studytaskDescTaskType := studytaskFields[6].Descriptor()
	// studytask.DefaultTaskType holds the default value on creation for the task_type field.
	studytask.DefaultTaskType = studytaskDescTaskType.Default.(string)
	// studytaskDescDifficulty is the schema descriptor for difficulty field.
	studytaskDescDifficulty := studytaskFields[7].Descriptor()
	// studytask.DefaultDifficulty holds the default value on creation for the difficulty field.
	studytask.DefaultDifficulty = studytaskDescDifficulty.Default.(string)
	// studytaskDescStatus is the schema descriptor for status field.
	studytaskDescStatus := studytaskFields[12].Descriptor()
	// studytask.DefaultStatus holds the default value on creation for the status field.
	studytask.DefaultStatus = studytaskDescStatus.Default.(string)
	// studytaskDescUpdatedAt is the schema descriptor for updated_at field.
	studytaskDescUpdatedAt := studytaskFields[13].Descriptor()
	// studytask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studytask.DefaultUpdatedAt = studytaskDescUpdatedAt.Default.(func() time.Time)
	// studytask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studytask.UpdateDefaultUpdatedAt = studytaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTopicID is the schema descriptor for topic_id field.
	topicDescTopicID := topicFields[0].Descriptor()
	// topic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topic.TopicIDValidator = topicDescTopicID.Validators[0].(func(string) error)
	// topicDescCourseID is the schema descriptor for course_id field.
	topicDescCourseID := topicFields[1].Descriptor()
	// topic.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	topic.CourseIDValidator = topicDescCourseID.Validators[0].(func(string) error)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescPosition is the schema descriptor for position field.
	topicDescPosition := topicFields[3].Descriptor()
	// topic.DefaultPosition holds the default value on creation for the position field.
	topic.DefaultPosition = topicDescPosition.Default.(int)
}
