package planner

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/studyplanhq/studyplan/internal/config"
	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/replan"
	"github.com/studyplanhq/studyplan/internal/schedule"
	"github.com/studyplanhq/studyplan/internal/store"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

// memData is shared in-memory backing state for the repo mocks.
type memData struct {
	topics      []store.Topic
	assessments []store.Assessment
	states      map[string]mastery.State
	tasks       map[string]schedule.Task
	busy        []store.BusyBlock
	quizzes     []store.QuizResult
	replans     []store.ReplanRecord
}

func newMemData() *memData {
	return &memData{
		states: make(map[string]mastery.State),
		tasks:  make(map[string]schedule.Task),
	}
}

func (d *memData) repos() Repos {
	return Repos{
		Courses:     &memCourses{},
		Topics:      &memTopics{d: d},
		Assessments: &memAssessments{d: d},
		Mastery:     &memMastery{d: d},
		Tasks:       &memTasks{d: d},
		Busy:        &memBusy{d: d},
		Events:      &memEvents{d: d},
	}
}

type memCourses struct{}

func (m *memCourses) Create(ctx context.Context, c store.Course) error { return nil }
func (m *memCourses) Get(ctx context.Context, id string) (*store.Course, error) {
	return nil, nil
}
func (m *memCourses) List(ctx context.Context) ([]store.Course, error) { return nil, nil }
func (m *memCourses) Archive(ctx context.Context, id string) error     { return nil }

type memTopics struct{ d *memData }

func (m *memTopics) Create(ctx context.Context, t store.Topic) error {
	m.d.topics = append(m.d.topics, t)
	return nil
}
func (m *memTopics) Get(ctx context.Context, id string) (*store.Topic, error) {
	for _, t := range m.d.topics {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}
func (m *memTopics) ListByCourse(ctx context.Context, courseID string) ([]store.Topic, error) {
	var out []store.Topic
	for _, t := range m.d.topics {
		if t.CourseID == courseID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (m *memTopics) List(ctx context.Context) ([]store.Topic, error) {
	return append([]store.Topic(nil), m.d.topics...), nil
}

type memAssessments struct{ d *memData }

func (m *memAssessments) Create(ctx context.Context, a store.Assessment) error {
	m.d.assessments = append(m.d.assessments, a)
	return nil
}
func (m *memAssessments) Get(ctx context.Context, id string) (*store.Assessment, error) {
	for _, a := range m.d.assessments {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}
func (m *memAssessments) Upcoming(ctx context.Context, now time.Time) ([]store.Assessment, error) {
	var out []store.Assessment
	for _, a := range m.d.assessments {
		if !a.DueDate.Before(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}
func (m *memAssessments) SetDueDate(ctx context.Context, id string, due time.Time) error {
	for i := range m.d.assessments {
		if m.d.assessments[i].ID == id {
			m.d.assessments[i].DueDate = due
			return nil
		}
	}
	return errors.New("not found")
}

type memMastery struct{ d *memData }

func (m *memMastery) Get(ctx context.Context, topicID string) (*mastery.State, error) {
	if st, ok := m.d.states[topicID]; ok {
		return &st, nil
	}
	return nil, nil
}
func (m *memMastery) Put(ctx context.Context, st mastery.State) error {
	m.d.states[st.TopicID] = st
	return nil
}
func (m *memMastery) All(ctx context.Context) (map[string]mastery.State, error) {
	out := make(map[string]mastery.State, len(m.d.states))
	for k, v := range m.d.states {
		out[k] = v
	}
	return out, nil
}

type memTasks struct{ d *memData }

func (m *memTasks) Upsert(ctx context.Context, t schedule.Task) error {
	m.d.tasks[t.ID] = t
	return nil
}
func (m *memTasks) Get(ctx context.Context, id string) (*schedule.Task, error) {
	if t, ok := m.d.tasks[id]; ok {
		return &t, nil
	}
	return nil, nil
}
func (m *memTasks) All(ctx context.Context) ([]schedule.Task, error) {
	out := make([]schedule.Task, 0, len(m.d.tasks))
	for _, t := range m.d.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (m *memTasks) Between(ctx context.Context, from, to time.Time) ([]schedule.Task, error) {
	var out []schedule.Task
	for _, t := range m.d.tasks {
		if !t.Start.Before(from) && t.Start.Before(to) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
func (m *memTasks) ReplaceActive(ctx context.Context, tasks []schedule.Task) error {
	for id, t := range m.d.tasks {
		if t.Status == schedule.StatusPending || t.Status == schedule.StatusScheduled {
			delete(m.d.tasks, id)
		}
	}
	for _, t := range tasks {
		if t.Status == schedule.StatusPending || t.Status == schedule.StatusScheduled {
			m.d.tasks[t.ID] = t
		}
	}
	return nil
}
func (m *memTasks) SetStatus(ctx context.Context, id string, status schedule.Status) error {
	t, ok := m.d.tasks[id]
	if !ok {
		return errors.New("not found")
	}
	if err := t.Transition(status); err != nil {
		return err
	}
	m.d.tasks[id] = t
	return nil
}

type memBusy struct{ d *memData }

func (m *memBusy) Add(ctx context.Context, b store.BusyBlock) error {
	m.d.busy = append(m.d.busy, b)
	return nil
}
func (m *memBusy) Remove(ctx context.Context, id string) error { return nil }
func (m *memBusy) Between(ctx context.Context, from, to time.Time) ([]store.BusyBlock, error) {
	var out []store.BusyBlock
	for _, b := range m.d.busy {
		if b.Interval.End.After(from) && b.Interval.Start.Before(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

type memEvents struct{ d *memData }

func (m *memEvents) AppendQuiz(ctx context.Context, q store.QuizResult) error {
	m.d.quizzes = append(m.d.quizzes, q)
	return nil
}
func (m *memEvents) AppendReplan(ctx context.Context, r store.ReplanRecord) error {
	m.d.replans = append(m.d.replans, r)
	return nil
}
func (m *memEvents) RecentQuizzes(ctx context.Context, topicID string, n int) ([]store.QuizResult, error) {
	return nil, nil
}

func newTestService(d *memData) *Service {
	return New(d.repos(), config.Default(), WithClock(func() time.Time {
		return monday.Add(8 * time.Hour)
	}))
}

func seedTopic(d *memData, id, name string) {
	d.topics = append(d.topics, store.Topic{ID: id, CourseID: "c1", Name: name})
}

func TestUpdateMasteryFirstResultInitializes(t *testing.T) {
	d := newMemData()
	seedTopic(d, "t1", "Limits")
	s := newTestService(d)
	ctx := context.Background()

	st, err := s.UpdateMastery(ctx, "t1", QuizInput{Score: 70, QuestionCount: 4})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if st.Score != 70 {
		t.Errorf("score = %v, want 70", st.Score)
	}
	if st.Confidence != 10 { // 20/sqrt(4)
		t.Errorf("confidence = %v, want 10", st.Confidence)
	}
	if st.Trend != mastery.TrendNew {
		t.Errorf("trend = %s, want new", st.Trend)
	}
	if _, ok := d.states["t1"]; !ok {
		t.Error("state not persisted")
	}
	if len(d.quizzes) != 1 || d.quizzes[0].Alpha != mastery.AlphaDiagnostic {
		t.Errorf("quiz log = %+v, want one entry at diagnostic alpha", d.quizzes)
	}
}

func TestUpdateMasteryAlphaPolicy(t *testing.T) {
	tests := []struct {
		name string
		in   QuizInput
		want float64
	}{
		{"exam", QuizInput{Score: 80, QuestionCount: 20, IsExam: true}, mastery.AlphaExam},
		{"small attempt", QuizInput{Score: 80, QuestionCount: 3}, mastery.AlphaSmallAttempt},
		{"regular quiz", QuizInput{Score: 80, QuestionCount: 10}, mastery.AlphaQuiz},
		{"forced diagnostic", QuizInput{Score: 80, QuestionCount: 10, Diagnostic: true}, mastery.AlphaDiagnostic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newMemData()
			seedTopic(d, "t1", "Limits")
			d.states["t1"] = mastery.State{
				TopicID: "t1", Score: 50, Confidence: 10,
				Trend: mastery.TrendStable, QuizCount: 2,
				LastPracticed: monday.AddDate(0, 0, -2),
				Easiness:      mastery.InitialEasiness,
			}
			s := newTestService(d)

			if _, err := s.UpdateMastery(context.Background(), "t1", tt.in); err != nil {
				t.Fatalf("update: %v", err)
			}
			if got := d.quizzes[0].Alpha; got != tt.want {
				t.Errorf("alpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateMasteryUnknownTopic(t *testing.T) {
	s := newTestService(newMemData())
	_, err := s.UpdateMastery(context.Background(), "nope", QuizInput{Score: 50, QuestionCount: 5})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRankTopicsUsesSoonestAssessment(t *testing.T) {
	d := newMemData()
	seedTopic(d, "t1", "Limits")
	now := monday.Add(8 * time.Hour)
	d.assessments = append(d.assessments,
		store.Assessment{ID: "final", CourseID: "c1", Title: "Final", Weight: 40,
			DueDate: now.AddDate(0, 0, 30), TopicIDs: []string{"t1"}},
		store.Assessment{ID: "midterm", CourseID: "c1", Title: "Midterm", Weight: 30,
			DueDate: now.AddDate(0, 0, 4), TopicIDs: []string{"t1"}},
	)
	s := newTestService(d)

	items, err := s.RankTopics(context.Background(), 7)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].AssessmentID != "midterm" {
		t.Errorf("assessment = %s, want the sooner midterm", items[0].AssessmentID)
	}
	if items[0].Weight != 30 {
		t.Errorf("weight = %v, want 30", items[0].Weight)
	}
}

func TestRankTopicsUntestedTopicIsUrgent(t *testing.T) {
	d := newMemData()
	seedTopic(d, "tested", "Limits")
	seedTopic(d, "untested", "Series")
	d.states["tested"] = mastery.State{
		TopicID: "tested", Score: 90, Confidence: 5,
		Trend: mastery.TrendStable, LastPracticed: monday,
	}
	s := newTestService(d)

	items, err := s.RankTopics(context.Background(), 7)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if items[0].TopicID != "untested" {
		t.Errorf("top item = %s, want the untested topic", items[0].TopicID)
	}
	if items[0].Difficulty != "easy" {
		t.Errorf("difficulty = %s, want easy for zero mastery", items[0].Difficulty)
	}
}

func TestGenerateScheduleSynthesizesReviews(t *testing.T) {
	d := newMemData()
	seedTopic(d, "t1", "Limits")
	now := monday.Add(8 * time.Hour)
	d.assessments = append(d.assessments, store.Assessment{
		ID: "midterm", CourseID: "c1", Title: "Midterm", Kind: "exam", Weight: 30,
		DueDate: now.AddDate(0, 0, 3), TopicIDs: []string{"t1"},
	})
	s := newTestService(d)

	plan, err := s.GenerateSchedule(context.Background(), now, now.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var review *schedule.Task
	for i, task := range plan.Tasks {
		if task.Type == schedule.TaskReview {
			review = &plan.Tasks[i]
		}
	}
	if review == nil {
		t.Fatal("no review task for the upcoming assessment")
	}
	if review.Title != "Review: Midterm" {
		t.Errorf("title = %q", review.Title)
	}
	if review.DurationMin != ReviewDurationMin {
		t.Errorf("duration = %d, want %d", review.DurationMin, ReviewDurationMin)
	}
	want := ReviewBasePriority - 3.0/ReviewDecayDays
	if review.Priority != want {
		t.Errorf("priority = %v, want %v", review.Priority, want)
	}

	if len(plan.Days) == 0 || plan.TotalHours <= 0 {
		t.Errorf("breakdown missing: days=%d hours=%v", len(plan.Days), plan.TotalHours)
	}
	for _, task := range plan.Tasks {
		if stored, ok := d.tasks[task.ID]; !ok || stored.Status != schedule.StatusScheduled {
			t.Errorf("task %s not persisted as scheduled", task.ID)
		}
	}
	if len(d.replans) != 1 || d.replans[0].Trigger != "generate" {
		t.Errorf("replan audit = %+v", d.replans)
	}
}

func TestHandleTriggerCalendarPersistsBusyBlock(t *testing.T) {
	d := newMemData()
	start := monday.Add(18 * time.Hour)
	d.tasks["task-1"] = schedule.Task{
		ID: "task-1", TopicID: "t1", CourseID: "c1", Title: "Practice: Limits",
		Type: schedule.TaskPractice, Difficulty: "medium", DurationMin: 45,
		Priority: 0.5, Start: start, End: start.Add(45 * time.Minute),
		Status: schedule.StatusScheduled,
	}
	s := newTestService(d)

	out, err := s.HandleTrigger(context.Background(), replan.Request{
		Kind: replan.TriggerCalendarChange,
		Calendar: &replan.CalendarEvent{Interval: timeslot.BusyInterval{
			Start: start,
			End:   start.Add(time.Hour),
		}},
	})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	if len(d.busy) != 1 || d.busy[0].Source != "calendar" {
		t.Fatalf("busy blocks = %+v, want one calendar block", d.busy)
	}
	moved, ok := d.tasks["task-1"]
	if !ok {
		t.Fatal("task dropped by trigger")
	}
	if moved.Status == schedule.StatusScheduled && moved.Overlaps(start, start.Add(time.Hour)) {
		t.Errorf("task still overlaps the event: %v-%v", moved.Start, moved.End)
	}
	if len(d.replans) != 1 || d.replans[0].Trigger != string(replan.TriggerCalendarChange) {
		t.Errorf("replan audit = %+v", d.replans)
	}
	if len(out.Tasks) != 1 {
		t.Errorf("outcome tasks = %d, want 1", len(out.Tasks))
	}
}

func TestNightlyReplanKeepsCompletedRows(t *testing.T) {
	d := newMemData()
	seedTopic(d, "t1", "Limits")
	start := monday.Add(18 * time.Hour)
	d.tasks["done"] = schedule.Task{
		ID: "done", TopicID: "t1", CourseID: "c1", Title: "Practice: Limits",
		Type: schedule.TaskPractice, Difficulty: "medium", DurationMin: 45,
		Priority: 0.5, Start: start, End: start.Add(45 * time.Minute),
		Status: schedule.StatusCompleted,
	}
	s := newTestService(d)

	out, err := s.NightlyReplan(context.Background())
	if err != nil {
		t.Fatalf("nightly: %v", err)
	}

	if _, ok := d.tasks["done"]; !ok {
		t.Error("completed row removed by nightly replan")
	}
	var sawScheduled bool
	for _, task := range out.Tasks {
		if task.Status == schedule.StatusScheduled {
			sawScheduled = true
			if task.Overlaps(start, start.Add(45*time.Minute)) {
				t.Errorf("fresh task double-books the completed slot")
			}
		}
	}
	if !sawScheduled {
		t.Error("nightly replan scheduled nothing")
	}
}
