package store

import (
	"context"
	"fmt"
	"time"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/studytask"
	"github.com/studyplanhq/studyplan/internal/priority"
	"github.com/studyplanhq/studyplan/internal/schedule"
)

type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) Upsert(ctx context.Context, t schedule.Task) error {
	return upsertTask(ctx, r.client, t)
}

func (r *taskRepo) Get(ctx context.Context, id string) (*schedule.Task, error) {
	row, err := r.client.StudyTask.Query().
		Where(studytask.TaskID(id)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query task: %w", err)
	}
	t := taskFromEnt(row)
	return &t, nil
}

func (r *taskRepo) All(ctx context.Context) ([]schedule.Task, error) {
	rows, err := r.client.StudyTask.Query().
		Order(ent.Asc(studytask.FieldStartAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasksFromEnt(rows), nil
}

func (r *taskRepo) Between(ctx context.Context, from, to time.Time) ([]schedule.Task, error) {
	rows, err := r.client.StudyTask.Query().
		Where(
			studytask.StartAtGTE(from),
			studytask.StartAtLT(to),
		).
		Order(ent.Asc(studytask.FieldStartAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks between: %w", err)
	}
	return tasksFromEnt(rows), nil
}

func (r *taskRepo) ReplaceActive(ctx context.Context, tasks []schedule.Task) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}

	_, err = tx.StudyTask.Delete().
		Where(studytask.StatusIn(
			string(schedule.StatusPending),
			string(schedule.StatusScheduled),
		)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("clear active tasks: %w", err)
	}

	for _, t := range tasks {
		if t.Status != schedule.StatusPending && t.Status != schedule.StatusScheduled {
			continue
		}
		if err := upsertTask(ctx, tx.Client(), t); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func (r *taskRepo) SetStatus(ctx context.Context, id string, status schedule.Status) error {
	row, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("set task status: %s not found", id)
	}
	if err := row.Transition(status); err != nil {
		return err
	}
	return r.Upsert(ctx, *row)
}

// upsertTask rewrites the row for t.ID, creating it if absent. Works on
// both the plain client and a transactional one.
func upsertTask(ctx context.Context, client *ent.Client, t schedule.Task) error {
	n, err := client.StudyTask.Update().
		Where(studytask.TaskID(t.ID)).
		SetTopicID(t.TopicID).
		SetTopicName(t.TopicName).
		SetCourseID(t.CourseID).
		SetAssessmentID(t.AssessmentID).
		SetTitle(t.Title).
		SetTaskType(string(t.Type)).
		SetDifficulty(string(t.Difficulty)).
		SetDurationMin(t.DurationMin).
		SetPriority(t.Priority).
		SetStartAt(t.Start).
		SetEndAt(t.End).
		SetStatus(string(t.Status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = client.StudyTask.Create().
		SetTaskID(t.ID).
		SetTopicID(t.TopicID).
		SetTopicName(t.TopicName).
		SetCourseID(t.CourseID).
		SetAssessmentID(t.AssessmentID).
		SetTitle(t.Title).
		SetTaskType(string(t.Type)).
		SetDifficulty(string(t.Difficulty)).
		SetDurationMin(t.DurationMin).
		SetPriority(t.Priority).
		SetStartAt(t.Start).
		SetEndAt(t.End).
		SetStatus(string(t.Status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func tasksFromEnt(rows []*ent.StudyTask) []schedule.Task {
	out := make([]schedule.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromEnt(row))
	}
	return out
}

func taskFromEnt(row *ent.StudyTask) schedule.Task {
	return schedule.Task{
		ID:           row.TaskID,
		TopicID:      row.TopicID,
		TopicName:    row.TopicName,
		CourseID:     row.CourseID,
		AssessmentID: row.AssessmentID,
		Title:        row.Title,
		Type:         schedule.TaskType(row.TaskType),
		Difficulty:   priority.Difficulty(row.Difficulty),
		DurationMin:  row.DurationMin,
		Priority:     row.Priority,
		Start:        row.StartAt,
		End:          row.EndAt,
		Status:       schedule.Status(row.Status),
	}
}
