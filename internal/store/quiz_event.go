package store

import (
	"context"
	"fmt"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/quizevent"
)

// eventRepo implements EventRepo over the ent event tables.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuiz(ctx context.Context, q QuizResult) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetTopicID(q.TopicID).
		SetScore(q.Score).
		SetQuestionCount(q.QuestionCount).
		SetIsExam(q.IsExam).
		SetAlpha(q.Alpha).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReplan(ctx context.Context, rec ReplanRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ReplanEvent.Create().
		SetSequence(seqNum).
		SetTrigger(rec.Trigger).
		SetTasksTouched(rec.TasksTouched)

	if len(rec.Notices) > 0 {
		builder = builder.SetNotices(rec.Notices)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save replan event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentQuizzes(ctx context.Context, topicID string, n int) ([]QuizResult, error) {
	events, err := r.client.QuizEvent.Query().
		Where(quizevent.TopicID(topicID)).
		Order(ent.Desc(quizevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	out := make([]QuizResult, 0, len(events))
	for _, e := range events {
		out = append(out, QuizResult{
			TopicID:       e.TopicID,
			Score:         e.Score,
			QuestionCount: e.QuestionCount,
			IsExam:        e.IsExam,
			Alpha:         e.Alpha,
			Timestamp:     e.Timestamp,
		})
	}
	return out, nil
}
