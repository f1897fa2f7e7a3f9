package store

import (
	"context"
	"fmt"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/masteryrecord"
	"github.com/studyplanhq/studyplan/internal/mastery"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, topicID string) (*mastery.State, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.TopicID(topicID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	st := stateFromEnt(rec)
	return &st, nil
}

func (r *masteryRepo) Put(ctx context.Context, st mastery.State) error {
	n, err := r.client.MasteryRecord.Update().
		Where(masteryrecord.TopicID(st.TopicID)).
		SetScore(st.Score).
		SetConfidence(st.Confidence).
		SetTrend(string(st.Trend)).
		SetPracticeCount(st.PracticeCount).
		SetQuizCount(st.QuizCount).
		SetLastPracticed(st.LastPracticed).
		SetNextReview(st.NextReview).
		SetIntervalDays(st.IntervalDays).
		SetEasiness(st.Easiness).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.MasteryRecord.Create().
		SetTopicID(st.TopicID).
		SetScore(st.Score).
		SetConfidence(st.Confidence).
		SetTrend(string(st.Trend)).
		SetPracticeCount(st.PracticeCount).
		SetQuizCount(st.QuizCount).
		SetLastPracticed(st.LastPracticed).
		SetNextReview(st.NextReview).
		SetIntervalDays(st.IntervalDays).
		SetEasiness(st.Easiness).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create mastery record: %w", err)
	}
	return nil
}

func (r *masteryRepo) All(ctx context.Context) (map[string]mastery.State, error) {
	rows, err := r.client.MasteryRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}
	out := make(map[string]mastery.State, len(rows))
	for _, rec := range rows {
		out[rec.TopicID] = stateFromEnt(rec)
	}
	return out, nil
}

func stateFromEnt(rec *ent.MasteryRecord) mastery.State {
	return mastery.State{
		TopicID:       rec.TopicID,
		Score:         rec.Score,
		Confidence:    rec.Confidence,
		Trend:         mastery.Trend(rec.Trend),
		PracticeCount: rec.PracticeCount,
		QuizCount:     rec.QuizCount,
		LastPracticed: rec.LastPracticed,
		NextReview:    rec.NextReview,
		IntervalDays:  rec.IntervalDays,
		Easiness:      rec.Easiness,
	}
}
