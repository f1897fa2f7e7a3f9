package planner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/studyplanhq/studyplan/internal/mastery"
	"github.com/studyplanhq/studyplan/internal/store"
)

// SmallAttemptQuestions is the question count under which a result is
// treated as a small attempt and smoothed with the low alpha.
const SmallAttemptQuestions = 5

// QuizInput is one graded result as reported by the caller.
type QuizInput struct {
	Score         float64 `json:"score"`
	QuestionCount int     `json:"question_count"`
	IsExam        bool    `json:"is_exam"`
	Diagnostic    bool    `json:"diagnostic"`
}

// alphaFor picks the EWMA smoothing factor from the attempt context.
// The estimator itself applies whatever the caller chose.
func alphaFor(in QuizInput, first bool) float64 {
	switch {
	case in.Diagnostic || first:
		return mastery.AlphaDiagnostic
	case in.IsExam:
		return mastery.AlphaExam
	case in.QuestionCount < SmallAttemptQuestions:
		return mastery.AlphaSmallAttempt
	default:
		return mastery.AlphaQuiz
	}
}

// UpdateMastery applies one quiz result: it initializes or advances the
// topic's mastery state, persists it, and appends the result to the
// quiz log.
func (s *Service) UpdateMastery(ctx context.Context, topicID string, in QuizInput) (mastery.State, error) {
	topic, err := s.repos.Topics.Get(ctx, topicID)
	if err != nil {
		return mastery.State{}, err
	}
	if topic == nil {
		return mastery.State{}, fmt.Errorf("update mastery: unknown topic %s: %w", topicID, ErrNotFound)
	}

	cur, err := s.repos.Mastery.Get(ctx, topicID)
	if err != nil {
		return mastery.State{}, err
	}

	now := s.now()
	alpha := alphaFor(in, cur == nil)

	var st mastery.State
	if cur == nil {
		st, err = mastery.Initialize(topicID, in.Score, in.QuestionCount, now)
	} else {
		st, err = mastery.Update(*cur, in.Score, in.QuestionCount, alpha, now)
	}
	if err != nil {
		return mastery.State{}, err
	}

	if err := s.repos.Mastery.Put(ctx, st); err != nil {
		return mastery.State{}, err
	}
	if err := s.repos.Events.AppendQuiz(ctx, store.QuizResult{
		TopicID:       topicID,
		Score:         in.Score,
		QuestionCount: in.QuestionCount,
		IsExam:        in.IsExam,
		Alpha:         alpha,
		Timestamp:     now,
	}); err != nil {
		return mastery.State{}, err
	}

	s.log.Info("mastery updated",
		zap.String("topic_id", topicID),
		zap.Float64("score", st.Score),
		zap.Float64("confidence", st.Confidence),
		zap.String("trend", string(st.Trend)),
	)
	return st, nil
}
