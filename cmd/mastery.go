package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyplanhq/studyplan/internal/planner"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Record quiz results and inspect mastery state",
}

var masteryRecordCmd = &cobra.Command{
	Use:   "record <topic-id>",
	Short: "Record a graded result for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetFloat64("score")
		questions, _ := cmd.Flags().GetInt("questions")
		isExam, _ := cmd.Flags().GetBool("exam")
		diagnostic, _ := cmd.Flags().GetBool("diagnostic")

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		state, err := svc.UpdateMastery(cmd.Context(), args[0], planner.QuizInput{
			Score:         score,
			QuestionCount: questions,
			IsExam:        isExam,
			Diagnostic:    diagnostic,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %.1f ±%.0f (%s), next review %s\n",
			args[0], state.Score, state.Confidence, state.Trend,
			state.NextReview.Format("Jan 2"))
		return nil
	},
}

var masteryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show mastery state for every topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := svc.MasteryOverview(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(renderMastery(rows, time.Now()))
		return nil
	},
}

func init() {
	masteryRecordCmd.Flags().Float64("score", 0, "Score, 0-100")
	masteryRecordCmd.Flags().Int("questions", 10, "Number of questions in the quiz")
	masteryRecordCmd.Flags().Bool("exam", false, "Result is from an exam")
	masteryRecordCmd.Flags().Bool("diagnostic", false, "Treat as a diagnostic, replacing the estimate")
	masteryRecordCmd.MarkFlagRequired("score")

	masteryCmd.AddCommand(masteryRecordCmd)
	masteryCmd.AddCommand(masteryShowCmd)
}
