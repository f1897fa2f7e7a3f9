package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyplanhq/studyplan/internal/timeslot"
)

var replanCmd = &cobra.Command{
	Use:   "replan",
	Short: "React to a schedule-invalidating event",
}

var replanCalendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Block out a new busy interval and move displaced work",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseWhen(mustFlag(cmd, "start"))
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
		end, err := parseWhen(mustFlag(cmd, "end"))
		if err != nil {
			return fmt.Errorf("parse --end: %w", err)
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out, err := svc.AddCalendarEvent(cmd.Context(), timeslot.BusyInterval{Start: start, End: end})
		if err != nil {
			return err
		}
		fmt.Print(renderNotices(out.Notices))
		return nil
	},
}

var replanMissedCmd = &cobra.Command{
	Use:   "missed <task-id>",
	Short: "Mark a task as missed and reschedule it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out, err := svc.ReportMissed(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(renderNotices(out.Notices))
		return nil
	},
}

var replanQuizCmd = &cobra.Command{
	Use:   "quiz <topic-id>",
	Short: "React to a weak quiz score with remedial drills",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetFloat64("score")

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out, err := svc.ReportPerformance(cmd.Context(), args[0], score)
		if err != nil {
			return err
		}
		fmt.Print(renderNotices(out.Notices))
		return nil
	},
}

var replanDeadlineCmd = &cobra.Command{
	Use:   "deadline <assessment-id>",
	Short: "Move an assessment due date and replan the work covering it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		due, err := parseWhen(mustFlag(cmd, "due"))
		if err != nil {
			return fmt.Errorf("parse --due: %w", err)
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out, err := svc.ShiftDeadline(cmd.Context(), args[0], due)
		if err != nil {
			return err
		}
		fmt.Print(renderNotices(out.Notices))
		return nil
	},
}

func init() {
	replanCalendarCmd.Flags().String("start", "", "Event start (YYYY-MM-DD HH:MM)")
	replanCalendarCmd.Flags().String("end", "", "Event end (YYYY-MM-DD HH:MM)")
	replanCalendarCmd.MarkFlagRequired("start")
	replanCalendarCmd.MarkFlagRequired("end")

	replanQuizCmd.Flags().Float64("score", 0, "Quiz score, 0-100")
	replanQuizCmd.MarkFlagRequired("score")

	replanDeadlineCmd.Flags().String("due", "", "New due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	replanDeadlineCmd.MarkFlagRequired("due")

	replanCmd.AddCommand(replanCalendarCmd)
	replanCmd.AddCommand(replanMissedCmd)
	replanCmd.AddCommand(replanQuizCmd)
	replanCmd.AddCommand(replanDeadlineCmd)
}

func mustFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// parseWhen accepts a date or a date with a clock time, in local time.
func parseWhen(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
