package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyplanhq/studyplan/internal/schedule"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show schedule and mastery summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		horizon := svc.Prefs().HorizonDays
		tasks, err := svc.UpcomingTasks(cmd.Context(), now.AddDate(0, 0, -1), now.AddDate(0, 0, horizon))
		if err != nil {
			return err
		}

		var scheduled, done int
		for _, t := range tasks {
			switch t.Status {
			case schedule.StatusCompleted:
				done++
			case schedule.StatusScheduled, schedule.StatusInProgress:
				scheduled++
			}
		}
		fmt.Println(titleStyle.Render("Schedule"))
		fmt.Printf("  %d scheduled, %d completed, %.1f hours planned\n\n",
			scheduled, done, schedule.TotalHours(tasks))
		for _, day := range schedule.Breakdown(tasks) {
			fmt.Printf("  %s  %.1fh in %d blocks\n", formatDay(day.Date), day.Hours, day.Blocks)
		}
		fmt.Println()

		rows, err := svc.MasteryOverview(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Print(renderMastery(rows, now))
		return nil
	},
}
