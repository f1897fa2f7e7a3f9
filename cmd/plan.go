package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and persist a study schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		from := time.Now()
		if s, _ := cmd.Flags().GetString("from"); s != "" {
			from, err = time.ParseInLocation("2006-01-02", s, time.Local)
			if err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}
		}
		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			days = svc.Prefs().HorizonDays
		}

		plan, err := svc.GenerateSchedule(cmd.Context(), from, from.AddDate(0, 0, days))
		if err != nil {
			return err
		}
		fmt.Print(renderPlan(plan))
		return nil
	},
}

func init() {
	planCmd.Flags().String("from", "", "First day of the plan (YYYY-MM-DD, default today)")
	planCmd.Flags().Int("days", 0, "Horizon in days (default from preferences)")
}
