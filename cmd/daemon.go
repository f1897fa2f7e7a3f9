package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyplanhq/studyplan/internal/planner"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the nightly replan on a cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		svc, st, err := openService(cmd, planner.WithLogger(log))
		if err != nil {
			return err
		}
		defer st.Close()

		spec, _ := cmd.Flags().GetString("cron")
		c := cron.New()
		_, err = c.AddFunc(spec, func() {
			out, err := svc.NightlyReplan(context.Background())
			if err != nil {
				log.Error("nightly replan failed", zap.Error(err))
				return
			}
			log.Info("nightly replan done",
				zap.Int("tasks", len(out.Tasks)),
				zap.Strings("notices", out.Notices),
			)
		})
		if err != nil {
			return fmt.Errorf("cron spec %q: %w", spec, err)
		}

		log.Info("daemon started", zap.String("cron", spec))
		c.Start()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		<-c.Stop().Done()
		log.Info("daemon stopped")
		return nil
	},
}

func init() {
	daemonCmd.Flags().String("cron", "0 2 * * *", "Replan schedule in cron syntax")
}
