package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyplanhq/studyplan/internal/config"
	"github.com/studyplanhq/studyplan/internal/planner"
	"github.com/studyplanhq/studyplan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Adaptive study planner",
	Long: "Studyplan ranks what to study next from mastery estimates and\n" +
		"assessment deadlines, fits the work into your free time, and\n" +
		"replans when life gets in the way.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
	}
	return err
}

// renderError labels a failure by what the user can do about it:
// validation errors are fixable input, conflicts are clashes with the
// current schedule state.
func renderError(err error) string {
	switch {
	case planner.IsValidation(err):
		return warnStyle.Render("invalid input: ") + err.Error()
	case planner.IsConflict(err):
		return warnStyle.Render("conflict: ") + err.Error()
	default:
		return badStyle.Render("error: ") + err.Error()
	}
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPLAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to preferences JSON (overrides STUDYPLAN_CONFIG env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(replanCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYPLAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolvePrefs loads preferences from --config, the env var, or the
// default path, falling back to stock values when no file exists.
func resolvePrefs(cmd *cobra.Command) (config.Preferences, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return config.Preferences{}, err
	}
	return config.LoadOrDefault(path)
}

// openService opens the store and builds the planning service. The
// caller closes the returned store.
func openService(cmd *cobra.Command, opts ...planner.Option) (*planner.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	prefs, err := resolvePrefs(cmd)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return planner.New(planner.FromStore(st), prefs, opts...), st, nil
}
