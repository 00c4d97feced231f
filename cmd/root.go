package cmd

import (
	"github.com/abhisek/questforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "questforge",
	Short: "Daily learning-quest planner",
	Long:  "Questforge — terminal planner that turns a learning goal into a small set of daily quests, sized to the day you are actually having.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUESTFORGE_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUESTFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
