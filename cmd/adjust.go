package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/questforge/internal/adjust"
	"github.com/abhisek/questforge/internal/candidates"
	"github.com/abhisek/questforge/internal/planner"
	"github.com/abhisek/questforge/internal/store"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Review recorded outcomes and roll back adjustments that misfired",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		events := st.EventRepo()

		adjuster := adjust.New(nil)
		seedAdjusterHistory(ctx, events, adjuster)

		history, err := loadCompletions(ctx, events)
		if err != nil {
			return err
		}

		pl := planner.New(planner.Deps{
			Source:   candidates.NewFallback(),
			Adjuster: adjuster,
			Events:   events,
		})

		report, err := pl.AdjustForNextCycle(ctx, history)
		if err != nil {
			return err
		}

		if len(report.Rollbacks) == 0 && len(report.Recommendations) == 0 {
			fmt.Println("Nothing to change; recent adjustments look healthy.")
			return nil
		}

		for _, rb := range report.Rollbacks {
			fmt.Printf("Rolled back: %q %s (difficulty %.2f -> %.2f)\n",
				rb.QuestTitle, rb.Type, rb.OriginalDifficulty, rb.AdjustedDifficulty)
			for _, reason := range rb.Reasons {
				fmt.Printf("  %s\n", reason)
			}
		}
		for _, rec := range report.Recommendations {
			fmt.Printf("Suggestion: %s\n", rec)
		}
		if report.RollbackRate > 0 {
			fmt.Printf("Rollback rate over recent adjustments: %.0f%%\n", report.RollbackRate*100)
		}
		return nil
	},
}
