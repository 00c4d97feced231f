package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/questforge/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show planning and completion statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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

		plans, err := events.QueryPlans(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}
		completions, err := events.QueryCompletions(ctx, store.QueryOpts{Limit: 200})
		if err != nil {
			return fmt.Errorf("query completions: %w", err)
		}
		adjustments, err := events.QueryAdjustments(ctx, store.QueryOpts{Limit: 200})
		if err != nil {
			return fmt.Errorf("query adjustments: %w", err)
		}

		if len(plans) == 0 {
			fmt.Println("No plans recorded yet. Run `questforge plan` first.")
			return nil
		}

		// Completion counts by plan date.
		doneByDate := map[string]int{}
		var succeeded, rated, ratingSum int
		for _, c := range completions {
			doneByDate[c.PlanDate]++
			if c.Completed {
				succeeded++
			}
			if c.Rating > 0 {
				rated++
				ratingSum += c.Rating
			}
		}

		fmt.Println("Recent Plans")
		fmt.Println(strings.Repeat("─", 62))
		fmt.Printf("%-12s  %-8s  %7s  %8s  %6s  %s\n",
			"Date", "Day", "Quests", "Minutes", "Done", "Source")
		fmt.Println(strings.Repeat("─", 62))
		for _, p := range plans {
			source := "llm"
			if p.FallbackUsed {
				source = "fallback"
			}
			fmt.Printf("%-12s  %-8s  %7d  %8d  %6d  %s\n",
				p.PlanDate, p.DayType, p.QuestCount, p.TotalMinutes,
				doneByDate[p.PlanDate], source)
		}

		fmt.Println()
		fmt.Printf("Completions: %d recorded, %d finished", len(completions), succeeded)
		if len(completions) > 0 {
			fmt.Printf(" (%.0f%%)", float64(succeeded)/float64(len(completions))*100)
		}
		fmt.Println()
		if rated > 0 {
			fmt.Printf("Average difficulty-fit rating: %.1f of 5 (%d rated)\n",
				float64(ratingSum)/float64(rated), rated)
		}

		if len(adjustments) > 0 {
			var increases, decreases, rollbacks int
			for _, a := range adjustments {
				if a.Rollback {
					rollbacks++
					continue
				}
				switch a.Type {
				case "increase":
					increases++
				case "decrease":
					decreases++
				}
			}
			fmt.Printf("Adjustments: %d up, %d down, %d rolled back\n",
				increases, decreases, rollbacks)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 14, "Number of plans to show")
}
