package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/questforge/internal/store"
)

var completeCmd = &cobra.Command{
	Use:   "complete <quest title>",
	Short: "Record the outcome of a quest from today's plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		minutes, _ := cmd.Flags().GetInt("minutes")
		rating, _ := cmd.Flags().GetInt("rating")
		failed, _ := cmd.Flags().GetBool("failed")
		date, _ := cmd.Flags().GetString("date")

		if rating != 0 && (rating < 1 || rating > 5) {
			return fmt.Errorf("rating must be 1-5, got %d", rating)
		}
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

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

		plan, err := events.PlanForDate(ctx, date)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("no plan recorded for %s", date)
		}

		planned, ok := findPlannedQuest(plan, title)
		if !ok {
			var titles []string
			for _, q := range plan.Quests {
				if t, _ := q["title"].(string); t != "" {
					titles = append(titles, t)
				}
			}
			return fmt.Errorf("quest %q not in the %s plan; planned: %s",
				title, date, strings.Join(titles, ", "))
		}

		if minutes == 0 {
			minutes = planned.minutes
		}

		err = events.AppendCompletion(ctx, store.CompletionEventData{
			PlanDate:       date,
			QuestTitle:     planned.title,
			Pattern:        planned.pattern,
			Difficulty:     planned.difficulty,
			PlannedMinutes: planned.minutes,
			ActualMinutes:  minutes,
			Completed:      !failed,
			Rating:         rating,
		})
		if err != nil {
			return fmt.Errorf("record completion: %w", err)
		}

		if failed {
			fmt.Printf("Recorded: %q not finished (%d min spent).\n", planned.title, minutes)
		} else {
			fmt.Printf("Recorded: %q done in %d min.\n", planned.title, minutes)
		}
		return nil
	},
}

// plannedQuest is the subset of a stored plan entry needed to record
// a completion against it.
type plannedQuest struct {
	title      string
	pattern    string
	difficulty float64
	minutes    int
}

// findPlannedQuest matches a title against the stored plan, first
// exactly, then by unique case-insensitive prefix.
func findPlannedQuest(plan *store.PlanEventRecord, title string) (plannedQuest, bool) {
	parse := func(q map[string]any) plannedQuest {
		p := plannedQuest{}
		p.title, _ = q["title"].(string)
		p.pattern, _ = q["pattern"].(string)
		p.difficulty, _ = q["difficulty"].(float64)
		if m, ok := q["minutes"].(float64); ok {
			p.minutes = int(m)
		}
		return p
	}

	for _, q := range plan.Quests {
		p := parse(q)
		if p.title == title {
			return p, true
		}
	}

	var match plannedQuest
	found := 0
	lower := strings.ToLower(title)
	for _, q := range plan.Quests {
		p := parse(q)
		if strings.HasPrefix(strings.ToLower(p.title), lower) {
			match = p
			found++
		}
	}
	return match, found == 1
}

func init() {
	completeCmd.Flags().IntP("minutes", "m", 0, "Actual minutes spent (default: planned minutes)")
	completeCmd.Flags().IntP("rating", "r", 0, "Difficulty fit rating 1-5 (optional)")
	completeCmd.Flags().Bool("failed", false, "Mark the quest as not finished")
	completeCmd.Flags().String("date", "", "Plan date YYYY-MM-DD (default: today)")
}
