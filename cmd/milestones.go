package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/streak"
	"github.com/embertrack/ember/internal/ui"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones [type]",
	Short: "Show the milestone ladder and your progress on it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMilestones,
}

func runMilestones(_ *cobra.Command, args []string) error {
	// Without a type, just print the ladder.
	if len(args) == 0 {
		ui.Header(ui.IconTrophy + " Milestone ladder")
		for _, m := range streak.Ladder {
			fmt.Printf("  %4d %s\n", m, ui.Plural(m))
		}
		fmt.Println()
		fmt.Println(ui.Muted.Render("  Past the ladder, every +100 days is a new goal."))
		fmt.Println()
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	today, err := refToday(cfg)
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	js := journal.NewStore(db.Conn())
	at, err := js.GetType(args[0])
	if err != nil {
		return err
	}
	days, err := js.DaysAsc(at.Name)
	if err != nil {
		return err
	}
	res, err := streak.Evaluate(days, at.Rules, today)
	if err != nil {
		return err
	}

	ui.Header(fmt.Sprintf("%s %s milestones", ui.IconTrophy, at.DisplayName()))
	ui.Kv("Streak", fmt.Sprintf("%d %s", res.Current, ui.Plural(res.Current)))

	_, _, progress := res.Milestones()
	for _, m := range streak.Ladder {
		marker := "  "
		label := fmt.Sprintf("%4d", m)
		switch {
		case m <= res.Current:
			marker = ui.Success.Render(ui.IconOk)
			label = ui.Success.Render(label)
		case m == progress.Next:
			marker = ui.Accent.Render(ui.IconTarget)
			label = ui.Accent.Render(label)
		default:
			label = ui.Muted.Render(label)
		}
		fmt.Printf("  %s %s\n", marker, label)
	}

	fmt.Println()
	fmt.Printf("  %s %s\n", ui.ProgressBar(progress.Percent, 24),
		ui.Muted.Render(fmt.Sprintf("%d%% of the way %s %d days", progress.Percent, ui.IconArrow, progress.Next)))
	fmt.Println()
	return nil
}
