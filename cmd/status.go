package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/dates"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/streak"
	"github.com/embertrack/ember/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status [type]",
	Short: "Show streak status, milestones, and at-risk warnings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, args []string) error {
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

	var types []journal.ActivityType
	if len(args) == 1 {
		at, err := js.GetType(args[0])
		if err != nil {
			return err
		}
		types = []journal.ActivityType{*at}
	} else {
		if types, err = js.ListTypes(); err != nil {
			return err
		}
	}

	if len(types) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  Nothing to report — add a type with `ember types add`."))
		fmt.Println()
		return nil
	}

	for _, at := range types {
		days, err := js.DaysAsc(at.Name)
		if err != nil {
			return err
		}
		res, err := streak.Evaluate(days, at.Rules, today)
		if err != nil {
			return err
		}
		risk, err := streak.AtRisk(days, at.Rules, today)
		if err != nil {
			return err
		}
		printStatus(at, res, risk, today)
	}
	fmt.Println()
	return nil
}

func printStatus(at journal.ActivityType, res streak.Result, atRisk bool, today dates.Day) {
	ui.Header(fmt.Sprintf("%s %s", ui.IconFire, at.DisplayName()))

	current := fmt.Sprintf("%d %s", res.Current, ui.Plural(res.Current))
	if res.ActiveToday {
		current += "  " + ui.Success.Render("logged today "+ui.IconOk)
	} else if atRisk {
		current += "  " + ui.Badge.Render("at risk")
	}
	ui.Kv("Current", current)
	ui.Kv("Longest", fmt.Sprintf("%d %s", res.Longest, ui.Plural(res.Longest)))

	switch {
	case res.LastDay == nil:
		ui.Kv("Last logged", ui.Muted.Render("never"))
	case res.LastDay.Equal(today):
		ui.Kv("Last logged", "today")
	default:
		ui.Kv("Last logged", fmt.Sprintf("%s (%d %s ago)",
			res.LastDay, dates.Diff(*res.LastDay, today), ui.Plural(dates.Diff(*res.LastDay, today))))
	}

	reached, onRung, progress := res.Milestones()
	if onRung {
		ui.Kv("Milestone", ui.Success.Render(fmt.Sprintf("%s %d days reached!", ui.IconTrophy, reached)))
	}
	ui.Kv("Next goal", fmt.Sprintf("%s %s %d days (%d to go)",
		ui.ProgressBar(progress.Percent, 20), ui.IconTarget, progress.Next, progress.Remaining))

	// A zero current streak is ambiguous on its own: it can mean "not yet
	// today" or "lost". Spell it out.
	if res.Current == 0 && res.LastDay != nil {
		ui.Kv("", ui.Muted.Render("streak lost — log today to start a new one"))
	}
}
