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

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history <type>",
	Short: "Show past streak periods for an activity type",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "How many periods to show (0 = all)")
}

func runHistory(_ *cobra.Command, args []string) error {
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

	ui.Header(fmt.Sprintf("%s %s history", ui.IconFire, at.DisplayName()))

	if len(res.History) == 0 {
		fmt.Println(ui.Muted.Render("  No activity logged yet."))
		fmt.Println()
		return nil
	}

	// Most recent first for display; the engine emits ascending.
	periods := res.History
	shown := len(periods)
	if historyLimit > 0 && shown > historyLimit {
		shown = historyLimit
	}
	for i := len(periods) - 1; i >= len(periods)-shown; i-- {
		printPeriod(periods[i], periods[i].Length == res.Longest)
	}
	if shown < len(periods) {
		fmt.Println(ui.Muted.Render(fmt.Sprintf("  …and %d earlier %s", len(periods)-shown, periodWord(len(periods)-shown))))
	}

	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d %s total · longest %d %s",
		len(periods), periodWord(len(periods)), res.Longest, ui.Plural(res.Longest))))
	fmt.Println()
	return nil
}

func printPeriod(p streak.Period, isBest bool) {
	var line string
	if p.Start.Equal(p.End) {
		line = fmt.Sprintf("  %s  1 day", p.Start)
	} else {
		line = fmt.Sprintf("  %s %s %s  %d %s",
			p.Start, ui.IconArrow, p.End, p.Length, ui.Plural(p.Length))
	}
	if isBest {
		line += "  " + ui.Accent.Render(ui.IconTrophy+" best")
	}
	fmt.Println(line)
}

func periodWord(n int) string {
	if n == 1 {
		return "streak"
	}
	return "streaks"
}
