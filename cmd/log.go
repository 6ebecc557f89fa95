package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/dates"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/streak"
	"github.com/embertrack/ember/internal/ui"
)

var (
	logDate string
	logUndo bool
)

var logCmd = &cobra.Command{
	Use:   "log <type> [note]",
	Short: "Record an activity for today",
	Long: `Record that you did an activity. One record per day — logging the same
day twice is a friendly no-op.

Examples:
  ember log study "Finished chapter 4"
  ember log exercise --date 2026-02-24
  ember log study --undo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Log a past day instead of today (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logUndo, "undo", false, "Remove the record for the day instead of adding it")
}

func runLog(_ *cobra.Command, args []string) error {
	typeName := args[0]
	note := strings.Join(args[1:], " ")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	today, err := refToday(cfg)
	if err != nil {
		return err
	}

	day := today
	if logDate != "" {
		if day, err = dates.Parse(logDate); err != nil {
			return err
		}
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	js := journal.NewStore(db.Conn())

	if logUndo {
		removed, err := js.Unlog(typeName, day)
		if err != nil {
			return err
		}
		if !removed {
			ui.Warn(fmt.Sprintf("nothing logged for %s on %s", typeName, day))
			return nil
		}
		ui.Ok(fmt.Sprintf("removed %s on %s", typeName, day))
		return nil
	}

	created, err := js.Log(typeName, day, note)
	if err != nil {
		return err
	}
	if !created {
		ui.Warn(fmt.Sprintf("%s already logged for %s — streak unchanged", typeName, day))
		return nil
	}

	at, err := js.GetType(typeName)
	if err != nil {
		return err
	}
	days, err := js.DaysAsc(typeName)
	if err != nil {
		return err
	}
	res, err := streak.Evaluate(days, at.Rules, today)
	if err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("%s logged for %s", at.DisplayName(), day))
	fmt.Printf("  %s %d-%s streak", ui.IconFire, res.Current, ui.Plural(res.Current))
	if reached, ok := streak.MilestoneFor(res.Current); ok {
		fmt.Printf("  %s", ui.Success.Render(fmt.Sprintf("%s %d-day milestone!", ui.IconTrophy, reached)))
	}
	fmt.Println()
	return nil
}
