package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/tui"
	"github.com/embertrack/ember/internal/ui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Live dashboard of all your streaks",
	RunE:  runDash,
}

func runDash(_ *cobra.Command, _ []string) error {
	if !ui.IsTTY() {
		return fmt.Errorf("dash needs an interactive terminal — try %s instead", ui.Accent.Render("ember status"))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	return tui.RunDash(db.Conn(), loc)
}
