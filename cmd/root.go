package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/dates"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/streak"
	"github.com/embertrack/ember/internal/ui"
	"github.com/embertrack/ember/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Keep your daily streaks burning",
	Long: `ember tracks the things you do every day — study, exercise, writing,
whatever you're building a habit of — and turns them into streaks,
milestones, and gentle at-risk warnings. All local, all yours.`,
	RunE: runOverview,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// refToday resolves "today" in the configured reference timezone. This is
// the only place the engine's reference day comes from — everything below
// the command layer takes it as an argument.
func refToday(cfg *config.Config) (dates.Day, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return dates.Day{}, err
	}
	return dates.Of(time.Now(), loc), nil
}

// defaultRules builds the rule set applied to newly created types.
func defaultRules(cfg *config.Config) streak.Rules {
	return streak.Rules{
		GraceDays:    cfg.Defaults.GraceDays,
		WeekendGrace: cfg.Defaults.WeekendGrace,
	}
}

// runOverview shows the at-a-glance summary when you just type `ember`.
func runOverview(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !config.Initialized() {
		fmt.Println(ui.Greet(""))
		fmt.Println()
		fmt.Println("  Looks like this is your first time. Let's set things up!")
		fmt.Println()
		fmt.Printf("  Run %s to get started.\n", ui.Accent.Render("ember init"))
		fmt.Println()
		return nil
	}

	today, err := refToday(cfg)
	if err != nil {
		return err
	}

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()
	ui.Kv("📅 Today", today.Time().Format("Monday, January 2"))

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	js := journal.NewStore(db.Conn())
	types, err := js.ListTypes()
	if err != nil {
		return fmt.Errorf("listing activity types: %w", err)
	}

	if len(types) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No activity types yet."))
		fmt.Printf("  Add one: %s\n", ui.Accent.Render(`ember types add study --grace 1`))
		fmt.Println()
		return nil
	}

	anyAtRisk := false
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

		line := fmt.Sprintf("%d %s", res.Current, ui.Plural(res.Current))
		switch {
		case res.ActiveToday:
			line += "  " + ui.IconFire
		case risk:
			line += "  " + ui.Badge.Render("at risk")
			anyAtRisk = true
		}
		ui.Kv(at.DisplayName(), line)
	}

	if anyAtRisk {
		ui.Tip("`ember log <type>` before midnight to keep the flame alive.")
	} else {
		ui.Tip("`ember status` for milestones and history.")
	}

	fmt.Println()
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ember version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Full())
	},
}
