package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/streak"
	"github.com/embertrack/ember/internal/ui"
)

var (
	typeLabel        string
	typeGraceDays    int
	typeWeekendGrace bool
	typeCountFuture  bool
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage the activity types you track",
}

var typesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked activity types and their rules",
	RunE:  runTypesList,
}

var typesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking a new activity type",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypesAdd,
}

var typesSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Change the streak rules for an activity type",
	Long: `Change the streak rules for an activity type. Rules apply to the whole
history, so past streaks are re-read under the new rules.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypesSet,
}

func init() {
	typesAddCmd.Flags().StringVar(&typeLabel, "label", "", "Display label (defaults to the name)")
	for _, c := range []*cobra.Command{typesAddCmd, typesSetCmd} {
		c.Flags().IntVar(&typeGraceDays, "grace", 0, "Allowed missed days between records")
		c.Flags().BoolVar(&typeWeekendGrace, "weekend", false, "Let streaks bridge weekends")
		c.Flags().BoolVar(&typeCountFuture, "future", false, "Count records dated after today")
	}
	typesCmd.AddCommand(typesListCmd, typesAddCmd, typesSetCmd)
}

func runTypesList(_ *cobra.Command, _ []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	types, err := journal.NewStore(db.Conn()).ListTypes()
	if err != nil {
		return err
	}
	if len(types) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No types yet — add one with `ember types add <name>`."))
		fmt.Println()
		return nil
	}

	ui.Header("Tracked types")
	for _, at := range types {
		fmt.Printf("  %-12s %s  %s\n", at.Name, at.DisplayName(), ui.Muted.Render(ruleSummary(at.Rules)))
	}
	fmt.Println()
	return nil
}

func runTypesAdd(cmd *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	at, err := journal.NewStore(db.Conn()).AddType(args[0], typeLabel, flagRules())
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("tracking %s (%s)", at.Name, ruleSummary(at.Rules)))
	return nil
}

func runTypesSet(cmd *cobra.Command, args []string) error {
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

	rules := at.Rules
	if cmd.Flags().Changed("grace") {
		rules.GraceDays = typeGraceDays
	}
	if cmd.Flags().Changed("weekend") {
		rules.WeekendGrace = typeWeekendGrace
	}
	if cmd.Flags().Changed("future") {
		rules.CountFuture = typeCountFuture
	}
	updated, err := js.UpdateRules(at.Name, rules)
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("%s now uses: %s", updated.Name, ruleSummary(updated.Rules)))
	return nil
}

func flagRules() streak.Rules {
	return streak.Rules{
		GraceDays:    typeGraceDays,
		WeekendGrace: typeWeekendGrace,
		CountFuture:  typeCountFuture,
	}
}

func ruleSummary(r streak.Rules) string {
	s := "strict"
	if r.GraceDays > 0 {
		s = fmt.Sprintf("grace %d", r.GraceDays)
	}
	if r.WeekendGrace {
		s += " · weekends bridge"
	}
	if r.CountFuture {
		s += " · future days count"
	}
	return s
}
