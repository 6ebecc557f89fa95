package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/ui"
)

var (
	initName     string
	initTimezone string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up ember for the first time",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Your name for greetings")
	initCmd.Flags().StringVar(&initTimezone, "timezone", "Local", "Reference timezone for calendar days (IANA name)")
}

// seedTypes are created on first run so the tool is usable immediately.
var seedTypes = []struct {
	name  string
	label string
}{
	{"login", "Showing up"},
	{"study", "Study"},
	{"exercise", "Exercise"},
}

func runInit(_ *cobra.Command, _ []string) error {
	if config.Initialized() {
		ui.Warn("ember is already set up — edit config with `ember config set`.")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.User.Name = initName
	cfg.Calendar.Timezone = initTimezone
	if _, err := cfg.Calendar.Location(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	js := journal.NewStore(db.Conn())
	rules := defaultRules(cfg)
	for _, seed := range seedTypes {
		if _, err := js.AddType(seed.name, seed.label, rules); err != nil {
			return fmt.Errorf("seeding %q: %w", seed.name, err)
		}
	}

	ui.Ok("ember is ready")
	fmt.Println()
	fmt.Printf("  Log your first day: %s\n", ui.Accent.Render("ember log study"))
	fmt.Printf("  See where you stand: %s\n", ui.Accent.Render("ember status"))
	fmt.Println()
	return nil
}
