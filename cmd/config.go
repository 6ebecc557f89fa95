package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/embertrack/ember/internal/config"
	"github.com/embertrack/ember/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.GetPaths().ConfigFile)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Supported keys:
  user.name              Your display name
  calendar.timezone      Reference timezone for calendar days (IANA name, Local, UTC)
  defaults.grace_days    Grace days applied to newly added types
  defaults.weekend_grace Weekend bridging applied to newly added types (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

// configKeys maps user-facing key names to getter/setter pairs.
var configKeys = map[string]struct {
	get func(*config.Config) string
	set func(*config.Config, string) error
}{
	"user.name": {
		get: func(cfg *config.Config) string { return cfg.User.Name },
		set: func(cfg *config.Config, val string) error {
			cfg.User.Name = val
			return nil
		},
	},
	"calendar.timezone": {
		get: func(cfg *config.Config) string { return cfg.Calendar.Timezone },
		set: func(cfg *config.Config, val string) error {
			probe := config.CalConfig{Timezone: val}
			if _, err := probe.Location(); err != nil {
				return err
			}
			cfg.Calendar.Timezone = val
			return nil
		},
	},
	"defaults.grace_days": {
		get: func(cfg *config.Config) string { return strconv.Itoa(cfg.Defaults.GraceDays) },
		set: func(cfg *config.Config, val string) error {
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value %q for defaults.grace_days (use a non-negative integer)", val)
			}
			cfg.Defaults.GraceDays = n
			return nil
		},
	},
	"defaults.weekend_grace": {
		get: func(cfg *config.Config) string { return strconv.FormatBool(cfg.Defaults.WeekendGrace) },
		set: func(cfg *config.Config, val string) error {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				cfg.Defaults.WeekendGrace = true
			case "false", "0", "no", "off":
				cfg.Defaults.WeekendGrace = false
			default:
				return fmt.Errorf("invalid value %q for defaults.weekend_grace (use true/false)", val)
			}
			return nil
		},
	},
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (run %s to see available keys)",
			key, ui.Accent.Render("ember config set --help"))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := entry.set(cfg, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, value))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	key := args[0]

	entry, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(entry.get(cfg))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	paths := config.GetPaths()

	ui.Header("Configuration")
	ui.Kv("Name", cfg.User.Name)
	ui.Kv("Timezone", cfg.Calendar.Timezone)
	ui.Kv("New-type rules", ruleSummary(defaultRules(cfg)))
	fmt.Println()
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	fmt.Println()
	ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+paths.ConfigFile)))
	fmt.Println()

	return nil
}
