package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/precheck/config"
	"github.com/teranos/precheck/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage precheck configuration",
	Long: `Display and validate precheck configuration.

Configuration sources (later overrides earlier):
1. Default values
2. System config (/etc/precheck/config.toml)
3. User config (~/.precheck/config.toml)
4. Project config (nearest precheck.toml, searching up from the working directory)
5. Environment variables (PRECHECK_* prefix, e.g. PRECHECK_DRC_THREADS)
6. Command line flags

Examples:
  precheck config show                  # Show current configuration
  precheck config show --format json    # Show configuration as JSON
  precheck config get klayout.command   # Get a specific value
  precheck config validate              # Validate current configuration`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., drc.threads, klayout.command)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	RunE:  runConfigWhere,
}

func init() {
	configShowCmd.Flags().String("format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	format, _ := cmd.Flags().GetString("format")
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	v := config.GetViper()
	if !v.IsSet(key) {
		return errors.WithHint(
			errors.Newf("configuration key %q not found", key),
			"run `precheck config where` to list keys")
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	wd, _ := os.Getwd()
	for _, c := range config.CandidatePaths(wd) {
		if _, err := os.Stat(c.Path); err != nil {
			continue
		}
		unknown, err := config.UnknownKeys(c.Path)
		if err != nil {
			return err
		}
		for _, k := range unknown {
			fmt.Fprintf(out, "warning: unknown key %q in %s\n", k, c.Path)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	fmt.Fprintln(out, "Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	wd, _ := os.Getwd()

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  [default]      built-in defaults")
	for _, c := range config.CandidatePaths(wd) {
		state := "missing"
		if _, err := os.Stat(c.Path); err == nil {
			state = "found"
		}
		fmt.Fprintf(out, "  [%s] %s (%s)\n", c.Source, c.Path, state)
	}
	fmt.Fprintf(out, "  [%s]  %s_* environment variables\n", config.SourceEnvironment, config.EnvPrefix)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Active configuration:")
	for _, s := range config.Settings() {
		src := string(s.Source)
		if s.SourcePath != "" && s.Source != config.SourceDefault {
			src += " " + s.SourcePath
		}
		fmt.Fprintf(out, "  %-20s = %-30v (%s)\n", s.Key, s.Value, src)
	}
	return nil
}
