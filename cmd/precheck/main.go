package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/precheck/cmd/precheck/commands"
	"github.com/teranos/precheck/config"
	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/logger"
)

var rootCmd = &cobra.Command{
	Use:   "precheck [project-dir]",
	Short: "precheck - tapeout prechecks for tile projects",
	Long: `precheck - tapeout prechecks for tile projects.

Checks a project directory before it is accepted into a shuttle: required
files, the tile boundary, power pins, layer and cell-name rules, the urpm to
nwell DRC and analog pin connectivity.

Available commands:
  check   - Run the prechecks once
  watch   - Re-run the prechecks when project files change
  config  - Show and validate configuration
  version - Show version information

Examples:
  precheck tt_um_example          # Same as 'precheck check tt_um_example'
  precheck check --no-drc proj    # Skip the KLayout DRC
  precheck watch proj             # Re-check on every save
  precheck config show            # Show current configuration`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if !cmd.Flags().Changed("json-logs") {
			if cfg, err := config.Load(); err == nil {
				jsonLogs = cfg.Output.JSONLogs
			}
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return commands.RunCheck(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON lines")
	commands.AddCheckFlags(rootCmd)

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Cleanup()
	os.Exit(exitCode(err))
}

// exitCode prints err when it has not been reported yet and maps it to the
// process status. Failed checks and fatal preconditions are already on
// stderr as [FAIL] lines.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errors.ErrChecksFailed), errors.IsFatal(err):
		return 1
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		return 1
	}
}
