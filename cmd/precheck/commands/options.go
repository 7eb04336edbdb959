package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/precheck/config"
	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/logger"
)

// addRunFlags registers the flags shared by every command that runs checks.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Exit with status 1 when any check fails")
	cmd.Flags().Bool("no-drc", false, "Skip the urpm to nwell DRC run")
	cmd.Flags().Bool("color", false, "Colour [PASS]/[FAIL] markers")
	cmd.Flags().Bool("summary", false, "Print a pass/fail count after the checks")
}

// runOptions are the effective settings of one check run.
type runOptions struct {
	cfg    config.Config
	strict bool
}

// loadRunOptions loads the configuration and applies flag overrides to a copy
// of it, so repeated runs never see each other's flags.
func loadRunOptions(cmd *cobra.Command) (*runOptions, error) {
	loaded, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	opts := &runOptions{cfg: *loaded}

	flags := cmd.Flags()
	if noDRC, _ := flags.GetBool("no-drc"); noDRC {
		opts.cfg.DRC.Enabled = false
	}
	if flags.Changed("color") {
		opts.cfg.Output.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("summary") {
		opts.cfg.Output.Summary, _ = flags.GetBool("summary")
	}
	opts.strict, _ = flags.GetBool("strict")

	if err := opts.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	if logger.Enabled(logger.OutputConfig) {
		logger.Debugw("run options",
			"drc", opts.cfg.DRC.Enabled, "klayout", opts.cfg.KLayout.Command,
			logger.FieldThreads, opts.cfg.DRC.Threads, "strict", opts.strict)
	}
	return opts, nil
}
