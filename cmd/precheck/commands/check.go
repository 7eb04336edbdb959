package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/precheck/checks"
	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/errors"
)

// CheckCmd runs all prechecks once
var CheckCmd = &cobra.Command{
	Use:   "check <project-dir>",
	Short: "Run the prechecks on a project directory",
	Long: `Run the prechecks on a project directory.

The directory name is the project name: <dir>/<name>.gds, <name>.lef and
<name>.v are checked together with <dir>/info.yaml. Each check prints
[PASS] or [FAIL] lines to stderr.

The exit status is 1 when an input is missing or unreadable. Failed checks
only change the exit status with --strict.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCheck(cmd, args[0])
	},
}

func init() {
	addRunFlags(CheckCmd)
}

// AddCheckFlags lets the root command accept the check flags directly.
func AddCheckFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
}

// RunCheck runs the prechecks for dir with the flags of cmd.
func RunCheck(cmd *cobra.Command, dir string) error {
	opts, err := loadRunOptions(cmd)
	if err != nil {
		return err
	}
	return runCheck(cmd.Context(), cmd.ErrOrStderr(), dir, opts, nil)
}

// runCheck executes one run. drc overrides the configured engine when set.
func runCheck(ctx context.Context, out io.Writer, dir string, opts *runOptions, drc checks.DRCRunner) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runner, err := checks.NewRunner(&opts.cfg, drc)
	if err != nil {
		return err
	}

	rep := display.NewReporter(out, opts.cfg.Output.Color)
	sum, err := runner.Run(ctx, rep, dir)
	if opts.cfg.Output.Summary && sum != nil {
		rep.Summary(sum.Project)
	}
	if err != nil {
		return err
	}
	if opts.strict && sum.Failed > 0 {
		return errors.Mark(errors.Newf("%d checks failed", sum.Failed), errors.ErrChecksFailed)
	}
	return nil
}
