package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/precheck/checks"
	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/logger"
	"github.com/teranos/precheck/project"
	"github.com/teranos/precheck/watch"
)

// WatchCmd re-runs the prechecks whenever an input file changes
var WatchCmd = &cobra.Command{
	Use:   "watch <project-dir>",
	Short: "Re-run the prechecks when project files change",
	Long: `Run the prechecks once, then again every time the GDS, LEF, Verilog
or info.yaml of the project is written. Bursts of writes are collapsed into a
single run (watch.debounce_ms). Writes to the DRC report and log are ignored.

Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRunOptions(cmd)
		if err != nil {
			return err
		}
		return runWatch(cmd.Context(), cmd.ErrOrStderr(), args[0], opts, nil)
	},
}

func init() {
	addRunFlags(WatchCmd)
}

// runWatch runs until ctx is cancelled. Fatal run errors are reported and
// the watch continues, since the next write may fix them.
func runWatch(ctx context.Context, out io.Writer, dir string, opts *runOptions, drc checks.DRCRunner) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := project.New(dir)
	if err != nil {
		return err
	}
	w, err := watch.New(p, opts.cfg.Debounce())
	if err != nil {
		return err
	}
	defer w.Close()

	log := logger.ComponentLogger("watch")
	once := func() {
		err := runCheck(ctx, out, dir, opts, drc)
		if err != nil && !errors.Is(err, errors.ErrChecksFailed) {
			log.Warnw("precheck run stopped", logger.FieldError, err)
		}
	}

	once()
	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Changes():
			if !ok {
				return nil
			}
			log.Infow("re-running prechecks", logger.FieldFile, name)
			once()
		}
	}
}
