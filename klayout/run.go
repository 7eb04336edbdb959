package klayout

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/logger"
)

// Outcome classifies a DRC run.
type Outcome int

const (
	// Clean means the engine exited normally and reported no violations.
	Clean Outcome = iota
	// Violations means the report contains at least one item.
	Violations
	// Crashed means the engine could not be started, exited non-zero, or
	// left no report behind.
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Clean:
		return "clean"
	case Violations:
		return "violations"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}

// Result is the outcome of Run.
type Result struct {
	Outcome    Outcome
	ExitCode   int
	Duration   time.Duration
	Categories map[string]int // violation count per rule category
	Err        error          // why the run counts as crashed
}

// Runner executes jobs with a fixed command prefix.
type Runner struct {
	Command []string
}

// NewRunner splits command into the prefix used for every job.
func NewRunner(command string) (*Runner, error) {
	argv, err := SplitCommand(command)
	if err != nil {
		return nil, err
	}
	return &Runner{Command: argv}, nil
}

// Run executes j and blocks until the engine exits. No timeout is applied;
// ctx only stops the run when the caller cancels it.
func (r *Runner) Run(ctx context.Context, j Job) Result {
	log := logger.ComponentLogger("klayout")
	argv := append(append([]string{}, r.Command[1:]...), j.Args()...)

	// a stale report from an earlier run must not be mistaken for this one
	if err := os.Remove(j.Report); err != nil && !os.IsNotExist(err) {
		return Result{Outcome: Crashed, ExitCode: -1, Err: errors.Wrapf(err, "failed to remove stale report %s", j.Report)}
	}

	logFile, err := os.Create(j.Log)
	if err != nil {
		return Result{Outcome: Crashed, ExitCode: -1, Err: errors.Wrapf(err, "failed to create log %s", j.Log)}
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, r.Command[0], argv...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if logger.Enabled(logger.OutputSubprocess) {
		log.Infow("running DRC",
			logger.FieldCommand, r.Command[0],
			"args", argv,
			logger.FieldThreads, j.Threads,
			logger.FieldCell, j.TopCell,
			logger.FieldFile, j.Input)
	}

	start := time.Now()
	runErr := cmd.Run()
	res := Result{Duration: time.Since(start)}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	} else {
		res.ExitCode = -1
	}

	if logger.Enabled(logger.OutputSubprocess) {
		log.Infow("DRC finished",
			logger.FieldExitCode, res.ExitCode,
			logger.FieldDurationMS, res.Duration.Milliseconds())
	}

	if runErr != nil {
		res.Outcome = Crashed
		res.Err = errors.Wrapf(runErr, "%s exited abnormally, see %s", r.Command[0], j.Log)
		return res
	}

	data, err := os.ReadFile(j.Report)
	if err != nil {
		res.Outcome = Crashed
		res.Err = errors.Wrapf(err, "no report written, see %s", j.Log)
		return res
	}

	res.Outcome = Clean
	if HasViolations(data) {
		res.Outcome = Violations
	}
	if cats, err := CountCategories(data); err != nil {
		log.Debugw("could not parse report", logger.FieldError, err)
	} else {
		res.Categories = cats
		for name, n := range cats {
			log.Infow("DRC violations", "category", name, logger.FieldCount, n)
		}
	}
	return res
}
