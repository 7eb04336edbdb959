package checks

import (
	"context"

	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/klayout"
	"github.com/teranos/precheck/logger"
)

// DRCRunner runs one batch DRC job to completion.
type DRCRunner interface {
	Run(ctx context.Context, j klayout.Job) klayout.Result
}

// CheckDRC runs the nwell/urpm spacing deck and reports a crash separately
// from rule violations.
func CheckDRC(ctx context.Context, rep *display.Reporter, runner DRCRunner, job klayout.Job) klayout.Result {
	res := runner.Run(ctx, job)
	log := logger.LoggerFromContext(ctx)

	switch res.Outcome {
	case klayout.Crashed:
		log.Warnw("DRC crashed", logger.FieldExitCode, res.ExitCode, logger.FieldError, res.Err, logger.FieldFile, job.Log)
		rep.Fail("urpm to nwell DRC crashed")
	case klayout.Violations:
		rep.Fail("urpm to nwell DRC failed")
	default:
		rep.Pass("urpm to nwell DRC passed")
	}
	return res
}
