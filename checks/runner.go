package checks

import (
	"context"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"

	"github.com/teranos/precheck/config"
	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/gds"
	"github.com/teranos/precheck/klayout"
	"github.com/teranos/precheck/logger"
	"github.com/teranos/precheck/project"
)

// Check names used in logs.
const (
	CheckFilesName    = "files"
	CheckBoundaryName = "boundary"
	CheckPowerName    = "power"
	CheckLayersName   = "layers"
	CheckNamesName    = "cell_names"
	CheckDRCName      = "drc"
	CheckAnalogName   = "analog"
)

// Summary describes one completed run.
type Summary struct {
	RunID    string        `json:"run_id"`
	Project  string        `json:"project"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// Runner executes the prechecks in order against one project directory.
type Runner struct {
	cfg    *config.Config
	drc    DRCRunner
	script string
}

// NewRunner builds a runner. When drc is nil and DRC is enabled, the
// configured klayout command is used.
func NewRunner(cfg *config.Config, drc DRCRunner) (*Runner, error) {
	r := &Runner{cfg: cfg, drc: drc, script: cfg.DRC.Script}
	if !cfg.DRC.Enabled {
		return r, nil
	}
	if r.drc == nil {
		kl, err := klayout.NewRunner(cfg.KLayout.Command)
		if err != nil {
			return nil, err
		}
		r.drc = kl
	}
	if r.script == "" {
		s, err := klayout.ScriptBesideExecutable(config.DefaultDRCScript)
		if err != nil {
			return nil, err
		}
		r.script = s
	}
	return r, nil
}

// Run checks the project in dir, writing verdicts to rep. The returned error
// is non-nil only for conditions that stop the run: missing files and
// unreadable layout or metadata.
func (r *Runner) Run(ctx context.Context, rep *display.Reporter, dir string) (*Summary, error) {
	start := time.Now()
	p, err := project.New(dir)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = logger.WithProject(logger.WithRunID(ctx, runID), p.Name)
	sum := &Summary{RunID: runID, Project: p.Name}
	defer func() {
		sum.Passed, sum.Failed = rep.Counts()
		sum.Duration = time.Since(start)
		logger.LoggerFromContext(ctx).Infow("precheck finished",
			logger.FieldPassed, sum.Passed,
			logger.FieldFailed, sum.Failed,
			logger.FieldDurationMS, sum.Duration.Milliseconds())
	}()

	rep.Println("Checking project %s ...", p.Name)

	if err := r.step(ctx, CheckFilesName, func(ctx context.Context) error { return CheckFiles(rep, p) }); err != nil {
		return sum, err
	}

	lib, err := gds.ReadFile(p.GDSPath)
	if err != nil {
		rep.Fail("failed to read GDS: %v", err)
		return sum, err
	}
	if logger.Enabled(logger.OutputLayoutStats) {
		cells, polys, paths, labels, refs := lib.Stats()
		logger.LoggerFromContext(ctx).Debugw("layout loaded",
			logger.FieldFile, p.GDSPath, "cells", cells, "polygons", polys, "paths", paths, "labels", labels, "references", refs)
	}

	var top *gds.Cell
	r.step(ctx, CheckBoundaryName, func(ctx context.Context) error {
		top = CheckBoundary(rep, lib)
		return nil
	})

	md, err := project.LoadMetadata(p.InfoPath)
	if err != nil {
		rep.Fail("failed to load %s: %v", project.InfoFile, err)
		return sum, err
	}

	if err := r.step(ctx, CheckPowerName, func(ctx context.Context) error {
		verilog, err := os.ReadFile(p.VerilogPath)
		if err != nil {
			return errors.MarkMissingFile(errors.Wrap(err, "failed to read netlist"))
		}
		lef, err := os.ReadFile(p.LEFPath)
		if err != nil {
			return errors.MarkMissingFile(errors.Wrap(err, "failed to read LEF"))
		}
		CheckPower(rep, string(verilog), string(lef), md.Project.Uses3V3)
		return nil
	}); err != nil {
		rep.Fail("%v", err)
		return sum, err
	}

	r.step(ctx, CheckLayersName, func(ctx context.Context) error {
		CheckLayers(rep, lib)
		return nil
	})
	r.step(ctx, CheckNamesName, func(ctx context.Context) error {
		CheckCellNames(rep, lib)
		return nil
	})

	if r.cfg.DRC.Enabled {
		r.step(ctx, CheckDRCName, func(ctx context.Context) error {
			r.checkEngineVersion(ctx)
			CheckDRC(ctx, rep, r.drc, r.job(p, md))
			return nil
		})
	} else {
		logger.LoggerFromContext(ctx).Warnw("DRC disabled, urpm to nwell check skipped")
	}

	r.step(ctx, CheckAnalogName, func(ctx context.Context) error {
		CheckAnalog(rep, top, md)
		return nil
	})
	return sum, nil
}

func (r *Runner) job(p *project.Project, md *project.Metadata) klayout.Job {
	return klayout.Job{
		Input:   p.GDSPath,
		Report:  p.Path(r.cfg.DRC.Report),
		Log:     p.Path(r.cfg.DRC.Log),
		Script:  r.script,
		TopCell: md.TopModuleName(),
		Threads: klayout.Threads(r.cfg.DRC.Threads),
	}
}

type versionChecker interface {
	CheckVersion(ctx context.Context, constraint string) (bool, *semver.Version, error)
}

// checkEngineVersion warns when the installed engine does not satisfy
// klayout.min_version. It never produces a verdict.
func (r *Runner) checkEngineVersion(ctx context.Context) {
	if r.cfg.KLayout.MinVersion == "" {
		return
	}
	vc, ok := r.drc.(versionChecker)
	if !ok {
		return
	}
	log := logger.LoggerFromContext(ctx)
	satisfied, v, err := vc.CheckVersion(ctx, r.cfg.KLayout.MinVersion)
	switch {
	case err != nil:
		log.Warnw("could not determine klayout version", logger.FieldError, err)
	case !satisfied:
		log.Warnw("klayout version does not satisfy klayout.min_version",
			"version", v.String(), "constraint", r.cfg.KLayout.MinVersion)
	default:
		log.Debugw("klayout version", "version", v.String())
	}
}

// step runs one check with its name in the logging context.
func (r *Runner) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx = logger.WithCheck(ctx, name)
	log := logger.LoggerFromContext(ctx)
	if logger.Enabled(logger.OutputProgress) {
		log.Infow("check started")
	}
	start := time.Now()
	err := fn(ctx)
	switch {
	case err != nil:
		log.Infow("check stopped the run", logger.FieldError, err)
	case logger.Enabled(logger.OutputTiming):
		log.Debugw("check done", logger.FieldDurationMS, time.Since(start).Milliseconds())
	case logger.Enabled(logger.OutputProgress):
		log.Infow("check done")
	}
	return err
}
