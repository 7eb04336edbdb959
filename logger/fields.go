package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across precheck.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID   = "run_id"
	FieldProject = "project"

	// Checks
	FieldCheck   = "check"
	FieldVerdict = "verdict"
	FieldPassed  = "passed"
	FieldFailed  = "failed"

	// Layout
	FieldLayer = "layer"
	FieldCell  = "cell"
	FieldPin   = "pin"
	FieldCount = "count"

	// Subprocess
	FieldCommand  = "command"
	FieldExitCode = "exit_code"
	FieldThreads  = "threads"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)

type contextKey string

const (
	runIDKey   contextKey = "logger_run_id"
	projectKey contextKey = "logger_project"
	checkKey   contextKey = "logger_check"
)

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithProject adds the project name to the context for logging
func WithProject(ctx context.Context, project string) context.Context {
	return context.WithValue(ctx, projectKey, project)
}

// WithCheck adds the current check name to the context for logging
func WithCheck(ctx context.Context, check string) context.Context {
	return context.WithValue(ctx, checkKey, check)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Warnw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if project, ok := ctx.Value(projectKey).(string); ok && project != "" {
		fields = append(fields, FieldProject, project)
	}
	if check, ok := ctx.Value(checkKey).(string); ok && check != "" {
		fields = append(fields, FieldCheck, check)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	type Driver struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewDriver() *Driver {
//	    return &Driver{logger: logger.ComponentLogger("klayout")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
