// Package checks implements the submission prechecks. Each check reads the
// already-loaded project artifacts and prints one or more [PASS]/[FAIL]
// verdicts through a display.Reporter; only missing inputs and unreadable
// layouts or metadata stop a run.
package checks
