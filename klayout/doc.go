// Package klayout drives the KLayout batch DRC engine: it builds the argument
// vector for a rule deck, runs it to completion with output captured in a log
// file, and inspects the resulting report database.
package klayout
