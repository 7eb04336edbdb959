// Package display prints check verdicts.
package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"
)

// Verdict markers. Callers parse output for these, so they never change.
const (
	PassMarker = "[PASS]"
	FailMarker = "[FAIL]"
)

// Result is a single verdict line.
type Result struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// String renders the verdict without colour.
func (r Result) String() string {
	if r.Passed {
		return PassMarker + " " + r.Message
	}
	return FailMarker + " " + r.Message
}

// Reporter writes verdict lines and remembers them for the summary.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	color   bool
	results []Result
}

// NewReporter writes verdicts to out, colouring the markers when color is set.
func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{out: out, color: color}
}

// Pass records and prints a passing verdict.
func (r *Reporter) Pass(format string, args ...interface{}) {
	r.Report(Result{Passed: true, Message: fmt.Sprintf(format, args...)})
}

// Fail records and prints a failing verdict.
func (r *Reporter) Fail(format string, args ...interface{}) {
	r.Report(Result{Passed: false, Message: fmt.Sprintf(format, args...)})
}

// Verdict prints a pass when ok holds and a fail otherwise.
func (r *Reporter) Verdict(ok bool, pass, fail string) {
	if ok {
		r.Report(Result{Passed: true, Message: pass})
	} else {
		r.Report(Result{Passed: false, Message: fail})
	}
}

// Report records and prints res.
func (r *Reporter) Report(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	fmt.Fprintln(r.out, r.render(res))
}

// Println writes an unmarked line such as the run header.
func (r *Reporter) Println(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) render(res Result) string {
	if !r.color {
		return res.String()
	}
	if res.Passed {
		return pterm.Green(PassMarker) + " " + res.Message
	}
	return pterm.Red(FailMarker) + " " + res.Message
}

// Results returns a copy of the verdicts reported so far.
func (r *Reporter) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Result(nil), r.results...)
}

// Counts returns the number of passing and failing verdicts.
func (r *Reporter) Counts() (passed, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.results {
		if res.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Failed reports whether any verdict failed.
func (r *Reporter) Failed() bool {
	_, failed := r.Counts()
	return failed > 0
}

// Summary prints a closing line with the verdict counts. It carries no
// marker so it is never mistaken for a verdict.
func (r *Reporter) Summary(project string) {
	passed, failed := r.Counts()
	line := fmt.Sprintf("%s: %d passed, %d failed", project, passed, failed)
	if r.color {
		if failed > 0 {
			line = pterm.LightRed(line)
		} else {
			line = pterm.LightGreen(line)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}
