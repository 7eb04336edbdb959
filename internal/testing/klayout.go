package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Report databases the fake engine can write.
const (
	CleanReport = `<?xml version="1.0" encoding="utf-8"?>
<report-database>
 <categories/>
 <cells/>
 <items>
 </items>
</report-database>
`
	ViolationReport = `<?xml version="1.0" encoding="utf-8"?>
<report-database>
 <categories>
  <category><name>nwell_urpm</name></category>
 </categories>
 <items>
  <item>
   <category>'nwell_urpm'</category>
   <cell>tt_um_example</cell>
  </item>
  <item>
   <category>'nwell_urpm'</category>
   <cell>tt_um_example</cell>
  </item>
 </items>
</report-database>
`
)

// FakeOptions scripts the behaviour of a fake klayout executable.
type FakeOptions struct {
	ExitCode   int
	Report     string // written to the report= path; empty means CleanReport
	SkipReport bool
	Version    string // printed for -v; empty means "KLayout 0.28.12"
}

// FakeKLayout is a shell script standing in for klayout.
type FakeKLayout struct {
	Path     string
	ArgsFile string // one argument per line from the last invocation
}

// NewFakeKLayout writes the script into a fresh temp dir.
func NewFakeKLayout(t *testing.T, opts FakeOptions) *FakeKLayout {
	t.Helper()

	dir := t.TempDir()
	if opts.Report == "" {
		opts.Report = CleanReport
	}
	if opts.Version == "" {
		opts.Version = "KLayout 0.28.12"
	}
	fk := &FakeKLayout{
		Path:     filepath.Join(dir, "klayout"),
		ArgsFile: filepath.Join(dir, "args.txt"),
	}
	reportFile := filepath.Join(dir, "report.xml")
	if err := os.WriteFile(reportFile, []byte(opts.Report), 0o644); err != nil {
		t.Fatalf("Failed to write fake report: %v", err)
	}

	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&sb, "printf '%%s\\n' \"$@\" > '%s'\n", fk.ArgsFile)
	fmt.Fprintf(&sb, "if [ \"$1\" = \"-v\" ]; then echo '%s'; exit 0; fi\n", opts.Version)
	sb.WriteString("echo \"fake klayout running\"\n")
	sb.WriteString("echo \"fake klayout warning\" >&2\n")
	sb.WriteString("report=\"\"\n")
	sb.WriteString("for a in \"$@\"; do case \"$a\" in report=*) report=\"${a#report=}\" ;; esac; done\n")
	if !opts.SkipReport {
		fmt.Fprintf(&sb, "[ -n \"$report\" ] && cp '%s' \"$report\"\n", reportFile)
	}
	fmt.Fprintf(&sb, "exit %d\n", opts.ExitCode)

	if err := os.WriteFile(fk.Path, []byte(sb.String()), 0o755); err != nil {
		t.Fatalf("Failed to write fake klayout: %v", err)
	}
	return fk
}

// Args returns the arguments of the last invocation.
func (fk *FakeKLayout) Args(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(fk.ArgsFile)
	if err != nil {
		t.Fatalf("fake klayout was not invoked: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
