package klayout

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/kballard/go-shellquote"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/teranos/precheck/errors"
)

// SplitCommand splits a shell-quoted command prefix such as
// `flatpak run de.klayout.KLayout` into an argument vector.
func SplitCommand(command string) ([]string, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid klayout command %q", command)
	}
	if len(argv) == 0 {
		return nil, errors.New("klayout command is empty")
	}
	return argv, nil
}

// Threads resolves the DRC thread hint. A positive configured value wins;
// otherwise the host's logical CPU count is used.
func Threads(configured int) int {
	if configured > 0 {
		return configured
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ScriptBesideExecutable returns name resolved against the directory of the
// running binary.
func ScriptBesideExecutable(name string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), name), nil
}

// Job describes one batch DRC run.
type Job struct {
	Input   string // layout file
	Report  string // report database to write
	Log     string // combined stdout/stderr
	Script  string // rule deck
	TopCell string
	Threads int
}

// Args returns the batch-mode arguments for j, without the command prefix.
// Every value is passed as its own argument; nothing goes through a shell.
func (j Job) Args() []string {
	return []string{
		"-b",
		"-rd", "input=" + j.Input,
		"-rd", "report=" + j.Report,
		"-rd", "thr=" + strconv.Itoa(j.Threads),
		"-rd", "top_cell=" + j.TopCell,
		"-r", j.Script,
	}
}
