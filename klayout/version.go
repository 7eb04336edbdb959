package klayout

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/precheck/errors"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ParseVersion extracts the version from `klayout -v` output such as
// "KLayout 0.28.12".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindString(output)
	if m == "" {
		return nil, errors.Newf("no version in %q", output)
	}
	return semver.NewVersion(m)
}

// Version runs the engine with -v and parses its version.
func (r *Runner) Version(ctx context.Context) (*semver.Version, error) {
	argv := append(append([]string{}, r.Command[1:]...), "-v")
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Command[0], argv...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "failed to run %s -v", r.Command[0])
	}
	return ParseVersion(out.String())
}

// CheckVersion reports whether the installed engine satisfies constraint.
// An empty constraint always passes without running the engine.
func (r *Runner) CheckVersion(ctx context.Context, constraint string) (bool, *semver.Version, error) {
	if constraint == "" {
		return true, nil, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, nil, errors.Wrapf(err, "invalid version constraint %q", constraint)
	}
	v, err := r.Version(ctx)
	if err != nil {
		return false, nil, err
	}
	return c.Check(v), v, nil
}
