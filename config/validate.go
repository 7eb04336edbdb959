package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/precheck/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.KLayout.Command) == "" {
		return errors.New("klayout.command cannot be empty")
	}
	if c.KLayout.MinVersion != "" {
		if _, err := semver.NewConstraint(c.KLayout.MinVersion); err != nil {
			return errors.WithHint(
				errors.Wrapf(err, "klayout.min_version %q is not a version constraint", c.KLayout.MinVersion),
				`use a constraint such as ">= 0.28"`)
		}
	}

	// Threads: 0 = host CPU count, negative = invalid
	if c.DRC.Threads < 0 {
		return errors.Newf("drc.threads must be >= 0, got %d", c.DRC.Threads)
	}
	if c.DRC.Report == "" {
		return errors.New("drc.report cannot be empty")
	}
	if c.DRC.Log == "" {
		return errors.New("drc.log cannot be empty")
	}

	if c.Watch.DebounceMS <= 0 {
		return errors.Newf("watch.debounce_ms must be > 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}
