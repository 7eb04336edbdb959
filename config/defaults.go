package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultKLayoutCommand = "klayout"
	DefaultDRCScript      = "nwell_urpm.drc"
	DefaultDRCReport      = "klayout_nw_urpm_check.xml"
	DefaultDRCLog         = "klayout_nw_urpm_check.log"
	DefaultDebounceMS     = 500
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("klayout.command", DefaultKLayoutCommand)
	v.SetDefault("klayout.min_version", "")

	v.SetDefault("drc.enabled", true)
	v.SetDefault("drc.script", "")
	v.SetDefault("drc.report", DefaultDRCReport)
	v.SetDefault("drc.log", DefaultDRCLog)
	v.SetDefault("drc.threads", 0)

	v.SetDefault("output.color", false)
	v.SetDefault("output.summary", false)
	v.SetDefault("output.json_logs", false)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}

// Keys lists every configuration key in display order.
func Keys() []string {
	return []string{
		"klayout.command",
		"klayout.min_version",
		"drc.enabled",
		"drc.script",
		"drc.report",
		"drc.log",
		"drc.threads",
		"output.color",
		"output.summary",
		"output.json_logs",
		"watch.debounce_ms",
	}
}

// Debounce returns the watch debounce period
func (c *Config) Debounce() time.Duration {
	if c.Watch.DebounceMS <= 0 {
		return DefaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}
