// Package config holds precheck's tool configuration: where the rule checker
// lives, how it is invoked, and how verdicts are printed.
package config

// Config represents the precheck configuration
type Config struct {
	KLayout KLayoutConfig `mapstructure:"klayout" toml:"klayout" json:"klayout" yaml:"klayout"`
	DRC     DRCConfig     `mapstructure:"drc" toml:"drc" json:"drc" yaml:"drc"`
	Output  OutputConfig  `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// KLayoutConfig configures the external rule checker binary
type KLayoutConfig struct {
	Command    string `mapstructure:"command" toml:"command" json:"command" yaml:"command"`             // shell-quoted command prefix, e.g. "flatpak run de.klayout.KLayout"
	MinVersion string `mapstructure:"min_version" toml:"min_version" json:"min_version" yaml:"min_version"` // semver constraint, empty = no check
}

// DRCConfig configures the nwell/urpm rule deck run
type DRCConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled" yaml:"enabled"`
	Script  string `mapstructure:"script" toml:"script" json:"script" yaml:"script"`     // empty = nwell_urpm.drc next to the executable
	Report  string `mapstructure:"report" toml:"report" json:"report" yaml:"report"`     // file name inside the project directory
	Log     string `mapstructure:"log" toml:"log" json:"log" yaml:"log"`                 // file name inside the project directory
	Threads int    `mapstructure:"threads" toml:"threads" json:"threads" yaml:"threads"` // 0 = host CPU count
}

// OutputConfig configures verdict printing
type OutputConfig struct {
	Color    bool `mapstructure:"color" toml:"color" json:"color" yaml:"color"`
	Summary  bool `mapstructure:"summary" toml:"summary" json:"summary" yaml:"summary"`
	JSONLogs bool `mapstructure:"json_logs" toml:"json_logs" json:"json_logs" yaml:"json_logs"`
}

// WatchConfig configures `precheck watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
}

// File names and locations
const (
	ProjectConfigName = "precheck.toml"
	UserConfigDir     = ".precheck"
	SystemConfigPath  = "/etc/precheck/config.toml"
	EnvPrefix         = "PRECHECK"
)
