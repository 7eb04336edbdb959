package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/precheck/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper

	// ConfigSources records which file each key was last merged from.
	ConfigSources = make(map[string]SourceInfo)
)

// Load reads the precheck configuration using Viper
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for flag binding and key lookups
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, ignoring other files and the environment.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	ConfigSources = make(map[string]SourceInfo)
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	wd, _ := os.Getwd()
	mergeConfigFiles(v, CandidatePaths(wd), ConfigSources)

	viperInstance = v
	return v
}

// Candidate is a configuration file location and its precedence class.
type Candidate struct {
	Path   string       `json:"path"`
	Source ConfigSource `json:"source"`
}

// CandidatePaths lists the configuration files consulted, lowest precedence
// first. The project file is the nearest precheck.toml above startDir.
func CandidatePaths(startDir string) []Candidate {
	out := []Candidate{{Path: SystemConfigPath, Source: SourceSystem}}
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out, Candidate{Path: filepath.Join(home, UserConfigDir, "config.toml"), Source: SourceUser})
	}
	if p := findProjectConfig(startDir); p != "" {
		out = append(out, Candidate{Path: p, Source: SourceProject})
	}
	return out
}

// findProjectConfig walks up from dir looking for precheck.toml.
func findProjectConfig(dir string) string {
	if dir == "" {
		return ""
	}
	for {
		p := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeConfigFiles merges existing candidates into v in order, so later
// files override earlier ones.
func mergeConfigFiles(v *viper.Viper, candidates []Candidate, sources map[string]SourceInfo) {
	for _, c := range candidates {
		if _, err := os.Stat(c.Path); err != nil {
			continue
		}
		tmp := viper.New()
		tmp.SetConfigFile(c.Path)
		tmp.SetConfigType("toml")
		if err := tmp.ReadInConfig(); err != nil {
			continue
		}
		if err := v.MergeConfigMap(tmp.AllSettings()); err != nil {
			continue
		}
		markSettingsFromSource(tmp.AllSettings(), "", c.Source, c.Path, sources)
	}
}

// markSettingsFromSource records source for every leaf key of settings.
func markSettingsFromSource(settings map[string]interface{}, prefix string, source ConfigSource, path string, sources map[string]SourceInfo) {
	for key, value := range settings {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			markSettingsFromSource(nested, full, source, path, sources)
			continue
		}
		sources[full] = SourceInfo{Source: source, Path: path}
	}
}
