package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/precheck/config.toml
	SourceUser        ConfigSource = "user"        // ~/.precheck/config.toml
	SourceProject     ConfigSource = "project"     // nearest precheck.toml
	SourceEnvironment ConfigSource = "environment" // PRECHECK_* env vars
	SourceFlag        ConfigSource = "flag"
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource
	Path   string // file path or environment variable name
}

// SettingInfo is one effective setting and its origin
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"`
}

// Introspect reports the effective value and origin of every key.
func Introspect(v *viper.Viper, sources map[string]SourceInfo) []SettingInfo {
	out := make([]SettingInfo, 0, len(Keys()))
	for _, key := range Keys() {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sources[key]; ok {
			info = si
		}
		envKey := EnvKey(key)
		if _, ok := os.LookupEnv(envKey); ok {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}
		out = append(out, SettingInfo{
			Key:        key,
			Value:      v.Get(key),
			Source:     info.Source,
			SourcePath: info.Path,
		})
	}
	return out
}

// EnvKey returns the environment variable that overrides key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Settings introspects the global configuration.
func Settings() []SettingInfo {
	v := GetViper()
	mu.Lock()
	defer mu.Unlock()
	return Introspect(v, ConfigSources)
}
