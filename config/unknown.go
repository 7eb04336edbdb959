package config

import (
	"sort"

	bstoml "github.com/BurntSushi/toml"

	"github.com/teranos/precheck/errors"
)

// UnknownKeys returns the keys of the TOML file at path that no setting
// consumes, usually typos such as `drc.thread`.
func UnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := bstoml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys, nil
}
