package project

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/precheck/errors"
)

// AnalogPinSlots is the number of analog pad positions on a tile.
const AnalogPinSlots = 8

// Metadata is the part of info.yaml the checks depend on.
type Metadata struct {
	Project *ProjectInfo      `yaml:"project"`
	Pinout  map[string]string `yaml:"pinout"`
}

// ProjectInfo is the `project` section of info.yaml.
type ProjectInfo struct {
	Title      string  `yaml:"title"`
	Uses3V3    bool    `yaml:"uses_3v3"`
	WokwiID    WokwiID `yaml:"wokwi_id"`
	TopModule  string  `yaml:"top_module"`
	AnalogPins int     `yaml:"analog_pins"`
}

// WokwiID accepts both numeric and string scalars.
type WokwiID string

var wokwiIDPattern = regexp.MustCompile(`^[0-9A-Za-z_]*$`)

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *WokwiID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: wokwi_id must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*w = ""
		return nil
	}
	v := strings.TrimSpace(node.Value)
	if !wokwiIDPattern.MatchString(v) {
		return errors.Newf("line %d: wokwi_id %q contains invalid characters", node.Line, v)
	}
	*w = WokwiID(v)
	return nil
}

// LoadMetadata reads and validates the descriptor at path.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.MarkInvalidMetadata(errors.Wrapf(err, "failed to read %s", path))
	}
	md, err := ParseMetadata(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return md, nil
}

// ParseMetadata decodes and validates an info.yaml document.
func ParseMetadata(data []byte) (*Metadata, error) {
	var md Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, errors.MarkInvalidMetadata(errors.Wrap(err, "failed to parse metadata"))
	}
	if err := md.Validate(); err != nil {
		return nil, err
	}
	return &md, nil
}

// Validate checks the shape of the descriptor before any check reads it.
func (m *Metadata) Validate() error {
	if m.Project == nil {
		return errors.MarkInvalidMetadata(errors.WithHint(
			errors.New("metadata has no project section"),
			"info.yaml must contain a top-level `project:` mapping"))
	}
	if n := m.Project.AnalogPins; n < 0 || n > AnalogPinSlots {
		return errors.MarkInvalidMetadata(
			errors.Newf("project.analog_pins must be between 0 and %d, got %d", AnalogPinSlots, n))
	}
	return nil
}

// TopModuleName returns the declared top module, or tt_um_wokwi_<id> when
// none is declared.
func (m *Metadata) TopModuleName() string {
	if m.Project.TopModule != "" {
		return m.Project.TopModule
	}
	id := string(m.Project.WokwiID)
	if id == "" {
		id = "0"
	}
	return "tt_um_wokwi_" + id
}

// PinDeclared reports whether pinout.ua[i] is a non-empty string.
func (m *Metadata) PinDeclared(i int) bool {
	return m.Pinout[fmt.Sprintf("ua[%d]", i)] != ""
}
