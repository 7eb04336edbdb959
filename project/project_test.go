package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/precheck/errors"
)

func TestNewDerivesPaths(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tt_um_adder")
	p, err := New(dir + string(filepath.Separator))
	require.NoError(t, err)

	assert.Equal(t, "tt_um_adder", p.Name)
	assert.Equal(t, filepath.Join(dir, "tt_um_adder.gds"), p.GDSPath)
	assert.Equal(t, filepath.Join(dir, "tt_um_adder.lef"), p.LEFPath)
	assert.Equal(t, filepath.Join(dir, "tt_um_adder.v"), p.VerilogPath)
	assert.Equal(t, filepath.Join(dir, "info.yaml"), p.InfoPath)
	assert.Equal(t, []string{dir, p.GDSPath, p.LEFPath, p.VerilogPath, p.InfoPath}, p.RequiredPaths())

	_, err = New("")
	assert.Error(t, err)
}

func TestNewResolvesSymlinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "tt_um_real")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(root, "current")
	require.NoError(t, os.Symlink(target, link))

	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)

	p, err := New(link)
	require.NoError(t, err)
	assert.Equal(t, "tt_um_real", p.Name)
	assert.Equal(t, want, p.Dir)
	assert.Equal(t, filepath.Join(want, "tt_um_real.gds"), p.GDSPath)
}

func TestMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	p, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, p.RequiredPaths(), p.Missing())

	require.NoError(t, os.Mkdir(dir, 0o755))
	for _, f := range []string{p.GDSPath, p.VerilogPath, p.InfoPath} {
		require.NoError(t, os.WriteFile(f, nil, 0o644))
	}
	assert.Equal(t, []string{p.LEFPath}, p.Missing())
}

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata([]byte(`
project:
  title: adder
  uses_3v3: true
  wokwi_id: 1234
  analog_pins: 2
pinout:
  ua[0]: "vin"
  ua[1]: "vout"
  ua[2]: ""
`))
	require.NoError(t, err)
	assert.True(t, md.Project.Uses3V3)
	assert.Equal(t, 2, md.Project.AnalogPins)
	assert.Equal(t, "tt_um_wokwi_1234", md.TopModuleName())
	assert.True(t, md.PinDeclared(0))
	assert.True(t, md.PinDeclared(1))
	assert.False(t, md.PinDeclared(2))
	assert.False(t, md.PinDeclared(7))
}

func TestTopModuleName(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"explicit", "project:\n  top_module: tt_um_adder\n", "tt_um_adder"},
		{"wokwi string", "project:\n  wokwi_id: \"42\"\n", "tt_um_wokwi_42"},
		{"default", "project:\n  title: x\n", "tt_um_wokwi_0"},
		{"null id", "project:\n  wokwi_id:\n", "tt_um_wokwi_0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := ParseMetadata([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, md.TopModuleName())
		})
	}
}

func TestParseMetadataRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no project", "pinout:\n  ua[0]: x\n"},
		{"bad yaml", "project: [\n"},
		{"negative pins", "project:\n  analog_pins: -1\n"},
		{"too many pins", "project:\n  analog_pins: 9\n"},
		{"wrong type", "project:\n  uses_3v3: maybe\n"},
		{"wokwi mapping", "project:\n  wokwi_id: {a: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetadata([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidMetadata), "got %v", err)
		})
	}
}

func TestNilPinout(t *testing.T) {
	md, err := ParseMetadata([]byte("project:\n  analog_pins: 1\n"))
	require.NoError(t, err)
	assert.False(t, md.PinDeclared(0))
}

func TestLoadMetadataMissingFile(t *testing.T) {
	_, err := LoadMetadata(filepath.Join(t.TempDir(), "info.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidMetadata))
}
