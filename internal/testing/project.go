package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teranos/precheck/gds"
	"github.com/teranos/precheck/geom"
	"github.com/teranos/precheck/project"
)

// Tile dimensions of a 1x1 tile in microns.
const (
	TileWidth  = 161.0
	TileHeight = 111.52
)

// Default file contents for a well-formed digital project.
const (
	DefaultVerilog = `module tt_um_example (
    input  wire VGND,
    input  wire VDPWR,
    input  wire [7:0] ui_in
);
endmodule
`
	DefaultLEF = `MACRO tt_um_example
  PIN VGND
    USE GROUND ;
  END VGND
  PIN VDPWR
    USE POWER ;
  END VDPWR
END tt_um_example
`
	DefaultInfo = `project:
  title: example
  top_module: tt_um_example
  uses_3v3: false
  analog_pins: 0
`
)

// Layers used by fixtures.
var (
	BoundaryTag = gds.Tag{Layer: 235, Type: 4}
	Met4Tag     = gds.Tag{Layer: 71, Type: 20}
	Via3Tag     = gds.Tag{Layer: 70, Type: 44}
	Met1Tag     = gds.Tag{Layer: 68, Type: 20}
)

// Rect returns a rectangular polygon on tag.
func Rect(tag gds.Tag, x1, y1, x2, y2 float64) *gds.Polygon {
	return &gds.Polygon{Tag: tag, Points: geom.R(x1, y1, x2, y2).Polygon()}
}

// Tile builds a library whose single top cell carries the boundary marker
// over the whole tile, a met1 shape inside it, and extra.
func Tile(name string, extra ...*gds.Polygon) *gds.Library {
	lib := gds.NewLibrary(name)
	top := &gds.Cell{
		Name: name,
		Polygons: []*gds.Polygon{
			Rect(BoundaryTag, 0, 0, TileWidth, TileHeight),
			Rect(Met1Tag, 10, 10, 20, 20),
		},
	}
	top.Polygons = append(top.Polygons, extra...)
	lib.AddCell(top)
	return lib
}

// ProjectOptions describes a fixture project. Empty text fields take the
// defaults above; a nil Library takes Tile(Name).
type ProjectOptions struct {
	Name    string
	Library *gds.Library
	Verilog string
	LEF     string
	Info    string
	// Omit lists project files (by extension: ".gds", ".lef", ".v", "info.yaml") not to create.
	Omit []string
}

// NewProject writes a project directory under t.TempDir() and returns it.
func NewProject(t *testing.T, opts ProjectOptions) *project.Project {
	t.Helper()

	if opts.Name == "" {
		opts.Name = "tt_um_example"
	}
	if opts.Library == nil {
		opts.Library = Tile(opts.Name)
	}
	if opts.Verilog == "" {
		opts.Verilog = DefaultVerilog
	}
	if opts.LEF == "" {
		opts.LEF = DefaultLEF
	}
	if opts.Info == "" {
		opts.Info = DefaultInfo
	}

	dir := filepath.Join(t.TempDir(), opts.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create project dir: %v", err)
	}
	p, err := project.New(dir)
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	omit := make(map[string]bool)
	for _, o := range opts.Omit {
		omit[o] = true
	}
	if !omit[".gds"] {
		if err := gds.WriteFile(p.GDSPath, opts.Library); err != nil {
			t.Fatalf("Failed to write GDS: %v", err)
		}
	}
	write := func(key, path, content string) {
		if omit[key] {
			return
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	write(".lef", p.LEFPath, opts.LEF)
	write(".v", p.VerilogPath, opts.Verilog)
	write(project.InfoFile, p.InfoPath, opts.Info)
	return p
}
