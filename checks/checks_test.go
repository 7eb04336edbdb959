package checks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/gds"
	"github.com/teranos/precheck/geom"
	prechecktest "github.com/teranos/precheck/internal/testing"
	"github.com/teranos/precheck/project"
)

func newReporter() (*display.Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return display.NewReporter(&buf, false), &buf
}

// tileWith builds a tile whose top cell references cells through refs.
func tileWith(refs []*gds.Reference, cells ...*gds.Cell) *gds.Library {
	lib := gds.NewLibrary("tt_um_a")
	for _, c := range cells {
		lib.AddCell(c)
	}
	top := prechecktest.Tile("tt_um_a").Cells[0]
	top.References = refs
	lib.AddCell(top)
	return lib
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestCheckBoundary(t *testing.T) {
	t.Run("shapes inside", func(t *testing.T) {
		rep, buf := newReporter()
		top := CheckBoundary(rep, prechecktest.Tile("tt_um_a"))
		require.NotNil(t, top)
		assert.Equal(t, "[PASS] no shapes outside project area\n", buf.String())
	})

	t.Run("shape touching the edge", func(t *testing.T) {
		rep, buf := newReporter()
		CheckBoundary(rep, prechecktest.Tile("tt_um_a",
			prechecktest.Rect(prechecktest.Met1Tag, 150, 0, prechecktest.TileWidth, 5)))
		assert.Equal(t, "[PASS] no shapes outside project area\n", buf.String())
	})

	t.Run("shape outside", func(t *testing.T) {
		rep, buf := newReporter()
		CheckBoundary(rep, prechecktest.Tile("tt_um_a",
			prechecktest.Rect(prechecktest.Met1Tag, 170, 10, 175, 20)))
		assert.Equal(t, "[FAIL] shapes outside project area\n", buf.String())
	})

	// only the top cell's own shapes are filtered, so geometry that sticks out
	// from inside a referenced cell is counted on both sides of the comparison
	t.Run("referenced shape outside is not detected", func(t *testing.T) {
		leaf := &gds.Cell{Name: "leaf", Polygons: []*gds.Polygon{
			prechecktest.Rect(prechecktest.Met1Tag, 0, 0, 1, 1),
		}}
		lib := tileWith([]*gds.Reference{{Name: "leaf", Origin: geom.Point{X: 10, Y: -3}}}, leaf)

		rep, buf := newReporter()
		CheckBoundary(rep, lib)
		assert.Equal(t, "[PASS] no shapes outside project area\n", buf.String())
	})

	t.Run("top level not unique", func(t *testing.T) {
		lib := prechecktest.Tile("tt_um_a")
		lib.AddCell(&gds.Cell{Name: "stray", Polygons: []*gds.Polygon{
			prechecktest.Rect(prechecktest.Met1Tag, 500, 500, 501, 501),
		}})

		rep, buf := newReporter()
		top := CheckBoundary(rep, lib)
		require.NotNil(t, top)
		assert.Equal(t, "tt_um_a", top.Name, "continues with the first top cell")
		assert.Equal(t, []string{
			"[FAIL] gds top level not unique",
			"[PASS] no shapes outside project area",
		}, lines(buf))
	})

	t.Run("empty library", func(t *testing.T) {
		rep, buf := newReporter()
		assert.Nil(t, CheckBoundary(rep, gds.NewLibrary("empty")))
		assert.Equal(t, []string{
			"[FAIL] gds top level not unique",
			"[FAIL] shapes outside project area: no top level cell",
		}, lines(buf))
	})
}

func TestPrepareText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"alias", "input VPWR;", "input VDPWR;"},
		{"line comment", "wire a; // VGND here\nwire b;", "wire a; \nwire b;"},
		{"block comment", "a /* VGND */ b", "a  b"},
		{"greedy across lines", "a /* x */ VGND\n/* y */ b", "a  b"},
		{"unterminated block", "a /* VGND", "a /* VGND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrepareText(tt.in))
		})
	}
}

func TestCheckPower(t *testing.T) {
	const all = "VGND VPWR VAPWR"

	t.Run("digital tile", func(t *testing.T) {
		rep, buf := newReporter()
		CheckPower(rep, "VGND VPWR", "VGND VDPWR", false)
		assert.Equal(t, []string{
			"[PASS] Verilog contains VGND: True",
			"[PASS] Verilog contains VDPWR: True",
			"[PASS] Verilog contains VAPWR: False",
			"[PASS] LEF contains VGND: True",
			"[PASS] LEF contains VDPWR: True",
			"[PASS] LEF contains VAPWR: False",
		}, lines(buf))
	})

	t.Run("analog supply not expected", func(t *testing.T) {
		rep, buf := newReporter()
		CheckPower(rep, all, all, false)
		out := lines(buf)
		assert.Contains(t, out, "[FAIL] Verilog contains VAPWR: True, expected: False")
		assert.Contains(t, out, "[FAIL] LEF contains VAPWR: True, expected: False")
		assert.Contains(t, out, "[PASS] Verilog contains VGND: True")
	})

	t.Run("3v3 tile", func(t *testing.T) {
		rep, buf := newReporter()
		CheckPower(rep, all, "VGND VDPWR", true)
		out := lines(buf)
		assert.Contains(t, out, "[PASS] Verilog contains VAPWR: True")
		assert.Contains(t, out, "[FAIL] LEF contains VAPWR: False, expected: True")
	})

	t.Run("tokens only in comments", func(t *testing.T) {
		rep, buf := newReporter()
		CheckPower(rep, "// VGND VPWR\nmodule x; endmodule", "/* VGND VDPWR */", false)
		out := lines(buf)
		assert.Contains(t, out, "[FAIL] Verilog contains VGND: False, expected: True")
		assert.Contains(t, out, "[FAIL] LEF contains VDPWR: False, expected: True")
	})
}

func TestCheckLayers(t *testing.T) {
	rep, buf := newReporter()
	CheckLayers(rep, prechecktest.Tile("tt_um_a"))
	assert.Equal(t, "[PASS] no invalid layers in GDS\n", buf.String())

	lib := prechecktest.Tile("tt_um_a", prechecktest.Rect(gds.Tag{Layer: 999, Type: 0}, 1, 1, 2, 2))
	top, _ := lib.Cell("tt_um_a")
	top.Labels = append(top.Labels, &gds.Label{Tag: gds.Tag{Layer: 68, Type: 99}, Text: "x"})

	rep, buf = newReporter()
	CheckLayers(rep, lib)
	assert.Equal(t, "[FAIL] invalid layers in GDS: {(68, 99), (999, 0)}\n", buf.String())
}

func TestAllowList(t *testing.T) {
	valid := ValidLayers()
	assert.Len(t, valid, 433)
	for _, tag := range []gds.Tag{BoundaryLayer, Met4, Via3, {Layer: 10, Type: 0}, {Layer: 236, Type: 0}} {
		assert.True(t, valid.Has(tag), "%v", tag)
	}
	assert.False(t, valid.Has(gds.Tag{Layer: 999, Type: 0}))

	delete(valid, Met4)
	assert.True(t, ValidLayers().Has(Met4), "copy is independent")
}

func TestCheckCellNames(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  string
	}{
		{"clean", []string{"tt_um_a", "foo_bar"}, "[PASS] no invalid cell names in GDS\n"},
		{"slash", []string{"tt_um_a", "foo/bar"}, "[FAIL] invalid cell names in GDS: ['foo/bar']\n"},
		{"hash and slash", []string{"a#1", "tt_um_a", "b/c"}, "[FAIL] invalid cell names in GDS: ['a#1', 'b/c']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := gds.NewLibrary("lib")
			for _, n := range tt.cells {
				lib.AddCell(&gds.Cell{Name: n})
			}
			rep, buf := newReporter()
			CheckCellNames(rep, lib)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPyList(t *testing.T) {
	assert.Equal(t, "[]", pyList(nil))
	assert.Equal(t, `["it's"]`, pyList([]string{"it's"}))
	assert.Equal(t, `['a\\b']`, pyList([]string{`a\b`}))
}

func TestProbesFor(t *testing.T) {
	p := ProbesFor(0, false)
	assert.InDelta(t, 151.81, p.Over.Min.X, 1e-9)
	assert.InDelta(t, 152.71, p.Over.Max.X, 1e-9)
	assert.InDelta(t, 1.1, p.Above.Min.Y, 1e-9)
	assert.InDelta(t, 1.5, p.Above.Max.Y, 1e-9)
	assert.InDelta(t, -0.5, p.Below.Min.Y, 1e-9)
	assert.InDelta(t, -0.1, p.Below.Max.Y, 1e-9)
	assert.InDelta(t, 151.31, p.Left.Min.X, 1e-9)
	assert.InDelta(t, 151.71, p.Left.Max.X, 1e-9)
	assert.InDelta(t, 152.81, p.Right.Min.X, 1e-9)
	assert.InDelta(t, 153.21, p.Right.Max.X, 1e-9)

	shifted := ProbesFor(7, true)
	assert.InDelta(t, 16.57-15.64, shifted.Over.Min.X, 1e-9)
}

// viaOn places a via3 square inside the pad of slot pin.
func viaOn(pin int, uses3V3 bool) *gds.Polygon {
	o := ProbesFor(pin, uses3V3).Over
	return prechecktest.Rect(prechecktest.Via3Tag, o.Min.X+0.2, 0.2, o.Min.X+0.7, 0.7)
}

func metadata(t *testing.T, doc string) *project.Metadata {
	t.Helper()
	md, err := project.ParseMetadata([]byte(doc))
	require.NoError(t, err)
	return md
}

func topOf(t *testing.T, lib *gds.Library) *gds.Cell {
	t.Helper()
	top, unique := TopCell(lib)
	require.True(t, unique)
	return top
}

func TestCheckAnalog(t *testing.T) {
	t.Run("two declared pins connected", func(t *testing.T) {
		o1 := ProbesFor(1, false).Over
		lib := prechecktest.Tile("tt_um_a",
			viaOn(0, false),
			// met4 strip entering pad 1 from above without a via on the pad
			prechecktest.Rect(prechecktest.Met4Tag, o1.Min.X+0.2, 1.2, o1.Min.X+0.7, 20))
		md := metadata(t, "project:\n  analog_pins: 2\npinout:\n  ua[0]: vin\n  ua[1]: vout\n  ua[2]: \"\"\n")

		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, lib), md)
		assert.Equal(t, []string{
			"[PASS] analog pin 0 connected: True",
			"[PASS] analog pin 1 connected: True",
			"[PASS] analog pin 2 connected: False",
			"[PASS] analog pin 3 connected: False",
			"[PASS] analog pin 4 connected: False",
			"[PASS] analog pin 5 connected: False",
			"[PASS] analog pin 6 connected: False",
			"[PASS] analog pin 7 connected: False",
		}, lines(buf))
	})

	t.Run("pinout disagrees with count", func(t *testing.T) {
		lib := prechecktest.Tile("tt_um_a", viaOn(0, false))
		md := metadata(t, "project:\n  analog_pins: 1\npinout:\n  ua[0]: \"\"\n")

		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, lib), md)
		out := lines(buf)
		require.Len(t, out, 8)
		assert.Equal(t, "[FAIL] analog pin 0 connected: True, expected from `pinout.ua[0]`: False", out[0])
		assert.Equal(t, "[PASS] analog pin 1 connected: False", out[1])
	})

	t.Run("declared pin not connected", func(t *testing.T) {
		lib := prechecktest.Tile("tt_um_a")
		md := metadata(t, "project:\n  analog_pins: 1\npinout:\n  ua[0]: vin\n")

		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, lib), md)
		assert.Equal(t, "[FAIL] analog pin 0 connected: False, expected from `analog_pins=1`: True", lines(buf)[0])
	})

	t.Run("metal touching a probe edge is not a connection", func(t *testing.T) {
		o := ProbesFor(0, false).Over
		lib := prechecktest.Tile("tt_um_a",
			prechecktest.Rect(prechecktest.Met4Tag, o.Min.X, 1.5, o.Max.X, 3))
		md := metadata(t, "project:\n  analog_pins: 1\npinout:\n  ua[0]: vin\n")

		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, lib), md)
		assert.Equal(t, "[FAIL] analog pin 0 connected: False, expected from `analog_pins=1`: True", lines(buf)[0])
	})

	t.Run("one database unit of overlap is a connection", func(t *testing.T) {
		left := ProbesFor(0, false).Left
		lib := prechecktest.Tile("tt_um_a",
			prechecktest.Rect(prechecktest.Met4Tag, left.Max.X-0.001, 0.5, left.Max.X+0.05, 0.501))
		md := metadata(t, "project:\n  analog_pins: 1\npinout:\n  ua[0]: vin\n")

		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, lib), md)
		assert.Equal(t, "[PASS] analog pin 0 connected: True", lines(buf)[0])
	})

	t.Run("met4 path into the pad is not a connection", func(t *testing.T) {
		o := ProbesFor(0, false).Over
		lib := prechecktest.Tile("tt_um_a")
		top := lib.Cells[0]
		top.Paths = append(top.Paths, &gds.Path{
			Tag:    prechecktest.Met4Tag,
			Width:  0.3,
			Points: []geom.Point{{X: o.Min.X + 0.45, Y: 0.5}, {X: o.Min.X + 0.45, Y: 20}},
		})
		md := metadata(t, "project:\n  analog_pins: 1\npinout:\n  ua[0]: vin\n")

		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, lib), md)
		assert.Equal(t, "[FAIL] analog pin 0 connected: False, expected from `analog_pins=1`: True", lines(buf)[0])
	})

	t.Run("via in a subcell on a 3v3 tile", func(t *testing.T) {
		o := ProbesFor(0, true).Over
		padVia := &gds.Cell{Name: "pad_via", Polygons: []*gds.Polygon{
			prechecktest.Rect(prechecktest.Via3Tag, 0, 0, 0.4, 0.4),
		}}
		lib := tileWith([]*gds.Reference{{Name: "pad_via", Origin: geom.Point{X: o.Min.X + 0.2, Y: 0.2}}}, padVia)
		top := topOf(t, lib)

		md := metadata(t, "project:\n  uses_3v3: true\n  analog_pins: 1\npinout:\n  ua[0]: vin\n")
		rep, buf := newReporter()
		CheckAnalog(rep, top, md)
		assert.Equal(t, "[PASS] analog pin 0 connected: True", lines(buf)[0])
	})

	t.Run("no analog pins", func(t *testing.T) {
		rep, buf := newReporter()
		CheckAnalog(rep, topOf(t, prechecktest.Tile("tt_um_a", viaOn(3, false))), metadata(t, "project:\n  analog_pins: 0\n"))
		assert.Empty(t, buf.String())
	})
}
