package gds

import (
	"fmt"

	"github.com/teranos/precheck/geom"
)

// Tag identifies the layer and sub-purpose of a shape: (layer, datatype)
// for polygons and paths, (layer, texttype) for labels.
type Tag struct {
	Layer int
	Type  int
}

func (t Tag) String() string { return fmt.Sprintf("(%d, %d)", t.Layer, t.Type) }

// Less orders tags by layer, then type.
func (t Tag) Less(o Tag) bool {
	if t.Layer != o.Layer {
		return t.Layer < o.Layer
	}
	return t.Type < o.Type
}

// Polygon is a BOUNDARY (or BOX) element.
type Polygon struct {
	Tag    Tag
	Points geom.Polygon
}

// Path is a PATH element: a centerline with a width and an end style.
type Path struct {
	Tag      Tag
	Width    float64
	PathType int
	BeginExt float64
	EndExt   float64
	Points   []geom.Point
}

// Label is a TEXT element.
type Label struct {
	Tag    Tag
	Text   string
	Origin geom.Point
}

// Reference is an SREF or AREF element. For an SREF Columns and Rows are 1
// and the lattice vectors are zero.
type Reference struct {
	Name          string
	Origin        geom.Point
	Rotation      float64 // degrees, counter-clockwise
	Magnification float64
	XReflection   bool
	Columns, Rows int
	ColStep       geom.Point // displacement between columns, parent coordinates
	RowStep       geom.Point // displacement between rows, parent coordinates

	// Cell is resolved after reading; nil when the name is not defined in the library.
	Cell *Cell
}

// Placements returns the transform of every instance of the reference.
func (r *Reference) Placements() []geom.Affine {
	cols, rows := max(r.Columns, 1), max(r.Rows, 1)
	base := geom.Placement(r.Origin, r.Rotation, r.Magnification, r.XReflection)
	out := make([]geom.Affine, 0, cols*rows)
	for c := 0; c < cols; c++ {
		for row := 0; row < rows; row++ {
			d := r.ColStep.Scale(float64(c)).Add(r.RowStep.Scale(float64(row)))
			out = append(out, base.Translated(d))
		}
	}
	return out
}

// Cell is a GDSII structure.
type Cell struct {
	Name       string
	Polygons   []*Polygon
	Paths      []*Path
	Labels     []*Label
	References []*Reference
}

// Library is a parsed GDSII stream.
type Library struct {
	Name string
	// UserUnit is the size of a database unit in user units (typically 0.001).
	UserUnit float64
	// Precision is the size of a database unit in meters (typically 1e-9).
	Precision float64
	Cells     []*Cell

	byName map[string]*Cell
}

// NewLibrary creates an empty library with the usual micron/nanometer units.
func NewLibrary(name string) *Library {
	return &Library{
		Name:      name,
		UserUnit:  1e-3,
		Precision: 1e-9,
		byName:    make(map[string]*Cell),
	}
}

// AddCell appends c to the library and resolves references by name.
func (l *Library) AddCell(c *Cell) *Cell {
	if l.byName == nil {
		l.byName = make(map[string]*Cell)
	}
	l.Cells = append(l.Cells, c)
	if _, dup := l.byName[c.Name]; !dup {
		l.byName[c.Name] = c
	}
	l.resolve()
	return c
}

// Cell returns the cell with the given name.
func (l *Library) Cell(name string) (*Cell, bool) {
	c, ok := l.byName[name]
	return c, ok
}

func (l *Library) resolve() {
	for _, c := range l.Cells {
		for _, ref := range c.References {
			ref.Cell = l.byName[ref.Name]
		}
	}
}

// TopLevel returns the cells that no other cell references, in file order.
func (l *Library) TopLevel() []*Cell {
	referenced := make(map[string]bool)
	for _, c := range l.Cells {
		for _, ref := range c.References {
			if ref.Name != c.Name {
				referenced[ref.Name] = true
			}
		}
	}
	var tops []*Cell
	for _, c := range l.Cells {
		if !referenced[c.Name] {
			tops = append(tops, c)
		}
	}
	return tops
}

// CellNames returns the cell names in file order.
func (l *Library) CellNames() []string {
	names := make([]string, len(l.Cells))
	for i, c := range l.Cells {
		names[i] = c.Name
	}
	return names
}

// Stats summarises the library for logging.
func (l *Library) Stats() (cells, polygons, paths, labels, refs int) {
	for _, c := range l.Cells {
		polygons += len(c.Polygons)
		paths += len(c.Paths)
		labels += len(c.Labels)
		refs += len(c.References)
	}
	return len(l.Cells), polygons, paths, labels, refs
}
