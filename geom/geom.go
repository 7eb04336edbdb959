package geom

import (
	"fmt"
	"math"
)

// AreaEpsilon is the smallest overlap area, in square user units, that counts
// as a real intersection. It sits well below one square database unit
// (1e-6 at the usual 1nm grid), so a single-unit overlap counts while
// edge-touching shapes and floating point slivers do not.
const AreaEpsilon = 1e-9

// Point is a location in user units.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p*s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Rect is an axis-aligned rectangle. A Rect is only meaningful when
// Min.X <= Max.X and Min.Y <= Max.Y.
type Rect struct {
	Min, Max Point
}

// R builds a rectangle from two opposite corners in any order.
func R(x1, y1, x2, y2 float64) Rect {
	return Rect{
		Min: Point{math.Min(x1, x2), math.Min(y1, y2)},
		Max: Point{math.Max(x1, x2), math.Max(y1, y2)},
	}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Corners returns the four corners counter-clockwise starting at Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}}
}

// Polygon returns r as a closed polygon.
func (r Rect) Polygon() Polygon {
	c := r.Corners()
	return Polygon{c[0], c[1], c[2], c[3]}
}

func (r Rect) String() string { return fmt.Sprintf("[%v, %v]", r.Min, r.Max) }

// Bounds is an accumulating bounding box. The zero value is empty.
type Bounds struct {
	rect  Rect
	valid bool
}

// AddPoint grows the box to include p.
func (b *Bounds) AddPoint(p Point) {
	if !b.valid {
		b.rect = Rect{Min: p, Max: p}
		b.valid = true
		return
	}
	b.rect.Min.X = math.Min(b.rect.Min.X, p.X)
	b.rect.Min.Y = math.Min(b.rect.Min.Y, p.Y)
	b.rect.Max.X = math.Max(b.rect.Max.X, p.X)
	b.rect.Max.Y = math.Max(b.rect.Max.Y, p.Y)
}

// AddRect grows the box to include r.
func (b *Bounds) AddRect(r Rect) {
	if !b.valid {
		b.rect = r
		b.valid = true
		return
	}
	b.rect = b.rect.Union(r)
}

// Merge grows the box to include o.
func (b *Bounds) Merge(o Bounds) {
	if o.valid {
		b.AddRect(o.rect)
	}
}

// Rect returns the accumulated rectangle and whether anything was added.
func (b Bounds) Rect() (Rect, bool) { return b.rect, b.valid }

// Empty reports whether nothing was added.
func (b Bounds) Empty() bool { return !b.valid }

// Equal reports exact equality; two empty boxes are equal.
func (b Bounds) Equal(o Bounds) bool {
	if b.valid != o.valid {
		return false
	}
	return !b.valid || b.rect == o.rect
}

func (b Bounds) String() string {
	if !b.valid {
		return "None"
	}
	return b.rect.String()
}
