package geom

import "math"

// Affine is a 2D affine map:
//
//	x' = A*x + B*y + E
//	y' = C*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Affine{A: 1, D: 1}

// Placement builds the transform of a layout reference: reflect about the
// x axis (if xReflect), magnify, rotate counter-clockwise by rotationDeg and
// translate to origin, in that order.
func Placement(origin Point, rotationDeg, mag float64, xReflect bool) Affine {
	if mag == 0 {
		mag = 1
	}
	cos, sin := cosSin(rotationDeg)
	ry := 1.0
	if xReflect {
		ry = -1
	}
	return Affine{
		A: mag * cos, B: -mag * sin * ry,
		C: mag * sin, D: mag * cos * ry,
		E: origin.X, F: origin.Y,
	}
}

// cosSin returns exact values for multiples of 90 degrees so Manhattan
// placements do not pick up rounding noise.
func cosSin(deg float64) (float64, float64) {
	norm := math.Mod(deg, 360)
	if norm < 0 {
		norm += 360
	}
	switch norm {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	rad := norm * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// Apply maps p through t.
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.E,
		Y: t.C*p.X + t.D*p.Y + t.F,
	}
}

// Then returns the transform that applies t first and then outer.
func (t Affine) Then(outer Affine) Affine {
	return Affine{
		A: outer.A*t.A + outer.B*t.C,
		B: outer.A*t.B + outer.B*t.D,
		C: outer.C*t.A + outer.D*t.C,
		D: outer.C*t.B + outer.D*t.D,
		E: outer.A*t.E + outer.B*t.F + outer.E,
		F: outer.C*t.E + outer.D*t.F + outer.F,
	}
}

// Translated returns t followed by a translation by d.
func (t Affine) Translated(d Point) Affine {
	t.E += d.X
	t.F += d.Y
	return t
}

// Manhattan reports whether t maps axis-aligned rectangles to axis-aligned
// rectangles, in which case transforming the four corners of a box is exact.
func (t Affine) Manhattan() bool {
	return (t.B == 0 && t.C == 0) || (t.A == 0 && t.D == 0)
}

// ApplyRect maps the corners of r through t and returns their bounding box.
// The result is exact only when t is Manhattan.
func (t Affine) ApplyRect(r Rect) Rect {
	var b Bounds
	for _, c := range r.Corners() {
		b.AddPoint(t.Apply(c))
	}
	out, _ := b.Rect()
	return out
}
