package gds

import (
	"math"

	"github.com/teranos/precheck/geom"
)

// extensions returns how far the path extends past its first and last point.
// Round ends are approximated by a half-width square extension.
func (p *Path) extensions() (float64, float64) {
	hw := math.Abs(p.Width) / 2
	switch p.PathType {
	case PathRound, PathHalfWidth:
		return hw, hw
	case PathCustomExtn:
		return p.BeginExt, p.EndExt
	default:
		return 0, 0
	}
}

// Polygons expands the path into one quadrilateral per segment. Interior
// vertices extend both adjoining segments by half the width, which yields
// the mitered corner for Manhattan paths.
func (p *Path) Polygons() []geom.Polygon {
	hw := math.Abs(p.Width) / 2
	if hw == 0 || len(p.Points) < 2 {
		return nil
	}
	begin, end := p.extensions()
	last := len(p.Points) - 2

	var out []geom.Polygon
	for i := 0; i <= last; i++ {
		a, b := p.Points[i], p.Points[i+1]
		d := b.Sub(a)
		length := math.Hypot(d.X, d.Y)
		if length == 0 {
			continue
		}
		u := d.Scale(1 / length)

		ea, eb := hw, hw
		if i == 0 {
			ea = begin
		}
		if i == last {
			eb = end
		}
		a = a.Sub(u.Scale(ea))
		b = b.Add(u.Scale(eb))
		n := geom.Point{X: -u.Y, Y: u.X}.Scale(hw)
		out = append(out, geom.Polygon{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	return out
}
