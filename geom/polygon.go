package geom

import "math"

// Polygon is a simple closed polygon; the closing edge from the last point
// back to the first is implicit.
type Polygon []Point

// Bounds returns the bounding box of p.
func (p Polygon) Bounds() Bounds {
	var b Bounds
	for _, pt := range p {
		b.AddPoint(pt)
	}
	return b
}

// Area returns the unsigned shoelace area of p.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(sum) / 2
}

// Transform returns p with every point mapped through t.
func (p Polygon) Transform(t Affine) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = t.Apply(pt)
	}
	return out
}

// ClipRect clips p against the rectangle r (Sutherland-Hodgman).
//
// For a non-convex p the result may contain zero-width bridges between
// disjoint pieces; its area is still the area of p inside r.
func ClipRect(p Polygon, r Rect) Polygon {
	out := p
	out = clipEdge(out, func(q Point) bool { return q.X >= r.Min.X }, func(a, b Point) Point {
		return lerpX(a, b, r.Min.X)
	})
	out = clipEdge(out, func(q Point) bool { return q.X <= r.Max.X }, func(a, b Point) Point {
		return lerpX(a, b, r.Max.X)
	})
	out = clipEdge(out, func(q Point) bool { return q.Y >= r.Min.Y }, func(a, b Point) Point {
		return lerpY(a, b, r.Min.Y)
	})
	out = clipEdge(out, func(q Point) bool { return q.Y <= r.Max.Y }, func(a, b Point) Point {
		return lerpY(a, b, r.Max.Y)
	})
	return out
}

func clipEdge(in Polygon, inside func(Point) bool, cross func(a, b Point) Point) Polygon {
	if len(in) == 0 {
		return nil
	}
	out := make(Polygon, 0, len(in)+4)
	prev := in[len(in)-1]
	prevIn := inside(prev)
	for _, cur := range in {
		curIn := inside(cur)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, cross(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, cross(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func lerpX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{x, a.Y + t*(b.Y-a.Y)}
}

func lerpY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{a.X + t*(b.X-a.X), y}
}

// OverlapArea returns the area of p inside r.
func OverlapArea(p Polygon, r Rect) float64 {
	return ClipRect(p, r).Area()
}

// AnyOverlap reports whether any polygon shares more than AreaEpsilon of
// area with r. It is the non-emptiness test of a boolean "and" between the
// polygons and the rectangle.
func AnyOverlap(polys []Polygon, r Rect) bool {
	for _, p := range polys {
		b, ok := p.Bounds().Rect()
		if !ok || !b.Overlaps(r) {
			continue
		}
		if OverlapArea(p, r) > AreaEpsilon {
			return true
		}
	}
	return false
}
