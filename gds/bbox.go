package gds

import "github.com/teranos/precheck/geom"

// BoundingBox returns the bounding box of the cell's polygons and paths and of
// everything it references. Labels do not contribute. An empty cell yields
// empty Bounds.
func (c *Cell) BoundingBox() geom.Bounds {
	bx := &boxer{cache: make(map[*Cell]geom.Bounds)}
	return bx.cell(c)
}

// ownBounds covers the cell's own shapes only.
func (c *Cell) ownBounds() geom.Bounds {
	var b geom.Bounds
	for _, p := range c.Polygons {
		b.Merge(p.Points.Bounds())
	}
	for _, p := range c.Paths {
		for _, poly := range p.Polygons() {
			b.Merge(poly.Bounds())
		}
	}
	return b
}

type boxer struct {
	cache map[*Cell]geom.Bounds
}

func (bx *boxer) cell(c *Cell) geom.Bounds {
	if b, ok := bx.cache[c]; ok {
		return b
	}
	b := c.ownBounds()
	for _, ref := range c.References {
		if ref.Cell == nil {
			continue
		}
		for _, t := range ref.Placements() {
			b.Merge(bx.placed(ref.Cell, t))
		}
	}
	bx.cache[c] = b
	return b
}

// placed returns the bounds of c under t. Manhattan transforms reuse the
// cached box of c; anything else walks every point.
func (bx *boxer) placed(c *Cell, t geom.Affine) geom.Bounds {
	var out geom.Bounds
	if t.Manhattan() {
		if r, ok := bx.cell(c).Rect(); ok {
			out.AddRect(t.ApplyRect(r))
		}
		return out
	}
	walkPoints(c, t, out.AddPoint)
	return out
}

func walkPoints(c *Cell, t geom.Affine, visit func(geom.Point)) {
	for _, p := range c.Polygons {
		for _, pt := range p.Points {
			visit(t.Apply(pt))
		}
	}
	for _, p := range c.Paths {
		for _, poly := range p.Polygons() {
			for _, pt := range poly {
				visit(t.Apply(pt))
			}
		}
	}
	for _, ref := range c.References {
		if ref.Cell == nil {
			continue
		}
		for _, pt := range ref.Placements() {
			walkPoints(ref.Cell, pt.Then(t), visit)
		}
	}
}
