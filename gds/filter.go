package gds

import "github.com/teranos/precheck/geom"

// TagFilter selects shapes by tag.
type TagFilter func(Tag) bool

// Only returns a filter accepting exactly the given tags.
func Only(tags ...Tag) TagFilter {
	set := make(map[Tag]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return func(t Tag) bool { return set[t] }
}

// FilterCopy returns a shallow copy of c keeping only the polygons, paths and
// labels accepted by keep. References are kept unchanged, so referenced cells
// still contribute all of their shapes.
func (c *Cell) FilterCopy(name string, keep TagFilter) *Cell {
	out := &Cell{Name: name, References: c.References}
	for _, p := range c.Polygons {
		if keep(p.Tag) {
			out.Polygons = append(out.Polygons, p)
		}
	}
	for _, p := range c.Paths {
		if keep(p.Tag) {
			out.Paths = append(out.Paths, p)
		}
	}
	for _, l := range c.Labels {
		if keep(l.Tag) {
			out.Labels = append(out.Labels, l)
		}
	}
	return out
}

// Flatten resolves the hierarchy below c and returns every polygon (paths
// expanded to polygons) accepted by keep, in absolute coordinates of c.
// Subtrees without any accepted shape are skipped.
func (c *Cell) Flatten(keep TagFilter) []geom.Polygon {
	return c.flatten(keep, true)
}

// FlattenPolygons is Flatten restricted to BOUNDARY and BOX elements; paths
// are left out.
func (c *Cell) FlattenPolygons(keep TagFilter) []geom.Polygon {
	return c.flatten(keep, false)
}

func (c *Cell) flatten(keep TagFilter, paths bool) []geom.Polygon {
	f := &flattener{keep: keep, paths: paths, relevant: make(map[*Cell]bool)}
	f.walk(c, geom.Identity)
	return f.out
}

type flattener struct {
	keep     TagFilter
	paths    bool
	relevant map[*Cell]bool
	out      []geom.Polygon
}

func (f *flattener) hasShapes(c *Cell) bool {
	if r, ok := f.relevant[c]; ok {
		return r
	}
	f.relevant[c] = false
	r := false
	for _, p := range c.Polygons {
		if f.keep(p.Tag) {
			r = true
			break
		}
	}
	if !r && f.paths {
		for _, p := range c.Paths {
			if f.keep(p.Tag) {
				r = true
				break
			}
		}
	}
	if !r {
		for _, ref := range c.References {
			if ref.Cell != nil && f.hasShapes(ref.Cell) {
				r = true
				break
			}
		}
	}
	f.relevant[c] = r
	return r
}

func (f *flattener) walk(c *Cell, t geom.Affine) {
	if !f.hasShapes(c) {
		return
	}
	for _, p := range c.Polygons {
		if f.keep(p.Tag) {
			f.out = append(f.out, p.Points.Transform(t))
		}
	}
	for _, p := range c.Paths {
		if !f.paths || !f.keep(p.Tag) {
			continue
		}
		for _, poly := range p.Polygons() {
			f.out = append(f.out, poly.Transform(t))
		}
	}
	for _, ref := range c.References {
		if ref.Cell == nil {
			continue
		}
		for _, pt := range ref.Placements() {
			f.walk(ref.Cell, pt.Then(t))
		}
	}
}
