package gds

import (
	"sort"
	"strings"
)

// TagSet is a set of layer tags.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Union returns s ∪ o.
func (s TagSet) Union(o TagSet) TagSet {
	out := make(TagSet, len(s)+len(o))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range o {
		out[t] = struct{}{}
	}
	return out
}

// Difference returns s \ o.
func (s TagSet) Difference(o TagSet) TagSet {
	out := make(TagSet)
	for t := range s {
		if !o.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Sorted returns the tags ordered by layer, then type.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// String renders the set as "{(1, 2), (3, 4)}" in sorted order.
func (s TagSet) String() string {
	parts := make([]string, 0, len(s))
	for _, t := range s.Sorted() {
		parts = append(parts, t.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// LayersAndDatatypes returns every (layer, datatype) used by a polygon or
// path in any cell of the library.
func (l *Library) LayersAndDatatypes() TagSet {
	out := make(TagSet)
	for _, c := range l.Cells {
		for _, p := range c.Polygons {
			out[p.Tag] = struct{}{}
		}
		for _, p := range c.Paths {
			out[p.Tag] = struct{}{}
		}
	}
	return out
}

// LayersAndTexttypes returns every (layer, texttype) used by a label in any
// cell of the library.
func (l *Library) LayersAndTexttypes() TagSet {
	out := make(TagSet)
	for _, c := range l.Cells {
		for _, lb := range c.Labels {
			out[lb.Tag] = struct{}{}
		}
	}
	return out
}
