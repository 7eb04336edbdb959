package checks

import (
	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/gds"
	"github.com/teranos/precheck/logger"
)

// TopCell returns the first top-level cell and whether it is the only one.
func TopCell(lib *gds.Library) (*gds.Cell, bool) {
	tops := lib.TopLevel()
	if len(tops) == 0 {
		return nil, false
	}
	return tops[0], len(tops) == 1
}

// CheckBoundary compares the bounding box of the top cell with the bounding
// box of a copy holding only its boundary-marker shapes (references kept).
// Any shape sticking out past the marker grows the first box. A non-unique
// top level is reported but the check continues with the first top cell.
func CheckBoundary(rep *display.Reporter, lib *gds.Library) *gds.Cell {
	top, unique := TopCell(lib)
	if !unique {
		rep.Fail("gds top level not unique")
		logger.Warnw("continuing with first top level cell",
			logger.FieldCount, len(lib.TopLevel()),
			logger.FieldCell, cellName(top))
	}
	if top == nil {
		rep.Fail("shapes outside project area: no top level cell")
		return nil
	}

	full := top.BoundingBox()
	boundary := top.FilterCopy("test_boundary", gds.Only(BoundaryLayer)).BoundingBox()
	logger.Debugw("bounding boxes", logger.FieldCell, top.Name, "full", full.String(), "boundary", boundary.String())

	rep.Verdict(full.Equal(boundary), "no shapes outside project area", "shapes outside project area")
	return top
}

func cellName(c *gds.Cell) string {
	if c == nil {
		return ""
	}
	return c.Name
}
