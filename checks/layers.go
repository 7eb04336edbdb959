package checks

import (
	"strings"

	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/gds"
	"github.com/teranos/precheck/logger"
)

// InvalidLayers returns every tag used anywhere in lib that is not allowed.
func InvalidLayers(lib *gds.Library) gds.TagSet {
	used := lib.LayersAndDatatypes().Union(lib.LayersAndTexttypes())
	if logger.Enabled(logger.OutputDataDump) {
		logger.Debugw("layers used", logger.FieldLayer, used.String())
	}
	return used.Difference(validLayers)
}

// CheckLayers fails when the layout uses a tag outside the allow-list.
func CheckLayers(rep *display.Reporter, lib *gds.Library) {
	if excess := InvalidLayers(lib); len(excess) > 0 {
		rep.Fail("invalid layers in GDS: %s", excess)
		return
	}
	rep.Pass("no invalid layers in GDS")
}

// InvalidCellNames returns the names, in file order, containing # or /.
func InvalidCellNames(lib *gds.Library) []string {
	var bad []string
	if logger.Enabled(logger.OutputDataDump) {
		logger.Debugw("cell names", logger.FieldCount, len(lib.Cells), "names", lib.CellNames())
	}
	for _, c := range lib.Cells {
		if strings.ContainsAny(c.Name, invalidNameChars) {
			bad = append(bad, c.Name)
		}
	}
	return bad
}

// CheckCellNames fails when any cell name contains a character the tile
// merging flow cannot handle.
func CheckCellNames(rep *display.Reporter, lib *gds.Library) {
	if bad := InvalidCellNames(lib); len(bad) > 0 {
		rep.Fail("invalid cell names in GDS: %s", pyList(bad))
		return
	}
	rep.Pass("no invalid cell names in GDS")
}
