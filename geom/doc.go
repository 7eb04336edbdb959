// Package geom holds the small amount of planar geometry precheck needs:
// points, axis-aligned rectangles, simple polygons, affine transforms for
// layout references, and overlap tests between polygons and rectangles.
//
// Coordinates are user units (microns for the layouts precheck reads).
package geom
