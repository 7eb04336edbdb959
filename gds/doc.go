// Package gds reads and writes GDSII stream files and answers the questions
// precheck asks of a layout: which cells are top level, what a cell's
// bounding box is, which (layer, datatype) and (layer, texttype) tags occur,
// and what a cell looks like flattened onto a set of layers.
//
// Coordinates are converted to user units on read (the first value of the
// UNITS record, usually 0.001 so that user units are microns).
package gds
