package gds

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/geom"
)

// maxXYPoints is the number of coordinate pairs that fit in one XY record.
const maxXYPoints = 8191

// WriteFile writes lib to path as a GDSII stream.
func WriteFile(path string, lib *Library) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := Write(f, lib); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return f.Close()
}

// Write encodes lib as a GDSII stream. Boundaries, paths, labels and
// references are written; timestamps are zero so output is reproducible.
func Write(w io.Writer, lib *Library) error {
	wr := &writer{out: bufio.NewWriter(w), unit: lib.UserUnit}
	if wr.unit <= 0 {
		wr.unit = 1e-3
	}
	wr.int16s(recHeader, 600)
	wr.int16s(recBgnLib, make([]int16, 12)...)
	wr.ascii(recLibName, lib.Name)
	wr.reals(recUnits, wr.unit, lib.Precision)
	for _, c := range lib.Cells {
		wr.cell(c)
	}
	wr.empty(recEndLib)
	if wr.err != nil {
		return wr.err
	}
	return wr.out.Flush()
}

type writer struct {
	out  *bufio.Writer
	unit float64
	err  error
}

func (wr *writer) cell(c *Cell) {
	wr.int16s(recBgnStr, make([]int16, 12)...)
	wr.ascii(recStrName, c.Name)
	for _, p := range c.Polygons {
		if len(p.Points) == 0 {
			continue
		}
		wr.empty(recBoundary)
		wr.int16s(recLayer, int16(p.Tag.Layer))
		wr.int16s(recDatatype, int16(p.Tag.Type))
		pts := append(append([]geom.Point{}, p.Points...), p.Points[0])
		wr.xy(pts)
		wr.empty(recEndEl)
	}
	for _, p := range c.Paths {
		wr.empty(recPath)
		wr.int16s(recLayer, int16(p.Tag.Layer))
		wr.int16s(recDatatype, int16(p.Tag.Type))
		wr.int16s(recPathtype, int16(p.PathType))
		wr.int32s(recWidth, wr.dbu(p.Width))
		if p.PathType == PathCustomExtn {
			wr.int32s(recBgnExtn, wr.dbu(p.BeginExt))
			wr.int32s(recEndExtn, wr.dbu(p.EndExt))
		}
		wr.xy(p.Points)
		wr.empty(recEndEl)
	}
	for _, l := range c.Labels {
		wr.empty(recText)
		wr.int16s(recLayer, int16(l.Tag.Layer))
		wr.int16s(recTexttype, int16(l.Tag.Type))
		wr.xy([]geom.Point{l.Origin})
		wr.ascii(recString, l.Text)
		wr.empty(recEndEl)
	}
	for _, r := range c.References {
		wr.reference(r)
	}
	wr.empty(recEndStr)
}

func (wr *writer) reference(r *Reference) {
	array := r.Columns > 1 || r.Rows > 1
	if array {
		wr.empty(recARef)
	} else {
		wr.empty(recSRef)
	}
	wr.ascii(recSName, r.Name)
	mag := r.Magnification
	if mag == 0 {
		mag = 1
	}
	if r.XReflection || mag != 1 || r.Rotation != 0 {
		var flags uint16
		if r.XReflection {
			flags |= stransReflect
		}
		wr.record(recSTrans, dtBitArray, binary.BigEndian.AppendUint16(nil, flags))
		if mag != 1 {
			wr.reals(recMag, mag)
		}
		if r.Rotation != 0 {
			wr.reals(recAngle, r.Rotation)
		}
	}
	if !array {
		wr.xy([]geom.Point{r.Origin})
		wr.empty(recEndEl)
		return
	}
	cols, rows := max(r.Columns, 1), max(r.Rows, 1)
	wr.int16s(recColRow, int16(cols), int16(rows))
	wr.xy([]geom.Point{
		r.Origin,
		r.Origin.Add(r.ColStep.Scale(float64(cols))),
		r.Origin.Add(r.RowStep.Scale(float64(rows))),
	})
	wr.empty(recEndEl)
}

func (wr *writer) dbu(v float64) int32 {
	return int32(math.Round(v / wr.unit))
}

func (wr *writer) xy(pts []geom.Point) {
	if len(pts) > maxXYPoints {
		if wr.err == nil {
			wr.err = errors.Newf("element with %d points exceeds the XY record limit", len(pts))
		}
		return
	}
	vals := make([]int32, 0, 2*len(pts))
	for _, p := range pts {
		vals = append(vals, wr.dbu(p.X), wr.dbu(p.Y))
	}
	wr.int32s(recXY, vals...)
}

func (wr *writer) empty(kind byte) {
	wr.record(kind, dtNone, nil)
}

func (wr *writer) int16s(kind byte, vals ...int16) {
	buf := make([]byte, 0, 2*len(vals))
	for _, v := range vals {
		buf = binary.BigEndian.AppendUint16(buf, uint16(v))
	}
	wr.record(kind, dtInt16, buf)
}

func (wr *writer) int32s(kind byte, vals ...int32) {
	buf := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		buf = binary.BigEndian.AppendUint32(buf, uint32(v))
	}
	wr.record(kind, dtInt32, buf)
}

func (wr *writer) reals(kind byte, vals ...float64) {
	buf := make([]byte, 0, 8*len(vals))
	for _, v := range vals {
		buf = binary.BigEndian.AppendUint64(buf, encodeReal8(v))
	}
	wr.record(kind, dtReal8, buf)
}

func (wr *writer) ascii(kind byte, s string) {
	buf := []byte(s)
	if len(buf)%2 == 1 {
		buf = append(buf, 0)
	}
	wr.record(kind, dtASCII, buf)
}

func (wr *writer) record(kind, dtype byte, payload []byte) {
	if wr.err != nil {
		return
	}
	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], uint16(len(payload)+4))
	hdr[2], hdr[3] = kind, dtype
	if _, err := wr.out.Write(hdr[:]); err != nil {
		wr.err = err
		return
	}
	if _, err := wr.out.Write(payload); err != nil {
		wr.err = err
	}
}
