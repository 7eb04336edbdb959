package gds

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/teranos/precheck/errors"
	"github.com/teranos/precheck/geom"
)

// ReadFile parses the GDSII file at path.
func ReadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	lib, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return lib, nil
}

// Read parses a GDSII stream. Unknown records are skipped; a stream that ends
// before ENDLIB or contains a reference cycle is rejected.
func Read(r io.Reader) (*Library, error) {
	rd := &reader{
		in:  bufio.NewReaderSize(r, 1<<16),
		lib: NewLibrary(""),
	}
	if err := rd.run(); err != nil {
		return nil, errors.MarkInvalidLayout(err)
	}
	rd.lib.resolve()
	if err := rd.lib.checkCycles(); err != nil {
		return nil, errors.MarkInvalidLayout(err)
	}
	return rd.lib, nil
}

type record struct {
	kind    byte
	dtype   byte
	payload []byte
}

// element accumulates the records of one element between its opening
// record and ENDEL.
type element struct {
	kind     byte
	layer    int
	dtype    int
	width    float64
	pathtype int
	bext     float64
	eext     float64
	xy       []geom.Point
	sname    string
	cols     int
	rows     int
	strans   uint16
	mag      float64
	angle    float64
	text     string
}

type reader struct {
	in   *bufio.Reader
	lib  *Library
	cell *Cell
	el   *element
	hdr  [4]byte
}

func (rd *reader) next() (record, error) {
	if _, err := io.ReadFull(rd.in, rd.hdr[:]); err != nil {
		if err == io.EOF {
			return record{}, errors.New("unexpected end of stream before ENDLIB")
		}
		return record{}, errors.Wrap(err, "reading record header")
	}
	length := int(binary.BigEndian.Uint16(rd.hdr[0:2]))
	if length < 4 {
		return record{}, errors.Newf("invalid record length %d", length)
	}
	rec := record{kind: rd.hdr[2], dtype: rd.hdr[3], payload: make([]byte, length-4)}
	if _, err := io.ReadFull(rd.in, rec.payload); err != nil {
		return record{}, errors.Wrapf(err, "reading record 0x%02x", rec.kind)
	}
	return rec, nil
}

func (rd *reader) run() error {
	for {
		rec, err := rd.next()
		if err != nil {
			return err
		}
		done, err := rd.handle(rec)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (rd *reader) handle(rec record) (bool, error) {
	switch rec.kind {
	case recEndLib:
		return true, nil
	case recLibName:
		rd.lib.Name = ascii(rec.payload)
	case recUnits:
		reals := real8s(rec.payload)
		if len(reals) != 2 || reals[0] <= 0 {
			return false, errors.New("malformed UNITS record")
		}
		rd.lib.UserUnit, rd.lib.Precision = reals[0], reals[1]
	case recBgnStr:
		rd.cell = &Cell{}
	case recStrName:
		if rd.cell == nil {
			return false, errors.New("STRNAME outside of structure")
		}
		rd.cell.Name = ascii(rec.payload)
	case recEndStr:
		if rd.cell == nil {
			return false, errors.New("ENDSTR without BGNSTR")
		}
		rd.lib.Cells = append(rd.lib.Cells, rd.cell)
		if _, dup := rd.lib.byName[rd.cell.Name]; !dup {
			rd.lib.byName[rd.cell.Name] = rd.cell
		}
		rd.cell = nil
	case recBoundary, recPath, recSRef, recARef, recText, recBox, recNode:
		if rd.cell == nil {
			return false, errors.Newf("element 0x%02x outside of structure", rec.kind)
		}
		rd.el = &element{kind: rec.kind, mag: 1, cols: 1, rows: 1}
	case recEndEl:
		if rd.el == nil {
			return false, errors.New("ENDEL without element")
		}
		if err := rd.finish(); err != nil {
			return false, err
		}
		rd.el = nil
	default:
		if rd.el != nil {
			return false, rd.property(rec)
		}
	}
	return false, nil
}

func (rd *reader) property(rec record) error {
	el := rd.el
	switch rec.kind {
	case recLayer:
		el.layer = firstInt16(rec.payload)
	case recDatatype, recTexttype, recBoxtype, recNodetype:
		el.dtype = firstInt16(rec.payload)
	case recWidth:
		el.width = float64(firstInt32(rec.payload)) * rd.lib.UserUnit
	case recPathtype:
		el.pathtype = firstInt16(rec.payload)
	case recBgnExtn:
		el.bext = float64(firstInt32(rec.payload)) * rd.lib.UserUnit
	case recEndExtn:
		el.eext = float64(firstInt32(rec.payload)) * rd.lib.UserUnit
	case recXY:
		ints := int32s(rec.payload)
		el.xy = make([]geom.Point, 0, len(ints)/2)
		for i := 0; i+1 < len(ints); i += 2 {
			el.xy = append(el.xy, geom.Point{
				X: float64(ints[i]) * rd.lib.UserUnit,
				Y: float64(ints[i+1]) * rd.lib.UserUnit,
			})
		}
	case recSName:
		el.sname = ascii(rec.payload)
	case recColRow:
		if len(rec.payload) >= 4 {
			el.cols = int(int16(binary.BigEndian.Uint16(rec.payload[0:2])))
			el.rows = int(int16(binary.BigEndian.Uint16(rec.payload[2:4])))
		}
	case recSTrans:
		if len(rec.payload) >= 2 {
			el.strans = binary.BigEndian.Uint16(rec.payload[0:2])
		}
	case recMag:
		if reals := real8s(rec.payload); len(reals) > 0 {
			el.mag = reals[0]
		}
	case recAngle:
		if reals := real8s(rec.payload); len(reals) > 0 {
			el.angle = reals[0]
		}
	case recString:
		el.text = ascii(rec.payload)
	}
	return nil
}

func (rd *reader) finish() error {
	el, c := rd.el, rd.cell
	switch el.kind {
	case recBoundary, recBox:
		pts := el.xy
		if n := len(pts); n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
		if len(pts) < 3 {
			return errors.Newf("polygon in %s has %d points", c.Name, len(pts))
		}
		c.Polygons = append(c.Polygons, &Polygon{
			Tag:    Tag{Layer: el.layer, Type: el.dtype},
			Points: geom.Polygon(pts),
		})
	case recPath:
		c.Paths = append(c.Paths, &Path{
			Tag:      Tag{Layer: el.layer, Type: el.dtype},
			Width:    el.width,
			PathType: el.pathtype,
			BeginExt: el.bext,
			EndExt:   el.eext,
			Points:   el.xy,
		})
	case recText:
		if len(el.xy) < 1 {
			return errors.Newf("text in %s has no position", c.Name)
		}
		c.Labels = append(c.Labels, &Label{
			Tag:    Tag{Layer: el.layer, Type: el.dtype},
			Text:   el.text,
			Origin: el.xy[0],
		})
	case recSRef:
		if len(el.xy) < 1 {
			return errors.Newf("reference to %s in %s has no position", el.sname, c.Name)
		}
		c.References = append(c.References, rd.reference(el, el.xy[0]))
	case recARef:
		if len(el.xy) < 3 || el.cols < 1 || el.rows < 1 {
			return errors.Newf("malformed array reference to %s in %s", el.sname, c.Name)
		}
		ref := rd.reference(el, el.xy[0])
		ref.Columns, ref.Rows = el.cols, el.rows
		ref.ColStep = el.xy[1].Sub(el.xy[0]).Scale(1 / float64(el.cols))
		ref.RowStep = el.xy[2].Sub(el.xy[0]).Scale(1 / float64(el.rows))
		c.References = append(c.References, ref)
	case recNode:
		// electrical nodes carry no geometry
	}
	return nil
}

func (rd *reader) reference(el *element, origin geom.Point) *Reference {
	return &Reference{
		Name:          el.sname,
		Origin:        origin,
		Rotation:      el.angle,
		Magnification: el.mag,
		XReflection:   el.strans&stransReflect != 0,
		Columns:       1,
		Rows:          1,
	}
}

// checkCycles rejects libraries whose reference graph is not a DAG.
func (l *Library) checkCycles() error {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[*Cell]int, len(l.Cells))
	var visit func(c *Cell) error
	visit = func(c *Cell) error {
		switch state[c] {
		case active:
			return errors.Newf("reference cycle through cell %s", c.Name)
		case done:
			return nil
		}
		state[c] = active
		for _, ref := range c.References {
			if ref.Cell == nil {
				continue
			}
			if err := visit(ref.Cell); err != nil {
				return err
			}
		}
		state[c] = done
		return nil
	}
	for _, c := range l.Cells {
		if err := visit(c); err != nil {
			return err
		}
	}
	return nil
}

func ascii(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

func firstInt16(b []byte) int {
	if len(b) < 2 {
		return 0
	}
	return int(binary.BigEndian.Uint16(b[0:2]))
}

func firstInt32(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b[0:4]))
}

func int32s(b []byte) []int32 {
	out := make([]int32, len(b)/4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(b[i*4:]))
	}
	return out
}

func real8s(b []byte) []float64 {
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = decodeReal8(binary.BigEndian.Uint64(b[i*8:]))
	}
	return out
}
