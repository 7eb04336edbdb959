package checks

import (
	"github.com/teranos/precheck/display"
	"github.com/teranos/precheck/gds"
	"github.com/teranos/precheck/geom"
	"github.com/teranos/precheck/logger"
	"github.com/teranos/precheck/project"
)

// PinProbes are the rectangles tested around one analog pad.
type PinProbes struct {
	Over, Above, Below, Left, Right geom.Rect
}

// ProbesFor returns the probes of analog pad slot pin.
func ProbesFor(pin int, uses3V3 bool) PinProbes {
	x := analogPinX[pin]
	if uses3V3 {
		x -= PinShift
	}
	x1, y1, x2, y2 := x, 0.0, x+pinWidth, pinHeight
	near, far := probeGap, probeGap+probeLen
	return PinProbes{
		Over:  geom.R(x1, y1, x2, y2),
		Above: geom.R(x1, y2+near, x2, y2+far),
		Below: geom.R(x1, y1-far, x2, y1-near),
		Left:  geom.R(x1-far, y1, x1-near, y2),
		Right: geom.R(x2+near, y1, x2+far, y2),
	}
}

// Connected reports whether a via lands on the pad or metal touches any of
// the four side probes.
func (p PinProbes) Connected(met4, via3 []geom.Polygon) bool {
	return geom.AnyOverlap(via3, p.Over) ||
		geom.AnyOverlap(met4, p.Above) ||
		geom.AnyOverlap(met4, p.Below) ||
		geom.AnyOverlap(met4, p.Left) ||
		geom.AnyOverlap(met4, p.Right)
}

// CheckAnalog compares the observed connectivity of each analog pad with
// the declared pin count and the pinout. It does nothing unless the project
// declares analog pins.
func CheckAnalog(rep *display.Reporter, top *gds.Cell, md *project.Metadata) {
	count := md.Project.AnalogPins
	if count <= 0 {
		return
	}
	if top == nil {
		rep.Fail("analog pins not checked: no top level cell")
		return
	}

	// paths do not take part in the pad overlap test
	met4 := top.FlattenPolygons(gds.Only(Met4))
	via3 := top.FlattenPolygons(gds.Only(Via3))
	logger.Debugw("flattened pad layers", "met4", len(met4), "via3", len(via3))

	for pin := 0; pin < len(analogPinX); pin++ {
		probes := ProbesFor(pin, md.Project.Uses3V3)
		connected := probes.Connected(met4, via3)
		byCount := pin < count
		byPinout := md.PinDeclared(pin)

		switch {
		case connected != byCount:
			rep.Fail("analog pin %d connected: %s, expected from `analog_pins=%d`: %s",
				pin, pyBool(connected), count, pyBool(byCount))
		case connected != byPinout:
			rep.Fail("analog pin %d connected: %s, expected from `pinout.ua[%d]`: %s",
				pin, pyBool(connected), pin, pyBool(byPinout))
		default:
			rep.Pass("analog pin %d connected: %s", pin, pyBool(connected))
		}
		if logger.Enabled(logger.OutputProbes) {
			logger.Debugw("analog pin probes", logger.FieldPin, pin,
				"over", probes.Over, "above", probes.Above, "below", probes.Below,
				"left", probes.Left, "right", probes.Right, "connected", connected)
		}
	}
}
