package checks

import "github.com/teranos/precheck/gds"

// Layers the checks inspect.
var (
	// BoundaryLayer marks the project's allowed area (prBoundary.boundary).
	BoundaryLayer = gds.Tag{Layer: 235, Type: 4}
	// Met4 is the routing layer analog pads are reached on.
	Met4 = gds.Tag{Layer: 71, Type: 20}
	// Via3 connects met3 to met4.
	Via3 = gds.Tag{Layer: 70, Type: 44}
)

// Power tokens.
const (
	TokenGround        = "VGND"
	TokenDigitalSupply = "VDPWR"
	TokenAnalogSupply  = "VAPWR"
	// TokenLegacySupply is the old name of the digital supply.
	TokenLegacySupply = "VPWR"
)

// Analog pad geometry, in microns.
var analogPinX = [8]float64{151.810, 132.490, 113.170, 93.850, 74.530, 55.210, 35.890, 16.570}

const (
	// PinShift moves every pad left on tiles using the 3.3V supply.
	PinShift = 15.64

	pinWidth  = 0.9
	pinHeight = 1.0
	probeGap  = 0.1
	probeLen  = 0.4
)

// Cell name characters rejected by the tile merging flow.
const invalidNameChars = "#/"
