package gds

// Record types of the GDSII stream format.
const (
	recHeader   = 0x00
	recBgnLib   = 0x01
	recLibName  = 0x02
	recUnits    = 0x03
	recEndLib   = 0x04
	recBgnStr   = 0x05
	recStrName  = 0x06
	recEndStr   = 0x07
	recBoundary = 0x08
	recPath     = 0x09
	recSRef     = 0x0A
	recARef     = 0x0B
	recText     = 0x0C
	recLayer    = 0x0D
	recDatatype = 0x0E
	recWidth    = 0x0F
	recXY       = 0x10
	recEndEl    = 0x11
	recSName    = 0x12
	recColRow   = 0x13
	recNode     = 0x15
	recTexttype = 0x16
	recString   = 0x19
	recSTrans   = 0x1A
	recMag      = 0x1B
	recAngle    = 0x1C
	recPathtype = 0x21
	recNodetype = 0x2A
	recBox      = 0x2D
	recBoxtype  = 0x2E
	recBgnExtn  = 0x30
	recEndExtn  = 0x31
)

// Data types of GDSII record payloads.
const (
	dtNone     = 0x00
	dtBitArray = 0x01
	dtInt16    = 0x02
	dtInt32    = 0x03
	dtReal8    = 0x05
	dtASCII    = 0x06
)

// STRANS flag bits.
const (
	stransReflect = 0x8000
)

// Path end styles (PATHTYPE).
const (
	PathFlush      = 0
	PathRound      = 1
	PathHalfWidth  = 2
	PathCustomExtn = 4
)
