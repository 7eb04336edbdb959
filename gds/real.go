package gds

import "math"

// decodeReal8 converts an 8-byte GDSII excess-64 base-16 real.
func decodeReal8(b uint64) float64 {
	if b&^(uint64(1)<<63) == 0 {
		return 0
	}
	sign := 1.0
	if b>>63 != 0 {
		sign = -1
	}
	exp := int((b>>56)&0x7F) - 64
	mant := float64(b&0x00FFFFFFFFFFFFFF) / math.Pow(2, 56)
	return sign * mant * math.Pow(16, float64(exp))
}

// encodeReal8 converts v to an 8-byte GDSII real.
func encodeReal8(v float64) uint64 {
	if v == 0 {
		return 0
	}
	var sign uint64
	if v < 0 {
		sign = 1 << 63
		v = -v
	}
	exp := 0
	for v >= 1 {
		v /= 16
		exp++
	}
	for v < 1.0/16 {
		v *= 16
		exp--
	}
	mant := uint64(math.Round(v * math.Pow(2, 56)))
	if mant >= 1<<56 {
		mant >>= 4
		exp++
	}
	return sign | uint64(exp+64)<<56 | mant
}
