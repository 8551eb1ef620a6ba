// internal/catalog/decode.go
package catalog

import "math"

// SignCorrect reinterprets a 16-bit wire value as two's-complement.
// Raw values above 32767 wrap negative; 0..32767 pass through.
func SignCorrect(raw uint16) int16 {
	return int16(raw)
}

// Decode converts a raw wire value to the descriptor's physical value.
// Sign correction happens before scaling, never after.
func (d Descriptor) Decode(raw uint16) float64 {
	if d.Signed {
		return float64(SignCorrect(raw)) * d.Scale
	}
	return float64(raw) * d.Scale
}

// Encode converts a physical value to the raw wire word to write,
// rounding to the nearest representable step. Signed descriptors encode
// two's-complement, inverting SignCorrect. The second return reports
// whether the value fits the register's range.
func (d Descriptor) Encode(value float64) (uint16, bool) {
	scale := d.Scale
	if scale == 0 {
		scale = 1
	}
	v := value / scale
	var n int
	if v >= 0 {
		n = int(v + 0.5)
	} else {
		n = int(v - 0.5)
	}

	if d.Signed {
		if n < math.MinInt16 || n > math.MaxInt16 {
			return 0, false
		}
		return uint16(int16(n)), true
	}
	if n < 0 || n > math.MaxUint16 {
		return 0, false
	}
	return uint16(n), true
}
