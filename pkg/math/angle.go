// Package math provides scalar helpers for degree angles and diagnostic
// number formatting.
package math

import (
	"math"
	"strconv"
)

// FullTurn is one revolution in degrees.
const FullTurn = 360.0

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Wrap360 reduces an angle in degrees to [0, 360).
// Non-finite input wraps to 0 so a bad delta cannot poison the pose.
func Wrap360(deg float64) float64 {
	if !IsFinite(deg) {
		return 0
	}
	r := math.Mod(FullTurn+deg, FullTurn)
	if r < 0 {
		r += FullTurn
	}
	// r+360 can round up to exactly 360 for tiny negative r
	if r >= FullTurn {
		r -= FullTurn
	}
	return r
}

// TruncateDecimals cuts v to the given number of decimal places without
// rounding (1.23456 -> 1.2345 for places=4).
func TruncateDecimals(v float64, places int) float64 {
	if !IsFinite(v) || places < 0 {
		return v
	}
	scale := math.Pow(10, float64(places))
	t := math.Trunc(v*scale) / scale
	if t == 0 {
		return 0 // drop the sign of -0
	}
	return t
}

// FormatDecimals formats v truncated to places decimals, trimming trailing
// zeros ("1.5", "0", "-3.1415").
func FormatDecimals(v float64, places int) string {
	return strconv.FormatFloat(TruncateDecimals(v, places), 'f', -1, 64)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
