package calc

import (
	"math"
	"math/big"
	"strconv"
)

// FormatFixed prints f with exactly decimals digits after the point.
//
// Rounding works on the exact binary value of f with halves rounded away from zero, so
// 1.005 prints as "1.00" (its binary value is just below the half) and 0.125 prints as "0.13".
// This matches how the historical report sheets were produced.
func FormatFixed(f float64, decimals int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if decimals < 0 {
		decimals = 0
	}
	return new(big.Rat).SetFloat64(f).FloatString(decimals)
}

// RoundTo rounds f to decimals places using the same rule as FormatFixed.
func RoundTo(f float64, decimals int) float64 {
	s := FormatFixed(f, decimals)
	if s == "" {
		return f
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return f
	}
	return r
}
