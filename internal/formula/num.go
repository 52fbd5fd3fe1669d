package formula

import (
	"math"
	"strconv"
)

// MM is the millimetre to metre factor applied to every parsed literal.
const MM = 0.001

// roundTo trims binary noise such as 0.014000000000000002.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Plain formats v with the shortest decimal representation.
func Plain(v float64) string {
	v = roundTo(v, 9)
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Num formats a length already converted to metres.
func Num(meters float64) string {
	return Plain(meters)
}

// Millimetres converts metres back to millimetres for plate descriptors,
// flooring toward zero when truncate is set.
func Millimetres(meters float64, truncate bool) string {
	mm := roundTo(meters/MM, 6)
	if truncate {
		mm = math.Trunc(mm)
	}
	return Plain(mm)
}

// Round rounds v to places decimals, halves away from zero.
func Round(v float64, places int) float64 {
	return roundTo(v, places)
}
