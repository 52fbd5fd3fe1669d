package formula

import "math"

// EllipsePerimeter approximates the circumference of an ellipse with
// semi-axes a and b (Ramanujan's second form), rounded to 3 decimals.
func EllipsePerimeter(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	p := math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
	return roundTo(p, 3)
}
