package formula

// Dim is a dimension in metres. A variable cross-section spans Lo to Hi and
// takes part in formulas through its arithmetic mean.
type Dim struct {
	Lo, Hi float64
}

// Fixed returns a non-variable dimension.
func Fixed(v float64) Dim {
	return Dim{Lo: v, Hi: v}
}

// Variable reports whether the dimension tapers.
func (d Dim) Variable() bool {
	return d.Lo != d.Hi
}

// Value is the mean of the two ends.
func (d Dim) Value() float64 {
	return (d.Lo + d.Hi) / 2
}

// IsZero reports whether both ends are zero.
func (d Dim) IsZero() bool {
	return d.Lo == 0 && d.Hi == 0
}

// Text renders the dimension, as (lo+hi)/2 when it tapers.
func (d Dim) Text() string {
	if d.Variable() {
		return "(" + Num(d.Lo) + "+" + Num(d.Hi) + ")/2"
	}
	return Num(d.Lo)
}

// Scaled multiplies both ends by f.
func (d Dim) Scaled(f float64) Dim {
	return Dim{Lo: d.Lo * f, Hi: d.Hi * f}
}
