package formula

// DefaultDensity is the density of structural steel in kg/m³.
const DefaultDensity = 7850.0

// Style carries the rendering choices that are not part of a section's
// geometry.
type Style struct {
	Pi      PiStyle
	Density float64 // kg/m³; zero means DefaultDensity
}

// DefaultStyle renders PI() and 7850.
var DefaultStyle = Style{Pi: PiFunc, Density: DefaultDensity}

// PI returns the π token.
func (s Style) PI() string {
	if s.Pi == PiNum {
		return "3.14"
	}
	return "PI()"
}

// Rho returns the density token.
func (s Style) Rho() string {
	if s.Density <= 0 {
		return Plain(DefaultDensity)
	}
	return Plain(s.Density)
}
