// Package profile turns steel profile text such as HW200*200, 2L100*120*4 or
// PL14*400*500 into a parsed Shape and renders its area, weight and stiffener
// formulas.
//
// Parsing is pure: every call depends only on the text and the read-only GB
// tables, so Shapes may be shared between goroutines. Profile adds the
// stateful holder that keeps the last good parse.
package profile

import (
	"github.com/alexiusacademia/steelqty/internal/formula"
)

// Profile holds the last successfully parsed text and the rendering options.
// It is not safe for concurrent use.
type Profile struct {
	Style formula.Style
	// RoundDigits wraps every formula in ROUND(expr,n). Negative disables it.
	RoundDigits int

	text  string
	shape Shape
}

// New returns an empty Profile with the default style and no rounding.
func New() *Profile {
	return &Profile{Style: formula.DefaultStyle, RoundDigits: -1}
}

// SetText parses text and commits it. On failure the previous text and shape
// are kept and the error is returned.
func (p *Profile) SetText(text string) error {
	s, err := Parse(text)
	if err != nil {
		return err
	}
	p.text, p.shape = text, s
	return nil
}

// Text returns the committed text.
func (p *Profile) Text() string { return p.text }

// Shape returns the committed shape, or nil before the first successful
// SetText.
func (p *Profile) Shape() Shape { return p.shape }

// Family returns the committed shape's family.
func (p *Profile) Family() Family {
	if p.shape == nil {
		return FamilyUnknown
	}
	return p.shape.Family()
}

func (p *Profile) AreaFormula(acc formula.Accuracy, excludeTop bool) string {
	if p.shape == nil {
		return ""
	}
	return formula.WithRound(p.shape.Area(acc, excludeTop, p.Style), p.RoundDigits)
}

func (p *Profile) WeightFormula(acc formula.Accuracy) string {
	if p.shape == nil {
		return ""
	}
	return formula.WithRound(p.shape.Weight(acc, p.Style), p.RoundDigits)
}

func (p *Profile) StiffenerProfileText(truncate bool) string {
	if p.shape == nil {
		return ""
	}
	return p.shape.Stiffener(truncate)
}
