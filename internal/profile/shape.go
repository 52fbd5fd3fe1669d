package profile

import (
	"github.com/alexiusacademia/steelqty/internal/formula"
)

// Shape is a parsed profile. The set of implementations is closed: one
// struct per family (paired families share their single member's struct and
// carry an Arrangement).
//
// Area and Weight return "" when the formula cannot be produced at the
// requested accuracy; that is not an error.
type Shape interface {
	Family() Family
	// Area is the surface area per metre (per piece for plates and spheres).
	Area(acc formula.Accuracy, excludeTop bool, st formula.Style) string
	// Weight is the mass per metre (per piece for plates and spheres).
	Weight(acc formula.Accuracy, st formula.Style) string
	// Stiffener describes a plate that fits the section, in millimetres.
	Stiffener(truncate bool) string

	sealed()
}

// Arrangement says how a paired section's two members sit.
type Arrangement int

const (
	Single Arrangement = iota
	MouthToMouth
	BackToBack
)

const mm = formula.MM

func n(v float64) string {
	return formula.Num(v)
}

func plateText(t, b, l float64, truncate bool) string {
	return "PL" + formula.Millimetres(t, truncate) + "*" + formula.Millimetres(b, truncate) + "*" + formula.Millimetres(l, truncate)
}

func discText(t, d float64, truncate bool) string {
	return "PLD" + formula.Millimetres(t, truncate) + "*" + formula.Millimetres(d, truncate)
}

// minus appends -term when cond holds.
func minus(expr string, cond bool, term string) string {
	if !cond {
		return expr
	}
	return expr + "-" + term
}

// defaultTo returns v, or def when v is zero.
func defaultTo(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// atom parenthesises a dimension that is about to be raised to a power.
func atom(d formula.Dim) string {
	if d.Variable() {
		return "(" + d.Text() + ")"
	}
	return d.Text()
}
