package profile

import (
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// Piece is one of the three basic plate kinds a composite is built from.
type Piece interface {
	Shape
	// Thickness is the plate thickness in metres.
	Thickness() float64
	// coefficient is the weight formula without the trailing *t*ρ.
	coefficient(st formula.Style) string
}

func pieceWeight(p Piece, st formula.Style) string {
	if p.Thickness() == 0 {
		return "0"
	}
	return p.coefficient(st) + "*" + n(p.Thickness()) + "*" + st.Rho()
}

// Plate is a flat plate: a Strip measured per metre (PL300*10) or a piece of
// B by L (PL14*400*500).
type Plate struct {
	T     float64
	B, L  formula.Dim
	Strip bool
}

func (*Plate) Family() Family { return FamilyPL }
func (*Plate) sealed()        {}

func (s *Plate) Thickness() float64 { return s.T }

// empty reports a zero width, or a zero length on a piece.
func (s *Plate) empty() bool {
	return s.B.IsZero() || (!s.Strip && s.L.IsZero())
}

func (s *Plate) coefficient(formula.Style) string {
	if s.Strip {
		return s.B.Text()
	}
	return s.B.Text() + "*" + s.L.Text()
}

func (s *Plate) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.empty() || acc == formula.GBData {
		return ""
	}
	b, t := s.B.Text(), n(s.T)

	if s.Strip {
		switch {
		case acc == formula.Precisely && excludeTop:
			return b + "+2*" + t
		case acc == formula.Precisely:
			return "2*(" + b + "+" + t + ")"
		case excludeTop:
			return b
		}
		return "2*" + b
	}

	l := s.L.Text()
	edges := "(" + b + "+" + l + ")*" + t
	switch {
	case acc == formula.Precisely && excludeTop:
		return b + "*" + l + "+2*" + edges
	case acc == formula.Precisely:
		return "2*(" + b + "*" + l + "+" + edges + ")"
	case excludeTop:
		return b + "*" + l
	}
	return "2*" + b + "*" + l
}

// Weight is the same at every accuracy. A zero thickness gives "0".
func (s *Plate) Weight(_ formula.Accuracy, st formula.Style) string {
	if s.empty() {
		return ""
	}
	return pieceWeight(s, st)
}

func (*Plate) Stiffener(bool) string { return "" }

func parsePL(text string) (Shape, error) {
	_, c, ok := grammar.PL.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyPL)
	}
	a, b := c.Float("a"), c.Float("b")
	if a > b {
		a, b = b, a
	}
	return &Plate{T: a * mm, B: formula.Fixed(b * mm), Strip: true}, nil
}

// Triangle is a right-angled plate with legs B and L.
type Triangle struct {
	T    float64
	B, L formula.Dim
}

func (*Triangle) Family() Family { return FamilyPLTriangle }
func (*Triangle) sealed()        {}

func (s *Triangle) Thickness() float64 { return s.T }

func (s *Triangle) coefficient(formula.Style) string {
	return s.B.Text() + "*" + s.L.Text() + "/2"
}

func (s *Triangle) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.B.IsZero() || acc == formula.GBData {
		return ""
	}
	faces := s.B.Text() + "*" + s.L.Text()
	if excludeTop {
		faces += "/2"
	}
	if acc == formula.Roughly {
		return faces
	}
	b, l := s.B.Text(), s.L.Text()
	return faces + "+(" + b + "+" + l + "+SQRT(" + atom(s.B) + "^2+" + atom(s.L) + "^2))*" + n(s.T)
}

func (s *Triangle) Weight(_ formula.Accuracy, st formula.Style) string {
	if s.B.IsZero() {
		return ""
	}
	return pieceWeight(s, st)
}

func (*Triangle) Stiffener(bool) string { return "" }

// Disc is a circular plate of diameter D.
type Disc struct {
	T, D float64
}

func (*Disc) Family() Family { return FamilyPLCircular }
func (*Disc) sealed()        {}

func (s *Disc) Thickness() float64 { return s.T }

func (s *Disc) coefficient(st formula.Style) string {
	return st.PI() + "*" + n(s.D) + "^2/4"
}

func (s *Disc) Area(acc formula.Accuracy, excludeTop bool, st formula.Style) string {
	if s.D == 0 || acc == formula.GBData {
		return ""
	}
	faces := st.PI() + "*" + n(s.D) + "^2/2"
	if excludeTop {
		faces = st.PI() + "*" + n(s.D) + "^2/4"
	}
	if acc == formula.Roughly {
		return faces
	}
	return faces + "+" + st.PI() + "*" + n(s.D) + "*" + n(s.T)
}

func (s *Disc) Weight(_ formula.Accuracy, st formula.Style) string {
	if s.D == 0 {
		return ""
	}
	return pieceWeight(s, st)
}

func (*Disc) Stiffener(bool) string { return "" }

// sortPlateDims takes the three dimensions of a plate or triangle term and
// returns them as thickness, width and length. The thinnest is the
// thickness; the other two keep their written order. The thickness may not
// taper, and at most one of the others may.
func sortPlateDims(c grammar.Captures) (t float64, b, l formula.Dim, reason string) {
	names := [3]string{"a", "b", "c"}
	dims := [3]formula.Dim{}
	thin := 0
	for i, name := range names {
		lo, hi := c.Span(name)
		dims[i] = formula.Dim{Lo: lo, Hi: hi}
		if dims[i].Value() < dims[thin].Value() {
			thin = i
		}
	}
	if dims[thin].Variable() {
		return 0, formula.Dim{}, formula.Dim{}, "thickness cannot taper"
	}

	rest := make([]formula.Dim, 0, 2)
	for i, d := range dims {
		if i != thin {
			rest = append(rest, d)
		}
	}
	if rest[0].Variable() && rest[1].Variable() {
		return 0, formula.Dim{}, formula.Dim{}, "only one side may taper"
	}
	return dims[thin].Lo * mm, rest[0].Scaled(mm), rest[1].Scaled(mm), ""
}

func plateFromTerm(c grammar.Captures) (*Plate, string) {
	t, b, l, reason := sortPlateDims(c)
	if reason != "" {
		return nil, reason
	}
	return &Plate{T: t, B: b, L: l}, ""
}

func triangleFromTerm(c grammar.Captures) (*Triangle, string) {
	t, b, l, reason := sortPlateDims(c)
	if reason != "" {
		return nil, reason
	}
	return &Triangle{T: t, B: b, L: l}, ""
}

func discFromTerm(c grammar.Captures) *Disc {
	return &Disc{T: c.Float("t") * mm, D: c.Float("d") * mm}
}

func parseTriangle(text string) (Shape, error) {
	c, ok := grammar.TriangleTerm.Match(text)
	if !ok || c.Has("QTY") {
		return nil, noGrammar(text, FamilyPLTriangle)
	}
	s, reason := triangleFromTerm(c)
	if reason != "" {
		return nil, mismatch(text, FamilyPLTriangle, reason)
	}
	return s, nil
}

func parseDisc(text string) (Shape, error) {
	c, ok := grammar.DiscTerm.Match(text)
	if !ok || c.Has("QTY") {
		return nil, noGrammar(text, FamilyPLCircular)
	}
	return discFromTerm(c), nil
}
