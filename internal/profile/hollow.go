package profile

import (
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// ColdRectHollow is a cold-formed rectangular or square hollow section. The
// corners have an outer radius of 2t and an inner radius of t.
type ColdRectHollow struct {
	H, B, T float64
}

func (*ColdRectHollow) Family() Family { return FamilyCFHJ }
func (*ColdRectHollow) sealed()        {}

func (s *ColdRectHollow) Area(acc formula.Accuracy, excludeTop bool, st formula.Style) string {
	if s.H == 0 || acc == formula.GBData {
		return ""
	}
	expr := "2*(" + n(s.H) + "+" + n(s.B) + ")"
	if acc == formula.Precisely {
		expr += "-(8-2*" + st.PI() + ")*2*" + n(s.T)
	}
	return minus(expr, excludeTop, n(s.B))
}

func (s *ColdRectHollow) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H == 0 || acc == formula.GBData {
		return ""
	}
	wall := "(2*(" + n(s.H) + "+" + n(s.B) + ")-4*" + n(s.T) + ")*" + n(s.T)
	if acc == formula.Precisely {
		return "(" + wall + "-(4-" + st.PI() + ")*3*" + n(s.T) + "^2)*" + st.Rho()
	}
	return wall + "*" + st.Rho()
}

func (s *ColdRectHollow) Stiffener(truncate bool) string {
	if s.H == 0 {
		return ""
	}
	return plateText(s.T, s.B-2*s.T, s.H-2*s.T, truncate)
}

func parseCFHJ(text string) (Shape, error) {
	_, c, ok := grammar.CFHJ.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyCFHJ)
	}
	h := c.Float("h")
	return &ColdRectHollow{
		H: h * mm,
		B: defaultTo(c.Float("b"), h) * mm,
		T: c.Float("t") * mm,
	}, nil
}

// HollowOutline tells the cold-formed curved hollow sections apart.
type HollowOutline int

const (
	RoundOutline HollowOutline = iota
	EllipseOutline
	StadiumOutline
)

// ColdCurvedHollow is a cold-formed round, elliptical or stadium hollow
// section. A and B are the outer axes (for a stadium, overall height and
// width); a round section has A == B.
type ColdCurvedHollow struct {
	Outline HollowOutline
	A, B    float64
	T       float64
}

func (*ColdCurvedHollow) Family() Family { return FamilyCFHY }
func (*ColdCurvedHollow) sealed()        {}

func (s *ColdCurvedHollow) round() bool {
	return s.Outline == RoundOutline || (s.Outline == EllipseOutline && s.A == s.B)
}

// perimeter is the outer perimeter expression.
func (s *ColdCurvedHollow) perimeter(st formula.Style) string {
	switch {
	case s.round():
		return st.PI() + "*" + n(s.A)
	case s.Outline == EllipseOutline:
		return formula.Plain(formula.EllipsePerimeter(s.A/2, s.B/2))
	}
	return "2*(" + n(s.A) + "-" + n(s.B) + ")+" + st.PI() + "*" + n(s.B)
}

func (s *ColdCurvedHollow) Area(acc formula.Accuracy, _ bool, st formula.Style) string {
	if s.A == 0 || acc == formula.GBData {
		return ""
	}
	return s.perimeter(st)
}

func (s *ColdCurvedHollow) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.A == 0 || acc == formula.GBData {
		return ""
	}
	t := n(s.T)
	if acc == formula.Roughly {
		return formula.Paren(s.perimeter(st)) + "*" + t + "*" + st.Rho()
	}
	switch {
	case s.round():
		return st.PI() + "*(" + n(s.A) + "-" + t + ")*" + t + "*" + st.Rho()
	case s.Outline == EllipseOutline:
		return st.PI() + "*(" + n(s.A) + "*" + n(s.B) + "-(" + n(s.A) + "-2*" + t + ")*(" + n(s.B) + "-2*" + t + "))/4*" + st.Rho()
	}
	return "(2*(" + n(s.A) + "-" + n(s.B) + ")+" + st.PI() + "*(" + n(s.B) + "-" + t + "))*" + t + "*" + st.Rho()
}

func (s *ColdCurvedHollow) Stiffener(truncate bool) string {
	if s.A == 0 || !s.round() {
		return ""
	}
	return discText(s.T, s.A-2*s.T, truncate)
}

func parseCFHY(text string) (Shape, error) {
	g, c, ok := grammar.CFHY.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyCFHY)
	}
	t := c.Float("t") * mm
	switch g.Name {
	case grammar.Ellipse:
		return &ColdCurvedHollow{Outline: EllipseOutline, A: c.Float("a") * mm, B: c.Float("b") * mm, T: t}, nil
	case grammar.Stadium:
		return &ColdCurvedHollow{Outline: StadiumOutline, A: c.Float("h") * mm, B: c.Float("b") * mm, T: t}, nil
	}
	d := c.Float("d") * mm
	return &ColdCurvedHollow{Outline: RoundOutline, A: d, B: d, T: t}, nil
}

// Circular is a solid round bar (T == 0) or a pipe. The diameter may taper.
type Circular struct {
	D formula.Dim
	T float64
}

func (*Circular) Family() Family { return FamilyCirc }
func (*Circular) sealed()        {}

func (s *Circular) Area(acc formula.Accuracy, _ bool, st formula.Style) string {
	if s.D.IsZero() || acc == formula.GBData {
		return ""
	}
	return st.PI() + "*" + s.D.Text()
}

func (s *Circular) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.D.IsZero() || acc == formula.GBData {
		return ""
	}
	if s.T == 0 {
		return st.PI() + "*" + atom(s.D) + "^2/4*" + st.Rho()
	}
	t := n(s.T)
	if acc == formula.Precisely {
		return st.PI() + "*(" + s.D.Text() + "-" + t + ")*" + t + "*" + st.Rho()
	}
	return st.PI() + "*" + s.D.Text() + "*" + t + "*" + st.Rho()
}

func (s *Circular) Stiffener(truncate bool) string {
	if s.D.IsZero() || s.T == 0 {
		return ""
	}
	return discText(s.T, s.D.Value()-2*s.T, truncate)
}

func parseCirc(text string) (Shape, error) {
	_, c, ok := grammar.Circ.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyCirc)
	}
	lo, hi := c.Span("d")
	return &Circular{
		D: formula.Dim{Lo: lo, Hi: hi}.Scaled(mm),
		T: c.Float("t") * mm,
	}, nil
}

// Box is a welded box section: two webs of thickness S and two flanges of
// thickness T. A tapered box has H1 != H2.
type Box struct {
	H1, H2 float64
	B      float64
	S, T   float64
}

func (*Box) Family() Family { return FamilyRect }
func (*Box) sealed()        {}

func (s *Box) hText() string {
	if s.H1 != s.H2 {
		return "(" + n(s.H1) + "+" + n(s.H2) + ")/2"
	}
	return n(s.H1)
}

func (s *Box) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H1 == 0 || acc == formula.GBData {
		return ""
	}
	var expr string
	if s.H1 != s.H2 {
		expr = n(s.H1) + "+" + n(s.H2) + "+2*" + n(s.B)
	} else {
		expr = "2*" + n(s.H1) + "+2*" + n(s.B)
	}
	return minus(expr, excludeTop, n(s.B))
}

func (s *Box) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H1 == 0 || acc == formula.GBData {
		return ""
	}
	flanges := "2*" + n(s.B) + "*" + n(s.T)
	if acc == formula.Precisely {
		return "(2*(" + s.hText() + "-2*" + n(s.T) + ")*" + n(s.S) + "+" + flanges + ")*" + st.Rho()
	}
	return "(2*" + s.hText() + "*" + n(s.S) + "+" + flanges + ")*" + st.Rho()
}

func (s *Box) Stiffener(truncate bool) string {
	if s.H1 == 0 {
		return ""
	}
	h := (s.H1 + s.H2) / 2
	return plateText(s.T, s.B-2*s.S, h-2*s.T, truncate)
}

func parseRect(text string) (Shape, error) {
	g, c, ok := grammar.Rect.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyRect)
	}

	if g.Name == grammar.Gauge {
		// each height is the mean of its nominal and net values; the flange
		// thickness is half the mean difference
		H1, h1 := c.Float("H1"), c.Float("h1")
		H2, h2 := c.Float("H2"), c.Float("h2")
		return &Box{
			H1: (H1 + h1) / 2 * mm,
			H2: (H2 + h2) / 2 * mm,
			B:  c.Float("b") * mm,
			S:  c.Float("s") * mm,
			T:  ((H1-h1)/2 + (H2-h2)/2) / 2 * mm,
		}, nil
	}

	h1, h2 := c.Span("h")
	t := c.Float("t")
	return &Box{
		H1: h1 * mm,
		H2: h2 * mm,
		B:  c.Float("b") * mm,
		S:  defaultTo(c.Float("s"), t) * mm,
		T:  t * mm,
	}, nil
}
