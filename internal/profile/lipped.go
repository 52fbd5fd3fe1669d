package profile

import (
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// Lipped is a cold-formed lipped channel or lipped Z of uniform thickness T.
// B1 and B2 are the two flanges, C the lip.
type Lipped struct {
	Z           bool
	Arrangement Arrangement
	H           float64
	B1, B2      float64
	C, T        float64
}

func (s *Lipped) Family() Family {
	if s.Z {
		return FamilyCFOZJ
	}
	switch s.Arrangement {
	case MouthToMouth:
		return FamilyCFOCNMtM
	case BackToBack:
		return FamilyCFOCNBtB
	}
	return FamilyCFOCN
}

func (*Lipped) sealed() {}

// developed is the centreline length of one member.
func (s *Lipped) developed() string {
	if s.B1 == s.B2 {
		return n(s.H) + "+2*" + n(s.B1) + "+2*" + n(s.C)
	}
	return n(s.H) + "+" + n(s.B1) + "+" + n(s.B2) + "+2*" + n(s.C)
}

func (s *Lipped) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H == 0 || acc == formula.GBData {
		return ""
	}
	expr := "2*(" + s.developed() + ")"
	expr = minus(expr, acc == formula.Precisely, "6*"+n(s.T))
	if s.Arrangement != Single {
		return minus(formula.Twice(expr), excludeTop, "2*"+n(s.B1))
	}
	return minus(expr, excludeTop, n(s.B1))
}

func (s *Lipped) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H == 0 || acc == formula.GBData {
		return ""
	}
	length := s.developed()
	if acc == formula.Precisely {
		length += "-4*" + n(s.T)
	}
	expr := "(" + length + ")*" + n(s.T) + "*" + st.Rho()
	if s.Arrangement != Single {
		return formula.Twice(expr)
	}
	return expr
}

// Stiffener is always empty: a lipped section has no room for one.
func (*Lipped) Stiffener(bool) string { return "" }

func parseLipped(f Family, set grammar.Set, z bool, arr Arrangement) func(string) (Shape, error) {
	return func(text string) (Shape, error) {
		g, c, ok := set.Match(text)
		if !ok {
			return nil, noGrammar(text, f)
		}
		if g.Name == grammar.Gauge {
			// nominal and net depth, nominal and net flange, thickness, lip
			b := (c.Float("H2") + c.Float("h2")) / 2
			return &Lipped{
				Z:           z,
				Arrangement: arr,
				H:           (c.Float("H1") + c.Float("h1")) / 2 * mm,
				B1:          b * mm,
				B2:          b * mm,
				C:           c.Float("b") * mm,
				T:           c.Float("s") * mm,
			}, nil
		}
		b1 := c.Float("b1")
		return &Lipped{
			Z:           z,
			Arrangement: arr,
			H:           c.Float("h") * mm,
			B1:          b1 * mm,
			B2:          defaultTo(c.Float("b2"), b1) * mm,
			C:           c.Float("c") * mm,
			T:           c.Float("t") * mm,
		}, nil
	}
}

var (
	parseCFOCN    = parseLipped(FamilyCFOCN, grammar.CFOCN, false, Single)
	parseCFOCNMtM = parseLipped(FamilyCFOCNMtM, grammar.CFOCNMtM, false, MouthToMouth)
	parseCFOCNBtB = parseLipped(FamilyCFOCNBtB, grammar.CFOCNBtB, false, BackToBack)
	parseCFOZJ    = parseLipped(FamilyCFOZJ, grammar.CFOZJ, true, Single)
)
