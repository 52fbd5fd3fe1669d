package profile

import (
	"github.com/alexiusacademia/steelqty/internal/catalog"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// Angle is an equal or unequal leg angle, single or two back to back.
type Angle struct {
	Pair   bool
	H, B   float64
	T      float64
	Record *catalog.Record
}

func (s *Angle) Family() Family {
	if s.Pair {
		return FamilyAngleBtB
	}
	return FamilyAngle
}

func (*Angle) sealed() {}

func (s *Angle) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H == 0 {
		return ""
	}

	var expr string
	if acc == formula.GBData {
		if s.Record == nil || !s.Record.HasArea() {
			return ""
		}
		expr = formula.Plain(s.Record.Area)
		if s.Pair {
			expr = "2*" + expr + "-2*" + n(s.H)
		}
	} else {
		expr = "2*" + n(s.H) + "+2*" + n(s.B)
		if s.Pair {
			expr = formula.Twice(expr)
		}
	}

	if s.Pair {
		return minus(expr, excludeTop, "2*"+n(s.B))
	}
	return minus(expr, excludeTop, n(s.B))
}

func (s *Angle) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H == 0 {
		return ""
	}

	var expr string
	switch acc {
	case formula.GBData:
		if s.Record == nil {
			return ""
		}
		expr = formula.Plain(s.Record.Weight)
	case formula.Precisely:
		expr = "(" + n(s.H) + "+" + n(s.B) + "-" + n(s.T) + ")*" + n(s.T) + "*" + st.Rho()
	default:
		expr = "(" + n(s.H) + "+" + n(s.B) + ")*" + n(s.T) + "*" + st.Rho()
	}
	if s.Pair {
		return formula.Twice(expr)
	}
	return expr
}

func (s *Angle) Stiffener(truncate bool) string {
	if s.H == 0 {
		return ""
	}
	return plateText(s.T, s.B-s.T, s.H-s.T, truncate)
}

func parseAngleSet(text string, f Family, set grammar.Set) (*Angle, error) {
	g, c, ok := set.Match(text)
	if !ok {
		return nil, noGrammar(text, f)
	}

	if g.Name == grammar.SizeCode {
		// the size code gives the legs in centimetres
		h, b, t := c.Float("H")*10, c.Float("B")*10, c.Float("t")
		r, found := catalog.FindByParameters(catalog.Angle, h, b, t)
		if !found {
			return nil, noRecord(text, f, c.String("H")+"/"+c.String("B")+"*"+c.String("t"))
		}
		return &Angle{H: h * mm, B: b * mm, T: t * mm, Record: &r}, nil
	}

	h, t := c.Float("h"), c.Float("t")
	b := defaultTo(c.Float("b"), h)
	s := &Angle{H: h * mm, B: b * mm, T: t * mm}
	if r, found := catalog.FindByParameters(catalog.Angle, h, b, t); found {
		s.Record = &r
	}
	return s, nil
}

func parseAngle(text string) (Shape, error) {
	return parseAngleSet(text, FamilyAngle, grammar.L)
}

func parseAngleBtB(text string) (Shape, error) {
	s, err := parseAngleSet(text, FamilyAngleBtB, grammar.LBtB)
	if err != nil {
		return nil, err
	}
	s.Pair = true
	return s, nil
}
