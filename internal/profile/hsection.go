package profile

import (
	"github.com/alexiusacademia/steelqty/internal/catalog"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// HSection is a rolled or welded H. A tapered web gives H1 != H2.
type HSection struct {
	Series string // leading identifier as written, e.g. "HW" or "BH"
	H1, H2 float64
	B1, B2 float64
	S      float64
	T1, T2 float64
	Record *catalog.Record // set when the dimensions match a GB row
}

func (*HSection) Family() Family { return FamilyH }
func (*HSection) sealed()        {}

func (s *HSection) symmetric() bool {
	return s.H1 == s.H2 && s.B1 == s.B2 && s.T1 == s.T2
}

// hText is the web height, as the mean when tapered.
func (s *HSection) hText() string {
	if s.H1 != s.H2 {
		return "(" + n(s.H1) + "+" + n(s.H2) + ")/2"
	}
	return n(s.H1)
}

func (s *HSection) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H1 == 0 {
		return ""
	}
	if acc == formula.GBData {
		if s.Record == nil || !s.Record.HasArea() {
			return ""
		}
		return minus(formula.Plain(s.Record.Area), excludeTop, n(s.B1))
	}

	var expr string
	if s.H1 != s.H2 {
		expr = n(s.H1) + "+" + n(s.H2)
	} else {
		expr = "2*" + n(s.H1)
	}
	if s.B1 != s.B2 {
		expr += "+2*" + n(s.B1) + "+2*" + n(s.B2)
	} else {
		expr += "+4*" + n(s.B1)
	}
	expr = minus(expr, acc == formula.Precisely, "2*"+n(s.S))
	return minus(expr, excludeTop, n(s.B1))
}

func (s *HSection) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H1 == 0 {
		return ""
	}
	if acc == formula.GBData {
		if s.Record == nil {
			return ""
		}
		return formula.Plain(s.Record.Weight)
	}

	var flanges string
	if s.B1 == s.B2 && s.T1 == s.T2 {
		flanges = "2*" + n(s.B1) + "*" + n(s.T1)
	} else {
		flanges = n(s.B1) + "*" + n(s.T1) + "+" + n(s.B2) + "*" + n(s.T2)
	}

	web := s.hText() + "*" + n(s.S)
	if acc == formula.Precisely {
		if s.T1 == s.T2 {
			web = "(" + s.hText() + "-2*" + n(s.T1) + ")*" + n(s.S)
		} else {
			web = "(" + s.hText() + "-" + n(s.T1) + "-" + n(s.T2) + ")*" + n(s.S)
		}
	}
	return "(" + flanges + "+" + web + ")*" + st.Rho()
}

func (s *HSection) Stiffener(truncate bool) string {
	if s.H1 == 0 {
		return ""
	}
	h := (s.H1 + s.H2) / 2
	return plateText(s.T1, (s.B1-s.S)/2, h-s.T1-s.T2, truncate)
}

// hTables returns the GB tables searched for a series prefix. The generic
// prefixes search every H table in HW, HM, HN, HT order.
func hTables(series string) []*catalog.Table {
	switch series {
	case "HW", "HM", "HN", "HT":
		t, _ := catalog.Lookup(series)
		return []*catalog.Table{t}
	}
	return catalog.HSeries
}

func rolledSeries(series string) bool {
	switch series {
	case "H", "HW", "HM", "HN", "HT":
		return true
	}
	return false
}

func hRecordByParameters(series string, params ...float64) *catalog.Record {
	for _, t := range hTables(series) {
		if r, ok := catalog.FindByParameters(t, params...); ok {
			return &r
		}
	}
	return nil
}

func hFromRecord(series string, r catalog.Record) *HSection {
	h, b, sw, t := r.Params[0], r.Params[1], r.Params[2], r.Params[3]
	return &HSection{
		Series: series,
		H1:     h * mm,
		H2:     h * mm,
		B1:     b * mm,
		B2:     b * mm,
		S:      sw * mm,
		T1:     t * mm,
		T2:     t * mm,
		Record: &r,
	}
}

func parseH(text string) (Shape, error) {
	g, c, ok := grammar.H.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyH)
	}

	series := c.String("TYPE")
	if g.Name == grammar.Catalog {
		h, b := c.Float("H"), c.Float("B")
		for _, t := range hTables(series) {
			name := t.Name + c.String("H") + "*" + c.String("B")
			r, ok := catalog.ResolveName(t, name, h, b)
			if !ok {
				r, ok = catalog.FindByParameters(t, h, b)
			}
			if ok {
				return hFromRecord(t.Name, r), nil
			}
		}
		return nil, noRecord(text, FamilyH, series+c.String("H")+"*"+c.String("B"))
	}

	h1, h2 := c.Span("h")
	if g.Name == grammar.HHBBSTT {
		h1, h2 = c.Float("h1"), c.Float("h2")
	}
	b1, t1, sw := c.Float("b1"), c.Float("t1"), c.Float("s")
	b2, t2 := defaultTo(c.Float("b2"), b1), defaultTo(c.Float("t2"), t1)
	h2 = defaultTo(h2, h1)

	s := &HSection{
		Series: series,
		H1:     h1 * mm,
		H2:     h2 * mm,
		B1:     b1 * mm,
		B2:     b2 * mm,
		S:      sw * mm,
		T1:     t1 * mm,
		T2:     t2 * mm,
	}
	// welded BH/WH sections are never quoted at rolled GB values
	if s.symmetric() && rolledSeries(series) {
		s.Record = hRecordByParameters(series, h1, b1, sw, t1)
	}
	return s, nil
}

// Cruciform is two H members welded web to web at right angles.
type Cruciform struct {
	H1, B1, S1, T1 float64
	H2, B2, S2, T2 float64
}

func (*Cruciform) Family() Family { return FamilyHH }
func (*Cruciform) sealed()        {}

func (s *Cruciform) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H1 == 0 || acc == formula.GBData {
		return ""
	}
	expr := "2*" + n(s.H1) + "+4*" + n(s.B1) + "+2*" + n(s.H2) + "+4*" + n(s.B2)
	expr = minus(expr, acc == formula.Precisely, "4*"+n(s.S1)+"-4*"+n(s.S2))
	return minus(expr, excludeTop, n(s.B1))
}

func (s *Cruciform) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H1 == 0 || acc == formula.GBData {
		return ""
	}
	web1 := n(s.H1) + "*" + n(s.S1)
	web2 := n(s.H2) + "*" + n(s.S2)
	if acc == formula.Precisely {
		web1 = "(" + n(s.H1) + "-2*" + n(s.T1) + ")*" + n(s.S1)
		// the second web is cut by the first one
		web2 = "(" + n(s.H2) + "-2*" + n(s.T2) + "-" + n(s.S1) + ")*" + n(s.S2)
	}
	return "(2*" + n(s.B1) + "*" + n(s.T1) + "+" + web1 +
		"+2*" + n(s.B2) + "*" + n(s.T2) + "+" + web2 + ")*" + st.Rho()
}

func (s *Cruciform) Stiffener(truncate bool) string {
	if s.H1 == 0 {
		return ""
	}
	return plateText(s.T1, (s.B1-s.S1)/2, s.H1-2*s.T1, truncate)
}

func parseHH(text string) (Shape, error) {
	_, c, ok := grammar.HH.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyHH)
	}
	h1, b1, s1, t1 := c.Float("h1"), c.Float("b1"), c.Float("s1"), c.Float("t1")
	return &Cruciform{
		H1: h1 * mm, B1: b1 * mm, S1: s1 * mm, T1: t1 * mm,
		H2: defaultTo(c.Float("h2"), h1) * mm,
		B2: defaultTo(c.Float("b2"), b1) * mm,
		S2: defaultTo(c.Float("s2"), s1) * mm,
		T2: defaultTo(c.Float("t2"), t1) * mm,
	}, nil
}

// TSection is a T, either welded or cut in half from a GB H section.
type TSection struct {
	H      formula.Dim
	B, S   float64
	T      float64
	Record *catalog.Record // the parent H row for catalog sizes
}

func (*TSection) Family() Family { return FamilyT }
func (*TSection) sealed()        {}

func (s *TSection) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H.IsZero() {
		return ""
	}
	if acc == formula.GBData {
		if s.Record == nil || !s.Record.HasArea() {
			return ""
		}
		return minus(formula.Plain(s.Record.Area)+"/2", excludeTop, n(s.B))
	}
	expr := "2*" + atom(s.H) + "+2*" + n(s.B)
	expr = minus(expr, acc == formula.Precisely, n(s.S))
	return minus(expr, excludeTop, n(s.B))
}

func (s *TSection) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H.IsZero() {
		return ""
	}
	switch acc {
	case formula.GBData:
		if s.Record == nil {
			return ""
		}
		return formula.Plain(s.Record.Weight) + "/2"
	case formula.Precisely:
		return "(" + n(s.B) + "*" + n(s.T) + "+(" + s.H.Text() + "-" + n(s.T) + ")*" + n(s.S) + ")*" + st.Rho()
	}
	return "(" + n(s.B) + "*" + n(s.T) + "+" + s.H.Text() + "*" + n(s.S) + ")*" + st.Rho()
}

func (s *TSection) Stiffener(truncate bool) string {
	if s.H.IsZero() {
		return ""
	}
	return plateText(s.T, (s.B-s.S)/2, s.H.Value()-s.T, truncate)
}

func parseT(text string) (Shape, error) {
	g, c, ok := grammar.T.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilyT)
	}

	if g.Name == grammar.Catalog {
		series := "H" + c.String("TYPE")[1:]
		table, _ := catalog.Lookup(series)
		h, b := 2*c.Float("H"), c.Float("B")
		name := series + formula.Plain(h) + "*" + c.String("B")
		r, ok := catalog.ResolveName(table, name, h, b)
		if !ok {
			r, ok = catalog.FindByParameters(table, h, b)
		}
		if !ok {
			return nil, noRecord(text, FamilyT, name)
		}
		return &TSection{
			H:      formula.Fixed(r.Params[0] / 2 * mm),
			B:      r.Params[1] * mm,
			S:      r.Params[2] * mm,
			T:      r.Params[3] * mm,
			Record: &r,
		}, nil
	}

	lo, hi := c.Span("h")
	return &TSection{
		H: formula.Dim{Lo: lo, Hi: hi}.Scaled(mm),
		B: c.Float("b") * mm,
		S: c.Float("s") * mm,
		T: c.Float("t") * mm,
	}, nil
}
