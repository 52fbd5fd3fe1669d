package profile

import (
	"strings"

	"github.com/alexiusacademia/steelqty/internal/catalog"
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// Rolled is a hot-rolled I beam or channel. Both always resolve to a GB row,
// which supplies the flange thickness.
type Rolled struct {
	Kind        Family // FamilyI or FamilyChannel
	Arrangement Arrangement
	H, B, S, T  float64
	Record      catalog.Record
}

func (s *Rolled) Family() Family {
	if s.Kind == FamilyI {
		return FamilyI
	}
	switch s.Arrangement {
	case MouthToMouth:
		return FamilyChannelMtM
	case BackToBack:
		return FamilyChannelBtB
	}
	return FamilyChannel
}

func (*Rolled) sealed() {}

func (s *Rolled) paired() bool {
	return s.Arrangement != Single
}

func (s *Rolled) Area(acc formula.Accuracy, excludeTop bool, _ formula.Style) string {
	if s.H == 0 {
		return ""
	}

	var expr string
	switch acc {
	case formula.GBData:
		if !s.Record.HasArea() {
			return ""
		}
		expr = formula.Plain(s.Record.Area)
		switch s.Arrangement {
		case MouthToMouth:
			expr = "2*" + expr
		case BackToBack:
			// the backs are in contact
			expr = "2*" + expr + "-2*" + n(s.H)
		}
	default:
		expr = "2*" + n(s.H) + "+4*" + n(s.B)
		expr = minus(expr, acc == formula.Precisely, "2*"+n(s.S))
		if s.paired() {
			expr = formula.Twice(expr)
		}
	}

	if s.paired() {
		return minus(expr, excludeTop, "2*"+n(s.B))
	}
	return minus(expr, excludeTop, n(s.B))
}

func (s *Rolled) Weight(acc formula.Accuracy, st formula.Style) string {
	if s.H == 0 {
		return ""
	}

	var expr string
	switch acc {
	case formula.GBData:
		expr = formula.Plain(s.Record.Weight)
	case formula.Precisely:
		expr = "(2*" + n(s.B) + "*" + n(s.T) + "+(" + n(s.H) + "-2*" + n(s.T) + ")*" + n(s.S) + ")*" + st.Rho()
	default:
		expr = "(2*" + n(s.B) + "*" + n(s.T) + "+" + n(s.H) + "*" + n(s.S) + ")*" + st.Rho()
	}
	if s.paired() {
		return formula.Twice(expr)
	}
	return expr
}

func (s *Rolled) Stiffener(truncate bool) string {
	if s.H == 0 {
		return ""
	}
	if s.Kind == FamilyI {
		return plateText(s.T, (s.B-s.S)/2, s.H-2*s.T, truncate)
	}
	return plateText(s.T, s.B-s.S, s.H-2*s.T, truncate)
}

// rolledCode builds the catalog name for a size code. Sizes from threshold
// up come in a/b/c weights and default to a.
func rolledCode(prefix, code, suffix string, threshold float64, value float64) string {
	suffix = strings.ToLower(suffix)
	if suffix == "" && value >= threshold {
		suffix = "a"
	}
	return prefix + code + suffix
}

func parseRolled(text string, f Family, set grammar.Set, table *catalog.Table, threshold float64) (*Rolled, error) {
	g, c, ok := set.Match(text)
	if !ok {
		return nil, noGrammar(text, f)
	}

	var (
		r     catalog.Record
		found bool
		name  string
	)
	if g.Name == grammar.Code {
		name = rolledCode(table.Name, c.String("CODE"), c.String("SUFFIX"), threshold, c.Float("CODE"))
		r, found = catalog.FindByName(table, name)
	} else {
		name = c.String("h") + "*" + c.String("b") + "*" + c.String("s")
		r, found = catalog.FindByParameters(table, c.Float("h"), c.Float("b"), c.Float("s"))
	}
	if !found {
		return nil, noRecord(text, f, name)
	}

	return &Rolled{
		H:      r.Params[0] * mm,
		B:      r.Params[1] * mm,
		S:      r.Params[2] * mm,
		T:      r.Params[3] * mm,
		Record: r,
	}, nil
}

func parseI(text string) (Shape, error) {
	s, err := parseRolled(text, FamilyI, grammar.I, catalog.IBeam, 20)
	if err != nil {
		return nil, err
	}
	s.Kind = FamilyI
	return s, nil
}

func parseChannel(f Family, set grammar.Set, arr Arrangement) func(string) (Shape, error) {
	return func(text string) (Shape, error) {
		s, err := parseRolled(text, f, set, catalog.Channel, 14)
		if err != nil {
			return nil, err
		}
		s.Kind, s.Arrangement = FamilyChannel, arr
		return s, nil
	}
}

var (
	parseChan    = parseChannel(FamilyChannel, grammar.Chan, Single)
	parseChanMtM = parseChannel(FamilyChannelMtM, grammar.ChanMtM, MouthToMouth)
	parseChanBtB = parseChannel(FamilyChannelBtB, grammar.ChanBtB, BackToBack)
)
