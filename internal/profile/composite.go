package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// Term is one signed part of a composite plate.
type Term struct {
	Quantity float64
	Piece    Piece
}

// Composite is a signed sum of plates, triangles and discs, e.g.
// 2PL14*400*500-1.5PLT14*100.5*115+3PLO14*250.
type Composite struct {
	Terms []Term
}

func (*Composite) Family() Family { return FamilyPLComposite }
func (*Composite) sealed()        {}

func (s *Composite) Area(acc formula.Accuracy, excludeTop bool, st formula.Style) string {
	if len(s.Terms) == 0 || acc == formula.GBData {
		return ""
	}
	parts := make([]string, 0, len(s.Terms))
	for _, t := range s.Terms {
		a := t.Piece.Area(acc, excludeTop, st)
		if a == "" {
			return ""
		}
		parts = append(parts, formula.Scale(t.Quantity, a))
	}
	return formula.Join(parts...)
}

// Weight hoists a trailing *t*ρ, or failing that *ρ, when every term shares
// it. Otherwise the scaled term weights are joined as they are.
func (s *Composite) Weight(acc formula.Accuracy, st formula.Style) string {
	if len(s.Terms) == 0 {
		return ""
	}
	weights := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		weights[i] = t.Piece.Weight(acc, st)
		if weights[i] == "" {
			return ""
		}
	}

	suffixes := []string{
		"*" + n(s.Terms[0].Piece.Thickness()) + "*" + st.Rho(),
		"*" + st.Rho(),
	}
	for _, suffix := range suffixes {
		if expr, ok := s.factor(weights, suffix); ok {
			return expr
		}
	}

	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = formula.Scale(s.Terms[i].Quantity, w)
	}
	return formula.Join(parts...)
}

func (s *Composite) factor(weights []string, suffix string) (string, bool) {
	coefficients := make([]string, len(weights))
	for i, w := range weights {
		if len(w) <= len(suffix) || !strings.HasSuffix(w, suffix) {
			return "", false
		}
		coefficients[i] = formula.Scale(s.Terms[i].Quantity, strings.TrimSuffix(w, suffix))
	}
	return formula.Paren(formula.Join(coefficients...)) + suffix, true
}

func (*Composite) Stiffener(bool) string { return "" }

func parseQuantity(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseComposite(text string) (Shape, error) {
	parts := strings.Split(strings.ReplaceAll(text, "-", "+-"), "+")
	s := &Composite{}
	for i, part := range parts {
		if part == "" {
			// only a leading minus leaves an empty first part
			if i == 0 && strings.HasPrefix(text, "-") {
				continue
			}
			return nil, mismatch(text, FamilyPLComposite, "empty term")
		}
		g, c, ok := grammar.Terms.Match(part)
		if !ok {
			return nil, mismatch(text, FamilyPLComposite, fmt.Sprintf("term %q matches no plate grammar", part))
		}
		q, err := parseQuantity(c.String("QTY"))
		if err != nil {
			return nil, mismatch(text, FamilyPLComposite, fmt.Sprintf("bad quantity in %q", part))
		}

		var (
			piece  Piece
			reason string
		)
		switch g.Name {
		case grammar.Plate:
			piece, reason = plateFromTerm(c)
		case grammar.Triangle:
			piece, reason = triangleFromTerm(c)
		default:
			piece = discFromTerm(c)
		}
		if reason != "" {
			return nil, mismatch(text, FamilyPLComposite, reason)
		}
		s.Terms = append(s.Terms, Term{Quantity: q, Piece: piece})
	}
	if len(s.Terms) == 0 {
		return nil, noGrammar(text, FamilyPLComposite)
	}
	return s, nil
}
