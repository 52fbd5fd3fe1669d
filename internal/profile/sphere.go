package profile

import (
	"github.com/alexiusacademia/steelqty/internal/formula"
	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// Sphere is a solid ball of diameter D.
type Sphere struct {
	D float64
}

func (*Sphere) Family() Family { return FamilySphere }
func (*Sphere) sealed()        {}

func (s *Sphere) Area(_ formula.Accuracy, _ bool, st formula.Style) string {
	if s.D == 0 {
		return ""
	}
	return "4*" + st.PI() + "*(" + n(s.D) + "/2)^2"
}

func (s *Sphere) Weight(_ formula.Accuracy, st formula.Style) string {
	if s.D == 0 {
		return ""
	}
	return "4/3*" + st.PI() + "*(" + n(s.D) + "/2)^3*" + st.Rho()
}

func (*Sphere) Stiffener(bool) string { return "" }

func parseSphere(text string) (Shape, error) {
	_, c, ok := grammar.Sphere.Match(text)
	if !ok {
		return nil, noGrammar(text, FamilySphere)
	}
	return &Sphere{D: c.Float("d") * mm}, nil
}
