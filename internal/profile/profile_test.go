package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelqty/internal/formula"
)

func TestProfileRollback(t *testing.T) {
	p := New()
	require.NoError(t, p.SetText("HW200*200"))

	area := p.AreaFormula(formula.Roughly, false)
	weight := p.WeightFormula(formula.GBData)
	stiffener := p.StiffenerProfileText(true)
	require.NotEmpty(t, area)

	for _, bad := range []string{"", "   ", "HW999*999", "nonsense"} {
		err := p.SetText(bad)
		require.Error(t, err, bad)
		assert.True(t, IsMismatch(err), bad)

		assert.Equal(t, "HW200*200", p.Text())
		assert.Equal(t, FamilyH, p.Family())
		assert.Equal(t, area, p.AreaFormula(formula.Roughly, false))
		assert.Equal(t, weight, p.WeightFormula(formula.GBData))
		assert.Equal(t, stiffener, p.StiffenerProfileText(true))
	}
}

func TestProfileEmpty(t *testing.T) {
	p := New()
	assert.Nil(t, p.Shape())
	assert.Equal(t, FamilyUnknown, p.Family())
	assert.Equal(t, "", p.AreaFormula(formula.Roughly, false))
	assert.Equal(t, "", p.WeightFormula(formula.Roughly))
	assert.Equal(t, "", p.StiffenerProfileText(false))

	// a failed first parse leaves it empty
	require.Error(t, p.SetText("Q1"))
	assert.Nil(t, p.Shape())
}

func TestProfileIdempotent(t *testing.T) {
	for _, text := range []string{"HW200*200", "2L100*120*4", "PL14*400*500", "YE400*200*5", "2C20a"} {
		p := New()
		require.NoError(t, p.SetText(text))
		first := []string{
			p.AreaFormula(formula.Precisely, true),
			p.WeightFormula(formula.Precisely),
			p.StiffenerProfileText(false),
		}
		require.NoError(t, p.SetText(text))
		second := []string{
			p.AreaFormula(formula.Precisely, true),
			p.WeightFormula(formula.Precisely),
			p.StiffenerProfileText(false),
		}
		assert.Equal(t, first, second, text)
	}
}

func TestProfileRoundAndStyle(t *testing.T) {
	p := New()
	require.NoError(t, p.SetText("D100"))

	assert.Equal(t, "PI()*0.1", p.AreaFormula(formula.Roughly, false))

	p.RoundDigits = 2
	assert.Equal(t, "ROUND(PI()*0.1,2)", p.AreaFormula(formula.Roughly, false))
	assert.Equal(t, "ROUND(PI()*0.1^2/4*7850,2)", p.WeightFormula(formula.Roughly))
	// empty stays empty
	assert.Equal(t, "", p.AreaFormula(formula.GBData, false))

	p.RoundDigits = -1
	p.Style.Pi = formula.PiNum
	assert.Equal(t, "3.14*0.1", p.AreaFormula(formula.Roughly, false))
	p.Style.Density = 7800
	assert.Equal(t, "3.14*0.1^2/4*7800", p.WeightFormula(formula.Roughly))
}
