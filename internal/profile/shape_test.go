package profile

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/steelqty/internal/formula"
)

var (
	roughly   = formula.Roughly
	precisely = formula.Precisely
	gbdata    = formula.GBData
	style     = formula.DefaultStyle
)

func mustParse(t *testing.T, text string) Shape {
	t.Helper()
	s, err := Parse(text)
	require.NoError(t, err, text)
	return s
}

type formulaCase struct {
	text       string
	acc        formula.Accuracy
	excludeTop bool
	area       string
	weight     string
}

func checkFormulas(t *testing.T, tests []formulaCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.acc.String(), func(t *testing.T) {
			s := mustParse(t, tt.text)
			assert.Equal(t, tt.area, s.Area(tt.acc, tt.excludeTop, style), "area")
			assert.Equal(t, tt.weight, s.Weight(tt.acc, style), "weight")
		})
	}
}

func TestHCatalogTieBreak(t *testing.T) {
	s, ok := mustParse(t, "HW200*200").(*HSection)
	require.True(t, ok)
	require.NotNil(t, s.Record)
	assert.False(t, s.Record.Marked)
	assert.Equal(t, []float64{200, 200, 8, 12}, s.Record.Params)
	assert.Equal(t, "HW", s.Series)

	// the generic prefix searches HW first
	g := mustParse(t, "H200*200").(*HSection)
	assert.Equal(t, s.Record.Params, g.Record.Params)

	// every HW500*500 row is marked; the nominal dimensions do not occur
	// either, so the first listed row wins
	m := mustParse(t, "HW500*500").(*HSection)
	assert.Equal(t, []float64{492, 465, 15, 20}, m.Record.Params)
}

func TestHFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"HW200*200", roughly, false, "2*0.2+4*0.2", "(2*0.2*0.012+0.2*0.008)*7850"},
		{"HW200*200", precisely, false, "2*0.2+4*0.2-2*0.008", "(2*0.2*0.012+(0.2-2*0.012)*0.008)*7850"},
		{"HW200*200", gbdata, false, "1.16", "49.9"},
		{"HW200*200", gbdata, true, "1.16-0.2", "49.9"},
		{"HW200*200", roughly, true, "2*0.2+4*0.2-0.2", "(2*0.2*0.012+0.2*0.008)*7850"},
		{"H(300~500)*200*8*12", roughly, false, "0.3+0.5+4*0.2", "(2*0.2*0.012+(0.3+0.5)/2*0.008)*7850"},
		{"H(300~500)*200*8*12", gbdata, false, "", ""},
		{"H400*200*300*8*12*14", roughly, false, "2*0.4+2*0.2+2*0.3", "(0.2*0.012+0.3*0.014+0.4*0.008)*7850"},
		{"H400*200*300*8*12*14", precisely, false, "2*0.4+2*0.2+2*0.3-2*0.008", "(0.2*0.012+0.3*0.014+(0.4-0.012-0.014)*0.008)*7850"},
		{"BH400*200*8*12*14", precisely, false, "2*0.4+4*0.2-2*0.008", "(0.2*0.012+0.2*0.014+(0.4-0.012-0.014)*0.008)*7850"},
	})
}

func TestHDefaulting(t *testing.T) {
	same := [][]string{
		{"BH400*200*8*12", "BH400*200*8*12*12", "BH400*200*200*8*12*12", "BH400*400*200*200*8*12*12", "BH400*200/200*8*12/12"},
		{"HH200*100*6*8", "HH200*100*6*8*200*100*6*8"},
		{"J100*100*3", "J100*3"},
		{"L100*100*10", "L100*10"},
		{"B400*200*10*10", "B400*200*10"},
		{"C180*70*20*3", "C180*70*70*20*3"},
	}
	for _, group := range same {
		want := mustParse(t, group[0])
		for _, text := range group[1:] {
			got := mustParse(t, text)
			for _, acc := range []formula.Accuracy{roughly, precisely, gbdata} {
				assert.Equal(t, want.Area(acc, false, style), got.Area(acc, false, style), text)
				assert.Equal(t, want.Weight(acc, style), got.Weight(acc, style), text)
			}
			assert.Equal(t, want.Stiffener(false), got.Stiffener(false), text)
		}
	}
}

func TestHHFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"HH200*100*6*8", roughly, false, "2*0.2+4*0.1+2*0.2+4*0.1", "(2*0.1*0.008+0.2*0.006+2*0.1*0.008+0.2*0.006)*7850"},
		{"HH200*100*6*8", precisely, false, "2*0.2+4*0.1+2*0.2+4*0.1-4*0.006-4*0.006",
			"(2*0.1*0.008+(0.2-2*0.008)*0.006+2*0.1*0.008+(0.2-2*0.008-0.006)*0.006)*7850"},
		{"HH200*100*6*8", gbdata, false, "", ""},
	})
}

func TestTFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"TW100*200", roughly, false, "2*0.1+2*0.2", "(0.2*0.012+0.1*0.008)*7850"},
		{"TW100*200", precisely, false, "2*0.1+2*0.2-0.008", "(0.2*0.012+(0.1-0.012)*0.008)*7850"},
		{"TW100*200", gbdata, false, "1.16/2", "49.9/2"},
		{"T100*200*8*12", gbdata, false, "", ""},
	})
	assert.Equal(t, "PL12*96*88", mustParse(t, "TW100*200").Stiffener(false))
}

func TestRolledFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"I20a", roughly, false, "2*0.2+4*0.1", "(2*0.1*0.0114+0.2*0.007)*7850"},
		{"I20a", precisely, false, "2*0.2+4*0.1-2*0.007", "(2*0.1*0.0114+(0.2-2*0.0114)*0.007)*7850"},
		{"I20a", gbdata, false, "0.786", "27.9"},
		{"I20", gbdata, false, "0.786", "27.9"},
		{"I200*100*7", gbdata, false, "0.786", "27.9"},
		{"C20a", gbdata, true, "0.678-0.073", "22.6"},
		{"C200*73*7.0", gbdata, false, "0.678", "22.6"},
		{"2C20a", roughly, false, "2*(2*0.2+4*0.073)", "2*(2*0.073*0.011+0.2*0.007)*7850"},
		{"2C20a", roughly, true, "2*(2*0.2+4*0.073)-2*0.073", "2*(2*0.073*0.011+0.2*0.007)*7850"},
		{"2C20a", gbdata, false, "2*0.678-2*0.2", "2*22.6"},
		{"[]20a", gbdata, false, "2*0.678", "2*22.6"},
	})

	i := mustParse(t, "I20a")
	assert.Equal(t, "PL11.4*46.5*177.2", i.Stiffener(false))
	assert.Equal(t, "PL11*46*177", i.Stiffener(true))
	assert.Equal(t, "PL11*66*178", mustParse(t, "2C20a").Stiffener(false))

	c := mustParse(t, "C12.6").(*Rolled)
	assert.Equal(t, "C12.6", c.Record.Name)
	c = mustParse(t, "C14").(*Rolled)
	assert.Equal(t, "C14a", c.Record.Name)
}

func TestAngleFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"L100*10", roughly, false, "2*0.1+2*0.1", "(0.1+0.1)*0.01*7850"},
		{"L100*10", precisely, false, "2*0.1+2*0.1", "(0.1+0.1-0.01)*0.01*7850"},
		{"L100*10", gbdata, false, "0.392", "15.121"},
		{"L10/6.3*8", gbdata, false, "0.319", "9.879"},
		{"2L100*120*4", roughly, false, "2*(2*0.1+2*0.12)", "2*(0.1+0.12)*0.004*7850"},
		{"2L100*120*4", precisely, false, "2*(2*0.1+2*0.12)", "2*(0.1+0.12-0.004)*0.004*7850"},
		{"2L100*120*4", gbdata, false, "", ""},
		{"2L100*10", gbdata, false, "2*0.392-2*0.1", "2*15.121"},
	})
	assert.Equal(t, "PL10*90*90", mustParse(t, "L100*10").Stiffener(false))
}

func TestHollowFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"J100*50*3", roughly, false, "2*(0.1+0.05)", "(2*(0.1+0.05)-4*0.003)*0.003*7850"},
		{"J100*50*3", precisely, false, "2*(0.1+0.05)-(8-2*PI())*2*0.003",
			"((2*(0.1+0.05)-4*0.003)*0.003-(4-PI())*3*0.003^2)*7850"},
		{"J100*50*3", gbdata, false, "", ""},
		{"Y100*4", roughly, false, "PI()*0.1", "PI()*0.1*0.004*7850"},
		{"Y100*4", precisely, false, "PI()*0.1", "PI()*(0.1-0.004)*0.004*7850"},
		{"YE400*200*5", roughly, false, "0.969", "0.969*0.005*7850"},
		{"YE400*200*5", precisely, false, "0.969", "PI()*(0.4*0.2-(0.4-2*0.005)*(0.2-2*0.005))/4*7850"},
		{"YE200*200*5", roughly, false, "PI()*0.2", "PI()*0.2*0.005*7850"},
		{"YS300*100*5", roughly, false, "2*(0.3-0.1)+PI()*0.1", "(2*(0.3-0.1)+PI()*0.1)*0.005*7850"},
		{"YS300*100*5", precisely, false, "2*(0.3-0.1)+PI()*0.1", "(2*(0.3-0.1)+PI()*(0.1-0.005))*0.005*7850"},
		{"D20", roughly, false, "PI()*0.02", "PI()*0.02^2/4*7850"},
		{"D(20~30)", roughly, false, "PI()*(0.02+0.03)/2", "PI()*((0.02+0.03)/2)^2/4*7850"},
		{"PIPE100*5", precisely, false, "PI()*0.1", "PI()*(0.1-0.005)*0.005*7850"},
		{"PIPE100*5", gbdata, false, "", ""},
		{"B400*200*10*12", roughly, false, "2*0.4+2*0.2", "(2*0.4*0.01+2*0.2*0.012)*7850"},
		{"B400*200*10*12", precisely, true, "2*0.4+2*0.2-0.2", "(2*(0.4-2*0.012)*0.01+2*0.2*0.012)*7850"},
		{"B(400~600)*200*10*12", roughly, false, "0.4+0.6+2*0.2", "(2*(0.4+0.6)/2*0.01+2*0.2*0.012)*7850"},
		{"B424*400*424*400*10*200", roughly, false, "2*0.412+2*0.2", "(2*0.412*0.01+2*0.2*0.012)*7850"},
	})

	assert.Equal(t, "PL3*44*94", mustParse(t, "J100*50*3").Stiffener(false))
	assert.Equal(t, "PLD4*92", mustParse(t, "Y100*4").Stiffener(false))
	assert.Equal(t, "", mustParse(t, "YS300*100*5").Stiffener(false))
	assert.Equal(t, "PLD5*90", mustParse(t, "PIPE100*5").Stiffener(false))
	assert.Equal(t, "", mustParse(t, "D20").Stiffener(false))
	assert.Equal(t, "PL12*180*376", mustParse(t, "B400*200*10*12").Stiffener(false))
}

func TestLippedFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"C180*70*20*3", roughly, false, "2*(0.18+2*0.07+2*0.02)", "(0.18+2*0.07+2*0.02)*0.003*7850"},
		{"C180*70*20*3", precisely, false, "2*(0.18+2*0.07+2*0.02)-6*0.003", "(0.18+2*0.07+2*0.02-4*0.003)*0.003*7850"},
		{"C180*70*20*3", gbdata, false, "", ""},
		{"Z180*70*60*20*3", roughly, false, "2*(0.18+0.07+0.06+2*0.02)", "(0.18+0.07+0.06+2*0.02)*0.003*7850"},
		{"2C180*70*20*3", roughly, false, "2*2*(0.18+2*0.07+2*0.02)", "2*(0.18+2*0.07+2*0.02)*0.003*7850"},
		{"CC180*70*20*3", precisely, true, "2*(2*(0.18+2*0.07+2*0.02)-6*0.003)-2*0.07", "2*(0.18+2*0.07+2*0.02-4*0.003)*0.003*7850"},
	})
	for _, text := range []string{"C180*70*20*3", "2C180*70*20*3", "CC180*70*20*3", "Z180*70*20*3"} {
		assert.Equal(t, "", mustParse(t, text).Stiffener(false), text)
	}
}

func TestPlateFormulas(t *testing.T) {
	checkFormulas(t, []formulaCase{
		{"PL300*10", roughly, false, "2*0.3", "0.3*0.01*7850"},
		{"PL10*300", precisely, false, "2*(0.3+0.01)", "0.3*0.01*7850"},
		{"PL300*10", precisely, true, "0.3+2*0.01", "0.3*0.01*7850"},
		{"PL300*10", roughly, true, "0.3", "0.3*0.01*7850"},
		{"PL300*10", gbdata, false, "", "0.3*0.01*7850"},
		{"PLT14*100*115", roughly, false, "0.1*0.115", "0.1*0.115/2*0.014*7850"},
		{"PLT14*100*115", precisely, false, "0.1*0.115+(0.1+0.115+SQRT(0.1^2+0.115^2))*0.014", "0.1*0.115/2*0.014*7850"},
		{"PLO14*250", roughly, false, "PI()*0.25^2/2", "PI()*0.25^2/4*0.014*7850"},
		{"PLD14*250", precisely, true, "PI()*0.25^2/4+PI()*0.25*0.014", "PI()*0.25^2/4*0.014*7850"},
		{"SPH100", roughly, false, "4*PI()*(0.1/2)^2", "4/3*PI()*(0.1/2)^3*7850"},
		{"SPH100", gbdata, false, "4*PI()*(0.1/2)^2", "4/3*PI()*(0.1/2)^3*7850"},
	})
	for _, text := range []string{"PL300*10", "PLT14*100*115", "PLO14*250", "SPH100", "PL14*400*500"} {
		assert.Equal(t, "", mustParse(t, text).Stiffener(false), text)
	}
}

func TestPlateSentinels(t *testing.T) {
	// zero thickness still has a surface but no mass
	s := mustParse(t, "PL300*0")
	assert.Equal(t, "0", s.Weight(roughly, style))
	assert.Equal(t, "2*0.3", s.Area(roughly, false, style))

	// zero width is not computable at all
	z := mustParse(t, "PL0*0")
	assert.Equal(t, "", z.Weight(roughly, style))
	assert.Equal(t, "", z.Area(roughly, false, style))

	assert.NotEqual(t, s.Weight(roughly, style), z.Weight(roughly, style))
}

func TestPlatePieceZeroLength(t *testing.T) {
	// a piece that collapses to a line is not a per-metre strip
	s := mustParse(t, "PL0*400*0")
	require.Equal(t, FamilyPLComposite, s.Family())
	p := s.(*Composite).Terms[0].Piece.(*Plate)
	assert.False(t, p.Strip)
	assert.Equal(t, "", s.Area(roughly, false, style))
	assert.Equal(t, "", s.Weight(roughly, style))

	strip := mustParse(t, "PL300*10").(*Plate)
	assert.True(t, strip.Strip)
	assert.Equal(t, "2*0.3", strip.Area(roughly, false, style))
}

func TestGaugeAveraging(t *testing.T) {
	box, ok := mustParse(t, "B424*400*424*400*10*200").(*Box)
	require.True(t, ok)
	assert.InDelta(t, 0.412, box.H1, 1e-12)
	assert.InDelta(t, 0.412, box.H2, 1e-12)
	assert.InDelta(t, 0.2, box.B, 1e-12)
	assert.InDelta(t, 0.01, box.S, 1e-12)
	assert.InDelta(t, 0.012, box.T, 1e-12)

	tapered := mustParse(t, "B424*400*624*600*10*200").(*Box)
	assert.InDelta(t, 0.412, tapered.H1, 1e-12)
	assert.InDelta(t, 0.612, tapered.H2, 1e-12)
	assert.InDelta(t, 0.012, tapered.T, 1e-12)

	tests := []struct {
		text   string
		family Family
	}{
		{"C160*154*60*54*3*20", FamilyCFOCN},
		{"2C160*154*60*54*3*20", FamilyCFOCNBtB},
		{"CC160*154*60*54*3*20", FamilyCFOCNMtM},
		{"Z160*154*60*54*3*20", FamilyCFOZJ},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := mustParse(t, tt.text)
			require.Equal(t, tt.family, s.Family())
			l := s.(*Lipped)
			assert.InDelta(t, 0.157, l.H, 1e-12)
			assert.InDelta(t, 0.057, l.B1, 1e-12)
			assert.InDelta(t, 0.057, l.B2, 1e-12)
			assert.InDelta(t, 0.02, l.C, 1e-12)
			assert.InDelta(t, 0.003, l.T, 1e-12)
		})
	}
}

func TestWeldedHNotQuotedAtGB(t *testing.T) {
	rolled := mustParse(t, "H200*200*8*12").(*HSection)
	require.NotNil(t, rolled.Record)
	assert.Equal(t, "49.9", rolled.Weight(gbdata, style))

	for _, text := range []string{"BH200*200*8*12", "WH200*200*8*12"} {
		welded := mustParse(t, text).(*HSection)
		assert.Nil(t, welded.Record, text)
		assert.Equal(t, "", welded.Weight(gbdata, style), text)
		assert.Equal(t, rolled.Weight(roughly, style), welded.Weight(roughly, style), text)
	}
}

func TestPlateTaper(t *testing.T) {
	s := mustParse(t, "PL10*(400~500)*600")
	c, ok := s.(*Composite)
	require.True(t, ok)
	require.Len(t, c.Terms, 1)

	p := c.Terms[0].Piece.(*Plate)
	assert.InDelta(t, 0.01, p.T, 1e-12)
	assert.True(t, p.B.Variable())
	assert.Equal(t, "2*(0.4+0.5)/2*0.6", s.Area(roughly, false, style))
	assert.Equal(t, "(0.4+0.5)/2*0.6*0.01*7850", s.Weight(roughly, style))

	// the thinnest dimension is the thickness wherever it is written
	q := mustParse(t, "PL400*10*600").(*Composite).Terms[0].Piece.(*Plate)
	assert.InDelta(t, 0.01, q.T, 1e-12)
	assert.Equal(t, "0.4", q.B.Text())
	assert.Equal(t, "0.6", q.L.Text())
}

func TestComposite(t *testing.T) {
	s := mustParse(t, "2PL14*400*500-1.5PLT14*100.5*115+3PLO14*250")
	c, ok := s.(*Composite)
	require.True(t, ok)
	require.Len(t, c.Terms, 3)

	var quantities []float64
	for _, term := range c.Terms {
		quantities = append(quantities, term.Quantity)
	}
	assert.Equal(t, []float64{2, -1.5, 3}, quantities)
	assert.IsType(t, &Plate{}, c.Terms[0].Piece)
	assert.IsType(t, &Triangle{}, c.Terms[1].Piece)
	assert.IsType(t, &Disc{}, c.Terms[2].Piece)

	assert.Equal(t, "2*2*0.4*0.5-1.5*0.1005*0.115+3*PI()*0.25^2/2", s.Area(roughly, false, style))
	assert.NotEmpty(t, s.Area(roughly, false, style))
	assert.Empty(t, s.Area(gbdata, false, style))

	weight := s.Weight(roughly, style)
	assert.Equal(t, "(2*0.4*0.5-1.5*0.1005*0.115/2+3*PI()*0.25^2/4)*0.014*7850", weight)

	got, err := formula.Eval(weight)
	require.NoError(t, err)
	want := (2*0.4*0.5 - 1.5*0.1005*0.115/2 + 3*math.Pi*0.25*0.25/4) * 0.014 * 7850
	assert.InDelta(t, want, got, 1e-9)
}

func TestCompositeFactoring(t *testing.T) {
	tests := []struct {
		text   string
		weight string
	}{
		{"PL14*400*500", "0.4*0.5*0.014*7850"},
		{"-PL14*400*500", "(-0.4*0.5)*0.014*7850"},
		{"PL10*100*200+PL20*100*200", "(0.1*0.2*0.01+0.1*0.2*0.02)*7850"},
		{"PL10*100*200-2PLO20*50", "(0.1*0.2*0.01-2*PI()*0.05^2/4*0.02)*7850"},
		{"PL0*100*200+PL10*100*200", "0+0.1*0.2*0.01*7850"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.weight, mustParse(t, tt.text).Weight(roughly, style))
		})
	}
}

func TestPiStyle(t *testing.T) {
	num := formula.Style{Pi: formula.PiNum, Density: formula.DefaultDensity}
	for _, text := range []string{"D100*5", "Y100*4", "PLO14*250", "SPH100", "J100*50*3"} {
		s := mustParse(t, text)
		fn := s.Area(precisely, false, style)
		n := s.Area(precisely, false, num)
		assert.Contains(t, fn, "PI()", text)
		assert.Contains(t, n, "3.14", text)
		assert.NotContains(t, n, "PI()", text)
		assert.Equal(t, strings.ReplaceAll(fn, "PI()", "3.14"), n, text)
	}
}

func TestDensity(t *testing.T) {
	s := mustParse(t, "PL300*10")
	assert.Equal(t, "0.3*0.01*7800", s.Weight(roughly, formula.Style{Density: 7800}))
	assert.Equal(t, "0.3*0.01*7850", s.Weight(roughly, formula.Style{}))
}

// Every formula evaluates, and the roughly and precisely values stay close.
func TestFormulasEvaluate(t *testing.T) {
	for _, text := range []string{
		"HW200*200", "H(300~500)*200*8*12", "HH200*100*6*8", "TW100*200", "I20a", "2C20a",
		"[]20a", "L100*10", "2L100*120*4", "J100*50*3", "YE400*200*5", "YS300*100*5",
		"D(20~30)", "PIPE100*5", "B400*200*10*12", "C180*70*20*3", "CC180*70*20*3",
		"Z180*70*20*3", "PL300*10", "PLT14*100*115", "PLO14*250", "SPH100",
		"2PL14*400*500-1.5PLT14*100.5*115+3PLO14*250",
	} {
		s := mustParse(t, text)
		for _, acc := range []formula.Accuracy{roughly, precisely} {
			for _, expr := range []string{s.Area(acc, false, style), s.Area(acc, true, style), s.Weight(acc, style)} {
				v, err := formula.Eval(expr)
				require.NoError(t, err, "%s %s: %s", text, acc, expr)
				assert.Greater(t, v, 0.0, "%s %s: %s", text, acc, expr)
			}
		}
		r, _ := formula.Eval(s.Weight(roughly, style))
		p, _ := formula.Eval(s.Weight(precisely, style))
		assert.InEpsilon(t, r, p, 0.2, text)
	}
}
