package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNum(t *testing.T) {
	tests := []struct {
		mm   float64
		want string
	}{
		{14, "0.014"},
		{200, "0.2"},
		{100.5, "0.1005"},
		{7, "0.007"},
		{3, "0.003"},
		{0, "0"},
		{1234.5, "1.2345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Num(tt.mm*MM), "mm=%v", tt.mm)
	}
}

func TestMillimetres(t *testing.T) {
	assert.Equal(t, "96", Millimetres(0.096, false))
	assert.Equal(t, "96.5", Millimetres(0.0965, false))
	assert.Equal(t, "96", Millimetres(0.0965, true))
	assert.Equal(t, "12", Millimetres(0.012, true))
}

func TestDimText(t *testing.T) {
	assert.Equal(t, "0.4", Fixed(0.4).Text())
	d := Dim{Lo: 0.4, Hi: 0.6}
	assert.True(t, d.Variable())
	assert.Equal(t, "(0.4+0.6)/2", d.Text())
	assert.InDelta(t, 0.5, d.Value(), 1e-12)
}

func TestScaleAndJoin(t *testing.T) {
	assert.Equal(t, "0.4*0.5", Scale(1, "0.4*0.5"))
	assert.Equal(t, "-0.4*0.5", Scale(-1, "0.4*0.5"))
	assert.Equal(t, "2*0.4*0.5", Scale(2, "0.4*0.5"))
	assert.Equal(t, "-1.5*(a+b)", Scale(-1.5, "a+b"))
	assert.Equal(t, "-(a+b)", Scale(-1, "a+b"))
	assert.Equal(t, "a-b+c", Join("a", "-b", "c"))
	assert.Equal(t, "-a+b", Join("-a", "", "b"))
	assert.Equal(t, "2*(a-b)", Twice("a-b"))
	assert.Equal(t, "", Twice(""))
}

func TestParen(t *testing.T) {
	assert.Equal(t, "(a+b)", Paren("a+b"))
	assert.Equal(t, "(a+b)/2", Paren("(a+b)/2"))
	assert.Equal(t, "(-a)", Paren("-a"))
	assert.Equal(t, "a*b", Paren("a*b"))
}

func TestWithRound(t *testing.T) {
	assert.Equal(t, "ROUND(1+2,2)", WithRound("1+2", 2))
	assert.Equal(t, "1+2", WithRound("1+2", -1))
	assert.Equal(t, "", WithRound("", 3))
}

func TestStyle(t *testing.T) {
	assert.Equal(t, "PI()", DefaultStyle.PI())
	assert.Equal(t, "3.14", Style{Pi: PiNum}.PI())
	assert.Equal(t, "7850", DefaultStyle.Rho())
	assert.Equal(t, "7850", Style{}.Rho())
	assert.Equal(t, "7800", Style{Density: 7800}.Rho())
}

func TestParseEnums(t *testing.T) {
	a, err := ParseAccuracy("GBDATA")
	require.NoError(t, err)
	assert.Equal(t, GBData, a)
	assert.Equal(t, "precisely", Precisely.String())

	_, err = ParseAccuracy("exact")
	assert.Error(t, err)

	p, err := ParsePiStyle("num")
	require.NoError(t, err)
	assert.Equal(t, PiNum, p)
	_, err = ParsePiStyle("tau")
	assert.Error(t, err)
}

func TestEllipsePerimeter(t *testing.T) {
	// a circle degenerates to 2πr
	assert.InDelta(t, 2*math.Pi*0.1, EllipsePerimeter(0.1, 0.1), 0.0005)
	// semi-axes 0.2 and 0.1: ~0.969
	assert.Equal(t, 0.969, EllipsePerimeter(0.2, 0.1))
	assert.Equal(t, 0.0, EllipsePerimeter(0, 0))
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2*0.2+4*0.2", 1.2},
		{"=1+2*3", 7},
		{"(1+2)*3", 9},
		{"2^3", 8},
		{"PI()*0.1", math.Pi * 0.1},
		{"3.14*0.1", 0.314},
		{"4/3*PI()*(0.5/2)^3*7850", 4.0 / 3 * math.Pi * math.Pow(0.25, 3) * 7850},
		{"SQRT(0.09+0.16)", 0.5},
		{"ROUND(1.23456,2)", 1.23},
		{"-(1+2)", -3},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	for _, expr := range []string{"", "1+", "(1", "FOO(1)", "1/0", "1 2", "SQRT(-1)"} {
		_, err := Eval(expr)
		assert.Error(t, err, expr)
	}
}
