package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"HW200*200", "HW200*200"},
		{"  hw 200 * 200 ", "HW200*200"},
		{"pl300x10", "PL300*10"},
		{"PL300X10X20", "PL300*10*20"},
		{"L100×10", "L100*10"},
		{"PL300＊10", "PL300*10"},
		{"H（300～500）*200*8*12", "H(300~500)*200*8*12"},
		{"H(300~500)x200", "H(300~500)*200"},
		{"BOX400*200", "BOX400*200"},
		{"XZ180*70*20*3", "XZ180*70*20*3"},
		{"\t\n", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestGrammarMatch(t *testing.T) {
	g := New("test", Type("PL")+V("a")+X+N("b"))

	c, ok := g.Match("PL300*10")
	require.True(t, ok)
	assert.Equal(t, "PL", c.String("TYPE"))
	assert.Equal(t, 300.0, c.Float("a"))
	assert.Equal(t, 10.0, c.Float("b"))
	assert.False(t, c.Variable("a"))

	c, ok = g.Match("PL(300~400)*10")
	require.True(t, ok)
	assert.True(t, c.Variable("a"))
	lo, hi := c.Span("a")
	assert.Equal(t, 300.0, lo)
	assert.Equal(t, 400.0, hi)
	assert.Equal(t, 350.0, c.Float("a"))

	c, ok = g.Match("PL300~400*10")
	require.True(t, ok)
	assert.True(t, c.Variable("a"))

	// whole text only
	assert.False(t, g.Matches("PL300*10*5"))
	assert.False(t, g.Matches("XPL300*10"))
	// parentheses must balance
	assert.False(t, g.Matches("PL(300~400*10"))
	assert.False(t, g.Matches("PL300~400)*10"))
}

func TestCapturesAbsent(t *testing.T) {
	_, c, ok := H.Match("H400*200*8*12")
	require.True(t, ok)
	assert.False(t, c.Has("b2"))
	assert.Equal(t, 0.0, c.Float("b2"))
	assert.Equal(t, "", c.String("t2"))
}

func TestFamilySets(t *testing.T) {
	tests := []struct {
		set   Set
		text  string
		name  string
		group string
		value float64
	}{
		{H, "HW200*200", Catalog, "H", 200},
		{H, "H200*200", Catalog, "B", 200},
		{H, "BH400*200*8*12", HBST, "t1", 12},
		{H, "H(300~500)*200*8*12", HBST, "h", 400},
		{H, "H400*200*8*12*14", HBSTT, "t2", 14},
		{H, "H400*200*300*8*12*14", HBBSTT, "b2", 300},
		{H, "H400*500*200*200*8*12*12", HHBBSTT, "h2", 500},
		{H, "H400*200/300*8*12/14", Slash, "b2", 300},
		{HH, "HH200*100*6*8", HBST, "s1", 6},
		{HH, "HH200*100*6*8*150*75*5*7", Pair, "h2", 150},
		{T, "TW100*200", Catalog, "H", 100},
		{T, "TN87.5*175", Catalog, "H", 87.5},
		{T, "T100*200*8*12", HBST, "s", 8},
		{I, "I20A", Code, "CODE", 20},
		{I, "I12.6", Code, "CODE", 12.6},
		{I, "I200*100*7", HBS, "s", 7},
		{Chan, "[20A", Code, "CODE", 20},
		{ChanMtM, "2[]20A", Code, "CODE", 20},
		{ChanBtB, "][20A", Code, "CODE", 20},
		{L, "L100*10", Metric, "t", 10},
		{L, "L100*63*8", Metric, "b", 63},
		{L, "L10/6.3*8", SizeCode, "B", 6.3},
		{LBtB, "2L100*120*4", Metric, "b", 120},
		{CFHJ, "RHS100*50*3", HBT, "b", 50},
		{CFHJ, "J100*3", HBT, "t", 3},
		{CFHY, "Y100*4", Round, "d", 100},
		{CFHY, "YE400*200*5", Ellipse, "a", 400},
		{CFHY, "YS300*100*5", Stadium, "h", 300},
		{Circ, "D20", Bar, "d", 20},
		{Circ, "Φ(20~30)", Bar, "d", 25},
		{Circ, "PIPE100*5", Pipe, "t", 5},
		{Rect, "B400*200*10*12", HBST, "s", 10},
		{Rect, "BOX400*200*10", HBT, "t", 10},
		{Rect, "□424*400*424*400*10*200", Gauge, "H1", 424},
		{CFOCN, "C180*70*20*3", HBCT, "c", 20},
		{CFOCN, "C180*70*60*20*3", HBBCT, "b2", 60},
		{CFOCNBtB, "2C180*70*20*3", HBCT, "h", 180},
		{CFOZJ, "XZ180*70*20*3", HBCT, "b1", 70},
		{CFOCN, "C160*154*60*54*3*20", Gauge, "h2", 54},
		{CFOZJ, "Z160*154*60*54*3*20", Gauge, "b", 20},
		{PL, "PL300*10", Strip, "a", 300},
		{Terms, "-1.5PLT14*100.5*115", Triangle, "QTY", -1.5},
		{Terms, "2PL14*400*500", Plate, "c", 500},
		{Terms, "3PLO14*250", Disc, "d", 250},
		{Sphere, "SPH100", Ball, "d", 100},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			g, c, ok := tt.set.Match(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.name, g.Name)
			assert.Equal(t, tt.value, c.Float(tt.group))
		})
	}
}

func TestFamilySetsReject(t *testing.T) {
	tests := []struct {
		set  Set
		text string
	}{
		{H, "HW200"},
		{H, "H200*200*8"},
		{CFOCN, "C200*73*7"},
		{CFOCNBtB, "2C20A"},
		{PL, "PL300*200*14"},
		{PL, "2PL300*10"},
		{Circ, "D"},
		{Sphere, "SPH"},
	}
	for _, tt := range tests {
		_, _, ok := tt.set.Match(tt.text)
		assert.False(t, ok, tt.text)
	}
}
