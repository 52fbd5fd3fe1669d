package grammar

// Grammar names used by the parsers to tell which alternative matched.
const (
	Catalog  = "catalog"
	HBST     = "h*b*s*t"
	HBSTT    = "h*b*s*t1*t2"
	HBBSTT   = "h*b1*b2*s*t1*t2"
	HHBBSTT  = "h1*h2*b1*b2*s*t1*t2"
	Slash    = "h*b1/b2*s*t1/t2"
	Pair     = "h1*b1*s1*t1*h2*b2*s2*t2"
	HBS      = "h*b*s"
	Code     = "code"
	Metric   = "metric"
	SizeCode = "size-code"
	HBT      = "h*b*t"
	Round    = "round"
	Ellipse  = "ellipse"
	Stadium  = "stadium"
	Bar      = "bar"
	Pipe     = "pipe"
	Gauge    = "H1*h1*H2*h2*s*b"
	HBCT     = "h*b*c*t"
	HBBCT    = "h*b1*b2*c*t"
	Strip    = "strip"
	Plate    = "plate"
	Triangle = "triangle"
	Disc     = "disc"
	Ball     = "sphere"
)

// Quantity is the optional signed count in front of a plate term.
const Quantity = `(?P<QTY>[+-]?(?:` + Number + `)?)`

// Leading identifiers per family, longest alternatives first.
var (
	HTypes        = []string{"BH", "WH", "HW", "HM", "HN", "HT", "H"}
	HHTypes       = []string{"HH"}
	TTypes        = []string{"BT", "T"}
	TCatalogTypes = []string{"TW", "TM", "TN"}
	ITypes        = []string{"I", "工"}
	ChanTypes     = []string{"[", "C"}
	ChanMtMTypes  = []string{"2[]", "[]"}
	ChanBtBTypes  = []string{"2[", "][", "2C"}
	LTypes        = []string{"L", "∠"}
	LBtBTypes     = []string{"2L", "2∠"}
	CFHJTypes     = []string{"RHS", "SHS", "J"}
	CFHYTypes     = []string{"YE", "YS", "Y"}
	CircTypes     = []string{"PIPE", "D", "Φ", "Ø"}
	RectTypes     = []string{"BOX", "B", "□"}
	CFOCNTypes    = []string{"C"}
	CFOCNMtMTypes = []string{"CC"}
	CFOCNBtBTypes = []string{"2C"}
	CFOZJTypes    = []string{"XZ", "ZJ", "Z"}
	PlateTypes    = []string{"PL"}
	TriangleTypes = []string{"PLT"}
	DiscTypes     = []string{"PLO", "PLD"}
	SphereTypes   = []string{"SPHERE", "SPH"}
)

func hSet(types []string) Set {
	t := Type(types...)
	return Set{
		New(HBST, t+V("h")+X+N("b1")+X+N("s")+X+N("t1")),
		New(HBSTT, t+V("h")+X+N("b1")+X+N("s")+X+N("t1")+X+N("t2")),
		New(HBBSTT, t+V("h")+X+N("b1")+X+N("b2")+X+N("s")+X+N("t1")+X+N("t2")),
		New(HHBBSTT, t+N("h1")+X+N("h2")+X+N("b1")+X+N("b2")+X+N("s")+X+N("t1")+X+N("t2")),
		New(Slash, t+V("h")+X+N("b1")+`(?:/`+N("b2")+`)?`+X+N("s")+X+N("t1")+`(?:/`+N("t2")+`)?`),
	}
}

// H covers rolled and welded H sections. The catalog form comes first so
// HW200*200 resolves against the GB tables.
var H = append(Set{
	New(Catalog, Type("HW", "HM", "HN", "HT", "H")+`(?P<H>\d+)`+X+`(?P<B>\d+)`),
}, hSet(HTypes)...)

// HH is a cruciform of two H members.
var HH = Set{
	New(HBST, Type(HHTypes...)+N("h1")+X+N("b1")+X+N("s1")+X+N("t1")),
	New(Pair, Type(HHTypes...)+N("h1")+X+N("b1")+X+N("s1")+X+N("t1")+X+N("h2")+X+N("b2")+X+N("s2")+X+N("t2")),
}

// T covers T sections, either explicit or cut from a GB H section.
var T = Set{
	New(Catalog, Type(TCatalogTypes...)+`(?P<H>`+Number+`)`+X+`(?P<B>\d+)`),
	New(HBST, Type(TTypes...)+V("h")+X+N("b")+X+N("s")+X+N("t")),
}

func rolledSet(types []string) Set {
	t := Type(types...)
	return Set{
		New(HBS, t+N("h")+X+N("b")+X+N("s")),
		New(Code, t+`(?P<CODE>`+Number+`)(?P<SUFFIX>[ABC])?`),
	}
}

// I covers hot-rolled I beams.
var I = rolledSet(ITypes)

// Chan covers hot-rolled channels.
var Chan = rolledSet(ChanTypes)

// ChanMtM covers two channels placed mouth to mouth.
var ChanMtM = rolledSet(ChanMtMTypes)

// ChanBtB covers two channels placed back to back.
var ChanBtB = rolledSet(ChanBtBTypes)

func angleSet(types []string) Set {
	t := Type(types...)
	return Set{
		New(SizeCode, t+`(?P<H>`+Number+`)/(?P<B>`+Number+`)`+X+N("t")),
		New(Metric, t+N("h")+`(?:`+X+N("b")+`)?`+X+N("t")),
	}
}

// L covers equal and unequal leg angles.
var L = angleSet(LTypes)

// LBtB covers two angles back to back.
var LBtB = angleSet(LBtBTypes)

// CFHJ covers cold-formed rectangular and square hollow sections.
var CFHJ = Set{
	New(HBT, Type(CFHJTypes...)+N("h")+`(?:`+X+N("b")+`)?`+X+N("t")),
}

// CFHY covers cold-formed round, elliptical and stadium hollow sections.
var CFHY = Set{
	New(Round, Type("Y")+N("d")+X+N("t")),
	New(Ellipse, Type("YE")+N("a")+X+N("b")+X+N("t")),
	New(Stadium, Type("YS")+N("h")+X+N("b")+X+N("t")),
}

// Circ covers round bars and pipes.
var Circ = Set{
	New(Bar, Type(CircTypes...)+V("d")),
	New(Pipe, Type(CircTypes...)+V("d")+X+N("t")),
}

// Rect covers welded box sections.
var Rect = Set{
	New(HBST, Type(RectTypes...)+V("h")+X+N("b")+X+N("s")+X+N("t")),
	New(HBT, Type(RectTypes...)+V("h")+X+N("b")+X+N("t")),
	New(Gauge, gauge(Type(RectTypes...))),
}

// gauge is the nominal-with-gauge form: two nominal/net pairs, then a
// thickness and a last width.
func gauge(t string) string {
	return t + N("H1") + X + N("h1") + X + N("H2") + X + N("h2") + X + N("s") + X + N("b")
}

func lippedSet(types []string) Set {
	t := Type(types...)
	return Set{
		New(HBCT, t+N("h")+X+N("b1")+X+N("c")+X+N("t")),
		New(HBBCT, t+N("h")+X+N("b1")+X+N("b2")+X+N("c")+X+N("t")),
		New(Gauge, gauge(t)),
	}
}

// CFOCN covers cold-formed lipped channels.
var CFOCN = lippedSet(CFOCNTypes)

// CFOCNMtM covers two lipped channels mouth to mouth.
var CFOCNMtM = lippedSet(CFOCNMtMTypes)

// CFOCNBtB covers two lipped channels back to back.
var CFOCNBtB = lippedSet(CFOCNBtBTypes)

// CFOZJ covers cold-formed lipped Z sections.
var CFOZJ = lippedSet(CFOZJTypes)

// PL is the bare two-dimension plate strip, e.g. PL300*10.
var PL = Set{
	New(Strip, Type(PlateTypes...)+N("a")+X+N("b")),
}

// Plate terms are the sub-grammars of a composite plate. Each carries an
// optional signed quantity.
var (
	PlateTerm    = New(Plate, Quantity+Type(PlateTypes...)+V("a")+X+V("b")+X+V("c"))
	TriangleTerm = New(Triangle, Quantity+Type(TriangleTypes...)+V("a")+X+V("b")+X+V("c"))
	DiscTerm     = New(Disc, Quantity+Type(DiscTypes...)+N("t")+X+N("d"))
)

// Terms lists the composite sub-grammars in the order they are tried.
var Terms = Set{PlateTerm, TriangleTerm, DiscTerm}

// Sphere covers solid spheres given by diameter.
var Sphere = Set{
	New(Ball, Type(SphereTypes...)+N("d")),
}
