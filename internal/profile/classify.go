package profile

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alexiusacademia/steelqty/internal/grammar"
)

// identifiers maps every unambiguous leading identifier to its family. C and
// 2C are absent: they are settled by probing the lipped channel grammars.
var identifiers = map[string]Family{}

func register(f Family, ids ...string) {
	for _, id := range ids {
		identifiers[id] = f
	}
}

func init() {
	register(FamilyH, grammar.HTypes...)
	register(FamilyHH, grammar.HHTypes...)
	register(FamilyT, grammar.TTypes...)
	register(FamilyT, grammar.TCatalogTypes...)
	register(FamilyI, grammar.ITypes...)
	register(FamilyChannel, "[")
	register(FamilyChannelMtM, grammar.ChanMtMTypes...)
	register(FamilyChannelBtB, "2[", "][")
	register(FamilyAngle, grammar.LTypes...)
	register(FamilyAngleBtB, grammar.LBtBTypes...)
	register(FamilyCFHJ, grammar.CFHJTypes...)
	register(FamilyCFHY, grammar.CFHYTypes...)
	register(FamilyCirc, grammar.CircTypes...)
	register(FamilyRect, grammar.RectTypes...)
	register(FamilyCFOCNMtM, grammar.CFOCNMtMTypes...)
	register(FamilyCFOZJ, grammar.CFOZJTypes...)
	register(FamilySphere, grammar.SphereTypes...)

	ids := []string{"C", "2C"}
	for id := range identifiers {
		ids = append(ids, id)
	}
	// longest first, so HW wins over H and 2[] over 2[
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) > len(ids[j])
		}
		return ids[i] < ids[j]
	})
	for i, id := range ids {
		ids[i] = regexp.QuoteMeta(id)
	}

	leading = regexp.MustCompile(`^(?:` +
		`(?P<QTY>[+-]?(?:` + grammar.Number + `)?)(?P<PLATE>PLT|PLO|PLD|PL)` +
		`|(?P<ID>` + strings.Join(ids, "|") + `))[\d(]`)
}

// leading picks up the identifier in front of the first dimension. Plate
// identifiers may carry a signed quantity.
var leading *regexp.Regexp

// Classify returns the family that the text belongs to.
func Classify(text string) (Family, error) {
	norm := grammar.Normalize(text)
	if norm == "" {
		return FamilyUnknown, mismatch(text, FamilyUnknown, "empty text")
	}
	return classify(norm)
}

func classify(text string) (Family, error) {
	m := leading.FindStringSubmatch(text)
	if m == nil {
		return FamilyUnknown, mismatch(text, FamilyUnknown, "no known leading identifier")
	}
	if plate := m[leading.SubexpIndex("PLATE")]; plate != "" {
		return classifyPlate(text, m[leading.SubexpIndex("QTY")], plate), nil
	}

	switch id := m[leading.SubexpIndex("ID")]; id {
	case "C":
		if _, _, ok := grammar.CFOCN.Match(text); ok {
			return FamilyCFOCN, nil
		}
		return FamilyChannel, nil
	case "2C":
		if _, _, ok := grammar.CFOCNBtB.Match(text); ok {
			return FamilyCFOCNBtB, nil
		}
		return FamilyChannelBtB, nil
	default:
		return identifiers[id], nil
	}
}

// classifyPlate separates a single strip, triangle or disc from a composite.
// Anything with a quantity, a sign or a join is a composite.
func classifyPlate(text, qty, id string) Family {
	if qty != "" {
		return FamilyPLComposite
	}
	switch id {
	case "PL":
		if _, _, ok := grammar.PL.Match(text); ok {
			return FamilyPL
		}
	case "PLT":
		if grammar.TriangleTerm.Matches(text) {
			return FamilyPLTriangle
		}
	case "PLO", "PLD":
		if grammar.DiscTerm.Matches(text) {
			return FamilyPLCircular
		}
	}
	return FamilyPLComposite
}

// Parse classifies the text and runs the family's parser.
func Parse(text string) (Shape, error) {
	norm := grammar.Normalize(text)
	if norm == "" {
		return nil, mismatch(text, FamilyUnknown, "empty text")
	}
	f, err := classify(norm)
	if err != nil {
		return nil, err
	}
	return parseAs(f, norm)
}

// ParseAs runs one family's parser directly, skipping classification.
func ParseAs(f Family, text string) (Shape, error) {
	norm := grammar.Normalize(text)
	if norm == "" {
		return nil, mismatch(text, f, "empty text")
	}
	return parseAs(f, norm)
}

func parseAs(f Family, text string) (Shape, error) {
	switch f {
	case FamilyH:
		return parseH(text)
	case FamilyHH:
		return parseHH(text)
	case FamilyT:
		return parseT(text)
	case FamilyI:
		return parseI(text)
	case FamilyChannel:
		return parseChan(text)
	case FamilyChannelMtM:
		return parseChanMtM(text)
	case FamilyChannelBtB:
		return parseChanBtB(text)
	case FamilyAngle:
		return parseAngle(text)
	case FamilyAngleBtB:
		return parseAngleBtB(text)
	case FamilyCFHJ:
		return parseCFHJ(text)
	case FamilyCFHY:
		return parseCFHY(text)
	case FamilyCirc:
		return parseCirc(text)
	case FamilyRect:
		return parseRect(text)
	case FamilyCFOCN:
		return parseCFOCN(text)
	case FamilyCFOCNMtM:
		return parseCFOCNMtM(text)
	case FamilyCFOCNBtB:
		return parseCFOCNBtB(text)
	case FamilyCFOZJ:
		return parseCFOZJ(text)
	case FamilyPL:
		return parsePL(text)
	case FamilyPLTriangle:
		return parseTriangle(text)
	case FamilyPLCircular:
		return parseDisc(text)
	case FamilyPLComposite:
		return parseComposite(text)
	case FamilySphere:
		return parseSphere(text)
	}
	return nil, mismatch(text, f, "unknown family")
}
