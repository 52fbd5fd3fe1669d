package profile

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Family is the closed set of section families a profile text can name.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyH
	FamilyHH
	FamilyT
	FamilyI
	FamilyChannel
	FamilyChannelMtM
	FamilyChannelBtB
	FamilyAngle
	FamilyAngleBtB
	FamilyCFHJ
	FamilyCFHY
	FamilyCirc
	FamilyRect
	FamilyCFOCN
	FamilyCFOCNMtM
	FamilyCFOCNBtB
	FamilyCFOZJ
	FamilyPL
	FamilyPLTriangle
	FamilyPLCircular
	FamilyPLComposite
	FamilySphere
)

var familyNames = [...]string{
	FamilyUnknown:     "UNKNOWN",
	FamilyH:           "H",
	FamilyHH:          "HH",
	FamilyT:           "T",
	FamilyI:           "I",
	FamilyChannel:     "CHAN",
	FamilyChannelMtM:  "CHAN_MtM",
	FamilyChannelBtB:  "CHAN_BtB",
	FamilyAngle:       "L",
	FamilyAngleBtB:    "L_BtB",
	FamilyCFHJ:        "CFH_J",
	FamilyCFHY:        "CFH_Y",
	FamilyCirc:        "CIRC",
	FamilyRect:        "RECT",
	FamilyCFOCN:       "CFO_CN",
	FamilyCFOCNMtM:    "CFO_CN_MtM",
	FamilyCFOCNBtB:    "CFO_CN_BtB",
	FamilyCFOZJ:       "CFO_ZJ",
	FamilyPL:          "PL",
	FamilyPLTriangle:  "PL_Triangle",
	FamilyPLCircular:  "PL_Circular",
	FamilyPLComposite: "PL_Composite",
	FamilySphere:      "SPHERE",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return familyNames[FamilyUnknown]
	}
	return familyNames[f]
}

// Families lists every known family in declaration order.
func Families() []Family {
	out := make([]Family, 0, len(familyNames)-1)
	for f := FamilyH; int(f) < len(familyNames); f++ {
		out = append(out, f)
	}
	return out
}

// ParseFamily looks a family up by its tag, case-insensitively.
func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(f.String(), s) {
			return f, nil
		}
	}
	return FamilyUnknown, errors.Newf("unknown family %q", s)
}
