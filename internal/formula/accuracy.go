// Package formula renders resolved section dimensions as spreadsheet
// formula text and evaluates such text back to a number.
package formula

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Accuracy selects which variant of a formula is produced.
type Accuracy int

const (
	// Roughly ignores wall and flange thickness where it can.
	Roughly Accuracy = iota
	// Precisely subtracts the thickness corrections.
	Precisely
	// GBData quotes the GB table value of the matched catalog record.
	GBData
)

func (a Accuracy) String() string {
	switch a {
	case Roughly:
		return "roughly"
	case Precisely:
		return "precisely"
	case GBData:
		return "gbdata"
	default:
		return "unknown"
	}
}

// ParseAccuracy accepts the names printed by Accuracy.String, case-insensitively.
func ParseAccuracy(s string) (Accuracy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roughly", "rough":
		return Roughly, nil
	case "precisely", "precise":
		return Precisely, nil
	case "gbdata", "gb":
		return GBData, nil
	}
	return Roughly, errors.Newf("unknown accuracy %q (want roughly, precisely or gbdata)", s)
}

// PiStyle selects how π is written.
type PiStyle int

const (
	// PiFunc writes the spreadsheet function PI().
	PiFunc PiStyle = iota
	// PiNum writes the literal 3.14.
	PiNum
)

func (p PiStyle) String() string {
	if p == PiNum {
		return "num"
	}
	return "func"
}

// ParsePiStyle accepts "func" or "num".
func ParsePiStyle(s string) (PiStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "func", "pi()":
		return PiFunc, nil
	case "num", "3.14":
		return PiNum, nil
	}
	return PiFunc, errors.Newf("unknown pi style %q (want func or num)", s)
}
