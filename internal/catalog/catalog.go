// Package catalog holds the GB reference tables for hot-rolled sections and
// the lookups shared by the profile parsers.
//
// Every table is built once at package load and never mutated afterwards, so
// the package vars are safe to read from any goroutine.
package catalog

import (
	"math"
	"sort"
)

// Record is one row of a section table.
type Record struct {
	Name string // catalog name, e.g. "HW200*200"
	// Marked rows carry the GB asterisk: a non-preferred size that shares its
	// name with the nominal row.
	Marked bool
	Params []float64 // nominal dimensions (mm), order given by Table.Columns
	Weight float64   // kg/m
	Area   float64   // outer surface, m²/m
}

// Equal compares the parameter vector, weight and area. The name is ignored.
func (r Record) Equal(o Record) bool {
	if len(r.Params) != len(o.Params) {
		return false
	}
	for i := range r.Params {
		if !same(r.Params[i], o.Params[i]) {
			return false
		}
	}
	return same(r.Weight, o.Weight) && same(r.Area, o.Area)
}

// HasArea reports whether the table supplied a surface area for the row.
func (r Record) HasArea() bool {
	return r.Area > 0
}

// Table is an ordered, read-only list of records.
type Table struct {
	Name    string
	Columns []string
	Records []Record
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Records)
}

const tolerance = 1e-9

func same(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// FindByName returns the first record whose name matches exactly.
func FindByName(t *Table, name string) (Record, bool) {
	for _, r := range t.Records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// FindAllByName returns every record sharing the name, in table order.
func FindAllByName(t *Table, name string) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}

// FindByParameters returns the first record whose leading parameters equal
// params. Passing fewer values than the table has columns matches on a prefix.
func FindByParameters(t *Table, params ...float64) (Record, bool) {
	if len(params) == 0 {
		return Record{}, false
	}
	for _, r := range t.Records {
		if len(r.Params) < len(params) {
			continue
		}
		match := true
		for i, p := range params {
			if !same(r.Params[i], p) {
				match = false
				break
			}
		}
		if match {
			return r, true
		}
	}
	return Record{}, false
}

// ResolveName picks one record among the rows named name.
//
// With several candidates the rules apply in order: an unmarked row wins;
// otherwise the row whose leading parameters equal nominal; otherwise the
// first listed row.
func ResolveName(t *Table, name string, nominal ...float64) (Record, bool) {
	candidates := FindAllByName(t, name)
	switch len(candidates) {
	case 0:
		return Record{}, false
	case 1:
		return candidates[0], true
	}

	for _, r := range candidates {
		if !r.Marked {
			return r, true
		}
	}

	if len(nominal) > 0 {
		sub := &Table{Records: candidates}
		if r, ok := FindByParameters(sub, nominal...); ok {
			return r, true
		}
	}

	return candidates[0], true
}

// Unique drops rows equal (by Record.Equal) to an earlier row.
func Unique(records []Record) []Record {
	var out []Record
next:
	for _, r := range records {
		for _, seen := range out {
			if seen.Equal(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// HSeries is the lookup order used when a profile names the generic "H"
// prefix rather than a specific series.
var HSeries = []*Table{HW, HM, HN, HT}

var tables = map[string]*Table{
	"HW": HW,
	"HM": HM,
	"HN": HN,
	"HT": HT,
	"I":  IBeam,
	"C":  Channel,
	"L":  Angle,
}

// Lookup returns a table by its short name (HW, HM, HN, HT, I, C, L).
func Lookup(name string) (*Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// Names lists the registered table names in sorted order.
func Names() []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
