// Package grammar holds the text patterns that recognise steel profile
// notation. Each family owns a Set of alternative grammars; a grammar only
// counts as a match when it covers the whole (normalised) text.
package grammar

import (
	"regexp"
	"strconv"
	"strings"
)

// Number matches an unsigned decimal literal.
const Number = `\d+(?:\.\d+)?`

// N is a named numeric group.
func N(name string) string {
	return `(?P<` + name + `>` + Number + `)`
}

// V is a named group that also accepts the variable cross-section form
// lo~hi, optionally in parentheses.
func V(name string) string {
	return `\(?(?P<` + name + `>` + Number + `(?:~` + Number + `)?)\)?`
}

// Type is the named group holding the leading identifier.
func Type(alternatives ...string) string {
	quoted := make([]string, len(alternatives))
	for i, a := range alternatives {
		quoted[i] = regexp.QuoteMeta(a)
	}
	return `(?P<TYPE>` + strings.Join(quoted, "|") + `)`
}

// X is the dimension separator after normalisation.
const X = `\*`

// Grammar is one anchored pattern.
type Grammar struct {
	Name string
	re   *regexp.Regexp
}

// New compiles pattern anchored at both ends. It panics on a bad pattern, so
// grammars are declared as package vars.
func New(name, pattern string) *Grammar {
	return &Grammar{Name: name, re: regexp.MustCompile(`^(?:` + pattern + `)$`)}
}

// Match returns the named captures when the whole text matches.
func (g *Grammar) Match(text string) (Captures, bool) {
	if !balanced(text) {
		return nil, false
	}
	m := g.re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	c := Captures{}
	for i, name := range g.re.SubexpNames() {
		if name != "" && m[i] != "" {
			c[name] = m[i]
		}
	}
	return c, true
}

// Matches reports whether the whole text matches.
func (g *Grammar) Matches(text string) bool {
	_, ok := g.Match(text)
	return ok
}

func balanced(text string) bool {
	depth := 0
	for _, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// Set is an ordered list of alternative grammars for one family.
type Set []*Grammar

// Match tries each grammar in order and returns the first full match.
func (s Set) Match(text string) (*Grammar, Captures, bool) {
	for _, g := range s {
		if c, ok := g.Match(text); ok {
			return g, c, true
		}
	}
	return nil, nil, false
}

// Captures maps group names to the matched text. Groups that did not take
// part in the match are absent.
type Captures map[string]string

// Has reports whether the group matched.
func (c Captures) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// String returns the raw group text.
func (c Captures) String(name string) string {
	return c[name]
}

// Float returns the group as a number, or 0 when absent. For a variable group
// it returns the mean.
func (c Captures) Float(name string) float64 {
	lo, hi := c.Span(name)
	return (lo + hi) / 2
}

// Span returns both ends of a variable group; a plain number yields lo == hi.
func (c Captures) Span(name string) (lo, hi float64) {
	s, ok := c[name]
	if !ok {
		return 0, 0
	}
	if a, b, found := strings.Cut(s, "~"); found {
		return parse(a), parse(b)
	}
	v := parse(s)
	return v, v
}

// Variable reports whether the group used the lo~hi form.
func (c Captures) Variable(name string) bool {
	return strings.Contains(c[name], "~")
}

func parse(s string) float64 {
	// The patterns only admit Number, so the error path is unreachable.
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
