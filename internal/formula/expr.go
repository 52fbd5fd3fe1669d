package formula

import "strings"

// topLevelSum reports whether expr has a + or - outside parentheses after
// its first character.
func topLevelSum(expr string) bool {
	depth := 0
	for i, c := range expr {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if depth == 0 && i > 0 {
				return true
			}
		}
	}
	return false
}

// Paren wraps expr in parentheses when it is a sum or starts with a sign.
func Paren(expr string) string {
	if topLevelSum(expr) || strings.HasPrefix(expr, "-") || strings.HasPrefix(expr, "+") {
		return "(" + expr + ")"
	}
	return expr
}

// Scale multiplies expr by the quantity q: 1 leaves it alone, -1 negates it.
func Scale(q float64, expr string) string {
	switch q {
	case 1:
		return expr
	case -1:
		return "-" + Paren(expr)
	}
	return Plain(q) + "*" + Paren(expr)
}

// Join concatenates signed terms, inserting + before terms that do not start
// with a minus sign.
func Join(terms ...string) string {
	var sb strings.Builder
	for _, t := range terms {
		if t == "" {
			continue
		}
		if sb.Len() > 0 && !strings.HasPrefix(t, "-") {
			sb.WriteByte('+')
		}
		sb.WriteString(t)
	}
	return sb.String()
}

// Twice renders 2*(expr), used by the paired sections.
func Twice(expr string) string {
	if expr == "" {
		return ""
	}
	return "2*" + Paren(expr)
}

// WithRound wraps a non-empty expr in ROUND(expr,digits). Negative digits
// leave expr unchanged.
func WithRound(expr string, digits int) string {
	if expr == "" || digits < 0 {
		return expr
	}
	return "ROUND(" + expr + "," + Plain(float64(digits)) + ")"
}
