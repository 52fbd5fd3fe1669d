package formula

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Eval computes the value of a formula produced by this package. It accepts
// an optional leading "=", numbers, + - * / ^, parentheses and the functions
// PI(), SQRT(x), ABS(x) and ROUND(x,n).
func Eval(expr string) (float64, error) {
	p := &evaluator{src: strings.TrimPrefix(strings.TrimSpace(expr), "=")}
	if p.src == "" {
		return 0, errors.New("empty formula")
	}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, errors.Newf("unexpected %q at offset %d", p.src[p.pos:], p.pos)
	}
	return v, nil
}

type evaluator struct {
	src string
	pos int
}

func (p *evaluator) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *evaluator) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *evaluator) expect(c byte) error {
	if p.peek() != c {
		return errors.Newf("expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

func (p *evaluator) sum() (float64, error) {
	v, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *evaluator) product() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= r
		case '/':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, errors.New("division by zero")
			}
			v /= r
		default:
			return v, nil
		}
	}
}

func (p *evaluator) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.power()
}

func (p *evaluator) power() (float64, error) {
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	for p.peek() == '^' {
		p.pos++
		e, err := p.primary()
		if err != nil {
			return 0, err
		}
		v = math.Pow(v, e)
	}
	return v, nil
}

func (p *evaluator) primary() (float64, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		v, err := p.sum()
		if err != nil {
			return 0, err
		}
		return v, p.expect(')')
	case c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case unicode.IsLetter(rune(c)):
		return p.call()
	case c == 0:
		return 0, errors.New("unexpected end of formula")
	}
	return 0, errors.Newf("unexpected %q at offset %d", c, p.pos)
}

func (p *evaluator) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == '.' || (p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad number at offset %d", start)
	}
	return v, nil
}

func (p *evaluator) call() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && unicode.IsLetter(rune(p.src[p.pos])) {
		p.pos++
	}
	name := strings.ToUpper(p.src[start:p.pos])
	if err := p.expect('('); err != nil {
		return 0, err
	}

	var args []float64
	if p.peek() != ')' {
		for {
			v, err := p.sum()
			if err != nil {
				return 0, err
			}
			args = append(args, v)
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
	}
	if err := p.expect(')'); err != nil {
		return 0, err
	}

	switch {
	case name == "PI" && len(args) == 0:
		return math.Pi, nil
	case name == "SQRT" && len(args) == 1:
		if args[0] < 0 {
			return 0, errors.New("SQRT of a negative number")
		}
		return math.Sqrt(args[0]), nil
	case name == "ABS" && len(args) == 1:
		return math.Abs(args[0]), nil
	case name == "ROUND" && len(args) == 2:
		return roundTo(args[0], int(args[1])), nil
	}
	return 0, errors.Newf("unsupported function %s with %d arguments", name, len(args))
}
