package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/quadform/term"
)

// Text parses a textual quadratic formula into a raw term mapping,
// aggregating like terms into a single entry per canonical key.
//
// Accepted syntax: sign-prefixed terms, implicit multiplication ("xy",
// "2x"), explicit '*', squares as '²' or '^2', coefficients using the
// Locale's decimal separator. Variable names are a letter followed by
// optional digits ("x", "y2", "x0").
//
// Stage 1 (Validate): non-empty input.
// Stage 2 (Execute):  scan sign, coefficient and variable factors per term.
// Stage 3 (Finalize): sum coefficients of colliding canonical keys.
//
// Complexity: O(len(input)).
func Text(input string, loc Locale) (map[term.Key]float64, error) {
	p := &textScanner{src: []rune(input), dec: loc.decimal()}
	terms := make(map[term.Key]float64)

	p.skipSpaces()
	if p.eof() {
		return nil, fmt.Errorf("Text: %w", ErrEmptyExpression)
	}

	for !p.eof() {
		sign := 1.0
		switch p.peek() {
		case '+':
			p.next()
		case '-':
			sign = -1
			p.next()
		default:
			// A sign is optional before the first term, mandatory after.
			if p.parsed > 0 {
				return nil, fmt.Errorf("Text: expected '+' or '-' at offset %d, got %q: %w", p.i, p.peek(), ErrUnexpectedChar)
			}
		}
		p.skipSpaces()

		key, coeff, err := p.term()
		if err != nil {
			return nil, err
		}
		terms[key] += sign * coeff
		p.parsed++
		p.skipSpaces()
	}

	return terms, nil
}

// textScanner walks the rune stream of one formula.
type textScanner struct {
	src    []rune
	i      int
	dec    rune // locale decimal separator
	parsed int  // terms consumed so far
}

func (p *textScanner) eof() bool  { return p.i >= len(p.src) }
func (p *textScanner) peek() rune { return p.src[p.i] }

func (p *textScanner) next() rune {
	r := p.src[p.i]
	p.i++

	return r
}

func (p *textScanner) skipSpaces() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.i++
	}
}

// term consumes one product of factors and classifies it as a constant,
// linear or quadratic key with its coefficient.
func (p *textScanner) term() (term.Key, float64, error) {
	var (
		coeff = 1.0
		names []string // one entry per degree, at most two
		got   bool
	)

scan:
	for !p.eof() {
		switch r := p.peek(); {
		case r == '*':
			if !got {
				return term.Key{}, 0, fmt.Errorf("Text: dangling '*' at offset %d: %w", p.i, ErrUnexpectedChar)
			}
			p.next()
			if p.eof() || (!p.numberStart(p.peek()) && !unicode.IsLetter(p.peek())) {
				return term.Key{}, 0, fmt.Errorf("Text: '*' must be followed by a factor at offset %d: %w", p.i, ErrUnexpectedChar)
			}
		case p.numberStart(r):
			v, err := p.number()
			if err != nil {
				return term.Key{}, 0, err
			}
			coeff *= v
			got = true
		case unicode.IsLetter(r):
			name := p.ident()
			deg := 1
			if !p.eof() {
				switch p.peek() {
				case '²':
					deg = 2
					p.next()
				case '^':
					p.next()
					if p.eof() || p.peek() != '2' {
						return term.Key{}, 0, fmt.Errorf("Text: only squares are supported at offset %d: %w", p.i, ErrBadExponent)
					}
					deg = 2
					p.next()
				}
			}
			names = append(names, name)
			if deg == 2 {
				names = append(names, name)
			}
			if len(names) > 2 {
				return term.Key{}, 0, fmt.Errorf("Text: term degree %d at offset %d: %w", len(names), p.i, ErrDegree)
			}
			got = true
		default:
			break scan
		}
	}

	if !got {
		at := "end of input"
		if !p.eof() {
			at = fmt.Sprintf("%q at offset %d", p.peek(), p.i)
		}

		return term.Key{}, 0, fmt.Errorf("Text: expected a term, got %s: %w", at, ErrUnexpectedChar)
	}

	switch len(names) {
	case 0:
		return term.Constant(), coeff, nil
	case 1:
		return term.Linear(names[0]), coeff, nil
	default:
		return term.Quadratic(names[0], names[1]), coeff, nil
	}
}

// numberStart reports whether r can open a numeric literal.
func (p *textScanner) numberStart(r rune) bool {
	return (r >= '0' && r <= '9') || r == p.dec
}

// number consumes digits with at most one locale decimal separator.
// Exponent notation is not part of the grammar.
func (p *textScanner) number() (float64, error) {
	var (
		sb      strings.Builder
		seenSep bool
	)
	for !p.eof() {
		r := p.peek()
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		} else if r == p.dec && !seenSep {
			seenSep = true
			sb.WriteByte('.')
		} else {
			break
		}
		p.next()
	}

	lit := sb.String()
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("Text: literal %q at offset %d: %w", lit, p.i, ErrBadNumber)
	}

	return v, nil
}

// ident consumes a variable name: a letter followed by optional digits.
// Adjacent letters therefore read as separate variables ("xy" = x·y),
// which is what lets canonical strings round-trip.
func (p *textScanner) ident() string {
	var sb strings.Builder
	sb.WriteRune(p.next())
	for !p.eof() && unicode.IsDigit(p.peek()) {
		sb.WriteRune(p.next())
	}

	return sb.String()
}
