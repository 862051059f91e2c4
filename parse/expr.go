package parse

import (
	"fmt"

	"github.com/katalvlaran/quadform/term"
)

// Expr is a minimal expression tree over numeric literals and named
// variables, for callers that already hold a syntax tree instead of
// text. Terms expands any Expr into the same raw term mapping Text
// produces, with the same degree-two ceiling.
//
// Example — the tree for (x + y)² - 3x:
//
//	parse.Sub{
//	  X: parse.Pow{X: parse.Add{X: parse.Var("x"), Y: parse.Var("y")}, N: 2},
//	  Y: parse.Mul{X: parse.Num(3), Y: parse.Var("x")},
//	}
type Expr interface {
	// expand returns the polynomial form of the expression.
	expand() (poly, error)
}

// poly is the working polynomial representation: canonical term keys to
// coefficients, constant included.
type poly map[term.Key]float64

// Num is a numeric literal.
type Num float64

// Var references a variable by name.
type Var string

// Add is the sum X + Y.
type Add struct{ X, Y Expr }

// Sub is the difference X - Y.
type Sub struct{ X, Y Expr }

// Mul is the product X · Y.
type Mul struct{ X, Y Expr }

// Neg is the negation -X.
type Neg struct{ X Expr }

// Pow is the integer power X^N; only N in {0, 1, 2} is representable in
// a quadratic form.
type Pow struct {
	X Expr
	N int
}

// Terms expands e into a raw term mapping with like terms aggregated,
// ready for ingestion. It fails with ErrDegree when any expanded term
// exceeds degree two, and with ErrEmptyExpression on a nil tree.
func Terms(e Expr) (map[term.Key]float64, error) {
	if e == nil {
		return nil, fmt.Errorf("Terms: nil expression: %w", ErrEmptyExpression)
	}
	p, err := e.expand()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (n Num) expand() (poly, error) { return poly{term.Constant(): float64(n)}, nil }

func (v Var) expand() (poly, error) { return poly{term.Linear(string(v)): 1}, nil }

func (a Add) expand() (poly, error) { return combine(a.X, a.Y, 1) }

func (s Sub) expand() (poly, error) { return combine(s.X, s.Y, -1) }

func (n Neg) expand() (poly, error) {
	p, err := subExpand(n.X)
	if err != nil {
		return nil, err
	}
	out := make(poly, len(p))
	for k, v := range p {
		out[k] = -v
	}

	return out, nil
}

func (m Mul) expand() (poly, error) {
	px, err := subExpand(m.X)
	if err != nil {
		return nil, err
	}
	py, err := subExpand(m.Y)
	if err != nil {
		return nil, err
	}

	return mulPoly(px, py)
}

func (p Pow) expand() (poly, error) {
	switch p.N {
	case 0:
		return poly{term.Constant(): 1}, nil
	case 1:
		return subExpand(p.X)
	case 2:
		base, err := subExpand(p.X)
		if err != nil {
			return nil, err
		}

		return mulPoly(base, base)
	default:
		return nil, fmt.Errorf("Terms: power %d: %w", p.N, ErrDegree)
	}
}

// subExpand guards against nil children so a malformed tree fails with
// a parse error instead of a panic.
func subExpand(e Expr) (poly, error) {
	if e == nil {
		return nil, fmt.Errorf("Terms: nil subexpression: %w", ErrEmptyExpression)
	}

	return e.expand()
}

// combine expands both children and folds Y into X with the given sign.
func combine(x, y Expr, sign float64) (poly, error) {
	px, err := subExpand(x)
	if err != nil {
		return nil, err
	}
	py, err := subExpand(y)
	if err != nil {
		return nil, err
	}
	out := make(poly, len(px)+len(py))
	for k, v := range px {
		out[k] = v
	}
	for k, v := range py {
		out[k] += sign * v
	}

	return out, nil
}

// mulPoly multiplies two polynomials term by term, enforcing the
// quadratic degree ceiling on every product.
func mulPoly(a, b poly) (poly, error) {
	out := make(poly, len(a)*len(b))
	for ka, va := range a {
		for kb, vb := range b {
			k, err := mulKeys(ka, kb)
			if err != nil {
				return nil, err
			}
			out[k] += va * vb
		}
	}

	return out, nil
}

// mulKeys multiplies two canonical keys: constants are absorbed, two
// linear keys fuse into a quadratic pair, anything deeper overflows the
// quadratic form.
func mulKeys(a, b term.Key) (term.Key, error) {
	if a.Degree()+b.Degree() > 2 {
		return term.Key{}, fmt.Errorf("Terms: product degree %d: %w", a.Degree()+b.Degree(), ErrDegree)
	}
	switch {
	case a.Kind() == term.KindConstant:
		return b, nil
	case b.Kind() == term.KindConstant:
		return a, nil
	default: // both linear by the degree check above
		na, _ := a.Vars()
		nb, _ := b.Vars()

		return term.Quadratic(na, nb), nil
	}
}
