package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadform/term"
)

// Scale returns k·f as a new Function: Q, d, c and — when present — the
// symbolic term maps are all scaled by k. The receiver is untouched.
func (f *Function) Scale(k float64) *Function {
	out := &Function{n: f.n, c: k * f.c, index: f.index}
	if f.n > 0 {
		out.q = mat.NewSymDense(f.n, nil)
		out.q.ScaleSym(k, f.q)
		out.d = mat.NewVecDense(f.n, nil)
		out.d.ScaleVec(k, f.d)
	}
	if f.symbolic() {
		out.linear = scaleLinear(f.linear, k)
		out.quadratic = scaleQuadratic(f.quadratic, k)
	}

	return out
}

// Neg returns -f.
func (f *Function) Neg() *Function { return f.Scale(-1) }

// Div returns f/k. Fails with ErrDivideByZero when k == 0.
func (f *Function) Div(k float64) (*Function, error) {
	if k == 0 {
		return nil, fmt.Errorf("Div: %w", ErrDivideByZero)
	}

	return f.Scale(1 / k), nil
}

// Add returns f + g as a new Function.
//
// Fails with ErrDimensionMismatch when the variable counts differ.
// When both operands map the same names to the same positions, the
// result keeps the names and — when both operands carry them — merged
// symbolic term maps. Otherwise the dense forms are still combined, but
// the result degrades to synthetic default names with no symbolic maps;
// this silent fallback is deliberate (see the package doc).
func (f *Function) Add(g *Function) (*Function, error) {
	out, err := f.combine(g, 1)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	return out, nil
}

// Sub returns f - g as a new Function, under the same alignment rules
// as Add.
func (f *Function) Sub(g *Function) (*Function, error) {
	out, err := f.combine(g, -1)
	if err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}

	return out, nil
}

// combine implements Add (sign=+1) and Sub (sign=-1) over both the
// dense and the symbolic representation.
func (f *Function) combine(g *Function, sign float64) (*Function, error) {
	if f.n != g.n {
		return nil, fmt.Errorf("%d vs %d variables: %w", f.n, g.n, ErrDimensionMismatch)
	}

	out := &Function{n: f.n, c: f.c + sign*g.c}
	if f.n > 0 {
		out.q = mat.NewSymDense(f.n, nil)
		if sign > 0 {
			out.q.AddSym(f.q, g.q)
		} else {
			neg := mat.NewSymDense(f.n, nil)
			neg.ScaleSym(-1, g.q)
			out.q.AddSym(f.q, neg)
		}
		out.d = mat.NewVecDense(f.n, nil)
		if sign > 0 {
			out.d.AddVec(f.d, g.d)
		} else {
			out.d.SubVec(f.d, g.d)
		}
	}

	// Operand alignment: every name of f must sit at the same position
	// in g. On mismatch the symbolic binding is dropped, not the sum.
	if !f.index.Equal(g.index) {
		out.index = term.FromOrdered(term.DefaultNames(f.n))

		return out, nil
	}

	out.index = f.index
	if f.symbolic() && g.symbolic() {
		out.linear = mergeLinear(f.linear, g.linear, sign)
		out.quadratic = mergeQuadratic(f.quadratic, g.quadratic, sign)
	}

	return out, nil
}

func scaleLinear(m map[string]float64, k float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for name, v := range m {
		out[name] = k * v
	}

	return out
}

func scaleQuadratic(m map[term.Key]float64, k float64) map[term.Key]float64 {
	out := make(map[term.Key]float64, len(m))
	for key, v := range m {
		out[key] = k * v
	}

	return out
}

func mergeLinear(a, b map[string]float64, sign float64) map[string]float64 {
	out := make(map[string]float64, len(a)+len(b))
	for name, v := range a {
		out[name] = v
	}
	for name, v := range b {
		out[name] += sign * v
	}

	return out
}

func mergeQuadratic(a, b map[term.Key]float64, sign float64) map[term.Key]float64 {
	out := make(map[term.Key]float64, len(a)+len(b))
	for key, v := range a {
		out[key] = v
	}
	for key, v := range b {
		out[key] += sign * v
	}

	return out
}
