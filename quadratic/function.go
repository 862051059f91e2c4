package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadform/parse"
	"github.com/katalvlaran/quadform/term"
)

// Function is a quadratic multivariate function f(x) = ½·xᵀQx + dᵀx + c
// over n variables, holding a dense numeric form and, when it was born
// from terms, the symbolic coefficient maps it came from.
//
// Function is value-like: algebra operators return new instances and
// never mutate an operand. Every field except the constant term is
// fixed at construction; SetConstant must not race with readers.
type Function struct {
	n int

	// Dense form. Both are nil when n == 0 (constant-only function).
	q *mat.SymDense
	d *mat.VecDense

	// Constant term. The single mutable field.
	c float64

	// Name↔position bijection fixing the dense layout.
	index *term.Index

	// Symbolic coefficient maps. Nil for functions built from an explicit
	// matrix or produced by a misaligned combination.
	linear    map[string]float64
	quadratic map[term.Key]float64
}

// New constructs a Function from an explicit Hessian, linear vector and
// optional variable names.
//
// Stage 1 (Validate): q square, q side == len(d), names empty or len(d).
// Stage 2 (Prepare):  synthesize default names x0..x(n-1) when omitted.
// Stage 3 (Execute):  copy the dense form; symmetrize q as (Q+Qᵀ)/2,
// which leaves ½xᵀQx unchanged for any input.
//
// The caller's index order is trusted verbatim — this path performs no
// sorting and derives no symbolic term maps. The constant term starts
// at zero; use SetConstant.
//
// Fails with ErrDimensionMismatch on any shape disagreement.
func New(q mat.Matrix, d []float64, names ...string) (*Function, error) {
	r, c := q.Dims()
	if r != c {
		return nil, fmt.Errorf("New: Hessian is %d×%d, want square: %w", r, c, ErrDimensionMismatch)
	}
	if r != len(d) {
		return nil, fmt.Errorf("New: Hessian side %d vs linear vector length %d: %w", r, len(d), ErrDimensionMismatch)
	}
	if len(names) != 0 && len(names) != r {
		return nil, fmt.Errorf("New: %d names for %d variables: %w", len(names), r, ErrDimensionMismatch)
	}

	n := r
	if len(names) == 0 {
		names = term.DefaultNames(n)
	}

	f := &Function{n: n, index: term.FromOrdered(names)}
	if n > 0 {
		f.q = mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				f.q.SetSym(i, j, 0.5*(q.At(i, j)+q.At(j, i)))
			}
		}
		f.d = mat.NewVecDense(n, append([]float64(nil), d...))
	}

	return f, nil
}

// Parse constructs a Function from a textual formula under the given
// numeric-formatting convention, e.g.
//
//	f, err := quadratic.Parse("-2x² + xy - y² + 5y", parse.DefaultLocale())
//
// Variable positions are assigned by sorting all referenced names
// lexicographically. Fails with a parse sentinel on malformed input.
func Parse(text string, loc parse.Locale) (*Function, error) {
	raw, err := parse.Text(text, loc)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return fromTerms(raw), nil
}

// TryParse attempts Parse and reports failure as a boolean instead of
// an error. On failure the returned Function is nil — no partially
// constructed value escapes.
func TryParse(text string, loc parse.Locale) (*Function, bool) {
	f, err := Parse(text, loc)
	if err != nil {
		return nil, false
	}

	return f, true
}

// FromExpr constructs a Function from an expression tree, e.g.
//
//	f, err := quadratic.FromExpr(parse.Pow{X: parse.Var("x"), N: 2})
//
// Fails with a parse sentinel when the tree is malformed or exceeds
// degree two.
func FromExpr(e parse.Expr) (*Function, error) {
	raw, err := parse.Terms(e)
	if err != nil {
		return nil, fmt.Errorf("FromExpr: %w", err)
	}

	return fromTerms(raw), nil
}

// fromTerms is the common tail of the symbolic construction paths:
// ingest the raw mapping, index the accumulated names, assemble the
// dense form.
func fromTerms(raw map[term.Key]float64) *Function {
	linear, quadratic, constant, names := term.Ingest(raw)
	index := term.NewIndex(names)
	q, d := assemble(index, linear, quadratic)

	return &Function{
		n:         index.Len(),
		q:         q,
		d:         d,
		c:         constant,
		index:     index,
		linear:    linear,
		quadratic: quadratic,
	}
}

// assemble folds the symbolic coefficient maps into the dense (Q, d)
// pair consistent with the index.
//
// Convention: a quadratic coefficient s on pair (i, j) is added to both
// Q[i,j] and Q[j,i]; when i == j both additions land on the same cell,
// doubling it, so the ½xᵀQx evaluation recovers the original squared-term
// coefficient. Linear coefficients accumulate into d. Absent variables
// contribute zero.
//
// Complexity: O(n² + T). Returns (nil, nil) for n == 0.
func assemble(index *term.Index, linear map[string]float64, quadratic map[term.Key]float64) (*mat.SymDense, *mat.VecDense) {
	n := index.Len()
	if n == 0 {
		return nil, nil
	}

	q := mat.NewSymDense(n, nil)
	d := mat.NewVecDense(n, nil)

	for key, coeff := range quadratic {
		a, b := key.Vars()
		i, _ := index.IndexOf(a)
		j, _ := index.IndexOf(b)
		if i == j {
			q.SetSym(i, i, q.At(i, i)+2*coeff)
		} else {
			q.SetSym(i, j, q.At(i, j)+coeff)
		}
	}
	for name, coeff := range linear {
		i, _ := index.IndexOf(name)
		d.SetVec(i, d.AtVec(i)+coeff)
	}

	return q, d
}

// symbolic reports whether the function still carries its term maps.
func (f *Function) symbolic() bool { return f.linear != nil && f.quadratic != nil }

// Dim returns the number of variables n.
func (f *Function) Dim() int { return f.n }

// Hessian returns a copy of Q, or nil when Dim() == 0.
func (f *Function) Hessian() *mat.SymDense {
	if f.n == 0 {
		return nil
	}
	out := mat.NewSymDense(f.n, nil)
	out.CopySym(f.q)

	return out
}

// Linear returns a copy of the linear-coefficient vector d, or nil when
// Dim() == 0.
func (f *Function) Linear() *mat.VecDense {
	if f.n == 0 {
		return nil
	}

	return mat.VecDenseCopyOf(f.d)
}

// Constant returns the constant term c.
func (f *Function) Constant() float64 { return f.c }

// SetConstant replaces the constant term. This is the only mutation a
// Function permits; it must not race with concurrent readers.
func (f *Function) SetConstant(c float64) { f.c = c }

// Names returns a copy of the position→name assignment.
func (f *Function) Names() []string { return f.index.Names() }

// NameAt returns the variable name at position i, and false when i is
// out of range.
func (f *Function) NameAt(i int) (string, bool) { return f.index.NameAt(i) }

// IndexOf returns the position of a variable name, and false when the
// name is unknown.
func (f *Function) IndexOf(name string) (int, bool) { return f.index.IndexOf(name) }

// Variables returns a copy of the full name→position mapping.
func (f *Function) Variables() map[string]int {
	out := make(map[string]int, f.n)
	for i, name := range f.index.Names() {
		out[name] = i
	}

	return out
}

// LinearTerms returns a copy of the symbolic linear coefficient map, or
// nil when the function carries no symbolic terms.
func (f *Function) LinearTerms() map[string]float64 {
	if !f.symbolic() {
		return nil
	}
	out := make(map[string]float64, len(f.linear))
	for k, v := range f.linear {
		out[k] = v
	}

	return out
}

// QuadraticTerms returns a copy of the symbolic quadratic coefficient
// map, or nil when the function carries no symbolic terms.
func (f *Function) QuadraticTerms() map[term.Key]float64 {
	if !f.symbolic() {
		return nil
	}
	out := make(map[term.Key]float64, len(f.quadratic))
	for k, v := range f.quadratic {
		out[k] = v
	}

	return out
}
