package quadratic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Value evaluates f at x:
//
//	value = ½·xᵀQx + dᵀx + c
//
// Fails with ErrDimensionMismatch when len(x) != Dim(). NaN and Inf
// coordinates propagate through the arithmetic without special-casing.
//
// Complexity: O(n²).
func (f *Function) Value(x []float64) (float64, error) {
	if len(x) != f.n {
		return 0, fmt.Errorf("Value: point has %d coordinates, function has %d variables: %w", len(x), f.n, ErrDimensionMismatch)
	}
	if f.n == 0 {
		return f.c, nil
	}

	xv := mat.NewVecDense(f.n, x)

	return 0.5*mat.Inner(xv, f.q, xv) + mat.Dot(f.d, xv) + f.c, nil
}

// Gradient evaluates ∇f at x:
//
//	gradient = Qx + d
//
// exact for ½xᵀQx since Q is symmetric by construction. Fails with
// ErrDimensionMismatch when len(x) != Dim().
//
// Complexity: O(n²).
func (f *Function) Gradient(x []float64) ([]float64, error) {
	if len(x) != f.n {
		return nil, fmt.Errorf("Gradient: point has %d coordinates, function has %d variables: %w", len(x), f.n, ErrDimensionMismatch)
	}
	if f.n == 0 {
		return []float64{}, nil
	}

	xv := mat.NewVecDense(f.n, x)
	grad := mat.NewVecDense(f.n, nil)
	grad.MulVec(f.q, xv)
	grad.AddVec(grad, f.d)

	return grad.RawVector().Data, nil
}
