// SPDX-License-Identifier: MIT
// Package quadratic: sentinel error set. All shape and arithmetic
// failures returned by this package wrap one of these sentinels; tests
// and callers match them via errors.Is. Parse failures travel through
// unchanged from package parse.

package quadratic

import "errors"

var (
	// ErrDimensionMismatch indicates disagreeing shapes anywhere in the
	// API: a non-square Hessian, a Hessian/vector length mismatch, a
	// names-length mismatch, an evaluation point of the wrong length, or
	// differing variable counts between combined functions.
	ErrDimensionMismatch = errors.New("quadratic: dimension mismatch")

	// ErrDivideByZero indicates division of a function by a zero scalar.
	ErrDivideByZero = errors.New("quadratic: division by zero")
)
