// SPDX-License-Identifier: MIT
// Package parse: sentinel error set. Every parse failure returned by
// this package wraps exactly one of these sentinels; callers match with
// errors.Is. No function here panics on malformed user input.

package parse

import "errors"

var (
	// ErrEmptyExpression indicates the input contained no terms at all.
	ErrEmptyExpression = errors.New("parse: empty expression")

	// ErrUnexpectedChar indicates a character outside the formula grammar.
	ErrUnexpectedChar = errors.New("parse: unexpected character")

	// ErrBadNumber indicates a numeric literal that could not be parsed.
	ErrBadNumber = errors.New("parse: malformed number")

	// ErrBadExponent indicates an exponent other than 2; only squares are
	// representable in a quadratic form.
	ErrBadExponent = errors.New("parse: unsupported exponent")

	// ErrDegree indicates a term of degree three or higher.
	ErrDegree = errors.New("parse: term degree above quadratic")
)
