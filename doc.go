// Package quadform is a symbolic-to-numeric bridge for quadratic
// multivariate functions — f(x) = ½·xᵀQx + dᵀx + c — built to serve as
// objectives for quadratic-programming solvers.
//
// 🚀 What is quadform?
//
//	A small, deterministic library that turns algebraic term lists or
//	textual formulas like "-2x² + xy - y² + 5y" into a dense (Q, d, c)
//	triple, and keeps the symbolic and numeric views consistent through
//	evaluation and algebra:
//		• Term model: constant, linear and quadratic coefficient maps
//		• Variable index: stable, lexicographic name→position assignment
//		• Dense assembly: symmetric Hessian Q and linear vector d (gonum)
//		• Evaluation: function value ½xᵀQx + dᵀx + c and gradient Qx + d
//		• Algebra: scale, negate, divide, add, subtract — always pure
//		• Canonical strings with parse round-trip
//
// ✨ Why choose quadform?
//
//   - Deterministic – identical input always yields identical Q, d and
//     name↔index mappings
//   - Value-like – operators never mutate an operand; instances are safe
//     to share read-only across goroutines
//   - Fail-fast – sentinel errors for every shape disagreement, checked
//     with errors.Is
//
// Everything is organized under three subpackages:
//
//	term/      — term keys, ingest, and the variable index
//	parse/     — textual formula & expression-tree parsing (locale-aware)
//	quadratic/ — the Function type: construction, evaluation, algebra
//
// Quick example:
//
//	f, _ := quadratic.Parse("x^2 + 1", parse.DefaultLocale())
//	v, _ := f.Value([]float64{5})    // 26
//	g, _ := f.Gradient([]float64{5}) // [10]
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/quadform
package quadform
