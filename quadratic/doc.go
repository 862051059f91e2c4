// Package quadratic implements the quadratic multivariate function
//
//	f(x) = ½·xᵀQx + dᵀx + c
//
// as a value-like objective for quadratic-programming solvers, bridging
// a symbolic term representation and a dense numeric one.
//
// 🚀 Construction paths (all converge on the same internals):
//
//   - New(Q, d, names...) — explicit dense form. Index order is the
//     caller's; no symbolic term maps are derived.
//   - Parse(text, locale) / TryParse — textual formulas through package
//     parse, e.g. "-2x² + xy - y² + 5y".
//   - FromExpr(tree) — the expression-tree path.
//
// Symbolic-born functions hold linear and quadratic coefficient maps
// next to the dense triple; both views stay consistent through algebra.
//
// The Hessian convention: the coefficient s of a cross term x·y lands
// in both Q[i,j] and Q[j,i]; the coefficient of a squared term doubles
// on the diagonal. The ½xᵀQx evaluation halves it back out, so
// "x²" yields Q = [[2]] and value(5) = 26 for "x^2 + 1".
//
// ✨ Guarantees:
//
//   - Deterministic layout – variable names sort lexicographically into
//     positions 0..n-1; identical input yields identical Q, d and index.
//   - Pure algebra – Scale, Neg, Div, Add and Sub never mutate an
//     operand; each returns a fresh instance.
//   - Fail-fast – every shape disagreement returns ErrDimensionMismatch,
//     division by a zero scalar returns ErrDivideByZero; constructors
//     fail atomically.
//
// The only mutable field is the constant term (SetConstant); everything
// else is fixed at construction, so instances are safe to share
// read-only across goroutines.
//
// Combining two functions whose variable names disagree does NOT fail:
// the result degrades to a dense-only combination under synthetic names
// x0..x(n-1), losing the symbolic term maps. This permissive fallback
// is deliberate, documented behavior — see the algebra tests.
package quadratic
