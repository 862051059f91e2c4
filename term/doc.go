// Package term defines the symbolic building blocks of a quadratic
// function: term keys, coefficient ingestion, and the variable index.
//
// 🚀 What lives here?
//
//   - Key — a comparable, canonical identifier for one term of
//     f(x) = ½xᵀQx + dᵀx + c: the constant, a linear term on one
//     variable, or a quadratic term on an unordered variable pair
//     (a squared term when both names coincide).
//   - Ingest — classification of a raw parser-produced Key→coefficient
//     mapping into the linear map, the quadratic map and the constant,
//     accumulating every referenced variable name along the way.
//   - Index — the deterministic bijection between variable names and
//     contiguous positions [0, n), underlying the dense matrix layout.
//
// Determinism is the whole point: NewIndex sorts names lexicographically
// before assigning positions, so the same term set always produces the
// same matrix layout — required for reproducible assembly and for
// operand-alignment checks between two functions.
//
// The package has no failure modes: malformed input is rejected earlier,
// by the parser (package parse) or by dimension checks in package
// quadratic.
package term
