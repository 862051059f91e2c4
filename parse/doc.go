// Package parse turns textual quadratic formulas and small expression
// trees into raw term mappings consumable by package quadratic.
//
// 🚀 What is parsed?
//
//	Sign-prefixed algebraic terms with implicit multiplication and
//	squared notation, e.g.
//
//	  "-2x² + xy - y² + 5y"
//	  "x^2 + 1"
//	  "-x*y + y*z"
//	  "0,5a² - b"        (with a comma-decimal Locale)
//
//	Grammar, informally:
//
//	  expression := [sign] term (sign term)*
//	  term       := factor (['*'] factor)*
//	  factor     := number | variable ['²' | '^2']
//	  variable   := letter digit*
//
// Like terms are aggregated into a single entry per canonical key before
// emission, so downstream ingestion never sees duplicates. Anything with
// degree above two is rejected — this is a quadratic parser, not a
// general polynomial one.
//
// ✨ Locale awareness:
//
//	Text accepts a Locale describing the numeric-formatting convention
//	of the input. The decimal separator is derived from the locale's
//	golang.org/x/text message printer, so "0,5" parses under
//	language.German exactly as "0.5" does under DefaultLocale().
//
// The expression-tree path (Expr, Terms) covers callers that already
// hold a syntax tree — Num, Var, Add, Sub, Mul, Neg and Pow nodes expand
// into the same raw term mapping with the same degree enforcement.
//
// Errors:
//   - ErrEmptyExpression — no terms in the input.
//   - ErrUnexpectedChar  — a character outside the grammar.
//   - ErrBadNumber       — an unparseable numeric literal.
//   - ErrBadExponent     — an exponent other than 2.
//   - ErrDegree          — a term of degree three or higher.
package parse
