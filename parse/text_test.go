package parse_test

import (
	"testing"

	"github.com/katalvlaran/quadform/parse"
	"github.com/katalvlaran/quadform/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// TestText_SimpleSquarePlusConstant parses "x^2 + 1" into one squared
// term and a constant.
func TestText_SimpleSquarePlusConstant(t *testing.T) {
	terms, err := parse.Text("x^2 + 1", parse.DefaultLocale())
	require.NoError(t, err, "well-formed input must parse")

	assert.Equal(t, map[term.Key]float64{
		term.Quadratic("x", "x"): 1,
		term.Constant():          1,
	}, terms, "x² coefficient and constant")
}

// TestText_SuperscriptAndImplicitMultiplication parses the full mixed
// formula "-2x² + xy - y² + 5y".
func TestText_SuperscriptAndImplicitMultiplication(t *testing.T) {
	terms, err := parse.Text("-2x² + xy - y² + 5y", parse.DefaultLocale())
	require.NoError(t, err, "well-formed input must parse")

	assert.Equal(t, map[term.Key]float64{
		term.Quadratic("x", "x"): -2,
		term.Quadratic("x", "y"): 1,
		term.Quadratic("y", "y"): -1,
		term.Linear("y"):         5,
	}, terms, "all four terms with signs")
}

// TestText_ExplicitStar parses "-x*y + y*z" — explicit multiplication
// between single-letter variables.
func TestText_ExplicitStar(t *testing.T) {
	terms, err := parse.Text("-x*y + y*z", parse.DefaultLocale())
	require.NoError(t, err, "well-formed input must parse")

	assert.Equal(t, map[term.Key]float64{
		term.Quadratic("x", "y"): -1,
		term.Quadratic("y", "z"): 1,
	}, terms, "two cross terms")
}

// TestText_AggregatesLikeTerms sums duplicate keys so downstream
// ingestion never sees the same key twice.
func TestText_AggregatesLikeTerms(t *testing.T) {
	terms, err := parse.Text("x + 2x + yx + xy", parse.DefaultLocale())
	require.NoError(t, err, "well-formed input must parse")

	assert.Equal(t, map[term.Key]float64{
		term.Linear("x"):         3,
		term.Quadratic("x", "y"): 2,
	}, terms, "like terms combined, pair order canonicalized")
}

// TestText_DigitSuffixedNames accepts default-style names like x0, x1,
// splitting at the next letter ("x0x1" = x0·x1).
func TestText_DigitSuffixedNames(t *testing.T) {
	terms, err := parse.Text("x0x1 - 3x1", parse.DefaultLocale())
	require.NoError(t, err, "well-formed input must parse")

	assert.Equal(t, map[term.Key]float64{
		term.Quadratic("x0", "x1"): 1,
		term.Linear("x1"):          -3,
	}, terms, "digit-suffixed identifiers")
}

// TestText_LocaleDecimalSeparator reads comma decimals under a German
// locale and rejects them under the default one.
func TestText_LocaleDecimalSeparator(t *testing.T) {
	german := parse.NewLocale(language.German)

	terms, err := parse.Text("0,5a² - b", german)
	require.NoError(t, err, "comma decimal must parse under German locale")
	assert.Equal(t, map[term.Key]float64{
		term.Quadratic("a", "a"): 0.5,
		term.Linear("b"):         -1,
	}, terms, "half a² minus b")

	_, err = parse.Text("0,5a²", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrUnexpectedChar, "comma is not part of the default grammar")
}

// TestText_FractionalCoefficients parses dot decimals under the default
// locale, including a bare leading separator.
func TestText_FractionalCoefficients(t *testing.T) {
	terms, err := parse.Text("1.25x + .5", parse.DefaultLocale())
	require.NoError(t, err, "dot decimals must parse")

	assert.Equal(t, map[term.Key]float64{
		term.Linear("x"): 1.25,
		term.Constant():  0.5,
	}, terms, "fractional coefficient and constant")
}

// TestText_DegreeCeiling rejects any term above degree two.
func TestText_DegreeCeiling(t *testing.T) {
	_, err := parse.Text("xyz", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrDegree, "three-variable product overflows a quadratic")

	_, err = parse.Text("x²y", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrDegree, "square times variable overflows a quadratic")
}

// TestText_BadExponent rejects any exponent other than 2.
func TestText_BadExponent(t *testing.T) {
	_, err := parse.Text("x^3", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrBadExponent, "cubes are not representable")

	_, err = parse.Text("x^", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrBadExponent, "dangling caret")
}

// TestText_MalformedInput covers the remaining failure surface: empty
// input, missing term separators, dangling operators.
func TestText_MalformedInput(t *testing.T) {
	_, err := parse.Text("   ", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrEmptyExpression, "blank input")

	_, err = parse.Text("x + ", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrUnexpectedChar, "sign with no term")

	_, err = parse.Text("2x 3y", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrUnexpectedChar, "terms must be joined by '+' or '-'")

	_, err = parse.Text("x*", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrUnexpectedChar, "'*' needs a following factor")

	_, err = parse.Text("*x", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrUnexpectedChar, "'*' needs a preceding factor")

	_, err = parse.Text("x + $", parse.DefaultLocale())
	assert.ErrorIs(t, err, parse.ErrUnexpectedChar, "character outside the grammar")
}

// TestText_SignsWithoutSpaces parses tightly packed signs, the shape the
// canonical formatter emits.
func TestText_SignsWithoutSpaces(t *testing.T) {
	terms, err := parse.Text("-2x² +xy -y² +5y", parse.DefaultLocale())
	require.NoError(t, err, "formatter-shaped input must parse")
	assert.Len(t, terms, 4, "four distinct canonical keys")
}
