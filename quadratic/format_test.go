package quadratic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadform/parse"
	"github.com/katalvlaran/quadform/quadratic"
)

// TestString_CanonicalOrder renders quadratic terms first, then linear,
// then the constant, each group sorted by name.
func TestString_CanonicalOrder(t *testing.T) {
	f := mustParse(t, "5y - y² - 2x² + xy")
	assert.Equal(t, "-2x² +xy -y² +5y", f.String(), "groups ordered and sorted regardless of input order")

	g := mustParse(t, "1 + x^2")
	assert.Equal(t, "+x² +1", g.String(), "unit coefficient elided, constant last")
}

// TestString_SkipsZeroTerms drops zero coefficients and renders the
// all-zero function as "0".
func TestString_SkipsZeroTerms(t *testing.T) {
	f := mustParse(t, "x - x + y²")
	assert.Equal(t, "+y²", f.String(), "cancelled linear term omitted")

	zero := mustParse(t, "x - x")
	assert.Equal(t, "0", zero.String(), "every term zero")
}

// TestString_FractionalCoefficients render as plain decimals, never in
// exponent notation, so the output stays parseable.
func TestString_FractionalCoefficients(t *testing.T) {
	f := mustParse(t, "0.5x² - 0.25x")
	assert.Equal(t, "+0.5x² -0.25x", f.String(), "plain decimal rendering")
}

// TestString_DenseFallback covers functions without symbolic maps.
func TestString_DenseFallback(t *testing.T) {
	f, err := quadratic.New(mat.NewDense(3, 3, nil), make([]float64, 3))
	require.NoError(t, err, "explicit construction")
	assert.Equal(t, "3-dimensional quadratic objective function", f.String(), "dimension summary")
}

// TestString_RoundTrip: TryParse(f.String()) reconstructs a function
// that evaluates identically wherever f has symbolic terms.
func TestString_RoundTrip(t *testing.T) {
	for _, formula := range []string{
		"x^2 + 1",
		"-2x² + xy - y² + 5y",
		"-x*y + y*z",
		"0.5a² - 0.125b + 7",
	} {
		f := mustParse(t, formula)

		g, ok := quadratic.TryParse(f.String(), parse.DefaultLocale())
		require.True(t, ok, "canonical form of %q must parse back", formula)
		require.Equal(t, f.Dim(), g.Dim(), "same dimension after round-trip of %q", formula)
		assert.Equal(t, f.Names(), g.Names(), "same index after round-trip of %q", formula)

		points := [][]float64{make([]float64, f.Dim()), make([]float64, f.Dim())}
		for i := range points[1] {
			points[1][i] = float64(i+1) * 1.5
		}
		for _, x := range points {
			want, err := f.Value(x)
			require.NoError(t, err, "evaluate original")
			got, err := g.Value(x)
			require.NoError(t, err, "evaluate reconstruction")
			assert.InDelta(t, want, got, 1e-12, "round-trip of %q at %v", formula, x)
		}
	}
}
