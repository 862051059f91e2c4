package parse_test

import (
	"testing"

	"github.com/katalvlaran/quadform/parse"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

// TestLocale_DecimalSeparators checks the separator derived for a few
// well-known conventions.
func TestLocale_DecimalSeparators(t *testing.T) {
	assert.Equal(t, '.', parse.DefaultLocale().DecimalSeparator(), "default locale uses a dot")
	assert.Equal(t, '.', parse.NewLocale(language.English).DecimalSeparator(), "English uses a dot")
	assert.Equal(t, ',', parse.NewLocale(language.German).DecimalSeparator(), "German uses a comma")
	assert.Equal(t, ',', parse.NewLocale(language.French).DecimalSeparator(), "French uses a comma")
}

// TestLocale_ZeroValue behaves like the default convention, so an
// uninitialized Locale never breaks parsing.
func TestLocale_ZeroValue(t *testing.T) {
	var loc parse.Locale
	assert.Equal(t, '.', loc.DecimalSeparator(), "zero Locale falls back to a dot")
}

// TestLocale_TagRoundTrip keeps the constructing tag accessible.
func TestLocale_TagRoundTrip(t *testing.T) {
	loc := parse.NewLocale(language.German)
	assert.Equal(t, language.German, loc.Tag(), "tag preserved")
}
