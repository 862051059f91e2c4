package parse

import (
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale captures the numeric-formatting convention of a formula's
// origin. Its only observable effect on parsing is the decimal
// separator: language.German reads "0,5" where language.English reads
// "0.5".
//
// The zero Locale is usable and behaves like DefaultLocale.
type Locale struct {
	tag language.Tag
	dec rune
}

// NewLocale builds a Locale for tag, deriving the decimal separator by
// rendering a known fraction through the tag's message printer.
func NewLocale(tag language.Tag) Locale {
	return Locale{tag: tag, dec: decimalSeparator(tag)}
}

// DefaultLocale is the canonical convention: English, dot separator.
// The canonical string rendering of a function round-trips under it.
func DefaultLocale() Locale { return NewLocale(language.English) }

// Tag returns the language tag this Locale was built from.
func (l Locale) Tag() language.Tag { return l.tag }

// DecimalSeparator returns the rune accepted between the integer and
// fractional digits of a coefficient.
func (l Locale) DecimalSeparator() rune { return l.decimal() }

func (l Locale) decimal() rune {
	if l.dec == 0 {
		return '.'
	}

	return l.dec
}

// decimalSeparator prints 1.5 with the locale's printer and picks the
// first non-digit rune. Falls back to '.' for locales whose rendering
// yields no separator at this precision.
func decimalSeparator(tag language.Tag) rune {
	rendered := message.NewPrinter(tag).Sprintf("%.1f", 1.5)
	for _, r := range rendered {
		if !unicode.IsDigit(r) {
			return r
		}
	}

	return '.'
}
