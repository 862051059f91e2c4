package quadratic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/quadform/term"
)

// String renders the canonical form: non-zero quadratic terms, then
// non-zero linear terms, then the constant, each as ±coefficient
// followed by the concatenated variable names ("²" for squares), terms
// separated by single spaces. Groups are sorted by name so the
// rendering is deterministic. Examples:
//
//	"-2x² +xy -y² +5y"
//	"+x² +1"
//	"0"                 (every term zero)
//
// Functions without symbolic term maps (explicit-matrix construction,
// misaligned combinations) fall back to a dimension summary.
//
// The output round-trips through TryParse under parse.DefaultLocale():
// coefficients render as plain decimals, never in exponent notation.
func (f *Function) String() string {
	if !f.symbolic() {
		return fmt.Sprintf("%d-dimensional quadratic objective function", f.n)
	}

	var sb strings.Builder

	keys := make([]term.Key, 0, len(f.quadratic))
	for key := range f.quadratic {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ai, bi := keys[i].Vars()
		aj, bj := keys[j].Vars()
		if ai != aj {
			return ai < aj
		}

		return bi < bj
	})
	for _, key := range keys {
		writeTerm(&sb, f.quadratic[key], key.String())
	}

	names := make([]string, 0, len(f.linear))
	for name := range f.linear {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		writeTerm(&sb, f.linear[name], name)
	}

	if f.c != 0 {
		writeTerm(&sb, f.c, "")
	}

	if sb.Len() == 0 {
		return "0"
	}
	rendered := sb.String()

	return rendered[:len(rendered)-1]
}

// writeTerm appends one "±coeff·vars " fragment; zero coefficients are
// skipped, magnitude-one coefficients are elided unless the term is the
// bare constant.
func writeTerm(sb *strings.Builder, coeff float64, vars string) {
	if coeff == 0 {
		return
	}
	if coeff < 0 {
		sb.WriteByte('-')
		coeff = -coeff
	} else {
		sb.WriteByte('+')
	}
	if coeff != 1 || vars == "" {
		sb.WriteString(strconv.FormatFloat(coeff, 'f', -1, 64))
	}
	sb.WriteString(vars)
	sb.WriteByte(' ')
}
