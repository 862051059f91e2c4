package term

// Ingest classifies a raw Key→coefficient mapping (as produced by the
// parser or an expression expansion) into the linear coefficient map,
// the quadratic coefficient map and the constant term, accumulating
// every referenced variable name.
//
// No aggregation happens here: keys are unique in the input by the
// parser contract (like terms are combined before emission), so each
// entry is routed exactly once. Zero coefficients are kept as stored —
// the formatter skips them at render time.
//
// The returned maps are always non-nil, even when empty; a function
// built through Ingest carries symbolic terms by definition.
//
// Complexity: O(T) over the number of terms.
func Ingest(raw map[Key]float64) (linear map[string]float64, quadratic map[Key]float64, constant float64, names []string) {
	linear = make(map[string]float64, len(raw))
	quadratic = make(map[Key]float64, len(raw))
	seen := make(map[string]struct{}, len(raw))

	collect := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	for key, coeff := range raw {
		switch key.Kind() {
		case KindLinear:
			a, _ := key.Vars()
			linear[a] = coeff
			collect(a)
		case KindQuadratic:
			a, b := key.Vars()
			quadratic[key] = coeff
			collect(a)
			collect(b)
		default:
			constant = coeff
		}
	}

	return linear, quadratic, constant, names
}
