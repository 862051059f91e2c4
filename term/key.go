package term

// Kind discriminates the three shapes a term key can take.
type Kind uint8

const (
	// KindConstant marks the coefficient attached to no variable.
	KindConstant Kind = iota

	// KindLinear marks a coefficient attached to a single variable.
	KindLinear

	// KindQuadratic marks a coefficient attached to an unordered pair of
	// variables (a squared term when both names coincide).
	KindQuadratic
)

// Key identifies one term of a quadratic function. Keys are comparable
// and canonical: the quadratic pair is stored in lexicographic order, so
// {a,b} and {b,a} collide into the same map entry.
//
// The zero value is the constant key.
type Key struct {
	kind Kind
	a, b string
}

// Constant returns the key of the constant term.
func Constant() Key { return Key{kind: KindConstant} }

// Linear returns the key of the linear term on name.
func Linear(name string) Key { return Key{kind: KindLinear, a: name} }

// Quadratic returns the key of the quadratic term on the unordered pair
// {p, q}. The pair is canonicalized lexicographically; Quadratic(p, p)
// is the squared term on p.
func Quadratic(p, q string) Key {
	if q < p {
		p, q = q, p
	}

	return Key{kind: KindQuadratic, a: p, b: q}
}

// Kind reports the shape of the key.
func (k Key) Kind() Kind { return k.kind }

// Degree returns the polynomial degree of the term: 0, 1 or 2.
func (k Key) Degree() int {
	switch k.kind {
	case KindLinear:
		return 1
	case KindQuadratic:
		return 2
	default:
		return 0
	}
}

// Vars returns the variable names referenced by the key, in canonical
// order. Absent slots are empty strings: the constant key returns
// ("", ""), a linear key returns (name, "").
func (k Key) Vars() (string, string) { return k.a, k.b }

// Square reports whether the key is a squared term (quadratic with both
// names equal).
func (k Key) Square() bool { return k.kind == KindQuadratic && k.a == k.b }

// String renders the key the way the canonical formatter does:
// concatenated names for a cross term, a superscript square for a
// squared term, "1" for the constant.
func (k Key) String() string {
	switch k.kind {
	case KindLinear:
		return k.a
	case KindQuadratic:
		if k.a == k.b {
			return k.a + "²"
		}

		return k.a + k.b
	default:
		return "1"
	}
}
