package term

import (
	"sort"
	"strconv"
)

// Index is a bijection between variable names and contiguous positions
// [0, n). It fixes the row/column layout of the dense Hessian and the
// order of the linear-coefficient vector.
//
// An Index is immutable after construction and safe to share between
// function instances and goroutines.
//
// Algorithm (NewIndex):
//  1. Deduplicate the incoming name set.
//  2. Sort names lexicographically (total order ⇒ deterministic layout).
//  3. Assign positions 0..n-1 in sorted order.
//
// Memory: O(n). Lookup either direction: O(1).
type Index struct {
	names []string       // position → name
	pos   map[string]int // name → position
}

// NewIndex builds a deterministic Index from a set of variable names:
// duplicates are dropped, survivors sorted lexicographically, positions
// assigned in sorted order. The input slice is not modified.
func NewIndex(names []string) *Index {
	uniq := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			uniq = append(uniq, name)
		}
	}
	sort.Strings(uniq)

	return fromSorted(uniq)
}

// FromOrdered builds an Index that trusts the caller's order verbatim:
// position i gets names[i], no sorting, no deduplication. Used by the
// explicit matrix-construction path, where the caller's index order is
// authoritative. The input slice is copied.
func FromOrdered(names []string) *Index {
	return fromSorted(append([]string(nil), names...))
}

func fromSorted(names []string) *Index {
	pos := make(map[string]int, len(names))
	for i, name := range names {
		pos[name] = i
	}

	return &Index{names: names, pos: pos}
}

// DefaultNames synthesizes the default variable names x0, x1, ...,
// x(n-1) in index order.
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i)
	}

	return names
}

// Len returns the number of indexed variables.
func (ix *Index) Len() int { return len(ix.names) }

// NameAt returns the name at position i, and false when i is out of
// range.
func (ix *Index) NameAt(i int) (string, bool) {
	if i < 0 || i >= len(ix.names) {
		return "", false
	}

	return ix.names[i], true
}

// IndexOf returns the position of name, and false when the name is
// unknown to the index.
func (ix *Index) IndexOf(name string) (int, bool) {
	i, ok := ix.pos[name]

	return i, ok
}

// Names returns a copy of the position→name assignment.
func (ix *Index) Names() []string {
	return append([]string(nil), ix.names...)
}

// Equal reports whether other maps exactly the same names to the same
// positions. This is the operand-alignment check used before combining
// two functions symbolically.
func (ix *Index) Equal(other *Index) bool {
	if other == nil || len(ix.names) != len(other.names) {
		return false
	}
	for i, name := range ix.names {
		if other.names[i] != name {
			return false
		}
	}

	return true
}
