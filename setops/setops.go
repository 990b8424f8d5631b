package setops

import "math"

// Comparator is a binary predicate used in place of structural equality by
// [Difference] and [Intersection].
type Comparator[T any] func(a, b T) bool

// comparatorOrEqual returns cmps[0] when a comparator was supplied, falling
// back to structural equality via [Equal].
func comparatorOrEqual[T any](cmps []Comparator[T]) Comparator[T] {
	if len(cmps) > 0 && cmps[0] != nil {
		return cmps[0]
	}
	return func(a, b T) bool { return Equal(a, b) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
// ─────────────────────────────────────────────────────────────────────────────

// Difference returns the elements of a that have no match in b under the
// optional comparator, preserving a's iteration order. The result is always
// sequence-shaped. Runs in O(len(a)·len(b)) since the comparator is an
// arbitrary predicate.
func Difference[T any](a, b Container[T], cmp ...Comparator[T]) Container[T] {
	return matchFilter(a, b, comparatorOrEqual(cmp), false)
}

// Intersection returns the elements of a that have at least one match in b
// under the optional comparator, preserving a's iteration order. The result
// is always sequence-shaped. Runs in O(len(a)·len(b)).
func Intersection[T any](a, b Container[T], cmp ...Comparator[T]) Container[T] {
	return matchFilter(a, b, comparatorOrEqual(cmp), true)
}

// matchFilter keeps the elements of a whose matched-in-b status equals keep.
func matchFilter[T any](a, b Container[T], eq Comparator[T], keep bool) Container[T] {
	bVals := b.Values()
	out := make([]T, 0, a.Len())
	for _, av := range a.Values() {
		matched := false
		for _, bv := range bVals {
			if eq(av, bv) {
				matched = true
				break
			}
		}
		if matched == keep {
			out = append(out, av)
		}
	}
	return Container[T]{kind: kindSeq, seq: out}
}

// Flatten concatenates every inner sequence of c into a single
// sequence-shaped Container, in c's iteration order. The outer container may
// be either shape: a sequence of sequences or a hash of sequences.
func Flatten[T any](c Container[[]T]) Container[T] {
	inner := c.Values()
	total := 0
	for _, chunk := range inner {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range inner {
		out = append(out, chunk...)
	}
	return Container[T]{kind: kindSeq, seq: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Emptiness
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether every argument is a nil or structurally empty
// container. Vacuously true when called with no arguments.
func IsEmpty[T any](cs ...Container[T]) bool {
	for _, c := range cs {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// HasValues reports whether at least one argument holds an element.
// It is the exact complement of [IsEmpty] for any argument list.
func HasValues[T any](cs ...Container[T]) bool {
	return !IsEmpty(cs...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Element inspection
// ─────────────────────────────────────────────────────────────────────────────

// ComprisedOf reports whether every element of c has dynamic type E.
// Vacuously true for an empty or nil container. It is intended for
// heterogeneous containers (Container[any]):
//
//	mixed := setops.Seq[any]("a", "b", 3)
//	setops.ComprisedOf[string](mixed) // → false
func ComprisedOf[E any, T any](c Container[T]) bool {
	for _, v := range c.Values() {
		if _, ok := any(v).(E); !ok {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Map builders
// ─────────────────────────────────────────────────────────────────────────────

// HashFromNumbers builds a map from each whole-number element of items to
// itself. Entries that are nil, non-numeric, or carry a fractional part are
// dropped silently.
//
//	HashFromNumbers([]any{1, 2.5, nil, 3}) // → map[1:1 3:3]
func HashFromNumbers(items []any) map[int]int {
	out := make(map[int]int, len(items))
	for _, item := range items {
		if n, ok := wholeNumber(item); ok {
			out[n] = n
		}
	}
	return out
}

// wholeNumber converts v to an int when it holds an integral numeric value.
func wholeNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return wholeFloat(float64(n))
	case float64:
		return wholeFloat(n)
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Enumerant is one name/value pair of an enumeration. Callers supply
// enumerations as explicit pair lists rather than relying on reflection over
// an enum-like type.
type Enumerant[K comparable] struct {
	Name  string
	Value K
}

// DefaultMap builds a map from every enumerant value to def, with exactly one
// entry per distinct value even when the enumeration repeats values under
// different names (e.g. a numeric enum listed alongside its reverse lookup).
func DefaultMap[K comparable, V any](enum []Enumerant[K], def V) map[K]V {
	out := make(map[K]V, len(enum))
	for _, e := range enum {
		out[e.Value] = def
	}
	return out
}
