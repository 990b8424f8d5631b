package setops

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Container is the tagged union over the two collection shapes the set
// operations accept: an ordered sequence of T, or a string-keyed hash of T.
//
// Every operation in this package behaves identically regardless of shape.
// A hash enumerates its values in sorted-key order, so operations over a
// hash are deterministic even though Go maps iterate in random order.
//
// The zero value is the nil container: it has no elements, is reported
// empty by every emptiness check, and is a valid input to every operation.
// Constructors copy their input, so a Container never aliases caller-owned
// memory and transformations never mutate their inputs.
type Container[T any] struct {
	kind kind
	seq  []T
	hash map[string]T
}

type kind uint8

const (
	kindNone kind = iota
	kindSeq
	kindHash
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Seq creates a sequence-shaped Container from a variadic list of items
// (copied).
func Seq[T any](items ...T) Container[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return Container[T]{kind: kindSeq, seq: dst}
}

// FromSlice creates a sequence-shaped Container from a slice (the slice is
// copied).
func FromSlice[T any](items []T) Container[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return Container[T]{kind: kindSeq, seq: dst}
}

// FromHash creates a hash-shaped Container from a string-keyed map (the map
// is copied).
func FromHash[T any](m map[string]T) Container[T] {
	dst := make(map[string]T, len(m))
	for k, v := range m {
		dst[k] = v
	}
	return Container[T]{kind: kindHash, hash: dst}
}

// None returns the nil container of type T. Equivalent to the zero value.
func None[T any]() Container[T] {
	return Container[T]{}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements (sequence length or hash key count).
// The nil container has length 0.
func (c Container[T]) Len() int {
	switch c.kind {
	case kindSeq:
		return len(c.seq)
	case kindHash:
		return len(c.hash)
	default:
		return 0
	}
}

// Empty reports whether the container has no elements. A hash is empty
// exactly when it has no keys, regardless of what its values hold.
func (c Container[T]) Empty() bool { return c.Len() == 0 }

// Values returns the elements as a fresh slice: a copy for a sequence, the
// values in sorted-key order for a hash, and an empty slice for the nil
// container.
func (c Container[T]) Values() []T {
	switch c.kind {
	case kindSeq:
		out := make([]T, len(c.seq))
		copy(out, c.seq)
		return out
	case kindHash:
		out := make([]T, 0, len(c.hash))
		for _, k := range c.Keys() {
			out = append(out, c.hash[k])
		}
		return out
	default:
		return []T{}
	}
}

// Keys returns the sorted keys of a hash-shaped container, or nil for the
// other shapes (a sequence is addressed by index, not key).
func (c Container[T]) Keys() []string {
	if c.kind != kindHash {
		return nil
	}
	keys := make([]string, 0, len(c.hash))
	for k := range c.hash {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a JSON representation of the container.
// It implements [fmt.Stringer].
func (c Container[T]) String() string {
	var payload any
	switch c.kind {
	case kindSeq:
		payload = c.seq
	case kindHash:
		payload = c.hash
	default:
		return "null"
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(b)
}
