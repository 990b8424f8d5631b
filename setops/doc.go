// Package setops provides set-algebra operations and emptiness semantics
// over two interchangeable container shapes: an ordered sequence and a
// string-keyed hash.
//
// # The Container type
//
// The central type is [Container][T], a tagged union of the two shapes.
// Operations behave identically whichever shape is passed:
//
//	a := setops.Seq(1, 2, 3, 4)
//	b := setops.FromHash(map[string]int{"x": 2, "y": 4})
//
//	setops.Difference(a, b).Values()   // → [1 3]
//	setops.Intersection(a, b).Values() // → [2 4]
//
// Results are new, sequence-shaped containers that preserve the iteration
// order of the first operand. Inputs are never mutated; the zero-value
// (nil) container is a valid, empty input everywhere.
//
// # Custom equality
//
// Difference and Intersection accept an optional [Comparator] in place of
// structural equality:
//
//	byID := func(a, b User) bool { return a.ID == b.ID }
//	setops.Difference(current, removed, byID)
//
// Absent a comparator, elements are matched with [Equal], a recursive
// structural comparison that also handles function-valued fields (compared
// by runtime name — two values of the same declared function are equal,
// distinct functions are not; this mirrors comparing functions by their
// textual form and is fragile for dynamically constructed functions, so
// supply a Comparator when function identity matters).
//
// # Emptiness
//
// [IsEmpty] and [HasValues] are variadic exact complements:
//
//	setops.IsEmpty(setops.None[int]())                  // → true
//	setops.HasValues(setops.Seq(1), setops.None[int]()) // → true
//
// A hash counts as non-empty exactly when it has at least one key,
// regardless of what its values hold.
//
// # Failure policy
//
// No function in this package returns an error or panics on malformed
// input. Nil containers, nil comparators, and non-numeric entries all
// degrade to empty/default semantics.
package setops
