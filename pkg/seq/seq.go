// pkg/seq/seq.go

// Package seq provides lazy, chainable adapters over iter.Seq values.
// Each adapter wraps the sequence below it and pulls one value at a
// time when the caller does; no evaluation happens between pulls. The
// intended use is bounding and projecting the endless generators from
// pkg/unfold:
//
//	root, ok := seq.From(unfold.Count(step, n, 100).All()).
//		TakeWhile(func(x float64) bool { return math.Abs(x*x-n) > 1e-8 }).
//		Last()
package seq

import (
	"iter"

	"github.com/Feralthedogg/Unfold/pkg/contract"
)

// Seq wraps an iter.Seq so adapters can be chained as methods.
type Seq[T any] struct {
	it iter.Seq[T]
}

// From wraps an existing iterator sequence.
func From[T any](it iter.Seq[T]) Seq[T] {
	return Seq[T]{it: it}
}

// Of builds a sequence over the given values.
func Of[T any](vals ...T) Seq[T] {
	return Seq[T]{it: func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}}
}

// All exposes the underlying iterator for use with range.
func (s Seq[T]) All() iter.Seq[T] {
	return s.it
}

// TakeWhile yields values as long as pred holds, then stops. The first
// failing value is consumed from the source but not yielded.
func (s Seq[T]) TakeWhile(pred func(T) bool) Seq[T] {
	return Seq[T]{it: func(yield func(T) bool) {
		for v := range s.it {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}}
}

// Take yields at most n values. A negative n is a contract violation.
func (s Seq[T]) Take(n int) Seq[T] {
	contract.Assertf(n >= 0, "Take: negative count %d", n)
	return Seq[T]{it: func(yield func(T) bool) {
		if n == 0 {
			return
		}
		left := n
		for v := range s.it {
			if !yield(v) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}}
}

// Filter yields only the values for which pred holds.
func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	return Seq[T]{it: func(yield func(T) bool) {
		for v := range s.it {
			if pred(v) && !yield(v) {
				return
			}
		}
	}}
}

// Map applies fn to every value of s. It is a free function because Go
// methods cannot introduce a second type parameter.
func Map[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	return Seq[U]{it: func(yield func(U) bool) {
		for v := range s.it {
			if !yield(fn(v)) {
				return
			}
		}
	}}
}

// Collect drains the sequence into a slice. The sequence must be
// finite.
func (s Seq[T]) Collect() []T {
	out := []T{}
	for v := range s.it {
		out = append(out, v)
	}
	return out
}

// Last drains the sequence and returns its final value. It reports
// false if the sequence was empty. The sequence must be finite.
func (s Seq[T]) Last() (T, bool) {
	var last T
	found := false
	for v := range s.it {
		last = v
		found = true
	}
	return last, found
}
