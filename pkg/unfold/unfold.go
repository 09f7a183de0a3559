// pkg/unfold/unfold.go

// Package unfold implements the unfold (anamorphism) primitive: given a
// transform f and an initial value i, it generates the endless sequence
// i, f(i), f(f(i)), ... one value at a time. The sequence never ends on
// its own; consumers bound it with Count, Vector, Nth, or the adapters
// in pkg/seq.
package unfold

import (
	"errors"
	"iter"

	"github.com/Feralthedogg/Unfold/pkg/contract"
)

// ErrInvalidIndex is returned by Nth when the index is zero or negative,
// in which case no value exists to return.
var ErrInvalidIndex = errors.New("unfold: index must be positive")

// Unfold is an endless generator holding the value to be produced next
// and the transform that advances it.
//
// Advancing is a plain read-modify-write; an Unfold is not safe for
// unsynchronized use from multiple goroutines. Ordering guarantees
// cover call order on a single goroutine only.
type Unfold[T any] struct {
	curr T
	fn   func(T) T
}

// New creates an Unfold that starts at init and advances with fn.
// fn is expected to be a total function over T; it is never validated.
//
//	countDown := unfold.New(func(x int) int { return x - 1 }, 100)
func New[T any](fn func(T) T, init T) *Unfold[T] {
	return &Unfold[T]{
		curr: init,
		fn:   fn,
	}
}

// Next returns the current value and advances the generator. It always
// succeeds; the sequence is endless from the generator's perspective.
// If fn panics, the panic propagates and the generator is left in an
// undefined state and must not be reused.
func (u *Unfold[T]) Next() T {
	tmp := u.curr
	u.curr = u.fn(u.curr)
	return tmp
}

// All returns an endless range-over-func view of the generator.
// The loop must break; ranging to completion never happens.
func (u *Unfold[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(u.Next()) {
		}
	}
}

// Vector generates the first length values into a slice, in production
// order. length of zero yields an empty slice; a negative length is a
// contract violation.
//
//	expGrowth := unfold.Vector(func(x int) int { return 2 * x }, 1, 10)
//	// [1 2 4 8 16 32 64 128 256 512]
func Vector[T any](fn func(T) T, init T, length int) []T {
	contract.Assertf(length >= 0, "Vector: negative length %d", length)
	u := New(fn, init)
	out := make([]T, length)
	for i := range out {
		out[i] = u.Next()
	}
	return out
}

// Nth produces index values and returns the last one, i.e. the value at
// one-based position index in the sequence: Nth(f, i, 1) is i itself,
// Nth(f, i, 2) is f(i), and so on. An index of zero or less selects no
// value and returns ErrInvalidIndex.
func Nth[T any](fn func(T) T, init T, index int) (T, error) {
	if index <= 0 {
		var zero T
		return zero, ErrInvalidIndex
	}
	u := New(fn, init)
	last := u.Next()
	for i := 1; i < index; i++ {
		last = u.Next()
	}
	return last, nil
}

// Counted is a finite view over an Unfold. It yields at most its quota
// of values and then reports exhaustion; exhaustion is terminal.
type Counted[T any] struct {
	inner     *Unfold[T]
	remaining int
}

// Count creates a lazy generator that stops after count values. Nothing
// is produced eagerly; each pull runs the transform once. A negative
// count is a contract violation.
//
//	nextOdd := unfold.Count(func(x int) int { return x + 2 }, 1, 3)
//	// successive Next calls: (1, true), (3, true), (5, true), (0, false)
func Count[T any](fn func(T) T, init T, count int) *Counted[T] {
	contract.Assertf(count >= 0, "Count: negative count %d", count)
	return &Counted[T]{
		inner:     New(fn, init),
		remaining: count,
	}
}

// Next returns the next value and true, or the zero value and false
// once the quota is spent.
func (c *Counted[T]) Next() (T, bool) {
	if c.remaining <= 0 {
		var zero T
		return zero, false
	}
	c.remaining--
	return c.inner.Next(), true
}

// All returns a range-over-func view that ends when the quota is spent.
func (c *Counted[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
