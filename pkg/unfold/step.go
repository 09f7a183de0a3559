// pkg/unfold/step.go

package unfold

import "golang.org/x/exp/constraints"

// Numeric is a type constraint for numeric types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Add returns a step function that advances a value by stride.
//
//	counter := unfold.New(unfold.Add(1), 0)
func Add[T Numeric](stride T) func(T) T {
	return func(x T) T { return x + stride }
}

// Mul returns a step function that scales a value by factor.
//
//	doubling := unfold.New(unfold.Mul(2), 1)
func Mul[T Numeric](factor T) func(T) T {
	return func(x T) T { return x * factor }
}
