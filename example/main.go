// main.go
package main

import (
	"fmt"
	"math"

	"github.com/Feralthedogg/Unfold/pkg/seq"
	"github.com/Feralthedogg/Unfold/pkg/unfold"
)

// maxNewtonSteps caps the iteration in case the tolerance is never met.
const maxNewtonSteps = 100

// unfoldSqrt computes the square root of n with Newton's method applied
// to f(x) = x² - n, whose positive root is √n. The generator produces
// the iterates; the caller stops it once an iterate squares to within
// tolerance of n. It reports false for negative n.
func unfoldSqrt(n float64) (float64, bool) {
	switch {
	case n < 0:
		return 0, false
	case n == 0 || n == 1:
		// 0 and 1 are their own square roots and poor seeds for the
		// iteration.
		return n, true
	}
	step := func(x float64) float64 { return (x*x + n) / (2 * x) }
	root, _ := seq.From(unfold.Count(step, n, maxNewtonSteps).All()).
		TakeWhile(func(x float64) bool { return math.Abs(x*x-n) > 1e-8 }).
		Last()
	return root, true
}

func main() {
	root, ok := unfoldSqrt(100.0)
	if !ok {
		fmt.Println("no real square root")
		return
	}
	fmt.Printf("sqrt(100) = %g\n", root)
}
