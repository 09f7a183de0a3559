// pkg/contract/contract.go

// Package contract provides runtime assertions for caller programming
// defects, such as a negative length passed to unfold.Vector. Data-
// dependent conditions a caller can foresee are reported as errors by
// the packages that detect them, never through this package.
package contract

import "fmt"

// Assert triggers a runtime error with the given message if the condition is false.
func Assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Sprintf("Contract violation: %s", msg))
	}
}

// Assertf is Assert with a formatted message.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("Contract violation: "+format, args...))
	}
}
