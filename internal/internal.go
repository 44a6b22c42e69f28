// Package internal provides helpers shared by the parseq packages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is
// 0, a default is used that takes runtime.GOMAXPROCS(0) into account.
func ComputeNofBatches(low, high, n int) int {
	size := high - low
	if size < 0 {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if size == 0 {
		return 1
	}
	switch {
	case n == 0:
		n = 2 * runtime.GOMAXPROCS(0)
	case n < 0:
		panic(fmt.Sprintf("invalid number of batches: %v", n))
	}
	if n > size {
		n = size
	}
	return n
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p any) any {
	if p == nil {
		return nil
	}
	s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	if _, isError := p.(error); isError {
		r := errors.New(s)
		if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
			return runtimeError{r}
		}
		return r
	}
	return s
}
