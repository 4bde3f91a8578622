package bridge

import "fmt"

// Func0 adapts a no-argument function into a Handler.
func Func0[R any](fn func() (R, error)) Handler {
	return func(args []any) (any, error) {
		if len(args) != 0 {
			return nil, &SerializationError{Path: "$.args", Reason: fmt.Sprintf("expected no arguments, got %d", len(args))}
		}
		return fn()
	}
}

// Func1 adapts a single-argument function into a Handler, decoding the
// script's argument into A.
func Func1[A, R any](fn func(A) (R, error)) Handler {
	return func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, &SerializationError{Path: "$.args", Reason: fmt.Sprintf("expected 1 argument, got %d", len(args))}
		}
		var a A
		if err := convert(args[0], &a, "$.args[0]"); err != nil {
			return nil, err
		}
		return fn(a)
	}
}
