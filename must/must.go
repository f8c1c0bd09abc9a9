// Package must turns error returns that can only fail on
// programmer error into panics.
package must

// Value returns v, or panics with err if it is not nil.
func Value[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// OK panics with err if it is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}
