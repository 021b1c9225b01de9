// Package langx provides small utility functions to extend the standard golang language.
package langx

// Autoptr converts a value into a pointer
func Autoptr[T any](a T) *T {
	return &a
}

// Clone v and apply the options to the copy.
func Clone[T any, Y ~func(*T)](v T, options ...Y) T {
	dup := v
	for _, opt := range options {
		opt(&dup)
	}

	return dup
}
