package iterx

import (
	"context"
	"iter"
)

// Seq is a context bound iterator that records the reason iteration stopped.
type Seq[T any] interface {
	Each(context.Context) iter.Seq[T]
	Err() error
}

// Collect drains the sequence.
func Collect[T any](ctx context.Context, s Seq[T]) (r []T, err error) {
	for v := range s.Each(ctx) {
		r = append(r, v)
	}

	return r, s.Err()
}
