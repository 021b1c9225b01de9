// Package chanx provides the delivery channels used to report query results.
package chanx

import (
	"context"

	"github.com/anacrolix/chansync"
)

// Oneshot creates a single value channel. The sender never blocks.
func Oneshot[T any]() (*OneshotSender[T], *OneshotReceiver[T]) {
	o := &oneshot[T]{
		ch: make(chan T, 1),
	}

	return &OneshotSender[T]{o: o}, &OneshotReceiver[T]{o: o}
}

type oneshot[T any] struct {
	ch      chan T
	sent    chansync.SetOnce
	dropped chansync.SetOnce
}

type OneshotSender[T any] struct {
	o *oneshot[T]
}

// Send delivers v. returns false if the receiver was closed before the send,
// in which case v is discarded. a second send is a logic error and panics.
func (t *OneshotSender[T]) Send(v T) bool {
	if !t.o.sent.Set() {
		panic("oneshot: value already sent")
	}

	if t.o.dropped.IsSet() {
		return false
	}

	t.o.ch <- v
	close(t.o.ch)
	return true
}

// Closed reports if the receiver is no longer interested.
func (t *OneshotSender[T]) Closed() bool {
	return t.o.dropped.IsSet()
}

// Sent reports if the value was delivered or discarded.
func (t *OneshotSender[T]) Sent() bool {
	return t.o.sent.IsSet()
}

type OneshotReceiver[T any] struct {
	o *oneshot[T]
}

// Recv blocks until the value arrives or the context is done.
func (t *OneshotReceiver[T]) Recv(ctx context.Context) (v T, err error) {
	select {
	case v, ok := <-t.o.ch:
		if !ok {
			return v, ErrOneshotConsumed
		}
		return v, nil
	case <-t.o.dropped.Done():
		return v, ErrReceiverClosed
	case <-ctx.Done():
		return v, context.Cause(ctx)
	}
}

// Close signals the sender the value is no longer wanted.
func (t *OneshotReceiver[T]) Close() {
	t.o.dropped.Set()
}
