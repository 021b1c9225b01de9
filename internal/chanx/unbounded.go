package chanx

import (
	"context"
	"iter"
	"sync"

	"github.com/anacrolix/chansync"

	"github.com/james-lawrence/discv5/internal/iterx"
)

// Unbounded creates a multi value channel without backpressure.
// sends never block and are silently dropped once the receiver closes.
func Unbounded[T any]() (*UnboundedSender[T], *UnboundedReceiver[T]) {
	u := &unbounded[T]{}
	return &UnboundedSender[T]{u: u}, &UnboundedReceiver[T]{u: u}
}

type unbounded[T any] struct {
	m       sync.Mutex
	buf     []T
	pending chansync.BroadcastCond
	done    chansync.SetOnce // sender finished
	dropped chansync.SetOnce // receiver closed
}

type UnboundedSender[T any] struct {
	u *unbounded[T]
}

// Send queues v. returns false when v was discarded because the receiver
// closed or the sender was already closed.
func (t *UnboundedSender[T]) Send(v T) bool {
	t.u.m.Lock()
	if t.u.dropped.IsSet() || t.u.done.IsSet() {
		t.u.m.Unlock()
		return false
	}
	t.u.buf = append(t.u.buf, v)
	t.u.m.Unlock()
	t.u.pending.Broadcast()

	return true
}

// Close the sender, the receiver drains the queued values and then stops.
func (t *UnboundedSender[T]) Close() {
	t.u.done.Set()
}

// Closed reports if the receiver is no longer interested.
func (t *UnboundedSender[T]) Closed() bool {
	return t.u.dropped.IsSet()
}

type UnboundedReceiver[T any] struct {
	u   *unbounded[T]
	err error
}

var _ iterx.Seq[int] = (*UnboundedReceiver[int])(nil)

// Recv the next value. ok is false once the sender closed and the queue is drained.
func (t *UnboundedReceiver[T]) Recv(ctx context.Context) (v T, ok bool, err error) {
	for {
		t.u.m.Lock()
		if len(t.u.buf) > 0 {
			v = t.u.buf[0]
			var zero T
			t.u.buf[0] = zero
			t.u.buf = t.u.buf[1:]
			t.u.m.Unlock()
			return v, true, nil
		}

		if t.u.dropped.IsSet() {
			t.u.m.Unlock()
			return v, false, ErrReceiverClosed
		}

		if t.u.done.IsSet() {
			t.u.m.Unlock()
			return v, false, nil
		}

		// must be acquired while holding the lock so a send between
		// unlock and select still wakes us.
		signaled := t.u.pending.Signaled()
		t.u.m.Unlock()

		select {
		case <-signaled:
		case <-t.u.done.Done():
		case <-t.u.dropped.Done():
		case <-ctx.Done():
			return v, false, context.Cause(ctx)
		}
	}
}

// Each yields values until the sender closes or the context is done.
func (t *UnboundedReceiver[T]) Each(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok, err := t.Recv(ctx)
			if err != nil {
				t.err = err
				return
			}

			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the error that stopped Each, if any.
func (t *UnboundedReceiver[T]) Err() error {
	return t.err
}

// Len of the queued values.
func (t *UnboundedReceiver[T]) Len() int {
	t.u.m.Lock()
	defer t.u.m.Unlock()
	return len(t.u.buf)
}

// Close the receiver, queued values are released and further sends are dropped.
func (t *UnboundedReceiver[T]) Close() {
	t.u.dropped.Set()
	t.u.m.Lock()
	t.u.buf = nil
	t.u.m.Unlock()
}
