package chanx

import "github.com/james-lawrence/discv5/internal/errorsx"

const (
	ErrReceiverClosed  = errorsx.String("receiver closed")
	ErrOneshotConsumed = errorsx.String("oneshot value already received")
)
