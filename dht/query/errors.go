package query

import (
	"fmt"

	"github.com/james-lawrence/discv5/dht/int256"
	"github.com/james-lawrence/discv5/internal/errorsx"
)

const (
	ErrValueNotFound = errorsx.String("value not found")
	ErrInvalidValue  = errorsx.String("invalid value")
	ErrRequestFailed = errorsx.String("request failed")
)

// FindValueError is a failure reported by a single peer during a value lookup.
// the lookup continues with the remaining peers.
type FindValueError struct {
	Peer  int256.T
	Cause error
}

func (t FindValueError) Error() string {
	return fmt.Sprintf("findvalue %s: %v", t.Peer, t.Cause)
}

func (t FindValueError) Unwrap() error {
	return t.Cause
}
