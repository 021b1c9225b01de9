package query

import (
	"github.com/james-lawrence/discv5/dht/enr"
	"github.com/james-lawrence/discv5/internal/chanx"
)

// ValueResult is a single outcome of a value lookup: the value or the failure.
type ValueResult struct {
	Value []byte
	Err   error
}

// QueryCallback is how the results of a query reach the caller that started it.
// either FindNodeCallback or FindValueCallback.
type QueryCallback interface {
	queryCallback()
}

// FindNodeCallback delivers the final records of a FindNode query exactly once.
type FindNodeCallback struct {
	Sender *chanx.OneshotSender[[]enr.Record]
}

func (FindNodeCallback) queryCallback() {}

// FindValueCallback streams the values and failures of a FindValue query.
type FindValueCallback struct {
	Sender *chanx.UnboundedSender[ValueResult]
}

func (FindValueCallback) queryCallback() {}

var (
	_ QueryCallback = FindNodeCallback{}
	_ QueryCallback = FindValueCallback{}
)

// NewFindNodeCallback returns the callback for a FindNode query and the
// receiver the caller waits on for the final records.
func NewFindNodeCallback() (FindNodeCallback, *chanx.OneshotReceiver[[]enr.Record]) {
	tx, rx := chanx.Oneshot[[]enr.Record]()
	return FindNodeCallback{Sender: tx}, rx
}

// NewFindValueCallback returns the callback for a FindValue query and the
// receiver streaming its results.
func NewFindValueCallback() (FindValueCallback, *chanx.UnboundedReceiver[ValueResult]) {
	tx, rx := chanx.Unbounded[ValueResult]()
	return FindValueCallback{Sender: tx}, rx
}
