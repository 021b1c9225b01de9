// Package query holds the state of an in-flight lookup and builds the request
// sent to every peer it contacts.
package query

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/james-lawrence/discv5/dht/enr"
	"github.com/james-lawrence/discv5/dht/int256"
	"github.com/james-lawrence/discv5/dht/kbucket"
	"github.com/james-lawrence/discv5/dht/rpc"
	"github.com/james-lawrence/discv5/internal/langx"
)

const (
	defaultDistancesToRequest = 3
	defaultUntrustedCapacity  = 16
)

type logging interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

// TargetKey is what the query pool orders in-flight queries by.
type TargetKey interface {
	Key() kbucket.Key[int256.T]
}

// Option configures an Info.
type Option func(*Info)

// OptionDistancesToRequest number of distances requested from each peer, within [1, 127].
func OptionDistancesToRequest(n int) Option {
	return func(i *Info) {
		i.distancesToRequest = n
	}
}

// OptionLogger receives the diagnostics of the query, discarded by default.
func OptionLogger(l logging) Option {
	return func(i *Info) {
		i.log = l
	}
}

// OptionUntrustedCapacity preallocates room for the untrusted records.
func OptionUntrustedCapacity(n int) Option {
	return func(i *Info) {
		i.UntrustedENRs = make([]enr.Record, 0, n)
	}
}

// Info about a query.
type Info struct {
	// What we are querying and why.
	Type QueryType

	// Records used to reach nodes before they are verified.
	UntrustedENRs []enr.Record

	// Reports the results to whoever requested the query.
	Callback QueryCallback

	distancesToRequest int
	log                logging
}

// New query, panics unless between 1 and MaxDistancesToRequest distances are
// requested or when the callback does not match the query type.
func New(qt QueryType, cb QueryCallback, options ...Option) *Info {
	switch qt.(type) {
	case FindNode:
		if _, ok := cb.(FindNodeCallback); !ok {
			panic(fmt.Sprintf("findnode query requires a findnode callback: %T", cb))
		}
	case FindValue:
		if _, ok := cb.(FindValueCallback); !ok {
			panic(fmt.Sprintf("findvalue query requires a findvalue callback: %T", cb))
		}
	default:
		panic(fmt.Sprintf("unknown query type: %T", qt))
	}

	i := langx.Autoptr(langx.Clone(Info{
		Type:               qt,
		UntrustedENRs:      make([]enr.Record, 0, defaultUntrustedCapacity),
		Callback:           cb,
		distancesToRequest: defaultDistancesToRequest,
		log:                log.New(io.Discard, "", log.Flags()),
	}, options...))

	// every request must carry at least one distance to be valid.
	if i.distancesToRequest < 1 || i.distancesToRequest > MaxDistancesToRequest {
		panic(fmt.Sprintf("distances to request must be within [1, %d]: %d", MaxDistancesToRequest, i.distancesToRequest))
	}

	return i
}

func (t *Info) DistancesToRequest() int {
	return t.distancesToRequest
}

// AddUntrusted records discovered by a response, pending verification.
func (t *Info) AddUntrusted(records ...enr.Record) {
	t.UntrustedENRs = append(t.UntrustedENRs, records...)
}

// RPCRequest builds the request to send to peer. safe to call concurrently.
func (t *Info) RPCRequest(peer int256.T) rpc.RequestBody {
	switch qt := t.Type.(type) {
	case FindNode:
		return rpc.FindNode{Distances: t.distances(qt.Target, peer)}
	case FindValue:
		return rpc.FindValue{Key: qt.Key, Distances: t.distances(qt.Key, peer)}
	default:
		panic(fmt.Sprintf("unknown query type: %T", t.Type))
	}
}

func (t *Info) distances(target, peer int256.T) rpc.Distances {
	if d, ok := Log2Distances(target, peer, t.distancesToRequest); ok {
		return d
	}

	t.log.Println("peer is the lookup target, requesting distance 0", peer)
	return rpc.Distances{0}
}

// Key of the query target in the key space.
func (t *Info) Key() kbucket.Key[int256.T] {
	switch qt := t.Type.(type) {
	case FindNode:
		return kbucket.NewRaw(qt.Target, qt.Target)
	case FindValue:
		return kbucket.NewRaw(qt.Key, qt.Key)
	default:
		panic(fmt.Sprintf("unknown query type: %T", t.Type))
	}
}

// Closest k untrusted records to the target, one per node.
func (t *Info) Closest(k int) []enr.Record {
	c := NewClosest(t.Type.ID(), k)
	c.Add(t.UntrustedENRs...)
	return c.Records()
}

// Complete reports the records found by a FindNode query. must be called once.
// returns false if nobody was listening.
func (t *Info) Complete(records []enr.Record) bool {
	cb, ok := t.Callback.(FindNodeCallback)
	if !ok {
		panic(fmt.Sprintf("complete requires a findnode callback: %T", t.Callback))
	}

	if !cb.Sender.Send(records) {
		t.log.Println("findnode receiver closed, dropping", len(records), "records for", t.Type.ID())
		return false
	}

	return true
}

// DeliverValue reports a value found by a FindValue query, never blocks.
// returns false if nobody is listening anymore.
func (t *Info) DeliverValue(value []byte) bool {
	return t.deliver(ValueResult{Value: value})
}

// DeliverErr reports a failed FindValue request to peer, never blocks.
// err is wrapped in a FindValueError unless it already is one, panics on a nil err.
func (t *Info) DeliverErr(peer int256.T, err error) bool {
	if err == nil {
		panic(fmt.Sprintf("findvalue failure from %s without an error", peer))
	}

	var fve FindValueError
	if !errors.As(err, &fve) {
		err = FindValueError{Peer: peer, Cause: err}
	}

	return t.deliver(ValueResult{Err: err})
}

func (t *Info) deliver(r ValueResult) bool {
	cb, ok := t.Callback.(FindValueCallback)
	if !ok {
		panic(fmt.Sprintf("deliver requires a findvalue callback: %T", t.Callback))
	}

	if !cb.Sender.Send(r) {
		t.log.Println("findvalue receiver closed, dropping result for", t.Type.ID())
		return false
	}

	return true
}

// Finish closes the FindValue stream, the receiver stops once drained.
// no-op for FindNode queries.
func (t *Info) Finish() {
	switch cb := t.Callback.(type) {
	case FindValueCallback:
		cb.Sender.Close()
	case FindNodeCallback:
	default:
		panic(fmt.Sprintf("unknown query callback: %T", t.Callback))
	}
}

var _ TargetKey = (*Info)(nil)
