package query

import "github.com/james-lawrence/discv5/dht/int256"

// QueryType is the intent of a lookup, either FindNode or FindValue.
type QueryType interface {
	// ID being looked up, fixed for the lifetime of the query.
	ID() int256.T
	queryType()
}

// FindNode locates the records closest to Target. reported once when finished.
type FindNode struct {
	Target int256.T
}

func (t FindNode) ID() int256.T {
	return t.Target
}

func (FindNode) queryType() {}

// FindValue locates the value stored under Key. values are reported as they are found.
type FindValue struct {
	Key int256.T
}

func (t FindValue) ID() int256.T {
	return t.Key
}

func (FindValue) queryType() {}

var (
	_ QueryType = FindNode{}
	_ QueryType = FindValue{}
)
