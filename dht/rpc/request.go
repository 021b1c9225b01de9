// Package rpc defines the request bodies a lookup sends to a peer.
// encoding them for the wire is the transport's concern.
package rpc

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/james-lawrence/discv5/dht/int256"
	"github.com/james-lawrence/discv5/dht/kbucket"
	"github.com/james-lawrence/discv5/internal/bitmapx"
	"github.com/james-lawrence/discv5/internal/errorsx"
)

const (
	ErrNoDistances        = errorsx.String("no distances requested")
	ErrDistanceOutOfRange = errorsx.String("distance out of range")
	ErrDuplicateDistance  = errorsx.String("duplicate distance")
)

type Method string

const (
	MethodFindNode  Method = "findnode"
	MethodFindValue Method = "findvalue"
)

// Distances is the ordered list of log2 distances requested from a peer.
type Distances []uint64

// Validate the distances are non-empty, unique and within [0, 256].
func (t Distances) Validate() error {
	if len(t) == 0 {
		return ErrNoDistances
	}

	seen := roaring.New()
	for _, d := range t {
		if d > kbucket.MaxLog2Distance {
			return errorsx.Wrap(ErrDistanceOutOfRange, fmt.Sprintf("%d", d))
		}

		if !seen.CheckedAdd(uint32(d)) {
			return errorsx.Wrap(ErrDuplicateDistance, fmt.Sprintf("%d", d))
		}
	}

	return nil
}

// Bitmap of the requested distances.
func (t Distances) Bitmap() *roaring.Bitmap {
	return bitmapx.From([]uint64(t)...)
}

// Contains reports if d was requested, used to check the records a peer responds with.
func (t Distances) Contains(d uint64) bool {
	return slices.Contains(t, d)
}

// RequestBody is either FindNode or FindValue.
type RequestBody interface {
	Method() Method
	RequestedDistances() Distances
	requestBody()
}

// FindNode asks a peer for the records in its buckets at the given distances.
type FindNode struct {
	Distances Distances
}

func (FindNode) Method() Method {
	return MethodFindNode
}

func (t FindNode) RequestedDistances() Distances {
	return t.Distances
}

func (t FindNode) String() string {
	return fmt.Sprintf("%s%v", MethodFindNode, []uint64(t.Distances))
}

func (FindNode) requestBody() {}

// FindValue asks a peer for the value stored under Key, falling back to records
// at the given distances when the peer does not hold it.
type FindValue struct {
	Key       int256.T
	Distances Distances
}

func (FindValue) Method() Method {
	return MethodFindValue
}

func (t FindValue) RequestedDistances() Distances {
	return t.Distances
}

func (t FindValue) String() string {
	return fmt.Sprintf("%s(%s)%v", MethodFindValue, t.Key, []uint64(t.Distances))
}

func (FindValue) requestBody() {}

var (
	_ RequestBody = FindNode{}
	_ RequestBody = FindValue{}
)
