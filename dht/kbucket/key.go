// Package kbucket defines the key space the routing table and query pool index by.
package kbucket

import (
	"fmt"

	"github.com/james-lawrence/discv5/dht/int256"
)

// MaxLog2Distance is the largest log2 distance between two keys.
const MaxLog2Distance = int256.Bits

// Key pairs a preimage with its position in the key space.
type Key[T any] struct {
	preimage T
	hash     int256.T
}

// NewRaw builds a key from an already computed key space position.
func NewRaw[T any](preimage T, hash int256.T) Key[T] {
	return Key[T]{preimage: preimage, hash: hash}
}

// FromNodeID node ids are used as is, they are already uniformly distributed.
func FromNodeID(id int256.T) Key[int256.T] {
	return NewRaw(id, id)
}

func (k Key[T]) Preimage() T {
	return k.preimage
}

func (k Key[T]) Hash() int256.T {
	return k.hash
}

// Distance in the XOR metric.
func (k Key[T]) Distance(o Key[T]) int256.T {
	return k.hash.Distance(o.hash)
}

// Log2Distance is the bit position of the highest differing bit, in [1, 256].
// false when both keys occupy the same position.
func (k Key[T]) Log2Distance(o Key[T]) (uint64, bool) {
	d := k.Distance(o).BitLen()
	if d == 0 {
		return 0, false
	}

	return uint64(d), true
}

func (k Key[T]) Equal(o Key[T]) bool {
	return k.hash == o.hash
}

func (k Key[T]) String() string {
	return fmt.Sprintf("%v (%s)", k.preimage, k.hash)
}
