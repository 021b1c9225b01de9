// Package dhttestx generates identifiers at known positions in the key space for tests.
package dhttestx

import (
	"fmt"

	"github.com/james-lawrence/discv5/dht/int256"
)

// MaxID is the identifier with every bit set.
func MaxID() int256.T {
	var b [32]byte
	for i := range b {
		b[i] = 0xFF
	}
	return int256.FromByteArray(b)
}

// RandomAtDistance generates an identifier whose log2 distance from root is d.
func RandomAtDistance(root int256.T, d uint64) int256.T {
	if d == 0 || d > int256.Bits {
		panic(fmt.Sprintf("log2 distance %d out of range [1, %d]", d, int256.Bits))
	}

	id := int256.Random()
	// keep the prefix shared with root, flip the bit at the distance, randomize the rest.
	flip := int(int256.Bits - d)
	for i := 0; i < flip; i++ {
		id.SetBit(i, root.GetBit(i))
	}
	id.SetBit(flip, !root.GetBit(flip))

	return id
}
