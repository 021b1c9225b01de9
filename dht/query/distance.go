package query

import (
	"fmt"

	"github.com/james-lawrence/discv5/dht/int256"
	"github.com/james-lawrence/discv5/dht/kbucket"
	"github.com/james-lawrence/discv5/dht/rpc"
)

// MaxDistancesToRequest bounds the distances requested per peer.
const MaxDistancesToRequest = 127

// Log2Distances calculates the distances to request from peer for target.
//
// The exact log2 distance between peer and target comes first, followed by the
// adjacent distances alternating above and below it. e.g. a distance of 12
// produces [12, 13, 11, 14, 10, ...]. Distances outside [0, 256] are skipped,
// once one side runs out the other side fills the remainder.
//
// returns false when target and peer share the same position in the key space.
func Log2Distances(target, peer int256.T, size int) (rpc.Distances, bool) {
	if size < 0 || size > MaxDistancesToRequest {
		// the remaining distances could never fill the request.
		panic(fmt.Sprintf("distances to request must be within [0, %d]: %d", MaxDistancesToRequest, size))
	}

	distance, ok := kbucket.FromNodeID(peer).Log2Distance(kbucket.FromNodeID(target))
	if !ok {
		return nil, false
	}

	result := make(rpc.Distances, 0, size+1)
	result = append(result, distance)
	for difference := uint64(1); len(result) < size; difference++ {
		if distance+difference <= kbucket.MaxLog2Distance {
			result = append(result, distance+difference)
		}

		if len(result) < size && difference <= distance {
			result = append(result, distance-difference)
		}
	}

	return result[:size], true
}
