package query

import (
	"github.com/google/btree"

	"github.com/james-lawrence/discv5/dht/enr"
	"github.com/james-lawrence/discv5/dht/int256"
)

// Closest tracks the k records nearest to a target, one record per node id.
type Closest struct {
	k    int
	less btree.LessFunc[enr.Record]
	tree *btree.BTreeG[enr.Record]
}

// NewClosest k <= 0 keeps every record.
func NewClosest(target int256.T, k int) *Closest {
	// distance to a fixed target is unique per id, so it fully orders the records.
	less := func(a, b enr.Record) bool {
		return int256.CmpTo(target, a.ID, b.ID) < 0
	}

	return &Closest{
		k:    k,
		less: less,
		tree: btree.NewG(2, less),
	}
}

// Add the records, returns the number of nodes that were not previously tracked.
// a record replaces the tracked record of the same node when it is newer.
func (t *Closest) Add(records ...enr.Record) (added int) {
	for _, r := range records {
		if existing, ok := t.tree.Get(r); ok {
			if r.Newer(existing) {
				t.tree.ReplaceOrInsert(r)
			}
			continue
		}

		if t.k > 0 && t.tree.Len() >= t.k {
			if farthest, _ := t.tree.Max(); !t.less(r, farthest) {
				continue
			}
		}

		t.tree.ReplaceOrInsert(r)
		if t.k > 0 && t.tree.Len() > t.k {
			t.tree.DeleteMax()
		}
		added++
	}

	return added
}

func (t *Closest) Len() int {
	return t.tree.Len()
}

// Records ordered from closest to farthest.
func (t *Closest) Records() []enr.Record {
	ret := make([]enr.Record, 0, t.tree.Len())
	t.tree.Ascend(func(r enr.Record) bool {
		ret = append(ret, r)
		return true
	})
	return ret
}
