// Package enr describes the signed node records exchanged during lookups.
// records are carried as is, signature verification happens elsewhere.
package enr

import (
	"fmt"
	"net/netip"

	"github.com/james-lawrence/discv5/dht/int256"
	"github.com/james-lawrence/discv5/dht/kbucket"
)

type Record struct {
	ID int256.T
	// Seq is bumped every time the node republishes its record.
	Seq       uint64
	Addr      netip.AddrPort
	Signature []byte
}

func (t Record) Key() kbucket.Key[int256.T] {
	return kbucket.FromNodeID(t.ID)
}

// Newer reports if t supersedes o. only meaningful for the same node.
func (t Record) Newer(o Record) bool {
	return t.Seq > o.Seq
}

func (t Record) String() string {
	return fmt.Sprintf("%s@%s seq(%d)", t.ID, t.Addr, t.Seq)
}
