package enr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/james-lawrence/discv5/dht/int256"
)

func TestRecord(t *testing.T) {
	id := int256.New("node")
	a := Record{ID: id, Seq: 1, Addr: netip.MustParseAddrPort("127.0.0.1:9000")}
	b := Record{ID: id, Seq: 2, Addr: netip.MustParseAddrPort("127.0.0.1:9001")}

	require.True(t, b.Newer(a))
	require.False(t, a.Newer(b))
	require.Equal(t, id, a.Key().Preimage())
	require.Contains(t, a.String(), "127.0.0.1:9000")
}
