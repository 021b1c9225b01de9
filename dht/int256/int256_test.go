package int256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-lawrence/discv5/dht/int256"
	"github.com/james-lawrence/discv5/internal/dhttestx"
)

func withByte(idx int, v byte) int256.T {
	var b [32]byte
	b[idx] = v
	return int256.FromByteArray(b)
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, int256.Zero().BitLen())
	assert.Equal(t, 256, dhttestx.MaxID().BitLen())
	assert.Equal(t, 169, withByte(10, 1).BitLen())
	assert.Equal(t, 4, withByte(31, 8).BitLen())
	assert.Equal(t, 252, withByte(0, 8).BitLen())
	assert.Equal(t, 256, int256.Zero().LeadingZeros())
}

func TestDistance(t *testing.T) {
	a := int256.Random()
	b := int256.Random()
	require.Equal(t, a.Distance(b), b.Distance(a))
	require.True(t, a.Distance(a).IsZero())
	require.Equal(t, dhttestx.MaxID(), int256.Zero().Distance(dhttestx.MaxID()))
}

func TestCmpTo(t *testing.T) {
	target := int256.Zero()
	assert.Equal(t, -1, int256.CmpTo(target, withByte(31, 1), withByte(0, 1)))
	assert.Equal(t, 1, int256.CmpTo(target, withByte(0, 1), withByte(31, 1)))
	assert.Equal(t, 0, int256.CmpTo(target, withByte(5, 1), withByte(5, 1)))
}

func TestBits(t *testing.T) {
	var id int256.T
	id.SetBit(0, true)
	id.SetBit(255, true)
	assert.True(t, id.GetBit(0))
	assert.True(t, id.GetBit(255))
	assert.False(t, id.GetBit(1))
	assert.Equal(t, byte(0x80), id.Bytes()[0])
	assert.Equal(t, byte(0x01), id.Bytes()[31])

	id.SetBit(0, false)
	assert.False(t, id.GetBit(0))
}

func TestFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := int256.New("node")
		decoded, err := int256.FromBytes(id.Bytes())
		require.NoError(t, err)
		require.Equal(t, id, decoded)
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := int256.FromBytes(make([]byte, 20))
		require.Error(t, err)
	})
}
