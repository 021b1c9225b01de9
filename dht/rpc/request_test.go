package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-lawrence/discv5/dht/int256"
)

func TestDistancesValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, Distances{0}.Validate())
		require.NoError(t, Distances{252, 253, 251, 254, 250, 255, 249, 256, 248}.Validate())
	})

	t.Run("empty", func(t *testing.T) {
		require.ErrorIs(t, Distances{}.Validate(), ErrNoDistances)
		require.ErrorIs(t, Distances(nil).Validate(), ErrNoDistances)
	})

	t.Run("out of range", func(t *testing.T) {
		require.ErrorIs(t, Distances{256, 257}.Validate(), ErrDistanceOutOfRange)
	})

	t.Run("duplicates", func(t *testing.T) {
		require.ErrorIs(t, Distances{4, 5, 4}.Validate(), ErrDuplicateDistance)
	})
}

func TestDistancesBitmap(t *testing.T) {
	d := Distances{169, 170, 168}
	m := d.Bitmap()
	assert.EqualValues(t, 3, m.GetCardinality())
	assert.True(t, m.Contains(168))
	assert.False(t, m.Contains(171))
	assert.True(t, d.Contains(170))
	assert.False(t, d.Contains(0))
}

func TestRequestBody(t *testing.T) {
	var body RequestBody = FindNode{Distances: Distances{1, 2}}
	assert.Equal(t, MethodFindNode, body.Method())
	assert.Equal(t, Distances{1, 2}, body.RequestedDistances())
	assert.Equal(t, "findnode[1 2]", body.(FindNode).String())

	key := int256.New("key")
	body = FindValue{Key: key, Distances: Distances{3}}
	assert.Equal(t, MethodFindValue, body.Method())
	assert.Equal(t, Distances{3}, body.RequestedDistances())
	assert.Contains(t, body.(FindValue).String(), key.String())
}
