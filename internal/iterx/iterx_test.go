package iterx_test

import (
	"context"
	"iter"
	"slices"
	"testing"

	"github.com/james-lawrence/discv5/internal/iterx"
	"github.com/stretchr/testify/require"
)

type fixed []int

func (t fixed) Each(ctx context.Context) iter.Seq[int] {
	return slices.Values(t)
}

func (t fixed) Err() error {
	return nil
}

func TestCollect(t *testing.T) {
	r, err := iterx.Collect[int](t.Context(), fixed{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, r)
}
