package errorsx_test

import (
	"fmt"
	"testing"

	"github.com/james-lawrence/discv5/internal/errorsx"
	"github.com/stretchr/testify/require"
)

func TestFormatting(t *testing.T) {
	require.Equal(t, "derp: 5", fmt.Sprintf("%s", errorsx.Errorf("derp: %d", 5)))
	require.Equal(t, "failed: derp", fmt.Sprintf("%s", errorsx.Wrap(fmt.Errorf("derp"), "failed")))
	require.Equal(t, "failed: derp", fmt.Sprintf("%v", errorsx.Wrap(fmt.Errorf("derp"), "failed")))
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errorsx.Wrap(nil, "failed"))
	})

	t.Run("preserves the cause", func(t *testing.T) {
		cause := errorsx.String("derp")
		require.ErrorIs(t, errorsx.Wrap(cause, "failed"), cause)
		require.ErrorIs(t, errorsx.Errorf("failed: %w", cause), cause)
	})
}
