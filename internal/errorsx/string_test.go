package errorsx_test

import (
	"errors"
	"testing"

	"github.com/james-lawrence/discv5/internal/errorsx"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Run("stdlib interopt", func(t *testing.T) {
		var (
			local errorsx.String
			cause = errorsx.String("value not found")
		)

		assert.True(t, errors.As(cause, &local))
		assert.Equal(t, cause, local)
		assert.True(t, errors.Is(cause, local))
	})

	t.Run("works with wrap", func(t *testing.T) {
		var (
			local   errorsx.String
			cause   = errorsx.String("value not found")
			wrapped = errorsx.Wrap(cause, "findvalue")
		)

		assert.True(t, errors.As(wrapped, &local))
		assert.True(t, errors.Is(wrapped, cause))
		assert.Equal(t, cause, local)
	})
}
