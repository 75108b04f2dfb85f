package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthResult(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		result := Resolved(NewCtx(9))

		ctx, err := result.Unwrap()
		assert.NoError(t, err)
		assert.True(t, result.OK())
		assert.Equal(t, uint64(9), ctx.UserID)
	})

	t.Run("failed", func(t *testing.T) {
		result := Failed(ErrNoAuthTokenCookie)

		ctx, err := result.Unwrap()
		assert.ErrorIs(t, err, ErrNoAuthTokenCookie)
		assert.False(t, result.OK())
		assert.Equal(t, Ctx{}, ctx)
	})
}
