package auth_test

import (
	"testing"
	"time"

	"go-jobportal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := auth.NewTokenManager("secret-a", time.Hour)

	token, err := m.Issue(42)
	assert.NoError(t, err)

	id, err := m.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTokenFailuresCollapse(t *testing.T) {
	m := auth.NewTokenManager("secret-a", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenManager("secret-b", time.Hour)
		token, _ := other.Issue(42)

		_, err := m.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := auth.NewTokenManager("secret-a", -time.Minute)
		token, _ := expired.Issue(42)

		_, err := m.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
