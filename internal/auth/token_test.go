package auth

import (
	"testing"
	"time"

	"github.com/bagdasarian/project-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	t.Run("выпуск и разбор токена", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Hour)

		token, err := issuer.Issue(domain.Actor{ID: "u1", Role: domain.RoleManager})
		require.NoError(t, err)

		actor, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", actor.ID)
		assert.Equal(t, domain.RoleManager, actor.Role)
	})

	t.Run("ошибка: чужой секрет", func(t *testing.T) {
		token, err := NewTokenIssuer("secret", time.Hour).Issue(domain.Actor{ID: "u1", Role: domain.RoleAdmin})
		require.NoError(t, err)

		_, err = NewTokenIssuer("other", time.Hour).Parse(token)
		assert.Error(t, err)
	})

	t.Run("ошибка: токен истек", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Minute)
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

		token, err := issuer.Issue(domain.Actor{ID: "u1", Role: domain.RoleMember})
		require.NoError(t, err)

		issuer.now = time.Now
		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("ошибка: неизвестная роль", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Hour)
		token, err := issuer.Issue(domain.Actor{ID: "u1", Role: domain.Role("Owner")})
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("ошибка: мусор вместо токена", func(t *testing.T) {
		_, err := NewTokenIssuer("secret", time.Hour).Parse("not-a-token")
		assert.Error(t, err)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
