package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/infrastructure/security"
	"github.com/jhoicas/auth-service/pkg/config"
	"github.com/jhoicas/auth-service/pkg/jwt"
)

func TestBcryptHasher(t *testing.T) {
	h := security.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)
	assert.True(t, h.Matches("secreto123", hash))
	assert.False(t, h.Matches("otro", hash))
	assert.False(t, h.Matches("secreto123", "no-es-un-hash"))
}

func TestJWTIssuer_Issue(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Expiration: 30, Issuer: "auth-service"}
	u := entity.User{ID: "u-1", Email: "juan.perez@email.com"}.WithRole(entity.Role{Name: entity.RoleAdvisor})

	token, ttl, err := security.NewJWTIssuer(cfg).Issue(u)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)
	claims, err := jwt.Parse(cfg.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "juan.perez@email.com", claims.Email)
	assert.Equal(t, entity.RoleAdvisor, claims.Role)
	assert.Equal(t, "auth-service", claims.Issuer)
}

func TestJWTIssuer_SinSecreto(t *testing.T) {
	_, _, err := security.NewJWTIssuer(config.JWTConfig{Expiration: 30}).Issue(entity.User{Email: "a@b.co"})
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
