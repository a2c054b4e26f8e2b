package security

import (
	"time"

	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/pkg/config"
	"github.com/jhoicas/auth-service/pkg/jwt"
)

var _ auth.TokenIssuer = (*JWTIssuer)(nil)

// JWTIssuer emite tokens HS256 con pkg/jwt.
type JWTIssuer struct {
	secret string
	issuer string
	ttl    time.Duration
}

func NewJWTIssuer(cfg config.JWTConfig) *JWTIssuer {
	return &JWTIssuer{secret: cfg.Secret, issuer: cfg.Issuer, ttl: cfg.TTL()}
}

// Issue firma un token para el usuario; expiresIn es la vigencia configurada.
func (i *JWTIssuer) Issue(user entity.User) (string, time.Duration, error) {
	token, _, err := jwt.Generate(i.secret, user.ID, user.Email, user.RoleName(), i.issuer, i.ttl)
	if err != nil {
		return "", 0, err
	}
	return token, i.ttl, nil
}
