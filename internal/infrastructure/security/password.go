// Package security implementa los puertos de hash de contraseñas y emisión de tokens.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/auth-service/internal/application/auth"
)

var _ auth.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher hashea contraseñas con bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cost <= 0 usa bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Matches(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
