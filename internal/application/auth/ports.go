package auth

import (
	"time"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// PasswordHasher abstrae el algoritmo de hash de contraseñas (bcrypt en infraestructura).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(plain, hash string) bool
}

// TokenIssuer emite el token de acceso para un usuario autenticado.
type TokenIssuer interface {
	Issue(user entity.User) (token string, expiresIn time.Duration, err error)
}

// RegistrationObserver recibe el resultado de cada registro (métricas).
// result es "created", el nombre del tipo de error de dominio o "error".
type RegistrationObserver interface {
	ObserveRegistration(result string)
}

type nopObserver struct{}

func (nopObserver) ObserveRegistration(string) {}
