package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
)

// CredentialVerifier resuelve la identidad de un usuario por email.
// No compara contraseñas: eso lo hace el login con el PasswordHasher.
type CredentialVerifier struct {
	users repository.UserRepository
}

func NewCredentialVerifier(users repository.UserRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// VerifyCredentials exige email y password no vacíos y busca el usuario por email.
// Un email desconocido devuelve InvalidCredentials.
func (v *CredentialVerifier) VerifyCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.FieldRequired("email")
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.FieldRequired("password")
	}
	return v.find(ctx, email)
}

// ResolveSubject forma de un argumento, usada al revalidar el token de cada petición.
func (v *CredentialVerifier) ResolveSubject(ctx context.Context, email string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.FieldRequired("email")
	}
	return v.find(ctx, email)
}

func (v *CredentialVerifier) find(ctx context.Context, email string) (*entity.User, error) {
	user, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.InvalidCredentials()
	}
	return user, nil
}
