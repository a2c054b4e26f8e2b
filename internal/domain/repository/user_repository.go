package repository

import (
	"context"
	"fmt"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error)
	// Save persiste el candidato en una transacción y devuelve el registro con ID y rol.
	// Debe reportar violaciones de unicidad como *UniqueViolationError.
	Save(ctx context.Context, user entity.User) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByDocumentNumber(ctx context.Context, documentNumber string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

// Campos con restricción única en users.
const (
	UniqueEmail          = "email"
	UniqueDocumentNumber = "document_number"
)

// UniqueViolationError lo devuelve Save cuando la restricción única de la base
// rechaza la escritura (carrera entre la verificación y el guardado).
type UniqueViolationError struct {
	Field string // UniqueEmail | UniqueDocumentNumber
	Err   error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("violación de unicidad en %s: %v", e.Field, e.Err)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }
