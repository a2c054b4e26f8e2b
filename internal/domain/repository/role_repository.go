package repository

import (
	"context"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// RoleRepository define el puerto de lectura de roles (datos de referencia).
// FindByName y FindByID devuelven (nil, nil) cuando el rol no existe.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	FindByID(ctx context.Context, id string) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
}
