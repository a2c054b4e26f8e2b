package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
)

// RoleUseCase consultas sobre roles (datos de referencia).
type RoleUseCase struct {
	repo repository.RoleRepository
}

func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// List devuelve todos los roles.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, *entityToRoleResponse(r))
	}
	return out, nil
}

// FindByName busca un rol por nombre exacto. Nombre vacío = FieldRequired(name).
func (uc *RoleUseCase) FindByName(ctx context.Context, name string) (*dto.RoleResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.FieldRequired("name")
	}
	role, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NotFound(domain.EntityRole, name)
	}
	return entityToRoleResponse(role), nil
}

func entityToRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}
