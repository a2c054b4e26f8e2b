package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// FindByName busca un rol por nombre exacto.
func (r *RoleRepo) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	return r.findOne(ctx, `SELECT id, name, description, created_at FROM roles WHERE name = $1`, name)
}

// FindByID busca un rol por ID. Un ID que no es UUID se trata como inexistente.
func (r *RoleRepo) FindByID(ctx context.Context, id string) (*entity.Role, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.findOne(ctx, `SELECT id, name, description, created_at FROM roles WHERE id = $1`, id)
}

// List lista los roles ordenados por nombre.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, description, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// EnsureRole crea el rol si no existe (idempotente) y devuelve el registro vigente.
// Lo usa cmd/seed_roles; el núcleo no escribe roles.
func (r *RoleRepo) EnsureRole(ctx context.Context, name, description string) (*entity.Role, error) {
	query := `
		INSERT INTO roles (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, uuid.New().String(), name, description, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("ensure role %s: %w", name, err)
	}
	role, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("ensure role %s: no quedó registrado", name)
	}
	return role, nil
}

func (r *RoleRepo) findOne(ctx context.Context, query string, arg string) (*entity.Role, error) {
	role, err := scanRole(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func scanRole(row pgxScanner) (*entity.Role, error) {
	var role entity.Role
	if err := row.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt); err != nil {
		return nil, err
	}
	return &role, nil
}
