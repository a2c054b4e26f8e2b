package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const selectUser = `
	SELECT u.id, u.document_number, u.name, u.lastname, u.birthday_date, u.address, u.phone_number,
	       u.base_salary, u.email, u.password_hash, u.created_at, u.updated_at,
	       r.id, r.name, r.description, r.created_at
	FROM users u
	JOIN roles r ON r.id = u.role_id`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q  Querier
	tx *TxRunner
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{q: pool, tx: NewTxRunner(pool)}
}

// ExistsByEmail indica si ya hay un usuario con ese email.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

// ExistsByDocumentNumber indica si ya hay un usuario con ese documento.
func (r *UserRepo) ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE document_number = $1)`, documentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by document: %w", err)
	}
	return exists, nil
}

// Save inserta el usuario y lo relee con su rol en la misma transacción.
// El ID y las marcas de tiempo se asignan aquí.
func (r *UserRepo) Save(ctx context.Context, user entity.User) (*entity.User, error) {
	if user.Role == nil {
		return nil, errors.New("save user: el usuario no tiene rol")
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	var saved *entity.User
	err := r.tx.Run(ctx, func(q Querier) error {
		query := `
			INSERT INTO users (id, document_number, name, lastname, birthday_date, address, phone_number,
			                   base_salary, email, password_hash, role_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		_, err := q.Exec(ctx, query,
			id, user.DocumentNumber, user.Name, user.Lastname, user.BirthdayDate, user.Address, user.PhoneNumber,
			user.BaseSalary, user.Email, user.PasswordHash, user.Role.ID, now, now,
		)
		if err != nil {
			if field := uniqueViolationField(err); field != "" {
				return &repository.UniqueViolationError{Field: field, Err: err}
			}
			return fmt.Errorf("insert user: %w", err)
		}
		saved, err = scanUser(q.QueryRow(ctx, selectUser+` WHERE u.id = $1`, id))
		if err != nil {
			return fmt.Errorf("read back user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, selectUser+` WHERE u.email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// FindByDocumentNumber obtiene un usuario por número de documento.
func (r *UserRepo) FindByDocumentNumber(ctx context.Context, documentNumber string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, selectUser+` WHERE u.document_number = $1`, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by document: %w", err)
	}
	return u, nil
}

// List lista todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, selectUser+` ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUser(row pgxScanner) (*entity.User, error) {
	var u entity.User
	var role entity.Role
	err := row.Scan(
		&u.ID, &u.DocumentNumber, &u.Name, &u.Lastname, &u.BirthdayDate, &u.Address, &u.PhoneNumber,
		&u.BaseSalary, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
		&role.ID, &role.Name, &role.Description, &role.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = &role
	return &u, nil
}
