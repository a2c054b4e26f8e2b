package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/auth-service/internal/domain/repository"
)

// Querier abstrae pgxpool.Pool y pgx.Tx para que los repos funcionen dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar las funciones scan*.
type pgxScanner interface {
	Scan(dest ...any) error
}

// Nombres de las restricciones únicas de users (sql/schema.sql).
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersDocument = "users_document_number_key"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueViolationField traduce la restricción violada al campo de repository.
// Devuelve "" si el error no es una violación de unicidad conocida.
func uniqueViolationField(err error) string {
	if !isUniqueViolation(err) {
		return ""
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	switch {
	case pgErr.ConstraintName == constraintUsersEmail:
		return repository.UniqueEmail
	case pgErr.ConstraintName == constraintUsersDocument:
		return repository.UniqueDocumentNumber
	case strings.Contains(pgErr.Detail, "(email)"):
		return repository.UniqueEmail
	case strings.Contains(pgErr.Detail, "(document_number)"):
		return repository.UniqueDocumentNumber
	default:
		return ""
	}
}
