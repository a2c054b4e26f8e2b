package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/auth-service/internal/domain/repository"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
	assert.False(t, isUniqueViolation(nil))
}

func TestUniqueViolationField(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"constraint email", &pgconn.PgError{Code: "23505", ConstraintName: constraintUsersEmail}, repository.UniqueEmail},
		{"constraint documento", &pgconn.PgError{Code: "23505", ConstraintName: constraintUsersDocument}, repository.UniqueDocumentNumber},
		{"detalle email", &pgconn.PgError{Code: "23505", Detail: "Key (email)=(a@b.co) already exists."}, repository.UniqueEmail},
		{"detalle documento", &pgconn.PgError{Code: "23505", Detail: "Key (document_number)=(123) already exists."}, repository.UniqueDocumentNumber},
		{"otra restricción", &pgconn.PgError{Code: "23505", ConstraintName: "roles_name_key"}, ""},
		{"no es unicidad", &pgconn.PgError{Code: "23503", ConstraintName: constraintUsersEmail}, ""},
		{"texto con 23505", errors.New("ERROR 23505"), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, uniqueViolationField(tc.err))
		})
	}
}
