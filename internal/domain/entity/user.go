package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// User representa un usuario candidato o persistido.
// ID vacío = candidato aún no persistido.
type User struct {
	ID             string
	DocumentNumber string
	Name           string
	Lastname       string
	BirthdayDate   *time.Time // opcional; si existe se valida la edad mínima
	Address        string
	PhoneNumber    string
	BaseSalary     decimal.NullDecimal
	Email          string
	PasswordHash   string // hash bcrypt, nunca texto plano
	Role           *Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WithRole devuelve una copia del usuario con el rol adjunto; el receptor no se modifica.
func (u User) WithRole(role Role) User {
	u.Role = &role
	return u
}

// HasRole indica si el usuario ya trae un rol.
func (u User) HasRole() bool {
	return u.Role != nil
}

// RoleName devuelve el nombre del rol o "" si no tiene.
func (u User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// FullName nombre y apellido separados por espacio.
func (u User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Lastname)
}
