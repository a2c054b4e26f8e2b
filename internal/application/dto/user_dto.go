package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// DateLayout formato de fechas (birthday_date) en la API.
const DateLayout = "2006-01-02"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Las reglas de negocio (requeridos, email, edad, salario) las aplica el núcleo primero;
// los tags validate solo cubren la forma de campos que el núcleo no revisa (CheckShape).
type CreateUserRequest struct {
	DocumentNumber string              `json:"document_number" validate:"max=30"`
	Name           string              `json:"name" validate:"max=100"`
	Lastname       string              `json:"lastname" validate:"max=100"`
	BirthdayDate   string              `json:"birthday_date" example:"1990-05-15"`
	Address        string              `json:"address" validate:"max=255"`
	PhoneNumber    string              `json:"phone_number" validate:"omitempty,max=20"`
	BaseSalary     decimal.NullDecimal `json:"base_salary" swaggertype:"number" example:"5000000"`
	Email          string              `json:"email" validate:"max=150"`
	Password       string              `json:"password" validate:"required,min=8,max=72"`
	RoleID         string              `json:"role_id" validate:"omitempty,uuid"`
}

// ToCandidate convierte la petición en un usuario candidato (sin hash ni rol).
// Con una fecha mal formada devuelve igual el candidato, sin fecha, junto al error.
func (r CreateUserRequest) ToCandidate() (entity.User, error) {
	u := entity.User{
		DocumentNumber: strings.TrimSpace(r.DocumentNumber),
		Name:           r.Name,
		Lastname:       r.Lastname,
		Address:        r.Address,
		PhoneNumber:    r.PhoneNumber,
		BaseSalary:     r.BaseSalary,
		Email:          strings.TrimSpace(r.Email),
	}
	if s := strings.TrimSpace(r.BirthdayDate); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return u, domain.InvalidFormat("birthday_date", "se espera AAAA-MM-DD")
		}
		u.BirthdayDate = &t
	}
	return u, nil
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string              `json:"id"`
	DocumentNumber string              `json:"document_number"`
	Name           string              `json:"name"`
	Lastname       string              `json:"lastname"`
	BirthdayDate   *string             `json:"birthday_date"`
	Address        string              `json:"address"`
	PhoneNumber    string              `json:"phone_number"`
	BaseSalary     decimal.NullDecimal `json:"base_salary" swaggertype:"number"`
	Email          string              `json:"email"`
	Role           *RoleResponse       `json:"role"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" example:"juan.perez@email.com"`
	Password string `json:"password"`
}

// LoginUser resumen del usuario autenticado.
type LoginUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"` // segundos
	User        LoginUser `json:"user"`
}
