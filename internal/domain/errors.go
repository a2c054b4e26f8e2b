package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorKind es el conjunto cerrado de tipos de error del núcleo.
type ErrorKind int

const (
	KindFieldRequired ErrorKind = iota + 1
	KindInvalidFormat
	KindInvalidAge
	KindInvalidSalary
	KindEmailAlreadyExists
	KindDocumentAlreadyExists
	KindNotFound
	KindInvalidCredentials
	KindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case KindFieldRequired:
		return "field_required"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidAge:
		return "invalid_age"
	case KindInvalidSalary:
		return "invalid_salary"
	case KindEmailAlreadyExists:
		return "email_exists"
	case KindDocumentAlreadyExists:
		return "document_exists"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// SalaryBound indica qué límite del salario se violó.
type SalaryBound string

const (
	SalaryTooLow  SalaryBound = "too_low"
	SalaryTooHigh SalaryBound = "too_high"
)

// Entidades para NotFound.
const (
	EntityUser = "user"
	EntityRole = "role"
)

// Error es el error tipado del dominio. Solo los campos relevantes para Kind vienen poblados.
type Error struct {
	Kind   ErrorKind
	Field  string          // FieldRequired, InvalidFormat
	Reason string          // InvalidFormat, Configuration
	Entity string          // NotFound
	Key    string          // NotFound, EmailAlreadyExists, DocumentAlreadyExists
	Age    int             // InvalidAge
	Bound  SalaryBound     // InvalidSalary
	Salary decimal.Decimal // InvalidSalary
	Err    error           // causa opcional
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindFieldRequired:
		return fmt.Sprintf("el campo '%s' es requerido", e.Field)
	case KindInvalidFormat:
		return fmt.Sprintf("el campo '%s' tiene un formato inválido: %s", e.Field, e.Reason)
	case KindInvalidAge:
		return fmt.Sprintf("el usuario debe tener al menos %d años, pero tiene %d", MinimumAge, e.Age)
	case KindInvalidSalary:
		if e.Bound == SalaryTooHigh {
			return fmt.Sprintf("el salario base no debe superar %s, pero fue %s", MaxBaseSalary.StringFixed(2), e.Salary.String())
		}
		return fmt.Sprintf("el salario base debe ser mayor o igual a %s, pero fue %s", MinBaseSalary.String(), e.Salary.String())
	case KindEmailAlreadyExists:
		return fmt.Sprintf("el email '%s' ya está registrado", e.Key)
	case KindDocumentAlreadyExists:
		return fmt.Sprintf("el documento '%s' ya está registrado", e.Key)
	case KindNotFound:
		return fmt.Sprintf("%s '%s' no encontrado", entityLabel(e.Entity), e.Key)
	case KindInvalidCredentials:
		return "credenciales inválidas"
	case KindConfiguration:
		return "error de configuración: " + e.Reason
	default:
		return "error de dominio desconocido"
	}
}

// Is compara por Kind, de modo que errors.Is(err, domain.ErrEmailAlreadyExists) funcione.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Unwrap() error { return e.Err }

func entityLabel(entity string) string {
	switch entity {
	case EntityUser:
		return "usuario"
	case EntityRole:
		return "rol"
	default:
		return entity
	}
}

// Centinelas por tipo, para comparar con errors.Is.
var (
	ErrFieldRequired         = &Error{Kind: KindFieldRequired}
	ErrInvalidFormat         = &Error{Kind: KindInvalidFormat}
	ErrInvalidAge            = &Error{Kind: KindInvalidAge}
	ErrInvalidSalary         = &Error{Kind: KindInvalidSalary}
	ErrEmailAlreadyExists    = &Error{Kind: KindEmailAlreadyExists}
	ErrDocumentAlreadyExists = &Error{Kind: KindDocumentAlreadyExists}
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrInvalidCredentials    = &Error{Kind: KindInvalidCredentials}
	ErrConfiguration         = &Error{Kind: KindConfiguration}
)

// Reglas de elegibilidad.
const MinimumAge = 18

var (
	MinBaseSalary = decimal.Zero
	MaxBaseSalary = decimal.NewFromInt(15_000_000)
)

func FieldRequired(field string) *Error {
	return &Error{Kind: KindFieldRequired, Field: field}
}

func InvalidFormat(field, reason string) *Error {
	return &Error{Kind: KindInvalidFormat, Field: field, Reason: reason}
}

func InvalidAge(age int) *Error {
	return &Error{Kind: KindInvalidAge, Age: age}
}

func InvalidSalary(bound SalaryBound, salary decimal.Decimal) *Error {
	return &Error{Kind: KindInvalidSalary, Bound: bound, Salary: salary}
}

func EmailAlreadyExists(email string) *Error {
	return &Error{Kind: KindEmailAlreadyExists, Key: email}
}

func DocumentAlreadyExists(document string) *Error {
	return &Error{Kind: KindDocumentAlreadyExists, Key: document}
}

func NotFound(entity, key string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Key: key}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials}
}

func Configuration(reason string, cause error) *Error {
	return &Error{Kind: KindConfiguration, Reason: reason, Err: cause}
}

// AsError extrae el *Error de dominio de la cadena, si existe.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
