// Package validation contiene las reglas de negocio que un usuario candidato
// debe cumplir antes de tocar almacenamiento. Es puro: sin I/O.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// emailPattern: parte local de letras, dígitos y +_.- seguida de @ y un dominio no vacío.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// rule evalúa una regla sobre el candidato; today es la fecha de referencia para la edad.
type rule func(u entity.User, today time.Time) error

// UserValidator evalúa las reglas en orden fijo y se detiene en la primera que falla.
type UserValidator struct {
	now   func() time.Time
	rules []rule
}

// NewUserValidator construye el validador. now == nil usa time.Now.
func NewUserValidator(now func() time.Time) *UserValidator {
	if now == nil {
		now = time.Now
	}
	return &UserValidator{
		now: now,
		rules: []rule{
			requireName,
			requireLastname,
			requireEmail,
			requireBaseSalary,
			validateEmailFormat,
			validateAge,
			validateSalaryFloor,
			validateSalaryCeiling,
		},
	}
}

// Validate devuelve nil si el candidato es válido o el *domain.Error de la primera regla rota.
func (v *UserValidator) Validate(u entity.User) error {
	today := v.now()
	for _, r := range v.rules {
		if err := r(u, today); err != nil {
			return err
		}
	}
	return nil
}

func requireName(u entity.User, _ time.Time) error {
	if isBlank(u.Name) {
		return domain.FieldRequired("name")
	}
	return nil
}

func requireLastname(u entity.User, _ time.Time) error {
	if isBlank(u.Lastname) {
		return domain.FieldRequired("lastname")
	}
	return nil
}

func requireEmail(u entity.User, _ time.Time) error {
	if isBlank(u.Email) {
		return domain.FieldRequired("email")
	}
	return nil
}

func requireBaseSalary(u entity.User, _ time.Time) error {
	if !u.BaseSalary.Valid {
		return domain.FieldRequired("base_salary")
	}
	return nil
}

func validateEmailFormat(u entity.User, _ time.Time) error {
	if !emailPattern.MatchString(u.Email) {
		return domain.InvalidFormat("email", "se espera usuario@dominio")
	}
	return nil
}

func validateAge(u entity.User, today time.Time) error {
	if u.BirthdayDate == nil {
		return nil
	}
	if age := AgeAt(*u.BirthdayDate, today); age < domain.MinimumAge {
		return domain.InvalidAge(age)
	}
	return nil
}

func validateSalaryFloor(u entity.User, _ time.Time) error {
	if u.BaseSalary.Decimal.LessThan(domain.MinBaseSalary) {
		return domain.InvalidSalary(domain.SalaryTooLow, u.BaseSalary.Decimal)
	}
	return nil
}

func validateSalaryCeiling(u entity.User, _ time.Time) error {
	if u.BaseSalary.Decimal.GreaterThan(domain.MaxBaseSalary) {
		return domain.InvalidSalary(domain.SalaryTooHigh, u.BaseSalary.Decimal)
	}
	return nil
}

// AgeAt calcula los años cumplidos entre birth y today, por fecha de calendario.
// Un nacido el 29 de febrero cumple años el 1 de marzo en años no bisiestos.
func AgeAt(birth, today time.Time) int {
	by, bm, bd := birth.Date()
	ty, tm, td := today.Date()
	age := ty - by
	if tm < bm || (tm == bm && td < bd) {
		age--
	}
	return age
}

// IsValidEmail expone el patrón de formato de email para otras capas.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
