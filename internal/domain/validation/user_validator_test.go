package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/validation"
)

var fixedNow = time.Date(2026, time.October, 16, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func salary(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// validUser es el candidato "Juan Pérez" del escenario de extremo a extremo.
func validUser() entity.User {
	return entity.User{
		DocumentNumber: "123",
		Name:           "Juan",
		Lastname:       "Pérez",
		Email:          "juan.perez@email.com",
		BirthdayDate:   date(1990, time.May, 15),
		BaseSalary:     salary("5000000"),
	}
}

func kindOf(t *testing.T, err error) *domain.Error {
	t.Helper()
	require.Error(t, err)
	de, ok := domain.AsError(err)
	require.True(t, ok, "se esperaba *domain.Error, llegó %T", err)
	return de
}

func TestValidate_CandidatoValido(t *testing.T) {
	v := validation.NewUserValidator(clock)
	assert.NoError(t, v.Validate(validUser()))
}

func TestValidate_CamposRequeridos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(u *entity.User)
		field  string
	}{
		{"nombre vacío", func(u *entity.User) { u.Name = "" }, "name"},
		{"nombre en blanco", func(u *entity.User) { u.Name = "   " }, "name"},
		{"apellido vacío", func(u *entity.User) { u.Lastname = "\t" }, "lastname"},
		{"email vacío", func(u *entity.User) { u.Email = "" }, "email"},
		{"salario ausente", func(u *entity.User) { u.BaseSalary = decimal.NullDecimal{} }, "base_salary"},
	}
	v := validation.NewUserValidator(clock)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(&u)

			de := kindOf(t, v.Validate(u))
			assert.Equal(t, domain.KindFieldRequired, de.Kind)
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestValidate_OrdenFijo_PrimeraReglaGana(t *testing.T) {
	v := validation.NewUserValidator(clock)

	u := validUser()
	u.Name = ""
	u.Email = "no-es-email"
	u.BaseSalary = salary("-1")
	de := kindOf(t, v.Validate(u))
	assert.Equal(t, "name", de.Field, "el nombre se evalúa antes que email y salario")

	u = validUser()
	u.Email = "no-es-email"
	u.BirthdayDate = date(2015, time.January, 1)
	de = kindOf(t, v.Validate(u))
	assert.Equal(t, domain.KindInvalidFormat, de.Kind, "el formato de email se evalúa antes que la edad")

	u = validUser()
	u.BirthdayDate = date(2015, time.January, 1)
	u.BaseSalary = salary("-5")
	de = kindOf(t, v.Validate(u))
	assert.Equal(t, domain.KindInvalidAge, de.Kind, "la edad se evalúa antes que el salario")
}

func TestValidate_FormatoEmail(t *testing.T) {
	v := validation.NewUserValidator(clock)
	invalid := []string{"juan.perez", "@email.com", "juan perez@email.com", "juan@", "juan#perez@email.com", "ñandú@email.com"}
	for _, email := range invalid {
		u := validUser()
		u.Email = email
		de := kindOf(t, v.Validate(u))
		assert.Equal(t, domain.KindInvalidFormat, de.Kind, email)
		assert.Equal(t, "email", de.Field)
	}

	valid := []string{"a@b", "juan+test@email.com", "j_p-1.x@sub.dominio.co"}
	for _, email := range valid {
		u := validUser()
		u.Email = email
		assert.NoError(t, v.Validate(u), email)
	}
}

func TestValidate_EdadLimiteInclusivo(t *testing.T) {
	v := validation.NewUserValidator(clock)

	u := validUser()
	u.BirthdayDate = date(2008, time.October, 16) // exactamente 18 años
	assert.NoError(t, v.Validate(u))

	u.BirthdayDate = date(2008, time.October, 17) // 18 años menos un día
	de := kindOf(t, v.Validate(u))
	assert.Equal(t, domain.KindInvalidAge, de.Kind)
	assert.Equal(t, 17, de.Age)
}

func TestValidate_SinFechaDeNacimiento(t *testing.T) {
	v := validation.NewUserValidator(clock)
	u := validUser()
	u.BirthdayDate = nil
	assert.NoError(t, v.Validate(u))
}

func TestValidate_LimitesDeSalario(t *testing.T) {
	v := validation.NewUserValidator(clock)

	for _, ok := range []string{"0", "15000000", "15000000.00", "0.01"} {
		u := validUser()
		u.BaseSalary = salary(ok)
		assert.NoError(t, v.Validate(u), ok)
	}

	u := validUser()
	u.BaseSalary = salary("-0.01")
	de := kindOf(t, v.Validate(u))
	assert.Equal(t, domain.KindInvalidSalary, de.Kind)
	assert.Equal(t, domain.SalaryTooLow, de.Bound)
	assert.True(t, de.Salary.Equal(decimal.RequireFromString("-0.01")))

	u.BaseSalary = salary("15000000.01")
	de = kindOf(t, v.Validate(u))
	assert.Equal(t, domain.SalaryTooHigh, de.Bound)
}

func TestValidate_Idempotente(t *testing.T) {
	v := validation.NewUserValidator(clock)
	u := validUser()
	u.Email = "mal"
	first := v.Validate(u)
	second := v.Validate(u)
	assert.Equal(t, first.Error(), second.Error())
}

func TestAgeAt(t *testing.T) {
	today := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 17, validation.AgeAt(*date(2008, time.February, 29), today), "29/02 aún no cumple el 28/02")
	assert.Equal(t, 18, validation.AgeAt(*date(2008, time.February, 29), today.AddDate(0, 0, 1)))
	assert.Equal(t, 36, validation.AgeAt(*date(1990, time.May, 15), fixedNow))
}
