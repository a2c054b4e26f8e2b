package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/auth-service/internal/domain"
)

// shape revisa los tags validate de los DTO; los nombres de campo salen del tag json.
var shape = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckShape devuelve el primer tag validate incumplido como error de dominio.
func CheckShape(in any) error {
	err := shape.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return domain.FieldRequired(fe.Field())
	}
	return domain.InvalidFormat(fe.Field(), ruleDescription(fe))
}

func ruleDescription(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "longitud mínima " + fe.Param()
	case "max":
		return "longitud máxima " + fe.Param()
	case "uuid":
		return "se espera un UUID"
	default:
		return "no cumple la regla " + fe.Tag()
	}
}
