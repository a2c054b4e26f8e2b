package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/pkg/logger"
)

const internalErrorMessage = "error interno del servidor"

// respondError escribe el cuerpo de error estándar.
func respondError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      c.Path(),
	})
}

// writeError traduce un error de los casos de uso a status y código HTTP.
// Los errores que no son de dominio se responden como 500 sin exponer su texto.
func writeError(c *fiber.Ctx, err error) error {
	de, ok := domain.AsError(err)
	if !ok {
		return respondError(c, fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR", internalErrorMessage)
	}
	status, code := statusFor(de)
	if status == fiber.StatusInternalServerError {
		return respondError(c, status, code, internalErrorMessage)
	}
	return respondError(c, status, code, de.Error())
}

func statusFor(de *domain.Error) (int, string) {
	switch de.Kind {
	case domain.KindFieldRequired:
		return fiber.StatusBadRequest, "FIELD_REQUIRED"
	case domain.KindInvalidFormat:
		return fiber.StatusBadRequest, "INVALID_FORMAT"
	case domain.KindInvalidAge:
		return fiber.StatusBadRequest, "INVALID_AGE"
	case domain.KindInvalidSalary:
		return fiber.StatusBadRequest, "INVALID_SALARY"
	case domain.KindEmailAlreadyExists:
		return fiber.StatusConflict, "EMAIL_ALREADY_EXISTS"
	case domain.KindDocumentAlreadyExists:
		return fiber.StatusConflict, "DOCUMENT_ALREADY_EXISTS"
	case domain.KindNotFound:
		switch de.Entity {
		case domain.EntityUser:
			return fiber.StatusNotFound, "USER_NOT_FOUND"
		case domain.EntityRole:
			return fiber.StatusNotFound, "ROLE_NOT_FOUND"
		default:
			return fiber.StatusNotFound, "NOT_FOUND"
		}
	case domain.KindInvalidCredentials:
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case domain.KindConfiguration:
		return fiber.StatusInternalServerError, "CONFIGURATION_ERROR"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}

// ErrorHandler es el fiber.ErrorHandler de la app: rutas inexistentes, body demasiado grande,
// pánicos recuperados y cualquier error devuelto sin responder.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return respondError(c, fe.Code, "NOT_FOUND", "ruta no encontrada")
			case fiber.StatusMethodNotAllowed:
				return respondError(c, fe.Code, "METHOD_NOT_ALLOWED", fe.Message)
			case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
				return respondError(c, fe.Code, "INVALID_BODY", fe.Message)
			}
		}
		if _, ok := domain.AsError(err); ok {
			return writeError(c, err)
		}
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no controlado")
		return respondError(c, fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR", internalErrorMessage)
	}
}
