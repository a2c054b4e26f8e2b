package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar usuario
// @Description  Requiere rol ADMIN o ADVISOR. Sin role_id se asigna el rol por defecto.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByDocumentNumber godoc
// @Summary      Obtener usuario por número de documento
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        documentNumber  path  string  true  "Número de documento"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{documentNumber} [get]
func (h *UserHandler) GetByDocumentNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByDocumentNumber(c.UserContext(), c.Params("documentNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
