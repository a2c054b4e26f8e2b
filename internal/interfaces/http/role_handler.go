package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auth-service/internal/application/usecase"
)

// RoleHandler consultas públicas de roles.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  dto.RoleResponse
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByName godoc
// @Summary      Obtener rol por nombre
// @Tags         roles
// @Produce      json
// @Param        name  path  string  true  "Nombre del rol (CLIENT, ADMIN, ADVISOR)"
// @Success      200  {object}  dto.RoleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/roles/{name} [get]
func (h *RoleHandler) GetByName(c *fiber.Ctx) error {
	out, err := h.uc.FindByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
