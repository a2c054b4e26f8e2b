package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/pkg/jwt"
)

// Locals keys del sujeto autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// SubjectResolver vuelve a resolver el usuario del token en cada petición.
// Lo implementa *auth.CredentialVerifier.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, email string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve el usuario por el email del token
// y deja UserID, Email y Role en c.Locals. El rol sale del almacén, no del token.
func AuthMiddleware(jwtSecret string, subjects SubjectResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		user, err := subjects.ResolveSubject(c.UserContext(), claims.Email)
		if err != nil {
			if _, ok := domain.AsError(err); ok {
				return respondError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "el usuario del token ya no es válido")
			}
			return writeError(c, err)
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalRole, user.RoleName())
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol del sujeto está en roles.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respondError(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el usuario no tiene rol asignado")
		}
		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				return c.Next()
			}
		}
		return respondError(c, fiber.StatusForbidden, "FORBIDDEN", "el rol '"+role+"' no tiene acceso a este recurso")
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del sujeto autenticado.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole devuelve el rol del sujeto autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
