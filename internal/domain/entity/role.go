package entity

import "time"

// Nombres de roles conocidos (datos de referencia, creados fuera de banda).
const (
	RoleClient  = "CLIENT"
	RoleAdmin   = "ADMIN"
	RoleAdvisor = "ADVISOR"
)

// Role representa un rol de acceso. Solo lectura para el núcleo.
type Role struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
