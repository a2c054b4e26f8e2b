// seed_roles crea los roles de referencia (CLIENT, ADMIN, ADVISOR y los indicados por argumento)
// y, si SEED_ADMIN_EMAIL está definido, registra un usuario ADMIN inicial.
//
// Uso: go run ./cmd/seed_roles [ROL ...]
// Es idempotente: los roles existentes y un admin ya registrado se dejan como están.
package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/validation"
	"github.com/jhoicas/auth-service/internal/infrastructure/postgres"
	"github.com/jhoicas/auth-service/internal/infrastructure/security"
	"github.com/jhoicas/auth-service/pkg/config"
	"github.com/jhoicas/auth-service/pkg/logger"
)

var baseRoles = []struct{ name, description string }{
	{entity.RoleClient, "Cliente registrado"},
	{entity.RoleAdmin, "Administrador del sistema"},
	{entity.RoleAdvisor, "Asesor comercial"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{App: cfg.App.Name, Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed_roles")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	descriptions := make(map[string]string, len(baseRoles))
	for _, r := range baseRoles {
		descriptions[r.name] = r.description
	}
	roles := make(map[string]*entity.Role)
	for _, name := range roleNames(os.Args[1:]) {
		role, err := roleRepo.EnsureRole(ctx, name, descriptions[name])
		if err != nil {
			log.Fatal().Err(err).Str("role", name).Msg("crear rol")
		}
		roles[name] = role
		log.Info().Str("role", role.Name).Str("id", role.ID).Msg("rol disponible")
	}

	if cfg.Seed.AdminEmail == "" {
		log.Info().Msg("SEED_ADMIN_EMAIL vacío, no se crea administrador")
		return
	}

	hasher := security.NewBcryptHasher(0)
	hash, err := hasher.Hash(cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash del password del administrador")
	}
	registration := auth.NewRegistrationUseCase(
		postgres.NewUserRepository(pool), roleRepo,
		validation.NewUserValidator(nil), cfg.Registration.DefaultRole, log,
	)
	admin, err := registration.RegisterWithRole(ctx, adminCandidate(cfg.Seed, hash), roles[entity.RoleAdmin].ID)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDocumentAlreadyExists):
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("el administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("registrar administrador")
	default:
		log.Info().Str("user_id", admin.ID).Str("email", admin.Email).Msg("administrador creado")
	}
}

// roleNames devuelve los roles base seguidos de los extra, en mayúsculas y sin duplicados.
func roleNames(extra []string) []string {
	upper := cases.Upper(language.Und)
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		name = upper.String(strings.TrimSpace(name))
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, r := range baseRoles {
		add(r.name)
	}
	for _, name := range extra {
		add(name)
	}
	return out
}

func adminCandidate(seed config.SeedConfig, passwordHash string) entity.User {
	return entity.User{
		DocumentNumber: seed.AdminDocument,
		Name:           seed.AdminName,
		Lastname:       seed.AdminLastname,
		Email:          seed.AdminEmail,
		BaseSalary:     decimal.NewNullDecimal(decimal.Zero),
		PasswordHash:   passwordHash,
	}
}
