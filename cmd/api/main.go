package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/jhoicas/auth-service/docs"
	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain/repository"
	"github.com/jhoicas/auth-service/internal/domain/validation"
	"github.com/jhoicas/auth-service/internal/infrastructure/metrics"
	"github.com/jhoicas/auth-service/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/auth-service/internal/infrastructure/redis"
	"github.com/jhoicas/auth-service/internal/infrastructure/security"
	"github.com/jhoicas/auth-service/internal/infrastructure/tracing"
	httpRouter "github.com/jhoicas/auth-service/internal/interfaces/http"
	"github.com/jhoicas/auth-service/pkg/config"
	"github.com/jhoicas/auth-service/pkg/logger"
)

// @title                       Auth Service API
// @version                     1.0
// @description                 Registro de usuarios y autenticación con JWT.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el login y las rutas protegidas van a fallar")
	}

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, cfg.App.Name, cfg.Tracing.Endpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	var roleRepo repository.RoleRepository = postgres.NewRoleRepository(pool)

	// Caché de roles en Redis (opcional): si no responde se sigue sin caché.
	if cfg.Redis.Enabled() {
		rdb := infraredis.NewClient(cfg.Redis)
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := infraredis.Ping(pingCtx, rdb); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, roles sin caché")
		} else {
			roleRepo = infraredis.NewCachedRoleRepository(roleRepo, rdb, cfg.Redis.RoleTTL, log)
		}
		cancel()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom := metrics.NewProm(registry)

	registration := auth.NewRegistrationUseCase(
		userRepo, roleRepo,
		validation.NewUserValidator(time.Now),
		cfg.Registration.DefaultRole,
		log,
		auth.WithObserver(prom),
	)
	hasher := security.NewBcryptHasher(0)
	verifier := auth.NewCredentialVerifier(userRepo)
	authUC := auth.NewAuthUseCase(verifier, hasher, security.NewJWTIssuer(cfg.JWT), log)
	userUC := usecase.NewUserUseCase(userRepo, registration, hasher)
	roleUC := usecase.NewRoleUseCase(roleRepo)

	app := httpRouter.NewApp(cfg.App.Name, log, prom)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Auth Service API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		AuthUC:    authUC,
		UserUC:    userUC,
		RoleUC:    roleUC,
		Subjects:  verifier,
		JWTSecret: cfg.JWT.Secret,
		Metrics:   prom,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de trazas")
	}

	log.Info().Msg("aplicación detenida")
}
