package auth

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
	"github.com/jhoicas/auth-service/internal/domain/validation"
	"github.com/jhoicas/auth-service/pkg/logger"
)

const tracerName = "github.com/jhoicas/auth-service/internal/application/auth"

// RegistrationUseCase orquesta el alta de usuarios:
// validación, unicidad de email, unicidad de documento, rol y guardado.
// Cualquier fallo corta la secuencia sin escrituras.
type RegistrationUseCase struct {
	users       repository.UserRepository
	roles       repository.RoleRepository
	validator   *validation.UserValidator
	defaultRole string
	log         *logger.Logger
	tracer      trace.Tracer
	observer    RegistrationObserver
}

// RegistrationOption configura dependencias opcionales del orquestador.
type RegistrationOption func(*RegistrationUseCase)

// WithObserver registra el observador de resultados (p. ej. métricas Prometheus).
func WithObserver(o RegistrationObserver) RegistrationOption {
	return func(uc *RegistrationUseCase) {
		if o != nil {
			uc.observer = o
		}
	}
}

// WithTracer reemplaza el tracer global de OpenTelemetry.
func WithTracer(t trace.Tracer) RegistrationOption {
	return func(uc *RegistrationUseCase) {
		if t != nil {
			uc.tracer = t
		}
	}
}

// NewRegistrationUseCase construye el orquestador. defaultRole es el nombre del rol
// asignado a candidatos sin rol (REGISTRATION_DEFAULT_ROLE).
func NewRegistrationUseCase(
	users repository.UserRepository,
	roles repository.RoleRepository,
	validator *validation.UserValidator,
	defaultRole string,
	log *logger.Logger,
	opts ...RegistrationOption,
) *RegistrationUseCase {
	if validator == nil {
		validator = validation.NewUserValidator(nil)
	}
	if log == nil {
		log = logger.Nop()
	}
	uc := &RegistrationUseCase{
		users:       users,
		roles:       roles,
		validator:   validator,
		defaultRole: defaultRole,
		log:         log.Named("registration"),
		tracer:      otel.Tracer(tracerName),
		observer:    nopObserver{},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Register registra el candidato. Si no trae rol se le adjunta el rol por defecto;
// si ya trae uno, el almacén de roles no se consulta.
func (uc *RegistrationUseCase) Register(ctx context.Context, candidate entity.User) (*entity.User, error) {
	return uc.register(ctx, candidate, func(ctx context.Context, u entity.User) (entity.User, error) {
		if u.HasRole() {
			return u, nil
		}
		return uc.attachRoleByName(ctx, u, uc.defaultRole)
	})
}

// RegisterWithRole igual que Register, pero el rol se resuelve por ID.
// roleID vacío equivale a Register.
func (uc *RegistrationUseCase) RegisterWithRole(ctx context.Context, candidate entity.User, roleID string) (*entity.User, error) {
	if strings.TrimSpace(roleID) == "" {
		return uc.Register(ctx, candidate)
	}
	return uc.register(ctx, candidate, func(ctx context.Context, u entity.User) (entity.User, error) {
		return uc.attachRoleByID(ctx, u, roleID)
	})
}

// Validate corre solo las reglas del núcleo, sin tocar almacenes.
// Un rechazo cuenta como registro fallido en el observador.
func (uc *RegistrationUseCase) Validate(ctx context.Context, candidate entity.User) (err error) {
	_, span := uc.tracer.Start(ctx, "auth.Register/validate")
	defer func() { endSpan(span, err) }()

	if err = uc.validator.Validate(candidate); err != nil {
		uc.log.Debug().Err(err).Str("email", candidate.Email).Msg("candidato rechazado por validación")
		uc.observer.ObserveRegistration(outcome(err))
	}
	return err
}

type roleStep func(ctx context.Context, u entity.User) (entity.User, error)

func (uc *RegistrationUseCase) register(ctx context.Context, candidate entity.User, resolveRole roleStep) (saved *entity.User, err error) {
	ctx, span := uc.tracer.Start(ctx, "auth.Register")
	defer func() {
		endSpan(span, err)
		uc.observer.ObserveRegistration(outcome(err))
	}()

	if err := uc.step(ctx, "validate", func(context.Context) error {
		return uc.validator.Validate(candidate)
	}); err != nil {
		uc.log.Debug().Err(err).Str("email", candidate.Email).Msg("candidato rechazado por validación")
		return nil, err
	}

	if err := uc.step(ctx, "check_email", func(ctx context.Context) error {
		exists, err := uc.users.ExistsByEmail(ctx, candidate.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.EmailAlreadyExists(candidate.Email)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := uc.step(ctx, "check_document", func(ctx context.Context) error {
		if strings.TrimSpace(candidate.DocumentNumber) == "" {
			return domain.FieldRequired("document_number")
		}
		exists, err := uc.users.ExistsByDocumentNumber(ctx, candidate.DocumentNumber)
		if err != nil {
			return err
		}
		if exists {
			return domain.DocumentAlreadyExists(candidate.DocumentNumber)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	withRole := candidate
	if err := uc.step(ctx, "resolve_role", func(ctx context.Context) error {
		var err error
		withRole, err = resolveRole(ctx, candidate)
		return err
	}); err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			uc.log.Error().Err(err).Str("role", uc.defaultRole).Msg("rol por defecto no existe")
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := uc.step(ctx, "save", func(ctx context.Context) error {
		var err error
		saved, err = uc.users.Save(ctx, withRole)
		return translateUniqueViolation(err, withRole)
	}); err != nil {
		if _, ok := domain.AsError(err); !ok {
			uc.log.Error().Err(err).Str("email", withRole.Email).Msg("error guardando usuario")
		}
		return nil, err
	}

	uc.log.Info().Str("user_id", saved.ID).Str("role", saved.RoleName()).Msg("usuario registrado")
	return saved, nil
}

func (uc *RegistrationUseCase) attachRoleByName(ctx context.Context, u entity.User, name string) (entity.User, error) {
	role, err := uc.roles.FindByName(ctx, name)
	if err != nil {
		return u, err
	}
	if role == nil {
		return u, domain.Configuration("el rol por defecto '"+name+"' no existe", nil)
	}
	return u.WithRole(*role), nil
}

func (uc *RegistrationUseCase) attachRoleByID(ctx context.Context, u entity.User, id string) (entity.User, error) {
	role, err := uc.roles.FindByID(ctx, id)
	if err != nil {
		return u, err
	}
	if role == nil {
		return u, domain.NotFound(domain.EntityRole, id)
	}
	return u.WithRole(*role), nil
}

// step ejecuta fn dentro de un span hijo con el nombre del paso.
func (uc *RegistrationUseCase) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := uc.tracer.Start(ctx, "auth.Register/"+name)
	err := fn(ctx)
	endSpan(span, err)
	return err
}

// translateUniqueViolation convierte la violación de unicidad del almacén en el conflicto de dominio.
func translateUniqueViolation(err error, u entity.User) error {
	var uv *repository.UniqueViolationError
	if !errors.As(err, &uv) {
		return err
	}
	switch uv.Field {
	case repository.UniqueEmail:
		return domain.EmailAlreadyExists(u.Email)
	case repository.UniqueDocumentNumber:
		return domain.DocumentAlreadyExists(u.DocumentNumber)
	default:
		return err
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if de, ok := domain.AsError(err); ok {
			span.SetAttributes(attribute.String("auth.error_kind", de.Kind.String()))
		}
	}
	span.End()
}

func outcome(err error) string {
	if err == nil {
		return "created"
	}
	if de, ok := domain.AsError(err); ok {
		return de.Kind.String()
	}
	return "error"
}
