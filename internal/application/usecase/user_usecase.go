package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository"
)

// Registrar es la parte del orquestador de registro que usa este caso de uso.
type Registrar interface {
	Validate(ctx context.Context, candidate entity.User) error
	Register(ctx context.Context, candidate entity.User) (*entity.User, error)
	RegisterWithRole(ctx context.Context, candidate entity.User, roleID string) (*entity.User, error)
}

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo      repository.UserRepository
	registrar Registrar
	hasher    auth.PasswordHasher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, registrar Registrar, hasher auth.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, registrar: registrar, hasher: hasher}
}

// Create convierte la petición en candidato, hashea el password y lo registra.
// Con role_id el rol se resuelve por ID; sin él se asigna el rol por defecto.
//
// Orden de errores: reglas del núcleo, fecha mal formada, forma de la petición
// (password, role_id, longitudes). El hash solo se calcula para peticiones válidas.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	candidate, dateErr := in.ToCandidate()
	if err := uc.registrar.Validate(ctx, candidate); err != nil {
		return nil, err
	}
	if dateErr != nil {
		return nil, dateErr
	}
	if err := dto.CheckShape(in); err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	candidate.PasswordHash = hash

	var saved *entity.User
	if roleID := strings.TrimSpace(in.RoleID); roleID != "" {
		saved, err = uc.registrar.RegisterWithRole(ctx, candidate, roleID)
	} else {
		saved, err = uc.registrar.Register(ctx, candidate)
	}
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(saved), nil
}

// List devuelve todos los usuarios; almacén vacío = lista vacía.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// GetByDocumentNumber obtiene un usuario por número de documento.
func (uc *UserUseCase) GetByDocumentNumber(ctx context.Context, documentNumber string) (*dto.UserResponse, error) {
	documentNumber = strings.TrimSpace(documentNumber)
	if documentNumber == "" {
		return nil, domain.FieldRequired("document_number")
	}
	user, err := uc.repo.FindByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound(domain.EntityUser, documentNumber)
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:             u.ID,
		DocumentNumber: u.DocumentNumber,
		Name:           u.Name,
		Lastname:       u.Lastname,
		Address:        u.Address,
		PhoneNumber:    u.PhoneNumber,
		BaseSalary:     u.BaseSalary,
		Email:          u.Email,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
	if u.BirthdayDate != nil {
		s := u.BirthdayDate.Format(dto.DateLayout)
		out.BirthdayDate = &s
	}
	if u.Role != nil {
		out.Role = entityToRoleResponse(u.Role)
	}
	return out
}
