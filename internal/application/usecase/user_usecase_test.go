package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository/mocks"
	"github.com/jhoicas/auth-service/internal/domain/validation"
)

// MockRegistrar: Validate usa las reglas reales y no queda en Calls.
type MockRegistrar struct {
	mock.Mock
}

func (m *MockRegistrar) Validate(_ context.Context, candidate entity.User) error {
	return userValidator.Validate(candidate)
}

func (m *MockRegistrar) Register(ctx context.Context, candidate entity.User) (*entity.User, error) {
	args := m.Called(ctx, candidate)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockRegistrar) RegisterWithRole(ctx context.Context, candidate entity.User, roleID string) (*entity.User, error) {
	args := m.Called(ctx, candidate, roleID)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type prefixHasher struct{}

func (prefixHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (prefixHasher) Matches(plain, hash string) bool  { return hash == "h:"+plain }

// countingHasher cuenta los hash calculados.
type countingHasher struct {
	prefixHasher
	calls int
}

func (h *countingHasher) Hash(plain string) (string, error) {
	h.calls++
	return h.prefixHasher.Hash(plain)
}

var userValidator = validation.NewUserValidator(func() time.Time {
	return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
})

var client = entity.Role{ID: "r-client", Name: entity.RoleClient}

const adminRoleID = "7c0a8e11-9b8a-4e36-8d8d-3f1ab0b7e702"

func createRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		DocumentNumber: "123",
		Name:           "Juan",
		Lastname:       "Pérez",
		BirthdayDate:   "1990-05-15",
		BaseSalary:     decimal.NewNullDecimal(decimal.NewFromInt(5_000_000)),
		Email:          "juan.perez@email.com",
		Password:       "secreto123",
	}
}

func TestCreate_HasheaYRegistraConRolPorDefecto(t *testing.T) {
	reg := new(MockRegistrar)
	uc := usecase.NewUserUseCase(new(mocks.UserRepository), reg, prefixHasher{})

	reg.On("Register", mock.Anything, mock.MatchedBy(func(u entity.User) bool {
		return u.PasswordHash == "h:secreto123" && u.Email == "juan.perez@email.com" && u.BirthdayDate != nil
	})).Return(func() *entity.User {
		u := entity.User{ID: "u-1", Name: "Juan", Email: "juan.perez@email.com"}.WithRole(client)
		birth := time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)
		u.BirthdayDate = &birth
		return &u
	}(), nil).Once()

	out, err := uc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, "u-1", out.ID)
	require.NotNil(t, out.Role)
	assert.Equal(t, entity.RoleClient, out.Role.Name)
	require.NotNil(t, out.BirthdayDate)
	assert.Equal(t, "1990-05-15", *out.BirthdayDate)
	reg.AssertNotCalled(t, "RegisterWithRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ConRoleIDUsaRegisterWithRole(t *testing.T) {
	reg := new(MockRegistrar)
	uc := usecase.NewUserUseCase(new(mocks.UserRepository), reg, prefixHasher{})
	in := createRequest()
	in.RoleID = adminRoleID

	reg.On("RegisterWithRole", mock.Anything, mock.Anything, adminRoleID).
		Return(&entity.User{ID: "u-2", Role: &entity.Role{ID: adminRoleID, Name: entity.RoleAdmin}}, nil).Once()

	out, err := uc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role.Name)
	reg.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestCreate_FechaInvalidaNoRegistra(t *testing.T) {
	reg := new(MockRegistrar)
	uc := usecase.NewUserUseCase(new(mocks.UserRepository), reg, prefixHasher{})
	in := createRequest()
	in.BirthdayDate = "ayer"

	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Empty(t, reg.Calls)
}

// Las reglas del núcleo se reportan antes que la forma de la petición y antes del hash.
func TestCreate_OrdenDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		edit   func(in *dto.CreateUserRequest)
		target error
		field  string
	}{
		{"nombre vacío sin password", func(in *dto.CreateUserRequest) { in.Name = ""; in.Password = "" }, domain.ErrFieldRequired, "name"},
		{"menor de edad con password corto", func(in *dto.CreateUserRequest) { in.BirthdayDate = "2015-01-01"; in.Password = "x" }, domain.ErrInvalidAge, ""},
		{"salario excedido con role_id inválido", func(in *dto.CreateUserRequest) {
			in.BaseSalary = decimal.NewNullDecimal(decimal.RequireFromString("15000000.01"))
			in.RoleID = "admin"
		}, domain.ErrInvalidSalary, ""},
		{"nombre vacío con fecha mal formada", func(in *dto.CreateUserRequest) { in.Name = ""; in.BirthdayDate = "ayer" }, domain.ErrFieldRequired, "name"},
		{"fecha mal formada con password corto", func(in *dto.CreateUserRequest) { in.BirthdayDate = "ayer"; in.Password = "x" }, domain.ErrInvalidFormat, "birthday_date"},
		{"solo password corto", func(in *dto.CreateUserRequest) { in.Password = "corto" }, domain.ErrInvalidFormat, "password"},
		{"solo password ausente", func(in *dto.CreateUserRequest) { in.Password = "" }, domain.ErrFieldRequired, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := new(MockRegistrar)
			h := &countingHasher{}
			uc := usecase.NewUserUseCase(new(mocks.UserRepository), reg, h)
			in := createRequest()
			tc.edit(&in)

			_, err := uc.Create(context.Background(), in)

			require.ErrorIs(t, err, tc.target)
			if tc.field != "" {
				de, ok := domain.AsError(err)
				require.True(t, ok)
				assert.Equal(t, tc.field, de.Field)
			}
			assert.Zero(t, h.calls)
			assert.Empty(t, reg.Calls)
		})
	}
}

func TestList_AlmacenVacio(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("List", mock.Anything).Return(nil, nil).Once()
	uc := usecase.NewUserUseCase(repo, new(MockRegistrar), prefixHasher{})

	out, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestList_MapeaUsuarios(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("List", mock.Anything).Return([]*entity.User{
		{ID: "u-1", Email: "a@b.co", Role: &client},
		{ID: "u-2", Email: "c@d.co"},
	}, nil).Once()
	uc := usecase.NewUserUseCase(repo, new(MockRegistrar), prefixHasher{})

	out, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, entity.RoleClient, out[0].Role.Name)
	assert.Nil(t, out[1].Role)
}

func TestGetByDocumentNumber(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByDocumentNumber", mock.Anything, "123").Return(&entity.User{ID: "u-1", DocumentNumber: "123"}, nil).Once()
	repo.On("FindByDocumentNumber", mock.Anything, "999").Return(nil, nil).Once()
	uc := usecase.NewUserUseCase(repo, new(MockRegistrar), prefixHasher{})

	out, err := uc.GetByDocumentNumber(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", out.ID)

	_, err = uc.GetByDocumentNumber(context.Background(), "999")
	require.ErrorIs(t, err, domain.ErrNotFound)
	de, _ := domain.AsError(err)
	assert.Equal(t, domain.EntityUser, de.Entity)

	_, err = uc.GetByDocumentNumber(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrFieldRequired)
	repo.AssertNumberOfCalls(t, "FindByDocumentNumber", 2)
}
