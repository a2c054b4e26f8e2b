// Package mocks contiene dobles de prueba (testify/mock) para los puertos de repository.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/auth-service/internal/domain/entity"
)

// UserRepository mock de repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error) {
	args := m.Called(ctx, documentNumber)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, user entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	saved, _ := args.Get(0).(*entity.User)
	return saved, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) FindByDocumentNumber(ctx context.Context, documentNumber string) (*entity.User, error) {
	args := m.Called(ctx, documentNumber)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.User)
	return list, args.Error(1)
}

// RoleRepository mock de repository.RoleRepository.
type RoleRepository struct {
	mock.Mock
}

func (m *RoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(*entity.Role)
	return r, args.Error(1)
}

func (m *RoleRepository) FindByID(ctx context.Context, id string) (*entity.Role, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entity.Role)
	return r, args.Error(1)
}

func (m *RoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Role)
	return list, args.Error(1)
}
