package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/domain/repository/mocks"
)

func TestRoleList(t *testing.T) {
	repo := new(mocks.RoleRepository)
	repo.On("List", mock.Anything).Return([]*entity.Role{
		{ID: "1", Name: entity.RoleAdmin},
		{ID: "2", Name: entity.RoleClient},
	}, nil).Once()

	out, err := usecase.NewRoleUseCase(repo).List(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, entity.RoleAdmin, out[0].Name)
}

func TestRoleFindByName(t *testing.T) {
	repo := new(mocks.RoleRepository)
	repo.On("FindByName", mock.Anything, entity.RoleAdvisor).Return(&entity.Role{ID: "3", Name: entity.RoleAdvisor}, nil).Once()
	repo.On("FindByName", mock.Anything, "GUEST").Return(nil, nil).Once()
	uc := usecase.NewRoleUseCase(repo)

	out, err := uc.FindByName(context.Background(), entity.RoleAdvisor)
	require.NoError(t, err)
	assert.Equal(t, "3", out.ID)

	_, err = uc.FindByName(context.Background(), "GUEST")
	require.ErrorIs(t, err, domain.ErrNotFound)
	de, _ := domain.AsError(err)
	assert.Equal(t, domain.EntityRole, de.Entity)
	assert.Equal(t, "GUEST", de.Key)

	_, err = uc.FindByName(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrFieldRequired)
	de, _ = domain.AsError(err)
	assert.Equal(t, "name", de.Field)
	repo.AssertNumberOfCalls(t, "FindByName", 2)
}
