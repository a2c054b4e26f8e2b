package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRole_NoModificaElOriginal(t *testing.T) {
	candidate := User{Name: "Juan", Lastname: "Pérez"}

	withRole := candidate.WithRole(Role{ID: "r1", Name: RoleClient})

	assert.False(t, candidate.HasRole(), "el candidato original no debe cambiar")
	assert.True(t, withRole.HasRole())
	assert.Equal(t, RoleClient, withRole.RoleName())
	assert.Equal(t, "", candidate.RoleName())
	assert.Equal(t, "Juan Pérez", withRole.FullName())
}
