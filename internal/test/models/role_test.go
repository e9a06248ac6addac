package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"servicehub-backend/internal/models"
)

func TestParseRole(t *testing.T) {
	role, err := models.ParseRole("provider")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleProvider, role)

	role, err = models.ParseRole("")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)

	_, err = models.ParseRole("superuser")
	assert.Error(t, err)

	// Casing matters; roles are stored lowercase.
	_, err = models.ParseRole("Admin")
	assert.Error(t, err)
}

func TestRoleCanAct(t *testing.T) {
	assert.True(t, models.RoleAdmin.CanAct(models.RoleProvider))
	assert.True(t, models.RoleAdmin.CanAct(models.RoleUser))
	assert.True(t, models.RoleProvider.CanAct(models.RoleProvider))
	assert.True(t, models.RoleUser.CanAct(models.RoleGuest))

	assert.False(t, models.RoleUser.CanAct(models.RoleProvider))
	assert.False(t, models.RoleProvider.CanAct(models.RoleAdmin))
	assert.False(t, models.RoleGuest.CanAct(models.RoleUser))
}
