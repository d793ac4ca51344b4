package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleManager, PermissionFineCreate))
	assert.True(t, HasPermission(RoleAdmin, PermissionQuestCreate))
	assert.True(t, HasPermission(RoleWaiter, PermissionSalaryView))
	assert.False(t, HasPermission(RoleWaiter, PermissionFineCreate))
	assert.False(t, HasPermission(RoleWaiter, PermissionShiftEdit))
	assert.False(t, HasPermission(Role("guest"), PermissionShiftViewAll))
}

func TestShiftEditIsManagerOnly(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionShiftEdit))
	assert.True(t, HasPermission(RoleManager, PermissionShiftEdit))
	assert.False(t, HasPermission(RoleWaiter, PermissionShiftEdit))
}
