package user

type Permission string

const (
	PermissionShiftViewAll Permission = "shift.view_all"
	PermissionShiftEdit    Permission = "shift.edit"

	PermissionFineCreate Permission = "fine.create"

	// Waiter-scoped reads are not restricted to the caller's own id.
	PermissionQuestView    Permission = "quest.view"
	PermissionQuestViewAll Permission = "quest.view_all"
	PermissionQuestCreate  Permission = "quest.create"

	PermissionSalaryView Permission = "salary.view"

	PermissionMasterDataView Permission = "master_data.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionShiftViewAll,
		PermissionShiftEdit,
		PermissionFineCreate,
		PermissionQuestView,
		PermissionQuestViewAll,
		PermissionQuestCreate,
		PermissionSalaryView,
		PermissionMasterDataView,
	},
	RoleManager: {
		PermissionShiftViewAll,
		PermissionShiftEdit,
		PermissionFineCreate,
		PermissionQuestView,
		PermissionQuestViewAll,
		PermissionQuestCreate,
		PermissionSalaryView,
		PermissionMasterDataView,
	},
	RoleWaiter: {
		PermissionShiftViewAll,
		PermissionQuestView,
		PermissionQuestViewAll,
		PermissionSalaryView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
