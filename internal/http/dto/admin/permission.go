package admin

// AssignRoleMenuRequest body de POST /permission/assign-role-menu.
type AssignRoleMenuRequest struct {
	RoleID    int64    `json:"roleId"`
	PermCodes []string `json:"permCodes"`
}
