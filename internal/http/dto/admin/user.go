package admin

import (
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type CreateUserRequest struct {
	UserName     string  `json:"userName"`
	Password     *string `json:"password,omitempty"`
	Sex          int     `json:"sex"`
	Available    bool    `json:"available"`
	Telephone    string  `json:"telephone"`
	Mobile       string  `json:"mobile"`
	Email        string  `json:"email"`
	DepartmentID int64   `json:"departmentId"`
	RoleID       []int64 `json:"roleId"`
}

// UpdateUserRequest ignora Password; para eso está /user/psd.
type UpdateUserRequest struct {
	ID int64 `json:"id"`
	CreateUserRequest
}

type UserSearch struct {
	UserName     *string `json:"userName,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
}

type ChangePasswordRequest struct {
	ID          int64  `json:"id"`
	NewPassword string `json:"newPassword"`
	OldPassword string `json:"oldPassword"`
}

// UserResponse nunca lleva el hash del password.
type UserResponse struct {
	ID            int64      `json:"id"`
	UserName      string     `json:"userName"`
	Sex           int        `json:"sex"`
	Available     bool       `json:"available"`
	Telephone     string     `json:"telephone"`
	Mobile        string     `json:"mobile"`
	Email         string     `json:"email"`
	DepartmentID  int64      `json:"departmentId"`
	LastLoginTime *time.Time `json:"lastLoginTime"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

type UserDetail struct {
	RoleID []int64 `json:"roleId"`
	UserResponse
}

func UserFromDomain(u repository.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		UserName:      u.UserName,
		Sex:           u.Sex,
		Available:     u.Available,
		Telephone:     u.Telephone,
		Mobile:        u.Mobile,
		Email:         u.Email,
		DepartmentID:  u.DepartmentID,
		LastLoginTime: u.LastLoginTime,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
