package admin

import (
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type CreateDepartmentRequest struct {
	FatherID       *int64  `json:"fatherId"`
	DepartmentName *string `json:"departmentName"`
	OrderNum       *int    `json:"orderNum"`
	State          *bool   `json:"state"`
}

type UpdateDepartmentRequest struct {
	ID int64 `json:"id"`
	CreateDepartmentRequest
}

type DepartmentSearch struct {
	DepartmentName *string `json:"departmentName,omitempty"`
}

type DepartmentResponse struct {
	ID int64 `json:"id"`
	CreateDepartmentRequest
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (in CreateDepartmentRequest) ToDomain() repository.Department {
	return repository.Department{
		FatherID:       in.FatherID,
		DepartmentName: in.DepartmentName,
		OrderNum:       in.OrderNum,
		State:          in.State,
	}
}

func DepartmentFromDomain(d repository.Department) DepartmentResponse {
	return DepartmentResponse{
		ID: d.ID,
		CreateDepartmentRequest: CreateDepartmentRequest{
			FatherID:       d.FatherID,
			DepartmentName: d.DepartmentName,
			OrderNum:       d.OrderNum,
			State:          d.State,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
