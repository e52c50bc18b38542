package admin

import (
	"time"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type CreateMenuRequest struct {
	FatherID    int64   `json:"fatherId"`
	MenuName    string  `json:"menuName"`
	MenuType    string  `json:"menuType"`
	AlIcon      *string `json:"alIcon"`
	Icon        *string `json:"icon"`
	Path        *string `json:"path"`
	Code        string  `json:"code"`
	OrderNum    int     `json:"orderNum"`
	Status      *bool   `json:"status"`
	NewLinkFlag *bool   `json:"newLinkFlag"`
	Visible     *bool   `json:"visible"`
}

type UpdateMenuRequest struct {
	ID int64 `json:"id"`
	CreateMenuRequest
}

type MenuSearch struct {
	MenuName *string `json:"menuName,omitempty"`
	Visible  *bool   `json:"visible,omitempty"`
}

type MenuResponse struct {
	ID int64 `json:"id"`
	CreateMenuRequest
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (in CreateMenuRequest) ToDomain() repository.Menu {
	return repository.Menu{
		FatherID:    in.FatherID,
		MenuName:    in.MenuName,
		MenuType:    in.MenuType,
		AlIcon:      in.AlIcon,
		Icon:        in.Icon,
		Path:        in.Path,
		Code:        in.Code,
		OrderNum:    in.OrderNum,
		Status:      in.Status,
		NewLinkFlag: in.NewLinkFlag,
		Visible:     in.Visible,
	}
}

func MenuFromDomain(m repository.Menu) MenuResponse {
	return MenuResponse{
		ID: m.ID,
		CreateMenuRequest: CreateMenuRequest{
			FatherID:    m.FatherID,
			MenuName:    m.MenuName,
			MenuType:    m.MenuType,
			AlIcon:      m.AlIcon,
			Icon:        m.Icon,
			Path:        m.Path,
			Code:        m.Code,
			OrderNum:    m.OrderNum,
			Status:      m.Status,
			NewLinkFlag: m.NewLinkFlag,
			Visible:     m.Visible,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func MenusFromDomain(in []repository.Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(in))
	for _, m := range in {
		out = append(out, MenuFromDomain(m))
	}
	return out
}
