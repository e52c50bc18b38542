package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
)

type menuRepo struct{ s *Store }

func (r *menuRepo) Create(ctx context.Context, in *repository.Menu) error {
	row := menuFromDomain(*in)
	row.ID = 0
	row.CreatedAt = r.s.stamp()
	if err := r.s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translate("menu.create", err)
	}
	in.ID = row.ID
	in.CreatedAt = row.CreatedAt
	return nil
}

func (r *menuRepo) GetByID(ctx context.Context, id int64) (*repository.Menu, error) {
	var row Menu
	if err := r.s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("menu.get", err)
	}
	out := menuToDomain(row)
	return &out, nil
}

func (r *menuRepo) List(ctx context.Context, f repository.MenuFilter, p repository.Page) ([]repository.Menu, int64, error) {
	q := r.s.db.WithContext(ctx).Model(&Menu{})
	if f.MenuName != "" {
		q = q.Where("menu_name LIKE ?", likeContains(f.MenuName))
	}
	if f.Visible != nil {
		q = q.Where("visible = ?", *f.Visible)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("menu.list", err)
	}
	var rows []Menu
	if err := paginate(q.Order("order_num").Order("id"), p).Find(&rows).Error; err != nil {
		return nil, 0, translate("menu.list", err)
	}
	return menusToDomain(rows), total, nil
}

func (r *menuRepo) Update(ctx context.Context, in *repository.Menu) error {
	now := r.s.stamp()
	res := r.s.db.WithContext(ctx).Model(&Menu{}).Where("id = ?", in.ID).Updates(map[string]any{
		"father_id":     in.FatherID,
		"menu_name":     in.MenuName,
		"menu_type":     in.MenuType,
		"al_icon":       in.AlIcon,
		"icon":          in.Icon,
		"path":          in.Path,
		"code":          in.Code,
		"order_num":     in.OrderNum,
		"status":        in.Status,
		"new_link_flag": in.NewLinkFlag,
		"visible":       in.Visible,
		"updated_at":    now,
	})
	if res.Error != nil {
		return translate("menu.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("menu.update", gorm.ErrRecordNotFound)
	}
	in.UpdatedAt = &now
	return nil
}

func (r *menuRepo) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Menu{})
	if res.Error != nil {
		return 0, translate("menu.delete", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *menuRepo) ListByCodes(ctx context.Context, codes []string) ([]repository.Menu, error) {
	codes = uniqueStrings(codes)
	if len(codes) == 0 {
		return []repository.Menu{}, nil
	}
	var rows []Menu
	err := r.s.db.WithContext(ctx).
		Where("code IN ?", codes).
		Order("order_num").Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, translate("menu.by_codes", err)
	}
	return menusToDomain(rows), nil
}

func menusToDomain(rows []Menu) []repository.Menu {
	out := make([]repository.Menu, 0, len(rows))
	for _, m := range rows {
		out = append(out, menuToDomain(m))
	}
	return out
}

func menuToDomain(m Menu) repository.Menu {
	return repository.Menu{
		ID:          m.ID,
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
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func menuFromDomain(m repository.Menu) Menu {
	return Menu{
		ID:          m.ID,
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
	}
}
