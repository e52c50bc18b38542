package repository

import "context"

type MenuRepository interface {
	Create(ctx context.Context, m *Menu) error
	GetByID(ctx context.Context, id int64) (*Menu, error)
	List(ctx context.Context, f MenuFilter, p Page) ([]Menu, int64, error)
	Update(ctx context.Context, m *Menu) error
	Delete(ctx context.Context, ids []int64) (int64, error)

	// ListByCodes returns menus whose code is in codes, by order_num then id.
	ListByCodes(ctx context.Context, codes []string) ([]Menu, error)
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id int64) (*Department, error)
	List(ctx context.Context, f DepartmentFilter, p Page) ([]Department, int64, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, ids []int64) (int64, error)
}

// Pinger lets health checks reach the database without knowing the driver.
type Pinger interface {
	Ping(ctx context.Context) error
}
