package repository

import "time"

type User struct {
	ID            int64
	UserName      string
	PasswordHash  string
	Sex           int
	Available     bool
	Telephone     string
	Mobile        string
	Email         string
	DepartmentID  int64
	LastLoginTime *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Credential is the slice of a user that sign-in needs.
type Credential struct {
	UserID       int64
	PasswordHash string
}

type Role struct {
	ID        int64
	Name      string
	Desc      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Menu struct {
	ID          int64
	FatherID    int64
	MenuName    string
	MenuType    string
	AlIcon      *string
	Icon        *string
	Path        *string
	Code        string
	OrderNum    int
	Status      *bool
	NewLinkFlag *bool
	Visible     *bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Department struct {
	ID             int64
	FatherID       *int64
	DepartmentName *string
	OrderNum       *int
	State          *bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Page is a 1-based page request.
type Page struct {
	Index int
	Size  int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Index < 1 {
		p.Index = 1
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p Page) Offset() int {
	p = p.Normalize()
	return (p.Index - 1) * p.Size
}

type UserFilter struct {
	UserName     string // contains
	DepartmentID *int64
}

type RoleFilter struct {
	RoleName string // contains
	RoleDesc string // contains
}

type MenuFilter struct {
	MenuName string // contains
	Visible  *bool
}

type DepartmentFilter struct {
	DepartmentName string // contains
}
