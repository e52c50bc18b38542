package gormstore

import (
	"time"

	"gorm.io/gorm"
)

// Timestamps columns shared by every table. DeletedAt makes deletes soft.
type Timestamps struct {
	CreatedAt time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime:false"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// User.UserName es único sólo entre filas vivas: un nombre borrado puede
// volver a usarse.
type User struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserName      string     `gorm:"column:user_name;size:64;not null;uniqueIndex:idx_sys_user_user_name_live,where:deleted_at IS NULL"`
	Password      string     `gorm:"column:password;size:255;not null"`
	Sex           int        `gorm:"column:sex;not null;default:0"`
	Available     bool       `gorm:"column:available;not null;default:true"`
	Telephone     string     `gorm:"column:telephone;size:32"`
	Mobile        string     `gorm:"column:mobile;size:32"`
	Email         string     `gorm:"column:email;size:128"`
	DepartmentID  int64      `gorm:"column:department_id;index"`
	LastLoginTime *time.Time `gorm:"column:last_login_time"`
	Timestamps
}

func (User) TableName() string { return "sys_user" }

type Role struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RoleName string `gorm:"column:role_name;size:64;not null"`
	RoleDesc string `gorm:"column:role_desc;size:255"`
	Timestamps
}

func (Role) TableName() string { return "sys_role" }

type UserRole struct {
	ID     int64 `gorm:"column:id;primaryKey;autoIncrement"`
	UserID int64 `gorm:"column:user_id;not null;index"`
	RoleID int64 `gorm:"column:role_id;not null;index"`
	Timestamps
}

func (UserRole) TableName() string { return "sys_user_role" }

type RolePerm struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RoleID   int64  `gorm:"column:role_id;not null;index"`
	PermCode string `gorm:"column:perm_code;size:128;not null"`
	Timestamps
}

func (RolePerm) TableName() string { return "sys_role_perm" }

type Menu struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	FatherID    int64   `gorm:"column:father_id;not null;default:0"`
	MenuName    string  `gorm:"column:menu_name;size:64;not null"`
	MenuType    string  `gorm:"column:menu_type;size:16;not null"`
	AlIcon      *string `gorm:"column:al_icon;size:128"`
	Icon        *string `gorm:"column:icon;size:128"`
	Path        *string `gorm:"column:path;size:255"`
	Code        string  `gorm:"column:code;size:128;not null;index"`
	OrderNum    int     `gorm:"column:order_num;not null;default:0"`
	Status      *bool   `gorm:"column:status"`
	NewLinkFlag *bool   `gorm:"column:new_link_flag"`
	Visible     *bool   `gorm:"column:visible"`
	Timestamps
}

func (Menu) TableName() string { return "menu" }

type Department struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	FatherID       *int64  `gorm:"column:father_id"`
	DepartmentName *string `gorm:"column:department_name;size:64"`
	OrderNum       *int    `gorm:"column:order_num"`
	State          *bool   `gorm:"column:state"`
	Timestamps
}

func (Department) TableName() string { return "department" }

// Models lists every table, in creation order, for AutoMigrate.
func Models() []any {
	return []any{&Department{}, &User{}, &Role{}, &UserRole{}, &RolePerm{}, &Menu{}}
}
