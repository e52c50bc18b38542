package admin

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	dto "github.com/dropDatabas3/rbac-admin/internal/http/dto/admin"
	authdto "github.com/dropDatabas3/rbac-admin/internal/http/dto/auth"
	authsvc "github.com/dropDatabas3/rbac-admin/internal/http/services/auth"
	"github.com/dropDatabas3/rbac-admin/internal/jwt"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
	"github.com/dropDatabas3/rbac-admin/internal/session"
	"github.com/dropDatabas3/rbac-admin/internal/store/gormstore"
)

var fastHash = password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

type env struct {
	store    *gormstore.Store
	resolver *rbac.Resolver
	svc      Services
}

func newEnv(t *testing.T) *env {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	st := gormstore.New(db)
	require.NoError(t, st.AutoMigrate(context.Background()))
	res := rbac.NewResolver(st.RBAC(), st.Menus())
	return &env{
		store:    st,
		resolver: res,
		svc: NewServices(Deps{
			Users:       st.Users(),
			Roles:       st.Roles(),
			RBAC:        st.RBAC(),
			Menus:       st.Menus(),
			Departments: st.Departments(),
			Resolver:    res,
			HashParams:  fastHash,
		}),
	}
}

func strPtr(s string) *string { return &s }

func TestCreateUserThenSignIn(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	u, err := e.svc.Users.Create(ctx, dto.CreateUserRequest{UserName: "carol", Password: strPtr("hunter22"), Available: true})
	require.NoError(t, err)

	iss, err := jwt.NewIssuer("k")
	require.NoError(t, err)
	auth := authsvc.NewService(authsvc.Deps{Users: e.store.Users(), Issuer: iss, Sessions: session.NewMemory(), Resolver: e.resolver})

	tok, err := auth.SignIn(ctx, authdto.SignInRequest{UserName: "carol", Password: "hunter22"})
	require.NoError(t, err)
	claims, err := iss.Verify(tok)
	require.NoError(t, err)
	id, _ := claims.UserID()
	assert.Equal(t, u.ID, id)

	got, err := e.store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastLoginTime)
}

func TestCreateUserValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.Users.Create(ctx, dto.CreateUserRequest{UserName: "x"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = e.svc.Users.Create(ctx, dto.CreateUserRequest{UserName: "x", Password: strPtr("123")})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u, err := e.svc.Users.Create(ctx, dto.CreateUserRequest{UserName: "dave", Password: strPtr("first-pass")})
	require.NoError(t, err)

	err = e.svc.Users.ChangePassword(ctx, dto.ChangePasswordRequest{ID: u.ID, OldPassword: "wrong-pass", NewPassword: "second-pass"})
	assert.ErrorIs(t, err, authsvc.ErrAuthentication)

	require.NoError(t, e.svc.Users.ChangePassword(ctx, dto.ChangePasswordRequest{ID: u.ID, OldPassword: "first-pass", NewPassword: "second-pass"}))
	cred, err := e.store.Users().GetCredential(ctx, "dave")
	require.NoError(t, err)
	assert.True(t, password.Verify("second-pass", cred.PasswordHash))
}

func TestUpdateReplacesRolesWholesale(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u, err := e.svc.Users.Create(ctx, dto.CreateUserRequest{UserName: "erin", Password: strPtr("secret1"), RoleID: []int64{1, 2}})
	require.NoError(t, err)

	_, err = e.svc.Users.Update(ctx, dto.UpdateUserRequest{ID: u.ID, CreateUserRequest: dto.CreateUserRequest{UserName: "erin", RoleID: []int64{3}}})
	require.NoError(t, err)

	detail, err := e.svc.Users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, detail.RoleID)

	// the password survives an update
	cred, err := e.store.Users().GetCredential(ctx, "erin")
	require.NoError(t, err)
	assert.True(t, password.Verify("secret1", cred.PasswordHash))
}

func TestGetUnknownUserIsNotFound(t *testing.T) {
	e := newEnv(t)
	_, err := e.svc.Users.Get(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserAuthCodesAndRoleDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	role, err := e.svc.Roles.Create(ctx, dto.CreateRoleRequest{RoleName: "ops"})
	require.NoError(t, err)
	u, err := e.svc.Users.Create(ctx, dto.CreateUserRequest{UserName: "frank", Password: strPtr("secret1"), RoleID: []int64{role.ID}})
	require.NoError(t, err)

	require.NoError(t, e.svc.Permissions.AssignRoleMenu(ctx, dto.AssignRoleMenuRequest{RoleID: role.ID, PermCodes: []string{"user:list", "user:edit"}}))

	codes, err := e.svc.Users.AuthCodes(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user:list", "user:edit"}, codes)

	n, err := e.svc.Roles.Delete(ctx, []int64{role.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	left, err := e.svc.Permissions.ListRoleResources(ctx, role.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestListPaginationDefaults(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	for _, n := range []string{"a1", "a2", "b1"} {
		_, err := e.svc.Roles.Create(ctx, dto.CreateRoleRequest{RoleName: n})
		require.NoError(t, err)
	}

	page, err := e.svc.Roles.List(ctx, dto.FilterParam[dto.RoleSearch]{Filters: &dto.RoleSearch{RoleName: strPtr("a")}})
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageIndex)
	assert.Equal(t, repository.DefaultPageSize, page.PageSize)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.List, 2)
}

func TestMenuAndDepartmentCRUD(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.Menus.Create(ctx, dto.CreateMenuRequest{MenuName: "Users"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput, "code is required")

	m, err := e.svc.Menus.Create(ctx, dto.CreateMenuRequest{MenuName: "Users", Code: "user:list", MenuType: "M"})
	require.NoError(t, err)
	upd, err := e.svc.Menus.Update(ctx, dto.UpdateMenuRequest{ID: m.ID, CreateMenuRequest: dto.CreateMenuRequest{MenuName: "People", Code: "user:list"}})
	require.NoError(t, err)
	assert.Equal(t, "People", upd.MenuName)

	d, err := e.svc.Departments.Create(ctx, dto.CreateDepartmentRequest{DepartmentName: strPtr("R&D")})
	require.NoError(t, err)
	got, err := e.svc.Departments.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "R&D", *got.DepartmentName)

	n, err := e.svc.Departments.Delete(ctx, []int64{d.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, err = e.svc.Departments.Get(ctx, d.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
