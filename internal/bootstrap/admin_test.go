package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dropDatabas3/rbac-admin/internal/domain/repository"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/security/password"
	"github.com/dropDatabas3/rbac-admin/internal/store/gormstore"
)

var fastHash = password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

func newDeps(t *testing.T) (Deps, *gormstore.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	st := gormstore.New(db)
	require.NoError(t, st.AutoMigrate(context.Background()))
	return Deps{Users: st.Users(), Roles: st.Roles(), Resolver: rbac.NewResolver(st.RBAC(), st.Menus())}, st
}

func TestEnsureAdminCreatesOnce(t *testing.T) {
	d, st := newDeps(t)
	ctx := context.Background()
	cfg := AdminBootstrapConfig{UserName: "admin", Password: "123456", PermCodes: []string{"user:list", "role:list"}, Params: fastHash}

	res, err := EnsureAdmin(ctx, d, cfg)
	require.NoError(t, err)
	assert.True(t, res.UserCreated)
	assert.True(t, res.RoleCreated)

	cred, err := st.Users().GetCredential(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, password.Verify("123456", cred.PasswordHash))

	codes, err := d.Resolver.UserPermissionCodes(ctx, res.UserID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user:list", "role:list"}, codes)

	again, err := EnsureAdmin(ctx, d, cfg)
	require.NoError(t, err)
	assert.False(t, again.UserCreated)
	assert.False(t, again.RoleCreated)
	assert.Equal(t, res.UserID, again.UserID)
	assert.Equal(t, res.RoleID, again.RoleID)
}

func TestEnsureAdminValidation(t *testing.T) {
	d, _ := newDeps(t)
	ctx := context.Background()

	_, err := EnsureAdmin(ctx, d, AdminBootstrapConfig{Password: "x"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = EnsureAdmin(ctx, d, AdminBootstrapConfig{UserName: "root"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}
