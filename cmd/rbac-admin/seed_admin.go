package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/rbac-admin/internal/app"
	"github.com/dropDatabas3/rbac-admin/internal/bootstrap"
	"github.com/dropDatabas3/rbac-admin/internal/rbac"
	"github.com/dropDatabas3/rbac-admin/internal/store"
	"github.com/dropDatabas3/rbac-admin/internal/store/gormstore"
)

func newSeedAdminCmd(o *rootOpts) *cobra.Command {
	var (
		userName = "admin"
		pass     = os.Getenv("SEED_ADMIN_PASSWORD")
		roleName = "admin"
		perms    []string
	)
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea el rol y el usuario administrador si no existen",
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.cfg.Storage.DSN == "" {
				return errors.New("storage.dsn is required (DATABASE_URL)")
			}
			ctx := cmd.Context()
			db, err := app.OpenStore(ctx, o.cfg)
			if err != nil {
				return err
			}
			defer store.Close(db)

			st := gormstore.New(db)
			if o.cfg.Storage.Driver == "sqlite" {
				if err := st.AutoMigrate(ctx); err != nil {
					return err
				}
			}
			res, err := bootstrap.EnsureAdmin(ctx, bootstrap.Deps{
				Users:    st.Users(),
				Roles:    st.Roles(),
				Resolver: rbac.NewResolver(st.RBAC(), st.Menus()),
			}, bootstrap.AdminBootstrapConfig{
				UserName:  userName,
				Password:  pass,
				RoleName:  roleName,
				PermCodes: perms,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user_id=%d role_id=%d user_created=%t role_created=%t\n",
				res.UserID, res.RoleID, res.UserCreated, res.RoleCreated)
			return nil
		},
	}
	cmd.Flags().StringVar(&userName, "user", userName, "nombre del usuario admin")
	cmd.Flags().StringVar(&pass, "password", pass, "password inicial (env SEED_ADMIN_PASSWORD)")
	cmd.Flags().StringVar(&roleName, "role", roleName, "nombre del rol")
	cmd.Flags().StringSliceVar(&perms, "perm", nil, "perm codes del rol (repetible)")
	return cmd
}
