package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/rbac-admin/internal/app"
	"github.com/dropDatabas3/rbac-admin/internal/store"
	"github.com/dropDatabas3/rbac-admin/internal/store/gormstore"
	mysqlmig "github.com/dropDatabas3/rbac-admin/migrations/mysql"
	pgmig "github.com/dropDatabas3/rbac-admin/migrations/postgres"
)

func newMigrateCmd(o *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de esquema",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
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

			var files fs.FS
			switch o.cfg.Storage.Driver {
			case "postgres":
				files = pgmig.FS
			case "mysql":
				files = mysqlmig.FS
			case "sqlite":
				if err := gormstore.New(db).AutoMigrate(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "sqlite: automigrate ok")
				return nil
			default:
				return fmt.Errorf("migrate: driver %q not supported", o.cfg.Storage.Driver)
			}

			res, err := store.NewMigrator(files, ".").Run(ctx, db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied=%v skipped=%v in %s\n", res.Applied, res.Skipped, res.Duration)
			return nil
		},
	})
	return cmd
}
