package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/rbac-admin/internal/config"
	"github.com/dropDatabas3/rbac-admin/internal/observability/logger"

	// registra postgres, mysql y sqlite
	_ "github.com/dropDatabas3/rbac-admin/internal/store/adapters/dal"
)

var version = "dev"

type rootOpts struct {
	configPath string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &rootOpts{configPath: os.Getenv("RBAC_CONFIG")}

	root := &cobra.Command{
		Use:           "rbac-admin",
		Short:         "Backend de administración RBAC (usuarios, roles, menús, departamentos)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env es opcional
			_ = godotenv.Load()

			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			o.cfg = cfg
			logger.Init(logger.Config{
				Env:         cfg.Logging.Env,
				Level:       cfg.Logging.Level,
				File:        cfg.Logging.File,
				ServiceName: "rbac-admin",
				Version:     version,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", o.configPath, "archivo YAML de config (env RBAC_CONFIG)")

	root.AddCommand(
		newServeCmd(o),
		newMigrateCmd(o),
		newHashPasswordCmd(),
		newSeedAdminCmd(o),
		newTokenCmd(o),
	)
	return root
}
