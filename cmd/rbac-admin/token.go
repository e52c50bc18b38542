package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/rbac-admin/internal/oauth2client"
)

func newTokenCmd(o *rootOpts) *cobra.Command {
	var user, pass string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Pide un token al authorization server externo (grant password)",
		RunE: func(cmd *cobra.Command, args []string) error {
			oc := o.cfg.OAuth2
			c := oauth2client.New(oc.TokenEndpoint, oc.ClientID, oc.ClientSecret)
			tr, err := c.RequestToken(cmd.Context(), user, pass)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tr)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "usuario")
	cmd.Flags().StringVar(&pass, "password", "", "password")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
