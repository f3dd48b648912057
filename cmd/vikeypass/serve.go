package main

import (
	"fmt"

	"github.com/MKhiriev/vikeypass/internal/config"
	"github.com/spf13/cobra"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the vault read-only over HTTP on a loopback address",
		Long: `Serve the decrypted vault to local tools over HTTP. The listener only accepts
loopback addresses, and every request must carry the bearer token printed at
startup. A new token is generated on each run.

  GET /api/passwords  account names and secrets
  GET /api/accounts   account names only
  GET /api/version    build information, no token required`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context(), func(addr, token string) {
				fmt.Fprintf(cmd.ErrOrStderr(), "listening on http://%s\nAuthorization: Bearer %s\n", addr, token)
			})
		},
	}
	config.BindServerFlags(cmd.Flags(), c.overrides)

	return cmd
}
