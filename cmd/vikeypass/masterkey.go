package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/spf13/cobra"
)

var errKeyInUse = errors.New("a vault encrypted with the current master key exists; pass --force to replace the key anyway")

func (c *cli) newMasterKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master-key",
		Short: "Manage the master key in the system credential store",
	}
	cmd.AddCommand(
		c.newMasterKeySetCmd(),
		c.newMasterKeyDeleteCmd(),
		c.newMasterKeyStatusCmd(),
	)
	return cmd
}

func (c *cli) newMasterKeySetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a master key passphrase",
		Long: `Store the master key passphrase in the system credential store. It is read
from the terminal without echo, or as one line from stdin.

Replacing the key makes an existing vault unreadable, so that needs --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				inUse, err := c.keyInUse(cmd)
				if err != nil {
					return err
				}
				if inUse {
					return errKeyInUse
				}
			}

			passphrase, err := c.readNewSecret(cmd, "Master key: ")
			if err != nil {
				return err
			}
			if err = c.app.Vault.SetMasterKey(cmd.Context(), passphrase); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgMasterKeySet)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Replace the key even if a vault already uses it")

	return cmd
}

// keyInUse reports whether a key is stored and a vault file exists.
func (c *cli) keyInUse(cmd *cobra.Command) (bool, error) {
	present, err := c.app.Vault.MasterKeyStatus(cmd.Context())
	if err != nil || !present {
		return false, err
	}
	return c.app.Vault.VaultExists(cmd.Context())
}

func (c *cli) newMasterKeyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove the master key from the system credential store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Vault.DeleteMasterKey(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgMasterKeyDeleted)
			return nil
		},
	}
}

func (c *cli) newMasterKeyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a master key is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			present, err := c.app.Vault.MasterKeyStatus(cmd.Context())
			if err != nil {
				return err
			}
			if present {
				fmt.Fprintln(cmd.OutOrStdout(), "master key: set")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "master key: not set")
			}
			return nil
		},
	}
}
