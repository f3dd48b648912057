package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/spf13/cobra"
)

func (c *cli) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty vault encrypted with the stored master key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Vault.Init(cmd.Context(), force); err != nil {
				return err
			}
			path, _ := c.app.Vault.VaultPath()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.MsgInitialized, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing vault with an empty one")

	return cmd
}

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print account names",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := c.app.Vault.Load(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range creds.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <account>",
		Short: "Add an account, replacing any existing secret",
		Long:  "Add an account. The secret is read from the terminal without echo, or as one line from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := c.app.Vault.Load(cmd.Context())
			if err != nil {
				return err
			}
			secret, err := c.readNewSecret(cmd, "Secret for "+args[0]+": ")
			if err != nil {
				return err
			}
			if err = c.app.Vault.Add(cmd.Context(), creds, args[0], secret); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], app.MsgAdded)
			return nil
		},
	}
}

func (c *cli) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <account>",
		Short: "Replace the secret of an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := c.app.Vault.Load(cmd.Context())
			if err != nil {
				return err
			}
			secret, err := c.readNewSecret(cmd, "New secret for "+args[0]+": ")
			if err != nil {
				return err
			}
			if err = c.app.Vault.Edit(cmd.Context(), creds, args[0], secret); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], app.MsgEdited)
			return nil
		},
	}
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <account>",
		Aliases: []string{"rm"},
		Short:   "Remove an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := c.app.Vault.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err = c.app.Vault.Delete(cmd.Context(), creds, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], app.MsgDeleted)
			return nil
		},
	}
}

func (c *cli) newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <account>",
		Short: "Copy a secret to the clipboard and clear it after the window",
		Long: `Copy a secret to the clipboard. The command stays in the foreground until
the clipboard is cleared; interrupting it clears the clipboard at once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			creds, err := c.app.Vault.Load(ctx)
			if err != nil {
				return err
			}
			if err = c.app.Vault.Copy(ctx, creds, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, clearing in %s\n", args[0], app.MsgCopied, c.cfg.Clipboard.Window)

			cleared := make(chan struct{})
			go func() {
				c.app.Exposer.Wait()
				close(cleared)
			}()

			select {
			case <-cleared:
				return nil
			case <-ctx.Done():
				return c.app.Exposer.Flush()
			}
		},
	}
}

func (c *cli) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the vault file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.app.Vault.VaultPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func (c *cli) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <legacy-file>",
		Short: "Import entries from a vault written by the old CBC format",
		Long: `Decrypt a legacy vault with the stored master key and merge its entries into
the current vault. Entries with the same account name are overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := c.app.Vault.Load(cmd.Context())
			if err != nil {
				return err
			}
			n, err := c.app.Vault.Import(cmd.Context(), creds, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d account(s) from %s\n", n, args[0])
			return nil
		},
	}
}
