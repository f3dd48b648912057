package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/vikeypass/internal/client"
	"github.com/MKhiriev/vikeypass/internal/config"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errPassphraseMismatch = errors.New("passphrases do not match")

// cli is the state shared by all subcommands of one invocation.
type cli struct {
	buildInfo models.AppBuildInfo
	overrides *config.StructuredConfig
	opts      []client.Option

	cfg      *config.ClientConfig
	app      *client.App
	logger   *logger.Logger
	closeLog func() error

	stdin *bufio.Reader
}

func newRootCmd(buildInfo models.AppBuildInfo, opts ...client.Option) *cobra.Command {
	c := &cli{buildInfo: buildInfo, opts: opts}

	rootCmd := &cobra.Command{
		Use:   "vikeypass",
		Short: "Local encrypted password vault",
		Long: `vikeypass keeps account secrets in one encrypted file. The master key is
held by the operating system's credential store, and secrets copied to the
clipboard are cleared again after a short window.

Run without a subcommand to browse the vault interactively.`,
		Version:           buildInfo.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context())
		},
	}
	c.overrides = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		c.newInitCmd(),
		c.newMasterKeyCmd(),
		c.newListCmd(),
		c.newAddCmd(),
		c.newEditCmd(),
		c.newDeleteCmd(),
		c.newCopyCmd(),
		c.newPathCmd(),
		c.newServeCmd(),
		c.newMigrateCmd(),
	)

	return rootCmd
}

// setup resolves configuration and assembles the application before any
// command body runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(c.overrides)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger, c.closeLog = logger.NewClientLogger("vikeypass", cfg.Log.Level, cfg.Log.Path)
	c.logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")
	c.app = client.NewApp(cfg, c.buildInfo, c.logger, c.opts...)
	c.stdin = bufio.NewReader(cmd.InOrStdin())
	return nil
}

func (c *cli) teardown() error {
	if c.closeLog == nil {
		return nil
	}
	return c.closeLog()
}

// readSecret reads one secret from stdin. On a terminal the input is not
// echoed; otherwise a single line is consumed.
func (c *cli) readSecret(cmd *cobra.Command, prompt string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(b), nil
	}

	line, err := c.stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readNewSecret is like readSecret but asks twice on a terminal.
func (c *cli) readNewSecret(cmd *cobra.Command, prompt string) (string, error) {
	first, err := c.readSecret(cmd, prompt)
	if err != nil {
		return "", err
	}

	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return first, nil
	}

	second, err := c.readSecret(cmd, "Repeat: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPassphraseMismatch
	}
	return first, nil
}
