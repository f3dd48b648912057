package client

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/vikeypass/internal/clipboard"
	"github.com/MKhiriev/vikeypass/internal/config"
	"github.com/MKhiriev/vikeypass/internal/crypto"
	httphandler "github.com/MKhiriev/vikeypass/internal/handler/http"
	"github.com/MKhiriev/vikeypass/internal/keyring"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/internal/server"
	"github.com/MKhiriev/vikeypass/internal/service"
	"github.com/MKhiriev/vikeypass/internal/store"
	"github.com/MKhiriev/vikeypass/internal/tui"
	"github.com/MKhiriev/vikeypass/models"
)

const tokenBytes = 32

// App is the assembled vikeypass runtime.
type App struct {
	Vault   service.VaultService
	Exposer clipboard.Exposer

	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

type deps struct {
	board   clipboard.Board
	backend keyring.Backend
	codec   crypto.Codec
}

// Option replaces one of the OS-facing dependencies.
type Option func(*deps)

// WithBoard replaces the system clipboard.
func WithBoard(b clipboard.Board) Option {
	return func(d *deps) { d.board = b }
}

// WithKeyringBackend replaces the OS keyring.
func WithKeyringBackend(b keyring.Backend) Option {
	return func(d *deps) { d.backend = b }
}

// WithCodec replaces the vault cipher.
func WithCodec(c crypto.Codec) Option {
	return func(d *deps) { d.codec = c }
}

// NewApp builds the runtime from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) *App {
	d := deps{
		board: clipboard.SystemBoard{},
		codec: crypto.NewCodec(),
	}
	for _, opt := range opts {
		opt(&d)
	}

	keyringOpts := keyring.Options{Service: cfg.Keyring.Service, User: cfg.Keyring.User}
	var custodian keyring.Custodian
	if d.backend != nil {
		custodian = keyring.NewCustodianWithBackend(keyringOpts, d.backend, log)
	} else {
		custodian = keyring.NewCustodian(keyringOpts, log)
	}

	storage := store.NewVaultFileStorage(store.Options{FilePath: cfg.Vault.FilePath}, custodian, d.codec, log)
	exposer := clipboard.NewManager(d.board, log)

	return &App{
		Vault:     service.NewVaultService(storage, custodian, exposer, cfg.Clipboard.Window, log),
		Exposer:   exposer,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context) error {
	creds, err := a.Vault.Load(ctx)
	if err != nil {
		return fmt.Errorf("open vault: %w", err)
	}

	return tui.New(a.Vault, a.Exposer, a.buildInfo, a.logger).Run(ctx, creds)
}

// Serve implements [Client]. A fresh bearer token is generated for every
// run.
func (a *App) Serve(ctx context.Context, ready func(addr, token string)) error {
	token, err := generateToken()
	if err != nil {
		return fmt.Errorf("generate bearer token: %w", err)
	}

	handler := httphandler.NewHandler(a.Vault, token, a.buildInfo, a.logger)
	srv, err := server.NewServer(handler.Init(), a.cfg.Server.Address, a.logger)
	if err != nil {
		return fmt.Errorf("create query server: %w", err)
	}

	if ready != nil {
		ready(srv.Addr(), token)
	}

	return srv.Run(ctx)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
