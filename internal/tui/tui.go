// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive vault browser.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vikeypass/internal/clipboard"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/internal/service"
	"github.com/MKhiriev/vikeypass/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	svc       service.VaultService
	exposer   clipboard.Exposer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(svc service.VaultService, exposer clipboard.Exposer, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		svc:       svc,
		exposer:   exposer,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run shows creds until the user quits. Any secret still on the clipboard
// is cleared before Run returns.
func (t *TUI) Run(ctx context.Context, creds models.CredentialMap) error {
	model := newVaultModel(ctx, t.svc, creds, t.buildInfo)
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	if err := t.exposer.Flush(); err != nil {
		t.logger.Error().Err(err).Msg("clipboard flush on exit failed")
	}

	if runErr != nil {
		return fmt.Errorf("run tui: %w", runErr)
	}
	return nil
}
