package http

import (
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/internal/service"
	"github.com/MKhiriev/vikeypass/models"
)

type Handler struct {
	vault     service.VaultService
	token     string
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler returns a Handler that accepts requests carrying token as a
// bearer credential.
func NewHandler(vault service.VaultService, token string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		vault:     vault,
		token:     token,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
