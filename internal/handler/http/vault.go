package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/models"
)

// getPasswords returns the whole vault. It stands in for the desktop shell's
// get_passwords query.
func (h *Handler) getPasswords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, err := h.vault.Load(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	log.Info().Int("entries", len(creds)).Msg("passwords served")
	writeJSON(w, http.StatusOK, models.PasswordsResponse{
		Passwords: creds,
		Length:    len(creds),
	})
}

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	creds, err := h.vault.Load(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	names := creds.Names()
	writeJSON(w, http.StatusOK, models.AccountsResponse{
		Accounts: names,
		Length:   len(names),
	})
}

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.VersionResponse{
		Version: h.buildInfo.BuildVersion(),
		Commit:  h.buildInfo.BuildCommit(),
		Date:    h.buildInfo.BuildDate(),
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("vault query failed")
	writeError(w, status, app.MessageFor(err))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
