package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vikeypass/internal/crypto"
	"github.com/MKhiriev/vikeypass/internal/keyring"
	"github.com/MKhiriev/vikeypass/internal/store"
)

// errorStatuses is checked in order.
var errorStatuses = []struct {
	err    error
	status int
}{
	{keyring.ErrCredentialStore, http.StatusServiceUnavailable},
	{crypto.ErrDecryption, http.StatusForbidden},
	{crypto.ErrCorruptDatabase, http.StatusInternalServerError},
	{store.ErrVaultFileNotFound, http.StatusNotFound},
	{store.ErrPermissionDenied, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
