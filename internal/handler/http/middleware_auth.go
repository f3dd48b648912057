package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/vikeypass/internal/app"
	"github.com/MKhiriev/vikeypass/internal/logger"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that admits only requests carrying the bearer
// token issued when the server started.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not a bearer credential ([ErrInvalidAuthorizationHeader]
//     or [ErrEmptyToken]).
//   - The token differs from the issued one ([ErrWrongToken]).
//
// The comparison runs in constant time. Rejections are logged without the
// offered token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			writeError(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		if h.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			log.Warn().Err(ErrWrongToken).Send()
			writeError(w, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form:
//
//	Authorization: Bearer 3q2-7w...
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
