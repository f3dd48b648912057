package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "Bearer   abc ", want: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer  ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		issued     string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{"valid token", "tok", "Bearer tok", http.StatusOK, true},
		{"missing header", "tok", "", http.StatusUnauthorized, false},
		{"wrong token", "tok", "Bearer other", http.StatusUnauthorized, false},
		{"prefix of token", "tok", "Bearer to", http.StatusUnauthorized, false},
		{"no token issued", "", "Bearer ", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{token: tt.issued, logger: logger.Nop()}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/passwords", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
