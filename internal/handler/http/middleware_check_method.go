// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches but the method does not. This handler
// answers 404 with the same JSON body as any unknown route. If the method is
// in fact registered for the exact path, the request is handed back to the
// router.
//
// Only exact pattern matches are considered; parameterised or wildcard
// segments are not expanded during this check.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
}
