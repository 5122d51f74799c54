// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keith Braham

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] meant to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default is to answer 405 Method Not Allowed whenever a path matches a
// registered route but the method does not. This handler answers 404 Not
// Found instead, hiding the existence of the route from callers probing with
// unsupported methods. If the requested method IS registered for the matched
// route, the request is forwarded to the router's normal pipeline.
//
// The lookup compares each registered route pattern against the raw request
// path; parameterised or wildcard segments are not expanded during this
// check, so such routes always fall through to the 404 branch here.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		// Search for a route whose pattern exactly matches the requested path.
		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		// Return 404 instead of the default 405 to avoid leaking route existence.
		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
