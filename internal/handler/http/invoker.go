// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keith Braham

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/krazykeith/apistarter/internal/apperr"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/utils"
	"github.com/krazykeith/apistarter/models"
)

// ProducerFunc computes the payload of a single endpoint invocation. It
// either returns a serializable value (booleans included; a "nothing useful
// to say" endpoint still returns a body) or fails with an error classified
// by the internal/apperr taxonomy. Producers must honor ctx cancellation.
type ProducerFunc func(ctx context.Context) (any, error)

// Invoker executes producer functions and converts their outcome into an
// HTTP response. It is the only component allowed to map failures to status
// codes, so every endpoint gets identical error behavior:
//
//   - success             → 200, JSON-serialized value
//   - apperr.NotFoundError   → 404, APIError naming the resource and id
//   - apperr.ValidationError → 400, APIError with the per-field messages
//   - apperr.ErrUnauthorized → 401, minimal body
//   - apperr.ErrForbidden    → 403, minimal body
//   - anything else       → 500, generic APIError; the failure detail is
//     logged server-side and echoed to the caller only in development
//
// The Invoker holds no mutable state and is safe for concurrent use.
type Invoker struct {
	development bool
}

// NewInvoker constructs an Invoker. development controls whether unclassified
// failure detail is included in 500 responses.
func NewInvoker(development bool) *Invoker {
	return &Invoker{development: development}
}

// Invoke runs produce with the request context and writes its outcome.
//
// If the request context is already done when produce returns (client
// disconnect, server timeout), no response is written: there is nobody left
// to read it.
func (i *Invoker) Invoke(w http.ResponseWriter, r *http.Request, produce ProducerFunc) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	value, err := produce(ctx)

	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug().AnErr("cause", ctxErr).Msg("request abandoned, skipping response write")
		return
	}

	if err == nil {
		if _, writeErr := utils.WriteJSON(w, value, http.StatusOK); writeErr != nil {
			log.Err(writeErr).Msg("error writing response body")
		}
		return
	}

	var notFound *apperr.NotFoundError
	var validation *apperr.ValidationError

	switch {
	case errors.As(err, &notFound):
		log.Debug().Err(err).Msg("resource not found")
		i.writeAPIError(w, log, models.NewGeneralAPIError(http.StatusNotFound, notFound.Error()))

	case errors.As(err, &validation):
		log.Debug().Err(err).Msg("request failed validation")
		i.writeAPIError(w, log, models.NewValidationAPIError(validation.Fields))

	case errors.Is(err, apperr.ErrUnauthorized):
		log.Debug().Err(err).Msg("unauthorized")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)

	case errors.Is(err, apperr.ErrForbidden):
		log.Debug().Err(err).Msg("forbidden")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)

	default:
		// Full detail stays in the server log. Callers outside development
		// only ever see the generic message.
		log.Err(err).Msg("unclassified failure")

		messages := []string{"internal server error"}
		if i.development {
			messages = append(messages, err.Error())
		}
		i.writeAPIError(w, log, models.NewGeneralAPIError(http.StatusInternalServerError, messages...))
	}
}

func (i *Invoker) writeAPIError(w http.ResponseWriter, log *logger.Logger, apiError models.APIError) {
	if _, err := utils.WriteJSON(w, apiError, apiError.Status); err != nil {
		log.Err(err).Msg("error writing error response body")
	}
}
