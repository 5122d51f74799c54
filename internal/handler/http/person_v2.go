// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keith Braham

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/krazykeith/apistarter/internal/apperr"
	"github.com/krazykeith/apistarter/internal/service"
	"github.com/krazykeith/apistarter/internal/utils"
	"github.com/krazykeith/apistarter/models"
)

// searchParamsQueryKey is the query-string key carrying the free-text person
// search value.
const searchParamsQueryKey = "searchParams"

// personV2 serves the second-generation person endpoints.
type personV2 struct {
	personBase

	persons service.PersonService
}

func newPersonV2(base personBase, persons service.PersonService) *personV2 {
	return &personV2{personBase: base, persons: persons}
}

// securityTest proves both authentication and identity propagation by
// returning the caller's identity summary resolved from the request context.
func (p *personV2) securityTest(w http.ResponseWriter, r *http.Request) {
	p.invoker.Invoke(w, r, func(ctx context.Context) (any, error) {
		user, ok := utils.GetUserFromContext(ctx)
		if !ok {
			return nil, apperr.ErrUnauthorized
		}

		return user, nil
	})
}

// search runs a free-text person search. The route binds an {id} path
// segment for compatibility with existing clients, but selection is driven
// solely by the searchParams query value; an empty value returns the
// unfiltered result set. Zero matches is a success with an empty array.
func (p *personV2) search(w http.ResponseWriter, r *http.Request) {
	p.invoker.Invoke(w, r, func(ctx context.Context) (any, error) {
		query := r.URL.Query().Get(searchParamsQueryKey)

		persons, err := p.persons.Search(ctx, query)
		if err != nil {
			return nil, err
		}

		return p.mapper.ToViewModels(persons), nil
	})
}

// update creates or updates a person depending on the incoming payload.
//
// Payload without an id: create. The persisted representation, including the
// newly assigned identifier, is returned.
//
// Payload with an id: overlay update. The existing person is fetched (404 if
// absent, never a silent create), the supplied fields are overlaid onto it,
// and the merged person is persisted. Fields the payload omits keep their
// stored values, so partial payloads are valid and idempotent.
func (p *personV2) update(w http.ResponseWriter, r *http.Request) {
	p.invoker.Invoke(w, r, func(ctx context.Context) (any, error) {
		var vm models.PersonViewModel
		if err := json.NewDecoder(r.Body).Decode(&vm); err != nil {
			return nil, apperr.Validationf(models.GeneralErrorKey, "malformed person payload: %s", err)
		}

		if vm.ID == 0 {
			saved, err := p.persons.Save(ctx, p.mapper.ToPerson(vm))
			if err != nil {
				return nil, err
			}

			return p.mapper.ToViewModel(saved), nil
		}

		existing, err := p.persons.GetOne(ctx, vm.ID)
		if err != nil {
			return nil, err
		}

		merged, err := p.mapper.Overlay(vm, existing)
		if err != nil {
			return nil, err
		}

		saved, err := p.persons.Save(ctx, merged)
		if err != nil {
			return nil, err
		}

		return p.mapper.ToViewModel(saved), nil
	})
}
