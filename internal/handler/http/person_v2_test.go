// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keith Braham

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/mapper"
	"github.com/krazykeith/apistarter/internal/service"
	"github.com/krazykeith/apistarter/internal/store"
	"github.com/krazykeith/apistarter/internal/utils"
	"github.com/krazykeith/apistarter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPersonV2 wires a v2 person handler against the in-memory repository,
// so update/search behavior is observable end to end.
func newTestPersonV2(t *testing.T) *personV2 {
	t.Helper()

	log := logger.Nop()
	base := personBase{
		invoker: NewInvoker(false),
		mapper:  mapper.NewPersonMapper(),
	}

	return newPersonV2(base, service.NewPersonService(store.NewMemoryPersonRepository(log), log))
}

func postUpdate(t *testing.T, p *personV2, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v2/person/update", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	p.update(rr, req)
	return rr
}

func decodePersonViewModel(t *testing.T, rr *httptest.ResponseRecorder) models.PersonViewModel {
	t.Helper()

	var vm models.PersonViewModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vm))
	return vm
}

// ---- Update: creation ----

func TestPersonV2_Update_CreateAssignsIdentifier(t *testing.T) {
	p := newTestPersonV2(t)

	rr := postUpdate(t, p, models.PersonViewModel{FirstName: "Grace", LastName: "Hopper"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	created := decodePersonViewModel(t, rr)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Grace", created.FirstName)
	assert.Equal(t, "Hopper", created.LastName)
}

func TestPersonV2_Update_CreateTwiceYieldsDistinctIdentifiers(t *testing.T) {
	p := newTestPersonV2(t)
	payload := models.PersonViewModel{FirstName: "Twin", LastName: "Entry"}

	first := decodePersonViewModel(t, postUpdate(t, p, payload))
	second := decodePersonViewModel(t, postUpdate(t, p, payload))

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID, "identical payloads without ids must create two entities")
}

// ---- Update: overlay semantics ----

func TestPersonV2_Update_UnknownIdentifierYields404(t *testing.T) {
	p := newTestPersonV2(t)

	rr := postUpdate(t, p, models.PersonViewModel{ID: 12345, FirstName: "Nobody"})
	require.Equal(t, http.StatusNotFound, rr.Code)

	var apiError models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiError))
	require.Contains(t, apiError.Errors, models.GeneralErrorKey)
	assert.Contains(t, apiError.Errors[models.GeneralErrorKey][0], "person")
	assert.Contains(t, apiError.Errors[models.GeneralErrorKey][0], "12345")
}

func TestPersonV2_Update_PartialPayloadPreservesOmittedFields(t *testing.T) {
	p := newTestPersonV2(t)

	created := decodePersonViewModel(t, postUpdate(t, p, models.PersonViewModel{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
		Phone:     "555-0100",
	}))

	// Partial payload carrying only a new email.
	partial := models.PersonViewModel{ID: created.ID, Email: "turing@example.com"}

	updated := decodePersonViewModel(t, postUpdate(t, p, partial))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "turing@example.com", updated.Email)
	assert.Equal(t, "Alan", updated.FirstName, "omitted field must keep its stored value")
	assert.Equal(t, "Turing", updated.LastName)
	assert.Equal(t, "555-0100", updated.Phone)

	// Applying the same partial payload twice yields the same final state.
	again := decodePersonViewModel(t, postUpdate(t, p, partial))
	assert.Equal(t, updated, again)
}

func TestPersonV2_Update_MalformedPayloadIsValidationFailure(t *testing.T) {
	p := newTestPersonV2(t)

	req := httptest.NewRequest(http.MethodPost, "/v2/person/update", bytes.NewReader([]byte(`{"firstName": `)))
	rr := httptest.NewRecorder()
	p.update(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var apiError models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiError))
	assert.Contains(t, apiError.Errors, models.GeneralErrorKey)
}

func TestPersonV2_Update_InvalidFieldIsValidationFailure(t *testing.T) {
	p := newTestPersonV2(t)

	rr := postUpdate(t, p, models.PersonViewModel{Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var apiError models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiError))
	assert.Contains(t, apiError.Errors, "email")
}

// ---- Search ----

func TestPersonV2_Search_EmptyQueryReturnsAll(t *testing.T) {
	p := newTestPersonV2(t)

	postUpdate(t, p, models.PersonViewModel{FirstName: "One"})
	postUpdate(t, p, models.PersonViewModel{FirstName: "Two"})

	req := httptest.NewRequest(http.MethodGet, "/v2/person/search/0", nil)
	rr := httptest.NewRecorder()
	p.search(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var results []models.PersonViewModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
	assert.Len(t, results, 2)
}

func TestPersonV2_Search_NoMatchesIsEmptyArrayNot404(t *testing.T) {
	p := newTestPersonV2(t)

	req := httptest.NewRequest(http.MethodGet, "/v2/person/search/0?searchParams=nomatch", nil)
	rr := httptest.NewRecorder()
	p.search(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestPersonV2_Search_FiltersBySearchParams(t *testing.T) {
	p := newTestPersonV2(t)

	postUpdate(t, p, models.PersonViewModel{FirstName: "Grace", LastName: "Hopper"})
	postUpdate(t, p, models.PersonViewModel{FirstName: "Alan", LastName: "Turing"})

	req := httptest.NewRequest(http.MethodGet, "/v2/person/search/0?searchParams=grace", nil)
	rr := httptest.NewRecorder()
	p.search(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var results []models.PersonViewModel
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Grace", results[0].FirstName)
}

// ---- securityTest ----

func TestPersonV2_SecurityTest_ReturnsCallerIdentity(t *testing.T) {
	p := newTestPersonV2(t)

	user := models.UserInformation{UserID: "user-1", Name: "Keith", Roles: []string{"admin"}}
	req := httptest.NewRequest(http.MethodGet, "/v2/person/securitytest", nil)
	req = req.WithContext(utils.WithUser(req.Context(), user))

	rr := httptest.NewRecorder()
	p.securityTest(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.UserInformation
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, user, got)
}

func TestPersonV2_SecurityTest_NoIdentityIs401(t *testing.T) {
	p := newTestPersonV2(t)

	req := httptest.NewRequest(http.MethodGet, "/v2/person/securitytest", nil)
	rr := httptest.NewRecorder()
	p.securityTest(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ---- v1 securityTest ----

func TestPersonV1_SecurityTest_ReturnsTrue(t *testing.T) {
	base := personBase{invoker: NewInvoker(false), mapper: mapper.NewPersonMapper()}
	p := newPersonV1(base)

	req := httptest.NewRequest(http.MethodGet, "/v1/person/securitytest", nil)
	rr := httptest.NewRecorder()
	p.securityTest(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", rr.Body.String())
}
