package models

import "net/http"

// GeneralErrorKey is the sentinel field name under which failure messages
// that are not tied to a specific input field are reported.
const GeneralErrorKey = "general"

// APIError is the serializable failure payload returned to API clients.
// It maps a field name (or [GeneralErrorKey]) to one or more human-readable
// messages and carries the overall HTTP status of the response.
//
// APIError values are constructed only by the request invoker when it
// classifies a failure; handlers never build them directly.
type APIError struct {
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// NewGeneralAPIError builds an APIError whose messages are attached to
// [GeneralErrorKey].
func NewGeneralAPIError(status int, messages ...string) APIError {
	return APIError{
		Status: status,
		Errors: map[string][]string{GeneralErrorKey: messages},
	}
}

// NewValidationAPIError builds a 400 APIError from a field-to-messages mapping.
// The map is copied so later mutation by the caller cannot leak into an
// already written response.
func NewValidationAPIError(fieldErrors map[string][]string) APIError {
	errs := make(map[string][]string, len(fieldErrors))
	for field, messages := range fieldErrors {
		errs[field] = append([]string(nil), messages...)
	}

	return APIError{
		Status: http.StatusBadRequest,
		Errors: errs,
	}
}
