// Package apperr defines the closed failure taxonomy shared by all business
// logic in the application.
//
// Collaborators (services, repositories, validators) return one of these
// classified errors instead of mapping failures to transport concerns
// themselves. The HTTP invoker is the single point where the taxonomy is
// translated into status codes and response payloads; an error of any other
// shape crossing that boundary is treated as unclassified and surfaced as an
// internal server error.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures that carry no additional payload.
// Callers should match against them with [errors.Is].
var (
	// ErrUnauthorized indicates that the request carries no usable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates that an identity is present but insufficient
	// for the requested operation.
	ErrForbidden = errors.New("forbidden")
)

// NotFoundError reports that a named resource with a given identifier does
// not exist. Resource is the domain name of the entity (e.g. "person") and
// ID its requested identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q was not found", e.Resource, e.ID)
}

// NotFound builds a [NotFoundError] for the given resource and identifier.
func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}

// IsNotFound reports whether err is (or wraps) a [NotFoundError].
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// ValidationError reports that caller-supplied input failed domain rules.
// Fields maps the offending field name to one or more messages; messages
// that apply to the payload as a whole are keyed by the "general" sentinel
// field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Validation builds a [ValidationError] from a field-to-messages mapping.
func Validation(fields map[string][]string) error {
	return &ValidationError{Fields: fields}
}

// Validationf builds a [ValidationError] with a single message attached to
// the given field.
func Validationf(field, format string, args ...any) error {
	return &ValidationError{
		Fields: map[string][]string{field: {fmt.Sprintf(format, args...)}},
	}
}

// IsValidation reports whether err is (or wraps) a [ValidationError].
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}
