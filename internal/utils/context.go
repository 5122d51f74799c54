// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, JWT token generation and validation, and signing-key derivation.
package utils

import (
	"context"

	"github.com/krazykeith/apistarter/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authentication middleware stores the
// derived [models.UserInformation] for the current request.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the given identity summary.
func WithUser(ctx context.Context, user models.UserInformation) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated caller's identity summary
// from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — the request was authenticated and the value is present
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.UserInformation, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.UserInformation)
	return user, ok
}
