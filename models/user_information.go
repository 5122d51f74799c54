package models

// UserInformation is the identity summary derived once per authenticated
// request from the bearer token claims. It is read-only and request-scoped;
// it is never persisted.
type UserInformation struct {
	// UserID is the token subject ("sub" claim).
	UserID string `json:"user_id"`

	// Name is the display name carried by the token ("name" claim).
	Name string `json:"name"`

	// Roles is the subset of role claims granted to the caller.
	Roles []string `json:"roles,omitempty"`
}
