package models

// PersonViewModel is the externally facing shape of a person resource.
// It is intentionally decoupled from [Person]: API versions may evolve the
// view-model without touching the persisted shape.
//
// A zero ID marks the payload as a creation request; a non-zero ID selects
// the overlay-update path, where only the fields present in the payload
// replace the stored values.
type PersonViewModel struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
