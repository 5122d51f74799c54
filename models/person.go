package models

import "time"

// Person is the persisted domain representation of a person resource.
// It is never serialized to API clients directly; the HTTP layer exposes
// [PersonViewModel] instead and converts between the two through the mapper.
//
// Validation tags are enforced by internal/validators before persistence;
// the JSON tags double as the field names under which violations are
// reported, matching the view-model payload the caller sent.
type Person struct {
	// PersonID is the internal unique identifier assigned by the
	// repository on first save. Zero means "not yet persisted".
	PersonID int64 `json:"-"`

	// FirstName is the person's given name.
	FirstName string `json:"firstName" validate:"omitempty,max=100"`

	// LastName is the person's family name.
	LastName string `json:"lastName" validate:"omitempty,max=100"`

	// Email is the person's contact e-mail address.
	Email string `json:"email" validate:"omitempty,email"`

	// Phone is the person's contact phone number. Optional.
	Phone string `json:"phone" validate:"omitempty,max=32"`

	// CreatedAt is set by the repository when the record is first saved.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is refreshed by the repository on every save.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Person model.
func (p Person) TableName() string {
	return "persons"
}

// ResourceName is the domain name used when reporting that a person
// with a given identifier does not exist.
func (p Person) ResourceName() string {
	return "person"
}
