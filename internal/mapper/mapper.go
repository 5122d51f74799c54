// Package mapper converts between the persisted person shape and the
// externally facing view-model, including the overlay-update merge used by
// partial update payloads.
package mapper

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/krazykeith/apistarter/models"
)

// ErrMapperMisconfigured is returned by [PersonMapper.ValidateConfiguration]
// when the overlay merge no longer preserves fields absent from the incoming
// payload. Startup treats this as fatal in development and as a warning
// elsewhere.
var ErrMapperMisconfigured = errors.New("person mapper misconfigured: overlay merge does not preserve existing fields")

// PersonMapper maps [models.Person] to and from [models.PersonViewModel].
//
// All dependencies are injected at construction; the mapper performs no
// runtime type lookups and is safe for concurrent use.
type PersonMapper struct{}

// NewPersonMapper constructs a PersonMapper.
func NewPersonMapper() *PersonMapper {
	return &PersonMapper{}
}

// ToViewModel converts a persisted person to its external representation.
func (m *PersonMapper) ToViewModel(person models.Person) models.PersonViewModel {
	return models.PersonViewModel{
		ID:        person.PersonID,
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Email:     person.Email,
		Phone:     person.Phone,
	}
}

// ToViewModels converts a slice of persons. The result is never nil so an
// empty search still serializes as a JSON array.
func (m *PersonMapper) ToViewModels(persons []models.Person) []models.PersonViewModel {
	viewModels := make([]models.PersonViewModel, 0, len(persons))
	for _, person := range persons {
		viewModels = append(viewModels, m.ToViewModel(person))
	}

	return viewModels
}

// ToPerson converts an incoming view-model to the domain shape. Fields the
// view-model does not carry (timestamps) remain zero.
func (m *PersonMapper) ToPerson(vm models.PersonViewModel) models.Person {
	return models.Person{
		PersonID:  vm.ID,
		FirstName: vm.FirstName,
		LastName:  vm.LastName,
		Email:     vm.Email,
		Phone:     vm.Phone,
	}
}

// Overlay merges the fields present on the incoming view-model onto the
// existing entity: non-zero incoming fields replace the stored values, while
// omitted fields keep the existing values. Identity and timestamps always
// come from the existing entity, so applying the same partial payload twice
// yields the same final state.
func (m *PersonMapper) Overlay(vm models.PersonViewModel, existing models.Person) (models.Person, error) {
	incoming := m.ToPerson(vm)

	merged := existing
	if err := mergo.Merge(&merged, incoming, mergo.WithOverride); err != nil {
		return models.Person{}, fmt.Errorf("error overlaying person view-model: %w", err)
	}

	merged.PersonID = existing.PersonID
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = existing.UpdatedAt

	return merged, nil
}

// ValidateConfiguration verifies the overlay invariant on a fully populated
// probe entity: merging an empty payload must change nothing. It is run once
// at startup; see cmd/server for how failures are treated per environment.
func (m *PersonMapper) ValidateConfiguration() error {
	now := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	probe := models.Person{
		PersonID:  1,
		FirstName: "probe-first",
		LastName:  "probe-last",
		Email:     "probe@example.com",
		Phone:     "probe-phone",
		CreatedAt: now,
		UpdatedAt: now,
	}

	merged, err := m.Overlay(models.PersonViewModel{}, probe)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMapperMisconfigured, err)
	}

	if merged != probe {
		return ErrMapperMisconfigured
	}

	return nil
}
