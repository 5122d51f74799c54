package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/krazykeith/apistarter/internal/apperr"
	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/internal/store"
	"github.com/krazykeith/apistarter/internal/validators"
	"github.com/krazykeith/apistarter/models"
)

// personService is the concrete implementation of [PersonService].
// It validates incoming persons and delegates persistence to a
// [store.PersonRepository], translating the repository's not-found sentinel
// into the classified taxonomy consumed by the HTTP invoker.
type personService struct {
	personRepository store.PersonRepository
	validator        *validators.PersonValidator
	logger           *logger.Logger
}

// NewPersonService constructs a PersonService wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPersonService(personRepository store.PersonRepository, logger *logger.Logger) PersonService {
	return &personService{
		personRepository: personRepository,
		validator:        validators.NewPersonValidator(),
		logger:           logger,
	}
}

// Search delegates to the repository's free-text search.
func (s *personService) Search(ctx context.Context, query string) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	persons, err := s.personRepository.Search(ctx, query)
	if err != nil {
		log.Err(err).Str("query", query).Msg("person search failed")
		return nil, fmt.Errorf("person search failed: %w", err)
	}

	return persons, nil
}

// GetOne retrieves a person by identifier, classifying a missing record as
// a not-found failure naming the resource and the requested id.
func (s *personService) GetOne(ctx context.Context, id int64) (models.Person, error) {
	log := logger.FromContext(ctx)

	person, err := s.personRepository.GetOne(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			return models.Person{}, apperr.NotFound(models.Person{}.ResourceName(), id)
		}

		log.Err(err).Int64("person_id", id).Msg("person lookup failed")
		return models.Person{}, fmt.Errorf("person lookup failed: %w", err)
	}

	return person, nil
}

// Save validates the person and persists it. Validation failures surface as
// classified validation errors carrying per-field messages.
func (s *personService) Save(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(person); err != nil {
		log.Debug().Err(err).Msg("person failed validation")
		return models.Person{}, err
	}

	saved, err := s.personRepository.Save(ctx, person)
	if err != nil {
		// The update path can lose a race with a concurrent delete.
		if errors.Is(err, store.ErrPersonNotFound) {
			return models.Person{}, apperr.NotFound(models.Person{}.ResourceName(), person.PersonID)
		}

		// A duplicate e-mail is caller input, not a server fault.
		if errors.Is(err, store.ErrEmailAlreadyRegistered) {
			return models.Person{}, apperr.Validationf("email", "is already registered")
		}

		log.Err(err).Int64("person_id", person.PersonID).Msg("person save failed")
		return models.Person{}, fmt.Errorf("person save failed: %w", err)
	}

	return saved, nil
}
