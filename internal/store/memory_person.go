package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/krazykeith/apistarter/internal/logger"
	"github.com/krazykeith/apistarter/models"
)

// memoryPersonRepository is an in-memory implementation of
// [PersonRepository] used when no database DSN is configured (development
// and tests). It mirrors the PostgreSQL repository's contract: identifiers
// are assigned on first save, timestamps are maintained on every save, and
// search is a case-insensitive substring match.
type memoryPersonRepository struct {
	mu      sync.RWMutex
	persons map[int64]models.Person
	nextID  int64

	logger *logger.Logger
}

// NewMemoryPersonRepository constructs an empty in-memory person store.
func NewMemoryPersonRepository(logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating in-memory person repository")
	return &memoryPersonRepository{
		persons: make(map[int64]models.Person),
		nextID:  1,
		logger:  logger,
	}
}

func (r *memoryPersonRepository) Search(ctx context.Context, query string) ([]models.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	persons := make([]models.Person, 0, len(r.persons))
	for _, person := range r.persons {
		if needle == "" || matchesPerson(person, needle) {
			persons = append(persons, person)
		}
	}

	sort.Slice(persons, func(i, j int) bool {
		return persons[i].PersonID < persons[j].PersonID
	})

	return persons, nil
}

func (r *memoryPersonRepository) GetOne(ctx context.Context, id int64) (models.Person, error) {
	if err := ctx.Err(); err != nil {
		return models.Person{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.persons[id]
	if !ok {
		return models.Person{}, ErrPersonNotFound
	}

	return person, nil
}

func (r *memoryPersonRepository) Save(ctx context.Context, person models.Person) (models.Person, error) {
	if err := ctx.Err(); err != nil {
		return models.Person{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	if person.PersonID == 0 {
		person.PersonID = r.nextID
		r.nextID++
		person.CreatedAt = now
	} else {
		existing, ok := r.persons[person.PersonID]
		if !ok {
			return models.Person{}, ErrPersonNotFound
		}
		person.CreatedAt = existing.CreatedAt
	}

	person.UpdatedAt = now
	r.persons[person.PersonID] = person

	return person, nil
}

func matchesPerson(person models.Person, needle string) bool {
	return strings.Contains(strings.ToLower(person.FirstName), needle) ||
		strings.Contains(strings.ToLower(person.LastName), needle) ||
		strings.Contains(strings.ToLower(person.Email), needle)
}
