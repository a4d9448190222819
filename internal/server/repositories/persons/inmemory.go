// Package persons holds the person store. The in-memory implementation keeps
// records in insertion order and enforces name uniqueness under a write lock.
package persons

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/personql/internal/common"
	"github.com/dmitrijs2005/personql/internal/server/models"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	persons []models.Person
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.persons)
}

func (r *InMemoryRepository) FindByName(ctx context.Context, name string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	p := r.persons[i].Clone()
	return &p, nil
}

// Create appends person unless its name is already taken.
func (r *InMemoryRepository) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(person.Name) >= 0 {
		return nil, &common.DuplicateNameError{Name: person.Name}
	}

	r.persons = append(r.persons, person.Clone())

	p := person.Clone()
	return &p, nil
}

// UpdatePhone swaps the stored record for a copy carrying the new phone.
func (r *InMemoryRepository) UpdatePhone(ctx context.Context, name, phone string) (*models.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	updated := r.persons[i].WithPhone(phone)
	r.persons[i] = updated

	p := updated.Clone()
	return &p, nil
}

func (r *InMemoryRepository) List(ctx context.Context) []models.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Person, len(r.persons))
	for i, p := range r.persons {
		out[i] = p.Clone()
	}
	return out
}

// indexOf must be called with mu held.
func (r *InMemoryRepository) indexOf(name string) int {
	for i := range r.persons {
		if r.persons[i].Name == name {
			return i
		}
	}
	return -1
}
