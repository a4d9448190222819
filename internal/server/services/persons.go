// Package services contains server-side business logic. This file implements
// PersonService, which owns person creation, lookup, phone updates and the
// allPersons snapshot read.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/personql/internal/common"
	"github.com/dmitrijs2005/personql/internal/cryptox"
	"github.com/dmitrijs2005/personql/internal/logging"
	"github.com/dmitrijs2005/personql/internal/server/models"
	"github.com/dmitrijs2005/personql/internal/server/repositories/persons"
	"github.com/google/uuid"
)

// PhoneFilter selects persons by phone presence. The zero value keeps all.
type PhoneFilter string

const (
	PhoneAny PhoneFilter = ""
	PhoneYes PhoneFilter = common.PhoneFilterYes
	PhoneNo  PhoneFilter = common.PhoneFilterNo
)

// SnapshotSource yields a point-in-time list of persons for allPersons.
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]models.Person, error)
}

// LocalSnapshot serves snapshots straight from the repository.
func LocalSnapshot(repo persons.Repository) SnapshotSource {
	return localSnapshot{repo: repo}
}

type localSnapshot struct {
	repo persons.Repository
}

func (s localSnapshot) Snapshot(ctx context.Context) ([]models.Person, error) {
	return s.repo.List(ctx), nil
}

// PersonService provides the person operations exposed over GraphQL.
type PersonService struct {
	repo      persons.Repository
	snapshots SnapshotSource
	logger    logging.Logger

	newID        func() string
	hashPassword func(string) (string, error)
}

// NewPersonService wires a service to its repository and snapshot source.
func NewPersonService(repo persons.Repository, snapshots SnapshotSource, l logging.Logger) *PersonService {
	return &PersonService{
		repo:         repo,
		snapshots:    snapshots,
		logger:       l.With("module", "person_service"),
		newID:        uuid.NewString,
		hashPassword: cryptox.HashPassword,
	}
}

// Count returns the number of locally stored persons.
func (s *PersonService) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

// FindByName returns the person with exactly this name or common.ErrorNotFound.
func (s *PersonService) FindByName(ctx context.Context, name string) (*models.Person, error) {
	return s.repo.FindByName(ctx, name)
}

// Add stores a new person built from draft with a fresh ID and a bcrypt
// password hash. A taken name yields *common.DuplicateNameError.
func (s *PersonService) Add(ctx context.Context, draft models.PersonDraft) (*models.Person, error) {
	// Skip the bcrypt work for names that are already taken; the repository
	// re-checks under its lock.
	if _, err := s.repo.FindByName(ctx, draft.Name); err == nil {
		return nil, &common.DuplicateNameError{Name: draft.Name}
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error looking up person: %w", err)
	}

	hash, err := s.hashPassword(draft.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	person := &models.Person{
		ID:       s.newID(),
		Name:     draft.Name,
		Email:    draft.Email,
		Password: hash,
		Street:   draft.Street,
		City:     draft.City,
		Phone:    draft.Phone,
		Avatar:   draft.Avatar,
	}

	p, err := s.repo.Create(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("error creating person: %w", err)
	}

	s.logger.Info(ctx, "Person added", "id", p.ID, "name", p.Name)
	return p, nil
}

// UpdatePhone replaces the phone of the named person. Unknown names yield
// common.ErrorNotFound.
func (s *PersonService) UpdatePhone(ctx context.Context, name, phone string) (*models.Person, error) {
	p, err := s.repo.UpdatePhone(ctx, name, phone)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Phone updated", "id", p.ID, "name", p.Name)
	return p, nil
}

// VerifyPassword checks plaintext against the stored bcrypt hash of the named
// person. Stored passwords are one-way hashes, so this is the only way to
// confirm a credential. It is not exposed through the GraphQL schema.
func (s *PersonService) VerifyPassword(ctx context.Context, name, plaintext string) (bool, error) {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return false, err
	}
	return cryptox.CheckPassword(p.Password, plaintext)
}

// All reads one snapshot and narrows it by phone presence.
func (s *PersonService) All(ctx context.Context, filter PhoneFilter) ([]models.Person, error) {
	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	switch filter {
	case PhoneAny:
		return snapshot, nil
	case PhoneYes:
		return FilterByPhonePresence(snapshot, true), nil
	case PhoneNo:
		return FilterByPhonePresence(snapshot, false), nil
	default:
		return nil, fmt.Errorf("unknown phone filter %q", filter)
	}
}

// FilterByPhonePresence keeps persons whose phone presence equals wantPhone.
// The results for true and false partition the input.
func FilterByPhonePresence(in []models.Person, wantPhone bool) []models.Person {
	out := make([]models.Person, 0, len(in))
	for _, p := range in {
		if p.HasPhone() == wantPhone {
			out = append(out, p)
		}
	}
	return out
}
