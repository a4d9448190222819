package graphql

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/personql/internal/common"
	"github.com/dmitrijs2005/personql/internal/logging"
	"github.com/dmitrijs2005/personql/internal/server/models"
	"github.com/dmitrijs2005/personql/internal/server/services"
)

// PersonService is what the resolvers need from the service layer.
type PersonService interface {
	Count(ctx context.Context) int
	FindByName(ctx context.Context, name string) (*models.Person, error)
	Add(ctx context.Context, draft models.PersonDraft) (*models.Person, error)
	UpdatePhone(ctx context.Context, name, phone string) (*models.Person, error)
	All(ctx context.Context, filter services.PhoneFilter) ([]models.Person, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc    PersonService
	logger logging.Logger
}

func NewResolver(svc PersonService, l logging.Logger) *Resolver {
	return &Resolver{svc: svc, logger: l}
}

func (r *Resolver) PersonCount(ctx context.Context) int32 {
	return int32(r.svc.Count(ctx))
}

func (r *Resolver) AllPersons(ctx context.Context, args struct{ Phone *string }) ([]*personResolver, error) {
	filter := services.PhoneAny
	if args.Phone != nil {
		filter = services.PhoneFilter(*args.Phone)
	}

	list, err := r.svc.All(ctx, filter)
	if err != nil {
		r.logger.Error(ctx, "allPersons failed", "error", err)
		return nil, err
	}

	out := make([]*personResolver, len(list))
	for i := range list {
		out[i] = &personResolver{p: list[i]}
	}
	return out, nil
}

func (r *Resolver) FindPerson(ctx context.Context, args struct{ Name string }) (*personResolver, error) {
	p, err := r.svc.FindByName(ctx, args.Name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "findPerson failed", "name", args.Name, "error", err)
		return nil, err
	}
	return &personResolver{p: *p}, nil
}

type addPersonArgs struct {
	Name     string
	Email    string
	Password string
	Street   string
	City     string
	Phone    *string
	Avatar   *string
}

func (r *Resolver) AddPerson(ctx context.Context, args addPersonArgs) (*personResolver, error) {
	p, err := r.svc.Add(ctx, models.PersonDraft{
		Name:     args.Name,
		Email:    args.Email,
		Password: args.Password,
		Street:   args.Street,
		City:     args.City,
		Phone:    args.Phone,
		Avatar:   args.Avatar,
	})
	if err != nil {
		var dup *common.DuplicateNameError
		if errors.As(err, &dup) {
			r.logger.Warn(ctx, "addPerson rejected", "name", dup.Name)
			return nil, duplicateNameError(dup)
		}
		r.logger.Error(ctx, "addPerson failed", "name", args.Name, "error", err)
		return nil, err
	}
	return &personResolver{p: *p}, nil
}

func (r *Resolver) EditNumber(ctx context.Context, args struct {
	Name  string
	Phone string
}) (*personResolver, error) {
	p, err := r.svc.UpdatePhone(ctx, args.Name, args.Phone)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "editNumber failed", "name", args.Name, "error", err)
		return nil, err
	}
	return &personResolver{p: *p}, nil
}
