package persons

import (
	"context"

	"github.com/dmitrijs2005/personql/internal/server/models"
)

// Repository stores persons in insertion order with unique names.
type Repository interface {
	Count(ctx context.Context) int
	FindByName(ctx context.Context, name string) (*models.Person, error)
	Create(ctx context.Context, person *models.Person) (*models.Person, error)
	UpdatePhone(ctx context.Context, name, phone string) (*models.Person, error)
	List(ctx context.Context) []models.Person
}
