package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByName finds a product by its unique name
	FindByName(ctx context.Context, name string) (*Product, error)

	// FindActive finds all active products
	FindActive(ctx context.Context) ([]Product, error)

	// ExistsByName checks whether a product with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}
