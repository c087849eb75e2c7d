package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its unique code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindAll returns all products
	FindAll(ctx context.Context) ([]*Product, error)

	// FindActive returns all active products
	FindActive(ctx context.Context) ([]*Product, error)

	// FindByCategory returns products in the given category
	FindByCategory(ctx context.Context, category string) ([]*Product, error)

	// SearchByName returns products whose name contains the term,
	// case-insensitively
	SearchByName(ctx context.Context, name string) ([]*Product, error)

	// Add stages a new product
	Add(ctx context.Context, product *Product) error

	// Update stages changes to an existing product with optimistic locking
	Update(ctx context.Context, product *Product) error

	// Exists checks if a product with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByCode checks if a product with the given code is registered
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
