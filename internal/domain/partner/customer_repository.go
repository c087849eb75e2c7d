package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
)

// CustomerRepository defines the interface for customer persistence.
// Implementations stage writes against the enclosing unit of work; nothing
// is durable until the unit of work commits.
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByTaxID finds a customer by its tax ID
	FindByTaxID(ctx context.Context, taxID valueobject.TaxID) (*Customer, error)

	// FindAll returns all customers
	FindAll(ctx context.Context) ([]*Customer, error)

	// FindActive returns all active customers
	FindActive(ctx context.Context) ([]*Customer, error)

	// SearchByName returns customers whose name contains the given fragment
	SearchByName(ctx context.Context, name string) ([]*Customer, error)

	// Add stages a new customer
	Add(ctx context.Context, customer *Customer) error

	// Update stages changes to an existing customer with optimistic locking
	Update(ctx context.Context, customer *Customer) error

	// Exists checks if a customer with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByTaxID checks if a customer with the given tax ID is registered
	ExistsByTaxID(ctx context.Context, taxID valueobject.TaxID) (bool, error)
}
