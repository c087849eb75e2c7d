package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRepository defines the persistence operations for sales
type SaleRepository interface {
	// FindByID retrieves a sale with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll retrieves all sales
	FindAll(ctx context.Context) ([]*Sale, error)

	// FindByCustomer retrieves all sales for a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Sale, error)

	// FindByStatus retrieves all sales in a given status
	FindByStatus(ctx context.Context, status SaleStatus) ([]*Sale, error)

	// FindByPeriod retrieves sales whose sale date falls within [from, to]
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Sale, error)

	// TotalByPeriod sums the totals of confirmed sales within [from, to]
	TotalByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// Add persists a new sale with its items
	Add(ctx context.Context, sale *Sale) error

	// Update persists changes to an existing sale and its items
	Update(ctx context.Context, sale *Sale) error

	// Exists checks if a sale exists by ID
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
