package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockRepository defines the interface for stock record persistence
type StockRepository interface {
	// FindByID finds a stock record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockRecord, error)

	// FindByProductID finds the stock record for a product
	FindByProductID(ctx context.Context, productID uuid.UUID) (*StockRecord, error)

	// FindAll returns all stock records
	FindAll(ctx context.Context) ([]*StockRecord, error)

	// FindBelowMinimum returns records whose quantity is below the threshold
	FindBelowMinimum(ctx context.Context) ([]*StockRecord, error)

	// FindByLocation returns records with the given location label
	FindByLocation(ctx context.Context, location string) ([]*StockRecord, error)

	// Add stages a new stock record
	Add(ctx context.Context, record *StockRecord) error

	// Update stages changes to an existing record with optimistic locking
	Update(ctx context.Context, record *StockRecord) error

	// ExistsForProduct checks if a stock record exists for the product
	ExistsForProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}
