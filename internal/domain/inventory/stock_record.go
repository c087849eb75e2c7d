package inventory

import (
	"strings"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/shared"
)

// StockRecord tracks the on-hand quantity for a single product.
// There is at most one stock record per product; the service layer
// enforces that uniqueness before creation.
type StockRecord struct {
	shared.BaseAggregateRoot
	ProductID   uuid.UUID
	Quantity    int
	MinQuantity int
	Location    *string
}

// NewStockRecord creates a stock record for a product
func NewStockRecord(productID uuid.UUID, initialQuantity, minQuantity int, location string) (*StockRecord, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Product ID is required")
	}
	if initialQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Initial quantity cannot be negative")
	}
	if minQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Minimum quantity cannot be negative")
	}

	record := &StockRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		Quantity:          initialQuantity,
		MinQuantity:       minQuantity,
	}
	if trimmed := strings.TrimSpace(location); trimmed != "" {
		record.Location = &trimmed
	}
	return record, nil
}

// Increase adds quantity to the on-hand total
func (s *StockRecord) Increase(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Quantity must be positive")
	}

	s.Quantity += quantity
	s.UpdatedAt = shared.Now()

	return nil
}

// Decrease removes quantity from the on-hand total. Fails with
// INSUFFICIENT_STOCK when the requested quantity exceeds what is on hand.
func (s *StockRecord) Decrease(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Quantity must be positive")
	}
	if quantity > s.Quantity {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	}

	s.Quantity -= quantity
	s.UpdatedAt = shared.Now()

	return nil
}

// SetMinimum updates the minimum threshold quantity
func (s *StockRecord) SetMinimum(minQuantity int) error {
	if minQuantity < 0 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Minimum quantity cannot be negative")
	}

	s.MinQuantity = minQuantity
	s.UpdatedAt = shared.Now()

	return nil
}

// SetLocation updates the optional location label; blank clears it
func (s *StockRecord) SetLocation(location string) {
	if trimmed := strings.TrimSpace(location); trimmed != "" {
		s.Location = &trimmed
	} else {
		s.Location = nil
	}
	s.UpdatedAt = shared.Now()
}

// IsBelowMinimum returns true when the on-hand quantity is below the threshold
func (s *StockRecord) IsBelowMinimum() bool {
	return s.Quantity < s.MinQuantity
}

// HasAvailable returns true when at least the requested quantity is on hand
func (s *StockRecord) HasAvailable(quantity int) bool {
	return s.Quantity >= quantity
}
