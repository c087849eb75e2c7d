package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vendas/backend/internal/domain/shared"
)

// Product represents a sellable product in the catalog context
type Product struct {
	shared.BaseAggregateRoot
	Code        string
	Name        string
	Description *string
	UnitPrice   decimal.Decimal
	Category    *string
	Active      bool
}

// NewProduct creates a new active product with required fields
func NewProduct(code, name string, unitPrice decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Product code cannot be empty")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Unit price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.TrimSpace(code),
		Name:              strings.TrimSpace(name),
		UnitPrice:         unitPrice,
		Active:            true,
	}, nil
}

// Rename updates the product name
func (p *Product) Rename(name string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.UpdatedAt = shared.Now()

	return nil
}

// Reprice updates the unit price. New sales capture the price in effect
// at add time, so historical sales are unaffected.
func (p *Product) Reprice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Unit price cannot be negative")
	}

	p.UnitPrice = unitPrice
	p.UpdatedAt = shared.Now()

	return nil
}

// Redescribe updates the optional description; blank clears it
func (p *Product) Redescribe(description string) {
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		p.Description = &trimmed
	} else {
		p.Description = nil
	}
	p.UpdatedAt = shared.Now()
}

// Recategorize updates the optional category; blank clears it
func (p *Product) Recategorize(category string) {
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		p.Category = &trimmed
	} else {
		p.Category = nil
	}
	p.UpdatedAt = shared.Now()
}

// Activate marks the product as active
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = shared.Now()
}

// Deactivate marks the product as inactive; inactive products cannot be
// added to new sales
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = shared.Now()
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Active
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Product name cannot exceed 200 characters")
	}
	return nil
}
