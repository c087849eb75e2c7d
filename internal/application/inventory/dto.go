package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/inventory"
)

// CreateStockRequest represents a request to open a stock record for a product
type CreateStockRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	InitialQuantity int       `json:"initial_quantity" binding:"min=0"`
	MinQuantity     int       `json:"min_quantity" binding:"min=0"`
	Location        string    `json:"location" binding:"max=100"`
}

// AdjustStockRequest represents a quantity movement on a stock record
type AdjustStockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// UpdateStockSettingsRequest updates the threshold and location of a record.
// Nil fields are left untouched.
type UpdateStockSettingsRequest struct {
	MinQuantity *int    `json:"min_quantity" binding:"omitempty,min=0"`
	Location    *string `json:"location" binding:"omitempty,max=100"`
}

// StockResponse represents a stock record in API responses. ProductName
// is denormalized from the catalog and nil when the product is gone.
type StockResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  *string   `json:"product_name"`
	Quantity     int       `json:"quantity"`
	MinQuantity  int       `json:"min_quantity"`
	Location     *string   `json:"location"`
	BelowMinimum bool      `json:"below_minimum"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// ToStockResponse converts a domain stock record to a response
func ToStockResponse(r *inventory.StockRecord, productName *string) StockResponse {
	return StockResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		ProductName:  productName,
		Quantity:     r.Quantity,
		MinQuantity:  r.MinQuantity,
		Location:     r.Location,
		BelowMinimum: r.IsBelowMinimum(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Version:      r.Version,
	}
}
