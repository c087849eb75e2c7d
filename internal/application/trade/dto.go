package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendas/backend/internal/domain/trade"
)

// CreateSaleRequest represents a request to open a new sale
type CreateSaleRequest struct {
	CustomerID uuid.UUID           `json:"customer_id" binding:"required"`
	Note       string              `json:"note" binding:"max=500"`
	Items      []CreateSaleItemDTO `json:"items" binding:"omitempty,dive"`
}

// CreateSaleItemDTO is one line of a CreateSaleRequest
type CreateSaleItemDTO struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// AddItemRequest represents a request to add a line to a pending sale
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateItemQuantityRequest replaces the quantity of an existing line
type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ConfirmSaleRequest records the payment method for confirmation
type ConfirmSaleRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// UpdateNoteRequest replaces the sale note; blank clears it
type UpdateNoteRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// SaleItemResponse represents a sale line in API responses
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse represents a sale in API responses. CustomerName is
// denormalized and nil when the customer can no longer be found.
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	CustomerName  *string            `json:"customer_name"`
	SaleDate      time.Time          `json:"sale_date"`
	Status        string             `json:"status"`
	PaymentMethod *string            `json:"payment_method"`
	Note          *string            `json:"note"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Version       int                `json:"version"`
}

// SaleListResponse represents a list item for sales
type SaleListResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName *string         `json:"customer_name"`
	SaleDate     time.Time       `json:"sale_date"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"item_count"`
	Total        decimal.Decimal `json:"total"`
}

// PeriodTotalResponse is the aggregate revenue for a period
type PeriodTotalResponse struct {
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Total decimal.Decimal `json:"total"`
}

// ToSaleResponse converts a domain sale to a response
func ToSaleResponse(s *trade.Sale, customerName *string) SaleResponse {
	resp := SaleResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		CustomerName: customerName,
		SaleDate:     s.SaleDate,
		Status:       s.Status.String(),
		Note:         s.Note,
		Items:        make([]SaleItemResponse, 0, len(s.Items)),
		Total:        s.Total(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Version:      s.Version,
	}

	if s.PaymentMethod != nil {
		pm := s.PaymentMethod.String()
		resp.PaymentMethod = &pm
	}
	for idx := range s.Items {
		item := &s.Items[idx]
		resp.Items = append(resp.Items, SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}

	return resp
}

// ToSaleListResponse converts a domain sale to a list item
func ToSaleListResponse(s *trade.Sale, customerName *string) SaleListResponse {
	return SaleListResponse{
		ID:           s.ID,
		CustomerID:   s.CustomerID,
		CustomerName: customerName,
		SaleDate:     s.SaleDate,
		Status:       s.Status.String(),
		ItemCount:    s.ItemCount(),
		Total:        s.Total(),
	}
}
