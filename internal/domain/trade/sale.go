package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendas/backend/internal/domain/shared"
)

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDING"
	SaleStatusConfirmed SaleStatus = "CONFIRMED"
	SaleStatusCancelled SaleStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SaleStatus
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusConfirmed, SaleStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SaleStatus
func (s SaleStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	switch s {
	case SaleStatusPending:
		return target == SaleStatusConfirmed || target == SaleStatusCancelled
	case SaleStatusConfirmed:
		return target == SaleStatusCancelled
	case SaleStatusCancelled:
		return false
	}
	return false
}

// PaymentMethod represents how a confirmed sale was paid
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodBoleto       PaymentMethod = "boleto"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid checks if the payment method is known
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodPix, PaymentMethodBoleto, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (p PaymentMethod) String() string {
	return string(p)
}

// SaleItem is a line item owned by a Sale. The product name and unit
// price are snapshots captured when the line is added, so later product
// changes never alter historical sales.
type SaleItem struct {
	ID          uuid.UUID
	SaleID      uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// NewSaleItem creates a new sale line item
func NewSaleItem(saleID, productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	if saleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Sale ID is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Product ID is required")
	}
	if strings.TrimSpace(productName) == "" {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Product name is required")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Unit price cannot be negative")
	}

	return &SaleItem{
		ID:          uuid.New(),
		SaleID:      saleID,
		ProductID:   productID,
		ProductName: strings.TrimSpace(productName),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// UpdateQuantity replaces the line quantity
func (i *SaleItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Quantity must be positive")
	}
	i.Quantity = quantity
	return nil
}

// Subtotal returns quantity times the captured unit price
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is the aggregate root for the sales workflow. It owns its line
// items and enforces the Pending -> Confirmed/Cancelled lifecycle; item
// edits are only allowed while pending.
type Sale struct {
	shared.BaseAggregateRoot
	CustomerID    uuid.UUID
	SaleDate      time.Time
	Items         []SaleItem
	Status        SaleStatus
	PaymentMethod *PaymentMethod
	Note          *string
}

// NewSale creates a new pending sale for a customer
func NewSale(customerID uuid.UUID, note string) (*Sale, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Customer ID is required")
	}

	sale := &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		SaleDate:          shared.Now(),
		Items:             make([]SaleItem, 0),
		Status:            SaleStatusPending,
	}
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		sale.Note = &trimmed
	}
	return sale, nil
}

// AddItem adds a line item while the sale is pending. Adding a product
// that is already present merges into the existing line by summing the
// quantities instead of duplicating it.
func (s *Sale) AddItem(productID uuid.UUID, productName string, quantity int, unitPrice decimal.Decimal) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending sale")
	}

	for idx := range s.Items {
		if s.Items[idx].ProductID == productID {
			if quantity <= 0 {
				return shared.NewDomainError("INVALID_ARGUMENT", "Quantity must be positive")
			}
			if err := s.Items[idx].UpdateQuantity(s.Items[idx].Quantity + quantity); err != nil {
				return err
			}
			s.UpdatedAt = shared.Now()
			return nil
		}
	}

	item, err := NewSaleItem(s.ID, productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}

	s.Items = append(s.Items, *item)
	s.UpdatedAt = shared.Now()

	return nil
}

// RemoveItem removes a line item while the sale is pending
func (s *Sale) RemoveItem(itemID uuid.UUID) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a non-pending sale")
	}

	for idx, item := range s.Items {
		if item.ID == itemID {
			s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
			s.UpdatedAt = shared.Now()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Sale item not found")
}

// UpdateItemQuantity replaces the quantity of an existing line item while
// the sale is pending
func (s *Sale) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items of a non-pending sale")
	}

	for idx := range s.Items {
		if s.Items[idx].ID == itemID {
			if err := s.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			s.UpdatedAt = shared.Now()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Sale item not found")
}

// Confirm transitions a pending sale to confirmed, recording the payment
// method. Requires at least one line item; the transition is irreversible.
func (s *Sale) Confirm(paymentMethod PaymentMethod) error {
	if s.Status != SaleStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending sales can be confirmed")
	}
	if len(s.Items) == 0 {
		return shared.NewDomainError("EMPTY_SALE", "Cannot confirm a sale without items")
	}
	if !paymentMethod.IsValid() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Invalid payment method")
	}

	s.PaymentMethod = &paymentMethod
	s.Status = SaleStatusConfirmed
	s.UpdatedAt = shared.Now()

	return nil
}

// Cancel transitions the sale to cancelled from either pending or
// confirmed. Cancelling twice is an error.
func (s *Sale) Cancel() error {
	if s.Status == SaleStatusCancelled {
		return shared.NewDomainError("ALREADY_CANCELLED", "Sale is already cancelled")
	}

	s.Status = SaleStatusCancelled
	s.UpdatedAt = shared.Now()

	return nil
}

// UpdateNote replaces the optional note; blank clears it
func (s *Sale) UpdateNote(note string) {
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		s.Note = &trimmed
	} else {
		s.Note = nil
	}
	s.UpdatedAt = shared.Now()
}

// Total is the live sum of line subtotals; it is never stored
func (s *Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for idx := range s.Items {
		total = total.Add(s.Items[idx].Subtotal())
	}
	return total
}

// ItemCount returns the number of line items
func (s *Sale) ItemCount() int {
	return len(s.Items)
}

// GetItem returns a line item by its ID, nil when absent
func (s *Sale) GetItem(itemID uuid.UUID) *SaleItem {
	for idx := range s.Items {
		if s.Items[idx].ID == itemID {
			return &s.Items[idx]
		}
	}
	return nil
}

// GetItemByProduct returns a line item by product ID, nil when absent
func (s *Sale) GetItemByProduct(productID uuid.UUID) *SaleItem {
	for idx := range s.Items {
		if s.Items[idx].ProductID == productID {
			return &s.Items[idx]
		}
	}
	return nil
}

// IsPending returns true while item edits are allowed
func (s *Sale) IsPending() bool {
	return s.Status == SaleStatusPending
}

// IsConfirmed returns true once the sale has been confirmed
func (s *Sale) IsConfirmed() bool {
	return s.Status == SaleStatusConfirmed
}

// IsCancelled returns true once the sale has been cancelled
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}

// CanModify returns true if line items may still be edited
func (s *Sale) CanModify() bool {
	return s.IsPending()
}
