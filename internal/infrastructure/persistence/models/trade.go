package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendas/backend/internal/domain/trade"
)

// SaleModel is the persistence model for the Sale aggregate. The total
// is intentionally not stored; it is always recomputed from the items.
type SaleModel struct {
	AggregateModel
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleDate      time.Time       `gorm:"not null;index"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	PaymentMethod *string         `gorm:"type:varchar(20)"`
	Note          *string         `gorm:"type:varchar(500)"`
	Items         []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel is one line item row of a sale. Position preserves the
// order lines were added in, since rows come back in no guaranteed order.
type SaleItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Position    int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToDomain converts the persistence model to a domain Sale
func (m *SaleModel) ToDomain() *trade.Sale {
	sale := &trade.Sale{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		SaleDate:          m.SaleDate,
		Status:            trade.SaleStatus(m.Status),
		Note:              m.Note,
		Items:             make([]trade.SaleItem, 0, len(m.Items)),
	}

	if m.PaymentMethod != nil {
		pm := trade.PaymentMethod(*m.PaymentMethod)
		sale.PaymentMethod = &pm
	}
	for _, row := range m.Items {
		sale.Items = append(sale.Items, trade.SaleItem{
			ID:          row.ID,
			SaleID:      row.SaleID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}

	return sale
}

// FromDomain populates the persistence model from a domain Sale
func (m *SaleModel) FromDomain(s *trade.Sale) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.CustomerID = s.CustomerID
	m.SaleDate = s.SaleDate
	m.Status = s.Status.String()
	m.Note = s.Note

	m.PaymentMethod = nil
	if s.PaymentMethod != nil {
		pm := s.PaymentMethod.String()
		m.PaymentMethod = &pm
	}

	m.Items = make([]SaleItemModel, 0, len(s.Items))
	for idx := range s.Items {
		item := &s.Items[idx]
		m.Items = append(m.Items, SaleItemModel{
			ID:          item.ID,
			SaleID:      s.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Position:    idx,
		})
	}
}

// SaleModelFromDomain creates a persistence model from a domain Sale
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}
