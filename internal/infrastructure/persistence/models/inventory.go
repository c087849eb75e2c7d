package models

import (
	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/inventory"
)

// StockRecordModel is the persistence model for the StockRecord aggregate
type StockRecordModel struct {
	AggregateModel
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity    int       `gorm:"not null;default:0"`
	MinQuantity int       `gorm:"not null;default:0"`
	Location    *string   `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (StockRecordModel) TableName() string {
	return "stock_records"
}

// ToDomain converts the persistence model to a domain StockRecord
func (m *StockRecordModel) ToDomain() *inventory.StockRecord {
	return &inventory.StockRecord{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		MinQuantity:       m.MinQuantity,
		Location:          m.Location,
	}
}

// FromDomain populates the persistence model from a domain StockRecord
func (m *StockRecordModel) FromDomain(r *inventory.StockRecord) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.ProductID = r.ProductID
	m.Quantity = r.Quantity
	m.MinQuantity = r.MinQuantity
	m.Location = r.Location
}

// StockRecordModelFromDomain creates a persistence model from a domain StockRecord
func StockRecordModelFromDomain(r *inventory.StockRecord) *StockRecordModel {
	m := &StockRecordModel{}
	m.FromDomain(r)
	return m
}
