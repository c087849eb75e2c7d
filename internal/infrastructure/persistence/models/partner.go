package models

import (
	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
)

// CustomerModel is the persistence model for the Customer aggregate.
// Addresses and contacts live in child tables owned by the customer row.
type CustomerModel struct {
	AggregateModel
	Name      string                 `gorm:"type:varchar(200);not null"`
	TaxID     string                 `gorm:"type:varchar(14);not null;uniqueIndex"`
	TaxIDType string                 `gorm:"type:varchar(10);not null"`
	Active    bool                   `gorm:"not null;default:true;index"`
	Addresses []CustomerAddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Contacts  []CustomerContactModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// CustomerAddressModel is one address row of a customer
type CustomerAddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	PostalCode string    `gorm:"type:varchar(8);not null"`
	Street     string    `gorm:"type:varchar(200);not null"`
	Number     string    `gorm:"type:varchar(20);not null"`
	Complement *string   `gorm:"type:varchar(100)"`
	District   string    `gorm:"type:varchar(100);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(2);not null"`
	IsPrimary  bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CustomerAddressModel) TableName() string {
	return "customer_addresses"
}

// CustomerContactModel is one contact row of a customer
type CustomerContactModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind       string    `gorm:"type:varchar(10);not null"`
	Value      string    `gorm:"type:varchar(200);not null"`
	IsPrimary  bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CustomerContactModel) TableName() string {
	return "customer_contacts"
}

// ToDomain converts the persistence model to a domain Customer. The rows
// were validated on write, so reconstruction re-runs the same validation.
func (m *CustomerModel) ToDomain() (*partner.Customer, error) {
	taxID, err := valueobject.NewTaxID(m.TaxID)
	if err != nil {
		return nil, err
	}

	customer := &partner.Customer{
		BaseAggregateRoot:  m.ToDomainAggregateRoot(),
		Name:               m.Name,
		TaxID:              taxID,
		Active:             m.Active,
		SecondaryAddresses: make([]valueobject.Address, 0, len(m.Addresses)),
		Contacts:           make([]valueobject.Contact, 0, len(m.Contacts)),
	}

	for _, row := range m.Addresses {
		complement := ""
		if row.Complement != nil {
			complement = *row.Complement
		}
		address, err := valueobject.NewAddress(row.PostalCode, row.Street, row.Number, complement, row.District, row.City, row.State)
		if err != nil {
			return nil, err
		}
		if row.IsPrimary {
			primary := address
			customer.PrimaryAddress = &primary
		} else {
			customer.SecondaryAddresses = append(customer.SecondaryAddresses, address)
		}
	}

	for _, row := range m.Contacts {
		contact, err := valueobject.NewContact(valueobject.ContactKind(row.Kind), row.Value, row.IsPrimary)
		if err != nil {
			return nil, err
		}
		customer.Contacts = append(customer.Contacts, contact)
	}

	return customer, nil
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.TaxID = c.TaxID.Value()
	m.TaxIDType = c.TaxID.Type().String()
	m.Active = c.Active

	m.Addresses = make([]CustomerAddressModel, 0, len(c.SecondaryAddresses)+1)
	if c.PrimaryAddress != nil {
		m.Addresses = append(m.Addresses, addressRow(c.ID, *c.PrimaryAddress, true))
	}
	for _, address := range c.SecondaryAddresses {
		m.Addresses = append(m.Addresses, addressRow(c.ID, address, false))
	}

	m.Contacts = make([]CustomerContactModel, 0, len(c.Contacts))
	for _, contact := range c.Contacts {
		m.Contacts = append(m.Contacts, CustomerContactModel{
			ID:         uuid.New(),
			CustomerID: c.ID,
			Kind:       contact.Kind().String(),
			Value:      contact.Value(),
			IsPrimary:  contact.IsPrimary(),
		})
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

func addressRow(customerID uuid.UUID, address valueobject.Address, primary bool) CustomerAddressModel {
	return CustomerAddressModel{
		ID:         uuid.New(),
		CustomerID: customerID,
		PostalCode: address.PostalCode(),
		Street:     address.Street(),
		Number:     address.Number(),
		Complement: address.Complement(),
		District:   address.District(),
		City:       address.City(),
		State:      address.State(),
		IsPrimary:  primary,
	}
}
