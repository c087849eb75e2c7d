package partner

import (
	"strings"

	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
)

// Customer represents a customer in the partner context.
// It is the aggregate root for customer-related operations: the tax ID is
// immutable after construction and addresses/contacts are owned value
// collections.
type Customer struct {
	shared.BaseAggregateRoot
	Name               string
	TaxID              valueobject.TaxID
	Active             bool
	PrimaryAddress     *valueobject.Address
	SecondaryAddresses []valueobject.Address
	Contacts           []valueobject.Contact
}

// NewCustomer creates a new active customer with required fields
func NewCustomer(name string, taxID valueobject.TaxID) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if taxID.IsZero() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Tax ID is required")
	}

	return &Customer{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Name:               strings.TrimSpace(name),
		TaxID:              taxID,
		Active:             true,
		SecondaryAddresses: make([]valueobject.Address, 0),
		Contacts:           make([]valueobject.Contact, 0),
	}, nil
}

// Rename updates the customer's name
func (c *Customer) Rename(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = shared.Now()

	return nil
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	c.Active = true
	c.UpdatedAt = shared.Now()
}

// Deactivate marks the customer as inactive. Customers are never hard
// deleted; this is the terminal state.
func (c *Customer) Deactivate() {
	c.Active = false
	c.UpdatedAt = shared.Now()
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Active
}

// SetPrimaryAddress sets or replaces the customer's primary address
func (c *Customer) SetPrimaryAddress(address valueobject.Address) error {
	if address.IsZero() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Address is required")
	}

	c.PrimaryAddress = &address
	c.UpdatedAt = shared.Now()

	return nil
}

// AddSecondaryAddress appends a secondary address
func (c *Customer) AddSecondaryAddress(address valueobject.Address) error {
	if address.IsZero() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Address is required")
	}

	c.SecondaryAddresses = append(c.SecondaryAddresses, address)
	c.UpdatedAt = shared.Now()

	return nil
}

// RemoveSecondaryAddress removes the first secondary address equal to the
// given one. Fails with NOT_FOUND when no address matches.
func (c *Customer) RemoveSecondaryAddress(address valueobject.Address) error {
	for i, a := range c.SecondaryAddresses {
		if a.Equals(address) {
			c.SecondaryAddresses = append(c.SecondaryAddresses[:i], c.SecondaryAddresses[i+1:]...)
			c.UpdatedAt = shared.Now()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Address not found for customer")
}

// AddContact appends a contact. When the new contact is flagged primary,
// any existing primary contact of the same kind is demoted first so at
// most one primary exists per kind.
func (c *Customer) AddContact(contact valueobject.Contact) {
	if contact.IsPrimary() {
		for i, existing := range c.Contacts {
			if existing.Kind() == contact.Kind() && existing.IsPrimary() {
				c.Contacts[i] = existing.AsSecondary()
			}
		}
	}

	c.Contacts = append(c.Contacts, contact)
	c.UpdatedAt = shared.Now()
}

// RemoveContact removes the first contact with the same kind and value.
// Fails with NOT_FOUND when no contact matches.
func (c *Customer) RemoveContact(kind valueobject.ContactKind, value string) error {
	for i, contact := range c.Contacts {
		if contact.Kind() == kind && contact.Value() == value {
			c.Contacts = append(c.Contacts[:i], c.Contacts[i+1:]...)
			c.UpdatedAt = shared.Now()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Contact not found for customer")
}

// PrimaryContact returns the primary contact of the given kind, nil when absent
func (c *Customer) PrimaryContact(kind valueobject.ContactKind) *valueobject.Contact {
	for i := range c.Contacts {
		if c.Contacts[i].Kind() == kind && c.Contacts[i].IsPrimary() {
			return &c.Contacts[i]
		}
	}
	return nil
}

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Customer name cannot exceed 200 characters")
	}
	return nil
}
