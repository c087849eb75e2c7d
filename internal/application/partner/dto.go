package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
)

// CreateCustomerRequest represents a request to create a new customer.
// Addresses and contacts are optional and saved together with the
// customer in a single commit.
type CreateCustomerRequest struct {
	Name           string              `json:"name" binding:"required,min=1,max=200"`
	TaxID          string              `json:"tax_id" binding:"required,taxid"`
	PrimaryAddress *AddAddressRequest  `json:"primary_address" binding:"omitempty"`
	Addresses      []AddAddressRequest `json:"addresses" binding:"omitempty,dive"`
	Contacts       []AddContactRequest `json:"contacts" binding:"omitempty,dive"`
}

// UpdateCustomerRequest represents a request to rename a customer
type UpdateCustomerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// AddAddressRequest represents a request to attach an address to a customer
type AddAddressRequest struct {
	PostalCode string `json:"postal_code" binding:"required"`
	Street     string `json:"street" binding:"required,max=200"`
	Number     string `json:"number" binding:"required,max=20"`
	Complement string `json:"complement" binding:"max=100"`
	District   string `json:"district" binding:"required,max=100"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"required,len=2"`
	Primary    bool   `json:"primary"`
}

// AddContactRequest represents a request to attach a contact to a customer
type AddContactRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=phone mobile email"`
	Value   string `json:"value" binding:"required,max=100"`
	Primary bool   `json:"primary"`
}

// RemoveContactRequest identifies a contact to remove
type RemoveContactRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=phone mobile email"`
	Value string `json:"value" binding:"required,max=100"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	PostalCode string  `json:"postal_code"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Primary bool   `json:"primary"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	TaxID              string            `json:"tax_id"`
	TaxIDType          string            `json:"tax_id_type"`
	Active             bool              `json:"active"`
	PrimaryAddress     *AddressResponse  `json:"primary_address"`
	SecondaryAddresses []AddressResponse `json:"secondary_addresses"`
	Contacts           []ContactResponse `json:"contacts"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Version            int               `json:"version"`
}

// CustomerListResponse represents a list item for customers
type CustomerListResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to a response
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		TaxID:              c.TaxID.Formatted(),
		TaxIDType:          c.TaxID.Type().String(),
		Active:             c.Active,
		SecondaryAddresses: make([]AddressResponse, 0, len(c.SecondaryAddresses)),
		Contacts:           make([]ContactResponse, 0, len(c.Contacts)),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		Version:            c.Version,
	}

	if c.PrimaryAddress != nil {
		addr := toAddressResponse(*c.PrimaryAddress)
		resp.PrimaryAddress = &addr
	}
	for _, a := range c.SecondaryAddresses {
		resp.SecondaryAddresses = append(resp.SecondaryAddresses, toAddressResponse(a))
	}
	for _, contact := range c.Contacts {
		resp.Contacts = append(resp.Contacts, ContactResponse{
			Kind:    contact.Kind().String(),
			Value:   contact.Value(),
			Primary: contact.IsPrimary(),
		})
	}

	return resp
}

// ToCustomerListResponse converts a domain customer to a list item
func ToCustomerListResponse(c *partner.Customer) CustomerListResponse {
	return CustomerListResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID.Formatted(),
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

func toAddressResponse(a valueobject.Address) AddressResponse {
	return AddressResponse{
		PostalCode: a.FormattedPostalCode(),
		Street:     a.Street(),
		Number:     a.Number(),
		Complement: a.Complement(),
		District:   a.District(),
		City:       a.City(),
		State:      a.State(),
	}
}
