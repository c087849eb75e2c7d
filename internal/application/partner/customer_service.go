package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/application/uow"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	txScope      uow.TransactionScope
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, txScope uow.TransactionScope) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, txScope: txScope}
}

// Create creates a new customer. The tax ID must be unique across all
// customers, active or not. Addresses and contacts supplied with the
// request are attached before the customer is saved, so the whole
// record commits or fails as one.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	taxID, err := valueobject.NewTaxID(req.TaxID)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this tax ID already exists")
	}

	customer, err := partner.NewCustomer(req.Name, taxID)
	if err != nil {
		return nil, err
	}

	if req.PrimaryAddress != nil {
		address, err := newAddress(*req.PrimaryAddress)
		if err != nil {
			return nil, err
		}
		if err := customer.SetPrimaryAddress(address); err != nil {
			return nil, err
		}
	}
	for _, addrReq := range req.Addresses {
		address, err := newAddress(addrReq)
		if err != nil {
			return nil, err
		}
		if addrReq.Primary {
			err = customer.SetPrimaryAddress(address)
		} else {
			err = customer.AddSecondaryAddress(address)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, contactReq := range req.Contacts {
		contact, err := valueobject.NewContact(valueobject.ContactKind(contactReq.Kind), contactReq.Value, contactReq.Primary)
		if err != nil {
			return nil, err
		}
		customer.AddContact(contact)
	}

	err = s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		return repos.Customers().Add(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

func newAddress(req AddAddressRequest) (valueobject.Address, error) {
	return valueobject.NewAddress(req.PostalCode, req.Street, req.Number, req.Complement, req.District, req.City, req.State)
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByTaxID retrieves a customer by tax ID
func (s *CustomerService) GetByTaxID(ctx context.Context, rawTaxID string) (*CustomerResponse, error) {
	taxID, err := valueobject.NewTaxID(rawTaxID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves all customers; onlyActive narrows to active ones
func (s *CustomerService) List(ctx context.Context, onlyActive bool) ([]CustomerListResponse, error) {
	var (
		customers []*partner.Customer
		err       error
	)
	if onlyActive {
		customers, err = s.customerRepo.FindActive(ctx)
	} else {
		customers, err = s.customerRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerListResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, ToCustomerListResponse(c))
	}
	return responses, nil
}

// SearchByName retrieves customers whose name contains the given term
func (s *CustomerService) SearchByName(ctx context.Context, name string) ([]CustomerListResponse, error) {
	customers, err := s.customerRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerListResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, ToCustomerListResponse(c))
	}
	return responses, nil
}

// Update renames a customer. The tax ID is immutable and cannot be changed.
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// AddAddress attaches an address to a customer; primary replaces the
// current primary address
func (s *CustomerService) AddAddress(ctx context.Context, customerID uuid.UUID, req AddAddressRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	address, err := newAddress(req)
	if err != nil {
		return nil, err
	}

	if req.Primary {
		err = customer.SetPrimaryAddress(address)
	} else {
		err = customer.AddSecondaryAddress(address)
	}
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// AddContact attaches a contact to a customer
func (s *CustomerService) AddContact(ctx context.Context, customerID uuid.UUID, req AddContactRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	contact, err := valueobject.NewContact(valueobject.ContactKind(req.Kind), req.Value, req.Primary)
	if err != nil {
		return nil, err
	}

	customer.AddContact(contact)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// RemoveContact detaches a contact from a customer
func (s *CustomerService) RemoveContact(ctx context.Context, customerID uuid.UUID, req RemoveContactRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.RemoveContact(valueobject.ContactKind(req.Kind), req.Value); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Activate marks a customer as active
func (s *CustomerService) Activate(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Activate()

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Deactivate marks a customer as inactive. Historical sales keep
// referencing the customer; nothing is deleted.
func (s *CustomerService) Deactivate(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Deactivate()

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}
