package trade

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/application/uow"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/trade"
)

// SaleService handles the sales workflow. Reads go through the plain
// repositories; Confirm and Cancel touch the sale and its stock records
// together, so they run inside a transaction scope.
type SaleService struct {
	saleRepo     trade.SaleRepository
	customerRepo partner.CustomerRepository
	txScope      uow.TransactionScope
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRepository, customerRepo partner.CustomerRepository, txScope uow.TransactionScope) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		txScope:      txScope,
	}
}

// Create opens a new pending sale for a customer, optionally with
// initial line items. Product names and prices are captured at add time.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Customer is inactive")
	}

	sale, err := trade.NewSale(req.CustomerID, req.Note)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		for _, line := range req.Items {
			if err := s.addProductLine(ctx, repos, sale, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return repos.Sales().Add(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, &customer.Name)
	return &response, nil
}

// GetByID retrieves a sale with its items
func (s *SaleService) GetByID(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// List retrieves all sales
func (s *SaleService) List(ctx context.Context) ([]SaleListResponse, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toListResponses(ctx, sales), nil
}

// ListByCustomer retrieves the sales of one customer
func (s *SaleService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]SaleListResponse, error) {
	sales, err := s.saleRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.toListResponses(ctx, sales), nil
}

// ListByStatus retrieves sales in a given status
func (s *SaleService) ListByStatus(ctx context.Context, status trade.SaleStatus) ([]SaleListResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid sale status")
	}

	sales, err := s.saleRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.toListResponses(ctx, sales), nil
}

// ListByPeriod retrieves sales dated within [from, to]
func (s *SaleService) ListByPeriod(ctx context.Context, from, to time.Time) ([]SaleListResponse, error) {
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Period end cannot precede its start")
	}

	sales, err := s.saleRepo.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return s.toListResponses(ctx, sales), nil
}

// TotalByPeriod sums the revenue of confirmed sales dated within [from, to]
func (s *SaleService) TotalByPeriod(ctx context.Context, from, to time.Time) (*PeriodTotalResponse, error) {
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Period end cannot precede its start")
	}

	total, err := s.saleRepo.TotalByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &PeriodTotalResponse{From: from, To: to, Total: total}, nil
}

// AddItem adds a line to a pending sale. The product must be active;
// adding an already-present product merges quantities into its line.
func (s *SaleService) AddItem(ctx context.Context, saleID uuid.UUID, req AddItemRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		if err := s.addProductLine(ctx, repos, sale, req.ProductID, req.Quantity); err != nil {
			return err
		}
		return repos.Sales().Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// RemoveItem removes a line from a pending sale
func (s *SaleService) RemoveItem(ctx context.Context, saleID, itemID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// UpdateItemQuantity replaces the quantity of a line in a pending sale
func (s *SaleService) UpdateItemQuantity(ctx context.Context, saleID, itemID uuid.UUID, req UpdateItemQuantityRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// UpdateNote replaces the sale note; blank clears it
func (s *SaleService) UpdateNote(ctx context.Context, saleID uuid.UUID, req UpdateNoteRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	sale.UpdateNote(req.Note)

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// Confirm transitions a pending sale to confirmed and decrements the
// stock of every line in the same transaction. Any missing or
// insufficient stock record aborts the whole operation, leaving both
// the sale and the stock untouched.
func (s *SaleService) Confirm(ctx context.Context, saleID uuid.UUID, req ConfirmSaleRequest) (*SaleResponse, error) {
	paymentMethod := trade.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid payment method")
	}

	var sale *trade.Sale
	err := s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		sale, err = repos.Sales().FindByID(ctx, saleID)
		if err != nil {
			return err
		}

		if err := sale.Confirm(paymentMethod); err != nil {
			return err
		}

		for idx := range sale.Items {
			item := &sale.Items[idx]
			record, err := repos.Stock().FindByProductID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("NOT_FOUND", "No stock record for product "+item.ProductName)
				}
				return err
			}
			if err := record.Decrease(item.Quantity); err != nil {
				return err
			}
			if err := repos.Stock().Update(ctx, record); err != nil {
				return err
			}
		}

		return repos.Sales().Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// Cancel transitions a sale to cancelled. Cancelling a confirmed sale
// returns the shipped quantities to stock in the same transaction; lines
// whose stock record has since disappeared are skipped rather than
// blocking the cancellation.
func (s *SaleService) Cancel(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	var sale *trade.Sale
	err := s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		var err error
		sale, err = repos.Sales().FindByID(ctx, saleID)
		if err != nil {
			return err
		}

		wasConfirmed := sale.IsConfirmed()

		if err := sale.Cancel(); err != nil {
			return err
		}

		if wasConfirmed {
			for idx := range sale.Items {
				item := &sale.Items[idx]
				record, err := repos.Stock().FindByProductID(ctx, item.ProductID)
				if err != nil {
					if errors.Is(err, shared.ErrNotFound) {
						continue
					}
					return err
				}
				if err := record.Increase(item.Quantity); err != nil {
					return err
				}
				if err := repos.Stock().Update(ctx, record); err != nil {
					return err
				}
			}
		}

		return repos.Sales().Update(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale, s.customerName(ctx, sale.CustomerID))
	return &response, nil
}

// addProductLine validates the product and appends it to the sale with a
// snapshot of its current name and price.
func (s *SaleService) addProductLine(ctx context.Context, repos uow.Repositories, sale *trade.Sale, productID uuid.UUID, quantity int) error {
	product, err := repos.Products().FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsActive() {
		return shared.NewDomainError("INVALID_STATE", "Product "+product.Name+" is inactive")
	}
	return sale.AddItem(product.ID, product.Name, quantity, product.UnitPrice)
}

// customerName resolves the denormalized customer name for responses.
// Returns nil when the customer can no longer be found.
func (s *SaleService) customerName(ctx context.Context, customerID uuid.UUID) *string {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil
	}
	return &customer.Name
}

func (s *SaleService) toListResponses(ctx context.Context, sales []*trade.Sale) []SaleListResponse {
	responses := make([]SaleListResponse, 0, len(sales))
	for _, sale := range sales {
		responses = append(responses, ToSaleListResponse(sale, s.customerName(ctx, sale.CustomerID)))
	}
	return responses
}
