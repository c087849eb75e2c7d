package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/catalog"
	"github.com/vendas/backend/internal/domain/inventory"
	"github.com/vendas/backend/internal/domain/shared"
)

// StockService handles stock-related business operations
type StockService struct {
	stockRepo   inventory.StockRepository
	productRepo catalog.ProductRepository
}

// NewStockService creates a new StockService
func NewStockService(stockRepo inventory.StockRepository, productRepo catalog.ProductRepository) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// Create opens the stock record for a product. The product must exist
// and may have at most one record.
func (s *StockService) Create(ctx context.Context, req CreateStockRequest) (*StockResponse, error) {
	productExists, err := s.productRepo.Exists(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !productExists {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}

	recordExists, err := s.stockRepo.ExistsForProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if recordExists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Stock record already exists for this product")
	}

	record, err := inventory.NewStockRecord(req.ProductID, req.InitialQuantity, req.MinQuantity, req.Location)
	if err != nil {
		return nil, err
	}

	if err := s.stockRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	response := ToStockResponse(record, s.productName(ctx, record.ProductID))
	return &response, nil
}

// GetByProduct retrieves the stock record of a product
func (s *StockService) GetByProduct(ctx context.Context, productID uuid.UUID) (*StockResponse, error) {
	record, err := s.stockRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToStockResponse(record, s.productName(ctx, record.ProductID))
	return &response, nil
}

// GetByID retrieves a stock record by its own identifier
func (s *StockService) GetByID(ctx context.Context, recordID uuid.UUID) (*StockResponse, error) {
	record, err := s.stockRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	response := ToStockResponse(record, s.productName(ctx, record.ProductID))
	return &response, nil
}

// List retrieves all stock records
func (s *StockService) List(ctx context.Context) ([]StockResponse, error) {
	records, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StockResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToStockResponse(r, s.productName(ctx, r.ProductID)))
	}
	return responses, nil
}

// ListByLocation retrieves the stock records stored at a location
func (s *StockService) ListByLocation(ctx context.Context, location string) ([]StockResponse, error) {
	records, err := s.stockRepo.FindByLocation(ctx, location)
	if err != nil {
		return nil, err
	}

	responses := make([]StockResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToStockResponse(r, s.productName(ctx, r.ProductID)))
	}
	return responses, nil
}

// ListBelowMinimum retrieves stock records under their threshold
func (s *StockService) ListBelowMinimum(ctx context.Context) ([]StockResponse, error) {
	records, err := s.stockRepo.FindBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StockResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToStockResponse(r, s.productName(ctx, r.ProductID)))
	}
	return responses, nil
}

// Increase adds quantity to a product's stock
func (s *StockService) Increase(ctx context.Context, productID uuid.UUID, req AdjustStockRequest) (*StockResponse, error) {
	record, err := s.stockRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := record.Increase(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.stockRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	response := ToStockResponse(record, s.productName(ctx, record.ProductID))
	return &response, nil
}

// Decrease removes quantity from a product's stock
func (s *StockService) Decrease(ctx context.Context, productID uuid.UUID, req AdjustStockRequest) (*StockResponse, error) {
	record, err := s.stockRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := record.Decrease(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.stockRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	response := ToStockResponse(record, s.productName(ctx, record.ProductID))
	return &response, nil
}

// UpdateSettings applies the non-nil threshold and location fields
func (s *StockService) UpdateSettings(ctx context.Context, productID uuid.UUID, req UpdateStockSettingsRequest) (*StockResponse, error) {
	record, err := s.stockRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.MinQuantity != nil {
		if err := record.SetMinimum(*req.MinQuantity); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		record.SetLocation(*req.Location)
	}

	if err := s.stockRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	response := ToStockResponse(record, s.productName(ctx, record.ProductID))
	return &response, nil
}

// productName resolves the denormalized product name for responses.
// Returns nil when the product can no longer be found.
func (s *StockService) productName(ctx context.Context, productID uuid.UUID) *string {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil
	}
	return &product.Name
}

// HasAvailable reports whether a product has at least the given quantity
// on hand. A missing stock record counts as zero on hand.
func (s *StockService) HasAvailable(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	record, err := s.stockRepo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return record.HasAvailable(quantity), nil
}
