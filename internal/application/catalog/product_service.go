package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/catalog"
	"github.com/vendas/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product. The code must be unique.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
	}

	product, err := catalog.NewProduct(req.Code, req.Name, req.UnitPrice)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		product.Redescribe(req.Description)
	}
	if req.Category != "" {
		product.Recategorize(req.Category)
	}

	if err := s.productRepo.Add(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by its unique code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves all products; onlyActive narrows to active ones
func (s *ProductService) List(ctx context.Context, onlyActive bool) ([]ProductListResponse, error) {
	var (
		products []*catalog.Product
		err      error
	)
	if onlyActive {
		products, err = s.productRepo.FindActive(ctx)
	} else {
		products, err = s.productRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ProductListResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductListResponse(p))
	}
	return responses, nil
}

// ListByCategory retrieves products in a category
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]ProductListResponse, error) {
	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductListResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductListResponse(p))
	}
	return responses, nil
}

// SearchByName retrieves products whose name contains the given term
func (s *ProductService) SearchByName(ctx context.Context, name string) ([]ProductListResponse, error) {
	products, err := s.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductListResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductListResponse(p))
	}
	return responses, nil
}

// Update applies the non-nil fields of the request to a product.
// Price changes never affect items already added to sales.
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.UnitPrice != nil {
		if err := product.Reprice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.Redescribe(*req.Description)
	}
	if req.Category != nil {
		product.Recategorize(*req.Category)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Activate marks a product as active
func (s *ProductService) Activate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Activate()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Deactivate marks a product as inactive. Inactive products cannot be
// added to new sales but remain referenced by historical ones.
func (s *ProductService) Deactivate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Deactivate()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}
