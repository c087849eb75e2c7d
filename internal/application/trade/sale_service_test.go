package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vendas/backend/internal/application/uow"
	"github.com/vendas/backend/internal/domain/catalog"
	"github.com/vendas/backend/internal/domain/inventory"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
	"github.com/vendas/backend/internal/domain/trade"
)

// MockSaleRepository is a mock implementation of SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context) ([]*trade.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*trade.Sale, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByStatus(ctx context.Context, status trade.SaleStatus) ([]*trade.Sale, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*trade.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) TotalByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSaleRepository) Add(ctx context.Context, sale *trade.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *trade.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByTaxID(ctx context.Context, taxID valueobject.TaxID) (*partner.Customer, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindActive(ctx context.Context) ([]*partner.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SearchByName(ctx context.Context, name string) ([]*partner.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByTaxID(ctx context.Context, taxID valueobject.TaxID) (bool, error) {
	args := m.Called(ctx, taxID)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string) ([]*catalog.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, name string) ([]*catalog.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockStockRepository is a mock implementation of StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockRecord), args.Error(1)
}

func (m *MockStockRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*inventory.StockRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockRecord), args.Error(1)
}

func (m *MockStockRepository) FindAll(ctx context.Context) ([]*inventory.StockRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.StockRecord), args.Error(1)
}

func (m *MockStockRepository) FindBelowMinimum(ctx context.Context) ([]*inventory.StockRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.StockRecord), args.Error(1)
}

func (m *MockStockRepository) FindByLocation(ctx context.Context, location string) ([]*inventory.StockRecord, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.StockRecord), args.Error(1)
}

func (m *MockStockRepository) Add(ctx context.Context, record *inventory.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, record *inventory.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStockRepository) ExistsForProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

// fakeTxScope runs the function directly against the given repositories,
// standing in for a real database transaction.
type fakeTxScope struct {
	repos fakeRepos
}

func (f *fakeTxScope) Execute(ctx context.Context, fn func(repos uow.Repositories) error) error {
	return fn(f.repos)
}

type fakeRepos struct {
	customers partner.CustomerRepository
	products  catalog.ProductRepository
	stock     inventory.StockRepository
	sales     trade.SaleRepository
}

func (r fakeRepos) Customers() partner.CustomerRepository { return r.customers }
func (r fakeRepos) Products() catalog.ProductRepository   { return r.products }
func (r fakeRepos) Stock() inventory.StockRepository      { return r.stock }
func (r fakeRepos) Sales() trade.SaleRepository           { return r.sales }

type saleFixture struct {
	saleRepo     *MockSaleRepository
	customerRepo *MockCustomerRepository
	productRepo  *MockProductRepository
	stockRepo    *MockStockRepository
	service      *SaleService
}

func newSaleFixture() *saleFixture {
	f := &saleFixture{
		saleRepo:     new(MockSaleRepository),
		customerRepo: new(MockCustomerRepository),
		productRepo:  new(MockProductRepository),
		stockRepo:    new(MockStockRepository),
	}
	scope := &fakeTxScope{repos: fakeRepos{
		customers: f.customerRepo,
		products:  f.productRepo,
		stock:     f.stockRepo,
		sales:     f.saleRepo,
	}}
	f.service = NewSaleService(f.saleRepo, f.customerRepo, scope)
	return f
}

// stubCustomerName backs the denormalized customer name on responses
func (f *saleFixture) stubCustomerName(t *testing.T, name string) {
	t.Helper()
	taxID, err := valueobject.NewTaxID("45502905870")
	require.NoError(t, err)
	customer, err := partner.NewCustomer(name, taxID)
	require.NoError(t, err)
	f.customerRepo.On("FindByID", mock.Anything, mock.Anything).Return(customer, nil)
}

func activeCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	taxID, err := valueobject.NewTaxID("45502905870")
	require.NoError(t, err)
	customer, err := partner.NewCustomer("Maria Silva", taxID)
	require.NoError(t, err)
	return customer
}

func activeProduct(t *testing.T, price float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("NB-001", "Notebook Dell", decimal.NewFromFloat(price))
	require.NoError(t, err)
	return product
}

func pendingSaleWith(t *testing.T, product *catalog.Product, quantity int) *trade.Sale {
	t.Helper()
	sale, err := trade.NewSale(uuid.New(), "")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem(product.ID, product.Name, quantity, product.UnitPrice))
	return sale
}

func TestSaleService_Create(t *testing.T) {
	t.Run("creates sale with initial items", func(t *testing.T) {
		f := newSaleFixture()
		customer := activeCustomer(t)
		product := activeProduct(t, 1500)

		f.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		f.saleRepo.On("Add", mock.Anything, mock.AnythingOfType("*trade.Sale")).Return(nil)

		resp, err := f.service.Create(context.Background(), CreateSaleRequest{
			CustomerID: customer.ID,
			Items:      []CreateSaleItemDTO{{ProductID: product.ID, Quantity: 2}},
		})

		require.NoError(t, err)
		assert.Equal(t, trade.SaleStatusPending.String(), resp.Status)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Notebook Dell", resp.Items[0].ProductName, "line captures the product name")
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(3000)))
	})

	t.Run("rejects inactive customer", func(t *testing.T) {
		f := newSaleFixture()
		customer := activeCustomer(t)
		customer.Deactivate()

		f.customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		_, err := f.service.Create(context.Background(), CreateSaleRequest{CustomerID: customer.ID})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		f.saleRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown customer", func(t *testing.T) {
		f := newSaleFixture()
		id := uuid.New()
		f.customerRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.Create(context.Background(), CreateSaleRequest{CustomerID: id})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSaleService_AddItem(t *testing.T) {
	t.Run("merges repeated product", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 2)

		f.stubCustomerName(t, "Maria Silva")
		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		f.saleRepo.On("Update", mock.Anything, sale).Return(nil)

		resp, err := f.service.AddItem(context.Background(), sale.ID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  3,
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 5, resp.Items[0].Quantity)
		require.NotNil(t, resp.CustomerName)
		assert.Equal(t, "Maria Silva", *resp.CustomerName)
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(7500)))
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		product.Deactivate()
		sale := pendingSaleWith(t, activeProduct(t, 100), 1)

		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := f.service.AddItem(context.Background(), sale.ID, AddItemRequest{
			ProductID: product.ID,
			Quantity:  1,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		f.saleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestSaleService_Confirm(t *testing.T) {
	t.Run("decrements stock per line", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 2)

		record, err := inventory.NewStockRecord(product.ID, 10, 0, "")
		require.NoError(t, err)

		f.stubCustomerName(t, "Maria Silva")
		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.stockRepo.On("FindByProductID", mock.Anything, product.ID).Return(record, nil)
		f.stockRepo.On("Update", mock.Anything, record).Return(nil)
		f.saleRepo.On("Update", mock.Anything, sale).Return(nil)

		resp, err := f.service.Confirm(context.Background(), sale.ID, ConfirmSaleRequest{PaymentMethod: "pix"})

		require.NoError(t, err)
		assert.Equal(t, trade.SaleStatusConfirmed.String(), resp.Status)
		require.NotNil(t, resp.PaymentMethod)
		assert.Equal(t, "pix", *resp.PaymentMethod)
		assert.Equal(t, 8, record.Quantity)
		f.stockRepo.AssertExpectations(t)
	})

	t.Run("insufficient stock aborts", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 5)

		record, err := inventory.NewStockRecord(product.ID, 3, 0, "")
		require.NoError(t, err)

		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.stockRepo.On("FindByProductID", mock.Anything, product.ID).Return(record, nil)

		_, err = f.service.Confirm(context.Background(), sale.ID, ConfirmSaleRequest{PaymentMethod: "pix"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		f.stockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.saleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing stock record aborts", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 1)

		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.stockRepo.On("FindByProductID", mock.Anything, product.ID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Confirm(context.Background(), sale.ID, ConfirmSaleRequest{PaymentMethod: "cash"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("empty sale", func(t *testing.T) {
		f := newSaleFixture()
		sale, err := trade.NewSale(uuid.New(), "")
		require.NoError(t, err)

		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		_, err = f.service.Confirm(context.Background(), sale.ID, ConfirmSaleRequest{PaymentMethod: "cash"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_SALE", domainErr.Code)
	})

	t.Run("unknown payment method rejected up front", func(t *testing.T) {
		f := newSaleFixture()

		_, err := f.service.Confirm(context.Background(), uuid.New(), ConfirmSaleRequest{PaymentMethod: "check"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ARGUMENT", domainErr.Code)
		f.saleRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestSaleService_Cancel(t *testing.T) {
	t.Run("pending sale leaves stock alone", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 2)

		f.stubCustomerName(t, "Maria Silva")
		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.saleRepo.On("Update", mock.Anything, sale).Return(nil)

		resp, err := f.service.Cancel(context.Background(), sale.ID)

		require.NoError(t, err)
		assert.Equal(t, trade.SaleStatusCancelled.String(), resp.Status)
		f.stockRepo.AssertNotCalled(t, "FindByProductID", mock.Anything, mock.Anything)
	})

	t.Run("confirmed sale returns quantities to stock", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 2)
		require.NoError(t, sale.Confirm(trade.PaymentMethodCash))

		record, err := inventory.NewStockRecord(product.ID, 8, 0, "")
		require.NoError(t, err)

		f.stubCustomerName(t, "Maria Silva")
		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.stockRepo.On("FindByProductID", mock.Anything, product.ID).Return(record, nil)
		f.stockRepo.On("Update", mock.Anything, record).Return(nil)
		f.saleRepo.On("Update", mock.Anything, sale).Return(nil)

		resp, err := f.service.Cancel(context.Background(), sale.ID)

		require.NoError(t, err)
		assert.Equal(t, trade.SaleStatusCancelled.String(), resp.Status)
		assert.Equal(t, 10, record.Quantity)
	})

	t.Run("vanished stock record is skipped", func(t *testing.T) {
		f := newSaleFixture()
		product := activeProduct(t, 1500)
		sale := pendingSaleWith(t, product, 2)
		require.NoError(t, sale.Confirm(trade.PaymentMethodCash))

		f.stubCustomerName(t, "Maria Silva")
		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)
		f.stockRepo.On("FindByProductID", mock.Anything, product.ID).Return(nil, shared.ErrNotFound)
		f.saleRepo.On("Update", mock.Anything, sale).Return(nil)

		resp, err := f.service.Cancel(context.Background(), sale.ID)

		require.NoError(t, err)
		assert.Equal(t, trade.SaleStatusCancelled.String(), resp.Status)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newSaleFixture()
		sale, err := trade.NewSale(uuid.New(), "")
		require.NoError(t, err)
		require.NoError(t, sale.Cancel())

		f.saleRepo.On("FindByID", mock.Anything, sale.ID).Return(sale, nil)

		_, err = f.service.Cancel(context.Background(), sale.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_CANCELLED", domainErr.Code)
	})
}

func TestSaleService_Queries(t *testing.T) {
	f := newSaleFixture()
	product := activeProduct(t, 1500)
	sale := pendingSaleWith(t, product, 2)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	f.stubCustomerName(t, "Maria Silva")
	f.saleRepo.On("FindByPeriod", mock.Anything, from, to).Return([]*trade.Sale{sale}, nil)
	f.saleRepo.On("TotalByPeriod", mock.Anything, from, to).Return(decimal.NewFromInt(3000), nil)
	f.saleRepo.On("FindByStatus", mock.Anything, trade.SaleStatusPending).Return([]*trade.Sale{sale}, nil)

	byPeriod, err := f.service.ListByPeriod(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, byPeriod, 1)
	assert.True(t, byPeriod[0].Total.Equal(decimal.NewFromInt(3000)))

	total, err := f.service.TotalByPeriod(context.Background(), from, to)
	require.NoError(t, err)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(3000)))

	byStatus, err := f.service.ListByStatus(context.Background(), trade.SaleStatusPending)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	_, err = f.service.ListByPeriod(context.Background(), to, from)
	assert.Error(t, err, "inverted period is rejected")

	_, err = f.service.ListByStatus(context.Background(), trade.SaleStatus("SHIPPED"))
	assert.Error(t, err)
}
