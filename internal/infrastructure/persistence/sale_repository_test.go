package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/trade"
	"github.com/vendas/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSaleTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.SaleModel{}, &models.SaleItemModel{})
	require.NoError(t, err)

	return db
}

// saleOn creates a pending sale dated at the given instant
func saleOn(t *testing.T, customerID uuid.UUID, at time.Time) *trade.Sale {
	t.Helper()
	restore := shared.SetNowFunc(func() time.Time { return at })
	defer restore()

	sale, err := trade.NewSale(customerID, "")
	require.NoError(t, err)
	return sale
}

func TestGormSaleRepository_AddAndFindByID(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	sale, err := trade.NewSale(uuid.New(), "entrega na loja")
	require.NoError(t, err)

	productID := uuid.New()
	require.NoError(t, sale.AddItem(productID, "Notebook", 2, decimal.NewFromFloat(1500.00)))
	require.NoError(t, sale.AddItem(uuid.New(), "Mouse", 3, decimal.NewFromFloat(89.50)))

	require.NoError(t, repo.Add(ctx, sale))

	retrieved, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID, retrieved.ID)
	assert.Equal(t, sale.CustomerID, retrieved.CustomerID)
	assert.Equal(t, trade.SaleStatusPending, retrieved.Status)
	require.NotNil(t, retrieved.Note)
	assert.Equal(t, "entrega na loja", *retrieved.Note)
	require.Len(t, retrieved.Items, 2)

	line := retrieved.GetItemByProduct(productID)
	require.NotNil(t, line)
	assert.Equal(t, "Notebook", line.ProductName)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, retrieved.Total().Equal(decimal.NewFromFloat(3268.50)))
}

func TestGormSaleRepository_ItemOrderSurvivesRoundTrip(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	sale, err := trade.NewSale(uuid.New(), "")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem(uuid.New(), "Notebook", 1, decimal.NewFromFloat(1500.00)))
	require.NoError(t, sale.AddItem(uuid.New(), "Mouse", 2, decimal.NewFromFloat(89.50)))
	require.NoError(t, sale.AddItem(uuid.New(), "Teclado", 1, decimal.NewFromFloat(120.00)))
	require.NoError(t, repo.Add(ctx, sale))

	retrieved, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Items, 3)
	assert.Equal(t, "Notebook", retrieved.Items[0].ProductName)
	assert.Equal(t, "Mouse", retrieved.Items[1].ProductName)
	assert.Equal(t, "Teclado", retrieved.Items[2].ProductName)

	// Rewriting the item rows on update must keep the insertion order
	require.NoError(t, retrieved.RemoveItem(retrieved.Items[1].ID))
	require.NoError(t, retrieved.AddItem(uuid.New(), "Monitor", 1, decimal.NewFromFloat(899.00)))
	require.NoError(t, repo.Update(ctx, retrieved))

	reloaded, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 3)
	assert.Equal(t, "Notebook", reloaded.Items[0].ProductName)
	assert.Equal(t, "Teclado", reloaded.Items[1].ProductName)
	assert.Equal(t, "Monitor", reloaded.Items[2].ProductName)
}

func TestGormSaleRepository_FindByID_NotFound(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSaleRepository_FindByCustomerAndStatus(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	customerID := uuid.New()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mine := saleOn(t, customerID, base)
	require.NoError(t, mine.AddItem(uuid.New(), "Teclado", 1, decimal.NewFromFloat(120.00)))
	require.NoError(t, mine.Confirm(trade.PaymentMethodPix))

	other := saleOn(t, uuid.New(), base.Add(time.Hour))

	require.NoError(t, repo.Add(ctx, mine))
	require.NoError(t, repo.Add(ctx, other))

	byCustomer, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, mine.ID, byCustomer[0].ID)

	confirmed, err := repo.FindByStatus(ctx, trade.SaleStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, mine.ID, confirmed[0].ID)
	require.NotNil(t, confirmed[0].PaymentMethod)
	assert.Equal(t, trade.PaymentMethodPix, *confirmed[0].PaymentMethod)

	pending, err := repo.FindByStatus(ctx, trade.SaleStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, other.ID, pending[0].ID)
}

func TestGormSaleRepository_FindByPeriod(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	march := saleOn(t, uuid.New(), time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	april := saleOn(t, uuid.New(), time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Add(ctx, march))
	require.NoError(t, repo.Add(ctx, april))

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	inMarch, err := repo.FindByPeriod(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, inMarch, 1)
	assert.Equal(t, march.ID, inMarch[0].ID)
}

func TestGormSaleRepository_TotalByPeriod(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	inPeriod := saleOn(t, uuid.New(), time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	require.NoError(t, inPeriod.AddItem(uuid.New(), "Notebook", 2, decimal.NewFromFloat(1500.00)))
	require.NoError(t, inPeriod.AddItem(uuid.New(), "Mouse", 3, decimal.NewFromFloat(89.50)))
	require.NoError(t, inPeriod.Confirm(trade.PaymentMethodCash))

	// Pending sales never count toward the period total
	pendingSale := saleOn(t, uuid.New(), time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC))
	require.NoError(t, pendingSale.AddItem(uuid.New(), "Monitor", 1, decimal.NewFromFloat(900.00)))

	outOfPeriod := saleOn(t, uuid.New(), time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC))
	require.NoError(t, outOfPeriod.AddItem(uuid.New(), "Cadeira", 1, decimal.NewFromFloat(450.00)))
	require.NoError(t, outOfPeriod.Confirm(trade.PaymentMethodPix))

	for _, sale := range []*trade.Sale{inPeriod, pendingSale, outOfPeriod} {
		require.NoError(t, repo.Add(ctx, sale))
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	total, err := repo.TotalByPeriod(ctx, from, to)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(3268.50)), "got %s", total)
}

func TestGormSaleRepository_TotalByPeriod_Empty(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)

	total, err := repo.TotalByPeriod(context.Background(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestGormSaleRepository_Update(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	sale, err := trade.NewSale(uuid.New(), "")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem(uuid.New(), "Notebook", 1, decimal.NewFromFloat(1500.00)))
	require.NoError(t, repo.Add(ctx, sale))

	require.NoError(t, sale.AddItem(uuid.New(), "Mouse", 2, decimal.NewFromFloat(89.50)))
	require.NoError(t, sale.Confirm(trade.PaymentMethodCreditCard))
	require.NoError(t, repo.Update(ctx, sale))

	retrieved, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.SaleStatusConfirmed, retrieved.Status)
	assert.Equal(t, sale.Version, retrieved.Version)
	require.Len(t, retrieved.Items, 2)
	assert.True(t, retrieved.Total().Equal(decimal.NewFromFloat(1679.00)))
}

func TestGormSaleRepository_Update_StaleVersion(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	sale, err := trade.NewSale(uuid.New(), "")
	require.NoError(t, err)
	require.NoError(t, sale.AddItem(uuid.New(), "Notebook", 1, decimal.NewFromFloat(1500.00)))
	require.NoError(t, repo.Add(ctx, sale))

	first, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)

	require.NoError(t, first.Confirm(trade.PaymentMethodCash))
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.Cancel())
	err = repo.Update(ctx, second)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONCURRENCY_CONFLICT", domainErr.Code)
}

func TestGormSaleRepository_Exists(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	sale, err := trade.NewSale(uuid.New(), "")
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, sale))

	exists, err := repo.Exists(ctx, sale.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}
