package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendas/backend/internal/domain/catalog"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProductModel{})
	require.NoError(t, err)

	return db
}

func productFixture(t *testing.T, code, name string, price float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(code, name, decimal.NewFromFloat(price))
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_AddAndFindByCode(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := productFixture(t, "NB-001", "Notebook", 1500.00)
	product.Redescribe("Notebook 15 polegadas")
	product.Recategorize("Informática")

	require.NoError(t, repo.Add(ctx, product))

	retrieved, err := repo.FindByCode(ctx, "NB-001")
	require.NoError(t, err)
	assert.Equal(t, product.ID, retrieved.ID)
	assert.Equal(t, "Notebook", retrieved.Name)
	assert.True(t, retrieved.UnitPrice.Equal(decimal.NewFromFloat(1500.00)))
	require.NotNil(t, retrieved.Description)
	assert.Equal(t, "Notebook 15 polegadas", *retrieved.Description)
	require.NotNil(t, retrieved.Category)
	assert.Equal(t, "Informática", *retrieved.Category)

	exists, err := repo.ExistsByCode(ctx, "NB-001")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByCode(ctx, "NB-999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindActiveAndByCategory(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	notebook := productFixture(t, "NB-001", "Notebook", 1500.00)
	notebook.Recategorize("Informática")

	chair := productFixture(t, "CD-001", "Cadeira", 450.00)
	chair.Recategorize("Móveis")
	chair.Deactivate()

	require.NoError(t, repo.Add(ctx, notebook))
	require.NoError(t, repo.Add(ctx, chair))

	actives, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, actives, 1)
	assert.Equal(t, notebook.ID, actives[0].ID)

	informatica, err := repo.FindByCategory(ctx, "Informática")
	require.NoError(t, err)
	require.Len(t, informatica, 1)
	assert.Equal(t, notebook.ID, informatica[0].ID)
}

func TestGormProductRepository_SearchByName(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, productFixture(t, "NB-001", "Notebook Dell", 3500.00)))
	require.NoError(t, repo.Add(ctx, productFixture(t, "NB-002", "Notebook Lenovo", 2800.00)))
	require.NoError(t, repo.Add(ctx, productFixture(t, "MS-001", "Mouse", 80.00)))

	found, err := repo.SearchByName(ctx, "noteBOOK")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Notebook Dell", found[0].Name)
	assert.Equal(t, "Notebook Lenovo", found[1].Name)

	none, err := repo.SearchByName(ctx, "Teclado")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGormProductRepository_Update(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := productFixture(t, "NB-001", "Notebook", 1500.00)
	require.NoError(t, repo.Add(ctx, product))

	require.NoError(t, product.Reprice(decimal.NewFromFloat(1399.00)))
	require.NoError(t, repo.Update(ctx, product))

	retrieved, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.UnitPrice.Equal(decimal.NewFromFloat(1399.00)))
	assert.Equal(t, product.Version, retrieved.Version)
}

func TestGormProductRepository_Update_StaleVersion(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := productFixture(t, "NB-001", "Notebook", 1500.00)
	require.NoError(t, repo.Add(ctx, product))

	first, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)

	require.NoError(t, first.Reprice(decimal.NewFromFloat(1450.00)))
	require.NoError(t, repo.Update(ctx, first))

	// Several mutations on the stale copy must not widen the guard
	require.NoError(t, second.Rename("Notebook Gamer"))
	require.NoError(t, second.Reprice(decimal.NewFromFloat(1300.00)))
	second.Recategorize("Informática")
	err = repo.Update(ctx, second)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONCURRENCY_CONFLICT", domainErr.Code)

	retrieved, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.UnitPrice.Equal(decimal.NewFromFloat(1450.00)), "the committed reprice survives")
}

func TestGormProductRepository_Update_NotFound(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewGormProductRepository(db)

	ghost := productFixture(t, "XX-000", "Fantasma", 10.00)
	require.NoError(t, ghost.Reprice(decimal.NewFromFloat(12.00)))

	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
