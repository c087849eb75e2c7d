package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/inventory"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStockRepository implements inventory.StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByID retrieves a stock record by ID
func (r *GormStockRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockRecord, error) {
	var model models.StockRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProductID retrieves the stock record of a product
func (r *GormStockRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*inventory.StockRecord, error) {
	var model models.StockRecordModel
	if err := r.db.WithContext(ctx).First(&model, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all stock records
func (r *GormStockRepository) FindAll(ctx context.Context) ([]*inventory.StockRecord, error) {
	var rows []models.StockRecordModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainStockRecords(rows), nil
}

// FindBelowMinimum retrieves records whose quantity fell under their threshold
func (r *GormStockRepository) FindBelowMinimum(ctx context.Context) ([]*inventory.StockRecord, error) {
	var rows []models.StockRecordModel
	if err := r.db.WithContext(ctx).
		Where("quantity < min_quantity").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainStockRecords(rows), nil
}

// FindByLocation retrieves records stored at the given location
func (r *GormStockRepository) FindByLocation(ctx context.Context, location string) ([]*inventory.StockRecord, error) {
	var rows []models.StockRecordModel
	if err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainStockRecords(rows), nil
}

// Add persists a new stock record
func (r *GormStockRepository) Add(ctx context.Context, record *inventory.StockRecord) error {
	model := models.StockRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists a modified stock record with optimistic locking. The
// stored row must still carry the version the aggregate was loaded with;
// the version advances once per save, so a concurrent movement surfaces
// as a conflict rather than silently overwriting the quantity.
func (r *GormStockRepository) Update(ctx context.Context, record *inventory.StockRecord) error {
	model := models.StockRecordModelFromDomain(record)

	result := r.db.WithContext(ctx).Model(&models.StockRecordModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"quantity":     model.Quantity,
			"min_quantity": model.MinQuantity,
			"location":     model.Location,
			"version":      model.Version + 1,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return staleOrMissing(r.db.WithContext(ctx), &models.StockRecordModel{}, model.ID)
	}

	record.IncrementVersion()
	return nil
}

// ExistsForProduct checks if a product already has a stock record
func (r *GormStockRepository) ExistsForProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StockRecordModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainStockRecords(rows []models.StockRecordModel) []*inventory.StockRecord {
	records := make([]*inventory.StockRecord, 0, len(rows))
	for idx := range rows {
		records = append(records, rows[idx].ToDomain())
	}
	return records
}

var _ inventory.StockRepository = (*GormStockRepository)(nil)
