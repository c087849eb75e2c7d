package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/trade"
	"github.com/vendas/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSaleRepository implements trade.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID retrieves a sale with its items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsInPosition).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all sales, newest first
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]*trade.Sale, error) {
	return r.findWhere(ctx, nil)
}

// FindByCustomer retrieves the sales of one customer, newest first
func (r *GormSaleRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*trade.Sale, error) {
	return r.findWhere(ctx, map[string]interface{}{"customer_id": customerID})
}

// FindByStatus retrieves sales in a given status, newest first
func (r *GormSaleRepository) FindByStatus(ctx context.Context, status trade.SaleStatus) ([]*trade.Sale, error) {
	return r.findWhere(ctx, map[string]interface{}{"status": status.String()})
}

// FindByPeriod retrieves sales dated within [from, to], newest first
func (r *GormSaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*trade.Sale, error) {
	var rows []models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Items", itemsInPosition).
		Where("sale_date BETWEEN ? AND ?", from, to).
		Order("sale_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSales(rows), nil
}

// TotalByPeriod sums the item subtotals of confirmed sales dated within
// [from, to]. The total is derived from the line rows; it is never stored.
func (r *GormSaleRepository) TotalByPeriod(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&models.SaleItemModel{}).
		Select("SUM(sale_items.quantity * sale_items.unit_price)").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.status = ?", trade.SaleStatusConfirmed.String()).
		Where("sales.sale_date BETWEEN ? AND ?", from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Add persists a new sale with its items
func (r *GormSaleRepository) Add(ctx context.Context, sale *trade.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists a modified sale with optimistic locking on the version
// the aggregate was loaded with. Item rows are replaced wholesale since
// line identity lives in the aggregate.
func (r *GormSaleRepository) Update(ctx context.Context, sale *trade.Sale) error {
	model := models.SaleModelFromDomain(sale)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SaleModel{}).
			Where("id = ? AND version = ?", model.ID, model.Version).
			Updates(map[string]interface{}{
				"status":         model.Status,
				"payment_method": model.PaymentMethod,
				"note":           model.Note,
				"version":        model.Version + 1,
				"updated_at":     model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return staleOrMissing(tx, &models.SaleModel{}, model.ID)
		}

		if err := tx.Where("sale_id = ?", model.ID).
			Delete(&models.SaleItemModel{}).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	sale.IncrementVersion()
	return nil
}

// Exists checks if a sale exists by ID
func (r *GormSaleRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SaleModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormSaleRepository) findWhere(ctx context.Context, conds map[string]interface{}) ([]*trade.Sale, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", itemsInPosition).
		Order("sale_date DESC")
	if conds != nil {
		query = query.Where(conds)
	}

	var rows []models.SaleModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainSales(rows), nil
}

// itemsInPosition keeps preloaded line items in the order they were added
func itemsInPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func toDomainSales(rows []models.SaleModel) []*trade.Sale {
	sales := make([]*trade.Sale, 0, len(rows))
	for idx := range rows {
		sales = append(sales, rows[idx].ToDomain())
	}
	return sales
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
