package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/vendas/backend/internal/domain/partner"
	"github.com/vendas/backend/internal/domain/shared"
	"github.com/vendas/backend/internal/domain/shared/valueobject"
	"github.com/vendas/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID retrieves a customer with addresses and contacts
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByTaxID retrieves a customer by its tax ID digits
func (r *GormCustomerRepository) FindByTaxID(ctx context.Context, taxID valueobject.TaxID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		First(&model, "tax_id = ?", taxID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll retrieves all customers ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]*partner.Customer, error) {
	return r.findWhere(ctx, nil)
}

// FindActive retrieves all active customers ordered by name
func (r *GormCustomerRepository) FindActive(ctx context.Context) ([]*partner.Customer, error) {
	return r.findWhere(ctx, map[string]interface{}{"active": true})
}

// SearchByName retrieves customers whose name contains the term,
// case-insensitively
func (r *GormCustomerRepository) SearchByName(ctx context.Context, name string) ([]*partner.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		Where("lower(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainCustomers(rows)
}

// Add persists a new customer with its addresses and contacts
func (r *GormCustomerRepository) Add(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists a modified customer with optimistic locking. The write
// only applies when the stored row still carries the version the
// aggregate was loaded with, so a concurrent writer that already
// advanced the row causes a conflict instead of a lost update. Address
// and contact rows are replaced wholesale.
func (r *GormCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CustomerModel{}).
			Where("id = ? AND version = ?", model.ID, model.Version).
			Updates(map[string]interface{}{
				"name":       model.Name,
				"active":     model.Active,
				"version":    model.Version + 1,
				"updated_at": model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return staleOrMissing(tx, &models.CustomerModel{}, model.ID)
		}

		if err := tx.Where("customer_id = ?", model.ID).
			Delete(&models.CustomerAddressModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", model.ID).
			Delete(&models.CustomerContactModel{}).Error; err != nil {
			return err
		}
		if len(model.Addresses) > 0 {
			if err := tx.Create(&model.Addresses).Error; err != nil {
				return err
			}
		}
		if len(model.Contacts) > 0 {
			if err := tx.Create(&model.Contacts).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	customer.IncrementVersion()
	return nil
}

// Exists checks if a customer exists by ID
func (r *GormCustomerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByTaxID checks if any customer holds the given tax ID
func (r *GormCustomerRepository) ExistsByTaxID(ctx context.Context, taxID valueobject.TaxID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("tax_id = ?", taxID.Value()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepository) findWhere(ctx context.Context, conds map[string]interface{}) ([]*partner.Customer, error) {
	query := r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("Contacts").
		Order("name")
	if conds != nil {
		query = query.Where(conds)
	}

	var rows []models.CustomerModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainCustomers(rows)
}

func toDomainCustomers(rows []models.CustomerModel) ([]*partner.Customer, error) {
	customers := make([]*partner.Customer, 0, len(rows))
	for idx := range rows {
		customer, err := rows[idx].ToDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// staleOrMissing distinguishes a version conflict from a missing row
func staleOrMissing(tx *gorm.DB, model interface{}, id uuid.UUID) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.ErrNotFound
	}
	return shared.NewDomainError("CONCURRENCY_CONFLICT", "The record was modified by another process")
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
