package repositories

import (
	"errors"
	"fmt"

	"lapak/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{
		db: db,
	}
}

// GetAll retrieves all customers from the database.
func (r *GORMCustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by their ID from the database.
func (r *GORMCustomerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by ID %s: %w", id, err)
	}
	return &customer, nil
}

// Create creates a new customer in the database.
func (r *GORMCustomerRepository) Create(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update updates an existing customer in the database. The update is scoped
// to the primary key; Save would fall back to an insert when the row is
// missing.
func (r *GORMCustomerRepository) Update(customer *models.Customer) error {
	res := r.db.Model(customer).Select("name", "address").Updates(*customer)
	if res.Error != nil {
		return fmt.Errorf("failed to update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with ID %s: %w", customer.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a customer and cascades to their orders. The cascade is an
// explicit referential-integrity rule here rather than a DB-level constraint,
// because sqlite only enforces FK cascades behind a pragma.
func (r *GORMCustomerRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("customer_id = ?", id).Find(&orders).Error; err != nil {
			return fmt.Errorf("failed to load orders for customer %s: %w", id, err)
		}
		for _, order := range orders {
			if err := tx.Select(clause.Associations).Delete(&models.Order{ID: order.ID}).Error; err != nil {
				return fmt.Errorf("failed to delete order %s for customer %s: %w", order.ID, id, err)
			}
		}
		res := tx.Delete(&models.Customer{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete customer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("customer with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
