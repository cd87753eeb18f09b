package repositories

import (
	"errors"
	"fmt"

	"lapak/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their product sets populated.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Products").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its customer and product set.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Products").Preload("Customer").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create creates a new order. Products already present on the order are
// linked through the join table; the order's BeforeCreate hook assigns the
// ID, the default status and the creation timestamp.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus updates only the status column of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddProduct adds a product to the order's product set.
func (r *GORMOrderRepository) AddProduct(orderID string, product *models.Product) error {
	order, err := r.GetByID(orderID)
	if err != nil {
		return err
	}
	if err := r.db.Model(order).Association("Products").Append(product); err != nil {
		return fmt.Errorf("failed to add product %s to order %s: %w", product.ID, orderID, err)
	}
	return nil
}

// RemoveProduct removes a product from the order's product set. The product
// record itself is untouched.
func (r *GORMOrderRepository) RemoveProduct(orderID, productID string) error {
	order, err := r.GetByID(orderID)
	if err != nil {
		return err
	}
	if err := r.db.Model(order).Association("Products").Delete(&models.Product{ID: productID}); err != nil {
		return fmt.Errorf("failed to remove product %s from order %s: %w", productID, orderID, err)
	}
	return nil
}

// Delete deletes an order along with its join rows.
func (r *GORMOrderRepository) Delete(id string) error {
	res := r.db.Select(clause.Associations).Delete(&models.Order{ID: id})
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
