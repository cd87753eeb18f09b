package repositories

import (
	"lapak/internal/models"
)

// OrderRepository defines the interface for order data access.
// Implementations return orders with their product set populated so callers
// can compute totals and fulfillment from current membership.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	// AddProduct and RemoveProduct mutate the order's product set without
	// touching any other order field.
	AddProduct(orderID string, product *models.Product) error
	RemoveProduct(orderID, productID string) error
	Delete(id string) error
}
