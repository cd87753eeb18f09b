package repositories

import (
	"lapak/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product. A non-empty nameFilter restricts the
	// result to products whose name contains the filter as a substring.
	GetAll(nameFilter string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete removes the product and detaches it from every order holding it.
	// Orders themselves are not deleted.
	Delete(id string) error
}
