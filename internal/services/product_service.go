package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/shopspring/decimal"
)

// ProductPatch carries a partial product update. Nil fields are left
// untouched on the stored record.
type ProductPatch struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Available *bool            `json:"available"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, optionally filtered by name substring.
func (s *ProductService) GetAllProducts(nameFilter string) ([]models.Product, error) {
	return s.repo.GetAll(nameFilter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and creates a new product. The repository layer
// validates again before writing, so an invalid product can never land.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update to an existing product. Only fields
// present in the patch change; the result is validated before it is written.
func (s *ProductService) UpdateProduct(id string, patch ProductPatch) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Available != nil {
		product.Available = *patch.Available
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
