package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// CustomerPatch carries a partial customer update.
type CustomerPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// CustomerService handles business logic related to customers.
type CustomerService struct {
	repo repositories.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{
		repo: repo,
	}
}

// GetAllCustomers retrieves all customers.
func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	return s.repo.GetAll()
}

// GetCustomerByID retrieves a single customer by their ID.
func (s *CustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	return s.repo.GetByID(id)
}

// CreateCustomer validates and creates a new customer.
func (s *CustomerService) CreateCustomer(customer *models.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	return s.repo.Create(customer)
}

// UpdateCustomer applies a partial update to an existing customer.
func (s *CustomerService) UpdateCustomer(id string, patch CustomerPatch) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Address != nil {
		customer.Address = *patch.Address
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer and, by cascade, every order they own.
func (s *CustomerService) DeleteCustomer(id string) error {
	return s.repo.Delete(id)
}
