package services_test

import (
	"testing"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) AddProduct(orderID string, product *models.Product) error {
	args := m.Called(orderID, product)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveProduct(orderID, productID string) error {
	args := m.Called(orderID, productID)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll() ([]models.Customer, error) {
	args := m.Called()
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(id string) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func newOrderServiceFixture() (*services.OrderService, *MockOrderRepository, *MockCustomerRepository, *MockProductRepository, *MockEventPublisher) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	publisher := new(MockEventPublisher)
	service := services.NewOrderService(orderRepo, customerRepo, productRepo, publisher)
	return service, orderRepo, customerRepo, productRepo, publisher
}

func TestOrderService_CreateOrder(t *testing.T) {
	service, orderRepo, customerRepo, productRepo, publisher := newOrderServiceFixture()

	customer := &models.Customer{ID: "cust-1", Name: "Lando Norris", Address: "McLaren Technology Centre"}
	gloves := &models.Product{ID: "prod-1", Name: "Racing Gloves", Price: decimal.RequireFromString("19.99"), Available: true}

	customerRepo.On("GetByID", "cust-1").Return(customer, nil).Once()
	productRepo.On("GetByID", "prod-1").Return(gloves, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	publisher.On("Publish", "", mock.Anything, mock.Anything).Return(nil).Once()

	order, err := service.CreateOrder("cust-1", models.StatusNew, []string{"prod-1"})

	assert.NoError(t, err)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Len(t, order.Products, 1)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_DefaultsStatusToNew(t *testing.T) {
	service, orderRepo, customerRepo, _, publisher := newOrderServiceFixture()

	customer := &models.Customer{ID: "cust-1", Name: "Lando Norris", Address: "McLaren Technology Centre"}
	customerRepo.On("GetByID", "cust-1").Return(customer, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	publisher.On("Publish", "", mock.Anything, mock.Anything).Return(nil).Once()

	order, err := service.CreateOrder("cust-1", "", nil)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusNew, order.Status)
	assert.Empty(t, order.Products)
}

func TestOrderService_CreateOrder_UnknownCustomer(t *testing.T) {
	service, orderRepo, customerRepo, _, _ := newOrderServiceFixture()

	customerRepo.On("GetByID", "ghost").Return(nil, notFoundErr("customer", "ghost")).Once()

	_, err := service.CreateOrder("ghost", models.StatusNew, nil)

	var errs models.FieldErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "customer_id", errs[0].Field)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	service, orderRepo, customerRepo, productRepo, _ := newOrderServiceFixture()

	customer := &models.Customer{ID: "cust-1", Name: "Lando Norris", Address: "McLaren Technology Centre"}
	customerRepo.On("GetByID", "cust-1").Return(customer, nil).Once()
	productRepo.On("GetByID", "ghost").Return(nil, notFoundErr("product", "ghost")).Once()

	_, err := service.CreateOrder("cust-1", models.StatusNew, []string{"ghost"})

	var errs models.FieldErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "product_ids", errs[0].Field)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_InvalidStatus(t *testing.T) {
	service, orderRepo, customerRepo, _, _ := newOrderServiceFixture()

	customer := &models.Customer{ID: "cust-1", Name: "Lando Norris", Address: "McLaren Technology Centre"}
	customerRepo.On("GetByID", "cust-1").Return(customer, nil).Once()

	_, err := service.CreateOrder("cust-1", "Pending", nil)

	var errs models.FieldErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "status", errs[0].Field)
	assert.Contains(t, errs[0].Message, "New, In Process, Sent, Completed")
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_NilPublisher(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, customerRepo, productRepo, nil)

	customer := &models.Customer{ID: "cust-1", Name: "Lando Norris", Address: "McLaren Technology Centre"}
	customerRepo.On("GetByID", "cust-1").Return(customer, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	// Event publication is skipped without a publisher, never fails the call.
	_, err := service.CreateOrder("cust-1", models.StatusNew, nil)
	assert.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	service, orderRepo, _, _, publisher := newOrderServiceFixture()

	updated := &models.Order{ID: "order-1", CustomerID: "cust-1", Status: models.StatusSent}
	orderRepo.On("UpdateStatus", "order-1", models.StatusSent).Return(nil).Once()
	orderRepo.On("GetByID", "order-1").Return(updated, nil).Once()
	publisher.On("Publish", "", mock.Anything, mock.Anything).Return(nil).Once()

	order, err := service.UpdateOrderStatus("order-1", models.StatusSent)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusSent, order.Status)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	service, orderRepo, _, _, _ := newOrderServiceFixture()

	_, err := service.UpdateOrderStatus("order-1", "shipped")

	var errs models.FieldErrors
	assert.ErrorAs(t, err, &errs)
	assert.Equal(t, "status", errs[0].Field)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	service, orderRepo, _, _, _ := newOrderServiceFixture()

	orderRepo.On("UpdateStatus", "ghost", models.StatusSent).Return(notFoundErr("order", "ghost")).Once()

	_, err := service.UpdateOrderStatus("ghost", models.StatusSent)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestOrderService_AddProduct(t *testing.T) {
	service, orderRepo, _, productRepo, _ := newOrderServiceFixture()

	gloves := &models.Product{ID: "prod-1", Name: "Racing Gloves", Price: decimal.RequireFromString("19.99"), Available: true}
	refreshed := &models.Order{ID: "order-1", CustomerID: "cust-1", Status: models.StatusNew, Products: []models.Product{*gloves}}

	productRepo.On("GetByID", "prod-1").Return(gloves, nil).Once()
	orderRepo.On("AddProduct", "order-1", gloves).Return(nil).Once()
	orderRepo.On("GetByID", "order-1").Return(refreshed, nil).Once()

	order, err := service.AddProduct("order-1", "prod-1")

	assert.NoError(t, err)
	assert.Len(t, order.Products, 1)
	assert.True(t, order.TotalPrice().Equal(decimal.RequireFromString("19.99")))
	orderRepo.AssertExpectations(t)
}

func TestOrderService_AddProduct_UnknownProduct(t *testing.T) {
	service, orderRepo, _, productRepo, _ := newOrderServiceFixture()

	productRepo.On("GetByID", "ghost").Return(nil, notFoundErr("product", "ghost")).Once()

	_, err := service.AddProduct("order-1", "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	orderRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
}

func TestOrderService_RemoveProduct(t *testing.T) {
	service, orderRepo, _, _, _ := newOrderServiceFixture()

	refreshed := &models.Order{ID: "order-1", CustomerID: "cust-1", Status: models.StatusNew}
	orderRepo.On("RemoveProduct", "order-1", "prod-1").Return(nil).Once()
	orderRepo.On("GetByID", "order-1").Return(refreshed, nil).Once()

	order, err := service.RemoveProduct("order-1", "prod-1")

	assert.NoError(t, err)
	assert.Empty(t, order.Products)
	assert.True(t, order.TotalPrice().IsZero())
	orderRepo.AssertExpectations(t)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	service, orderRepo, _, _, _ := newOrderServiceFixture()

	orderRepo.On("Delete", "order-1").Return(nil).Once()
	assert.NoError(t, service.DeleteOrder("order-1"))

	orderRepo.On("Delete", "ghost").Return(notFoundErr("order", "ghost")).Once()
	assert.ErrorIs(t, service.DeleteOrder("ghost"), repositories.ErrNotFound)
	orderRepo.AssertExpectations(t)
}
