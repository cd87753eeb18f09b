package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/pkg/rabbitmq"
)

// EventPublisher publishes order lifecycle events. *rabbitmq.Client satisfies
// it; a nil publisher disables events.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	productRepo  repositories.ProductRepository
	publisher    EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, customerRepo repositories.CustomerRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		publisher:    publisher,
	}
}

// GetAllOrders retrieves all orders with their product sets.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new order for an existing customer. An empty status
// defaults to New; every referenced product must exist. Field-level problems
// are collected into a single validation error.
func (s *OrderService) CreateOrder(customerID string, status models.OrderStatus, productIDs []string) (*models.Order, error) {
	var errs models.FieldErrors

	if customerID == "" {
		errs.Add("customer_id", "this field is required")
	} else if _, err := s.customerRepo.GetByID(customerID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		errs.Add("customer_id", fmt.Sprintf("customer with ID %s does not exist", customerID))
	}

	products := make([]models.Product, 0, len(productIDs))
	for _, pid := range productIDs {
		product, err := s.productRepo.GetByID(pid)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			errs.Add("product_ids", fmt.Sprintf("product with ID %s does not exist", pid))
			continue
		}
		products = append(products, *product)
	}

	if status == "" {
		status = models.StatusNew
	}
	if verr := status.Validate(); verr != nil {
		var serrs models.FieldErrors
		errors.As(verr, &serrs)
		errs = append(errs, serrs...)
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID: customerID,
		Status:     status,
		Products:   products,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent("order.created", order)
	return order, nil
}

// UpdateOrderStatus updates the status of an existing order after checking
// enum membership.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.publishEvent("order.status_updated", order)
	return order, nil
}

// AddProduct adds an existing product to the order's product set and returns
// the refreshed order.
func (s *OrderService) AddProduct(orderID, productID string) (*models.Order, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.AddProduct(orderID, product); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(orderID)
}

// RemoveProduct removes a product from the order's product set and returns
// the refreshed order. The product record itself is untouched.
func (s *OrderService) RemoveProduct(orderID, productID string) (*models.Order, error) {
	if err := s.orderRepo.RemoveProduct(orderID, productID); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(orderID)
}

// DeleteOrder deletes an order by its ID.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}

// publishEvent publishes an order lifecycle event. Publishing failures are
// logged but never fail the request that triggered them.
func (s *OrderService) publishEvent(event string, order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}

	message := map[string]interface{}{
		"event":       event,
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"status":      order.Status,
		"total":       order.TotalPrice(),
	}
	body, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal %s event for order %s: %v", event, order.ID, err)
		return
	}

	if err := s.publisher.Publish("", rabbitmq.OrderEventsQueue, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for order %s: %v", event, order.ID, err)
		return
	}
	log.Printf("Published %s event for order %s", event, order.ID)
}
