package handlers

import (
	"fmt"

	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/policy"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service *services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
	}
}

// RegisterRoutes registers the customer routes with the Fiber app.
func (h *CustomerHandler) RegisterRoutes(router fiber.Router) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Get("/", middleware.RequirePermission(policy.OperationRead), h.HandleGetCustomers)
	customerRoutes.Get("/:id", middleware.RequirePermission(policy.OperationRead), h.HandleGetCustomerByID)
	customerRoutes.Post("/", middleware.RequirePermission(policy.OperationWrite), h.HandleCreateCustomer)
	customerRoutes.Patch("/:id", middleware.RequirePermission(policy.OperationWrite), h.HandleUpdateCustomer)
	customerRoutes.Delete("/:id", middleware.RequirePermission(policy.OperationWrite), h.HandleDeleteCustomer)
}

// HandleGetCustomers retrieves all customers.
func (h *CustomerHandler) HandleGetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		return serviceError(c, err, "Could not retrieve customers")
	}
	return c.JSON(customers)
}

// HandleGetCustomerByID retrieves a single customer by their ID.
func (h *CustomerHandler) HandleGetCustomerByID(c *fiber.Ctx) error {
	customer, err := h.service.GetCustomerByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Could not retrieve customer")
	}
	return c.JSON(customer)
}

// CreateCustomerRequest is the payload for creating a customer.
type CreateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// HandleCreateCustomer creates a new customer.
func (h *CustomerHandler) HandleCreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := decodeStrict(c, &req); err != nil {
		return malformedRequest(c, err)
	}

	var errs models.FieldErrors
	if req.Name == nil {
		errs.Add("name", "this field is required")
	}
	if req.Address == nil {
		errs.Add("address", "this field is required")
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	customer := models.Customer{
		Name:    *req.Name,
		Address: *req.Address,
	}
	if err := h.service.CreateCustomer(&customer); err != nil {
		return serviceError(c, err, "Could not create customer")
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer applies a partial update to a customer.
func (h *CustomerHandler) HandleUpdateCustomer(c *fiber.Ctx) error {
	var patch services.CustomerPatch
	if err := decodeStrict(c, &patch); err != nil {
		return malformedRequest(c, err)
	}

	customer, err := h.service.UpdateCustomer(c.Params("id"), patch)
	if err != nil {
		return serviceError(c, err, "Could not update customer")
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer deletes a customer and, by cascade, their orders.
func (h *CustomerHandler) HandleDeleteCustomer(c *fiber.Ctx) error {
	customerID := c.Params("id")
	if err := h.service.DeleteCustomer(customerID); err != nil {
		return serviceError(c, err, "Could not delete customer")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Customer %s deleted successfully", customerID),
	})
}
