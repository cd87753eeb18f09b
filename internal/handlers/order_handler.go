package handlers

import (
	"fmt"

	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/policy"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", middleware.RequirePermission(policy.OperationRead), h.HandleGetOrders)
	orderRoutes.Get("/:id", middleware.RequirePermission(policy.OperationRead), h.HandleGetOrderByID)
	orderRoutes.Post("/", middleware.RequirePermission(policy.OperationWrite), h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", middleware.RequirePermission(policy.OperationWrite), h.HandleUpdateOrderStatus)
	orderRoutes.Post("/:id/products", middleware.RequirePermission(policy.OperationWrite), h.HandleAddProduct)
	orderRoutes.Delete("/:id/products/:productID", middleware.RequirePermission(policy.OperationWrite), h.HandleRemoveProduct)
	orderRoutes.Delete("/:id", middleware.RequirePermission(policy.OperationWrite), h.HandleDeleteOrder)
}

// orderResponse decorates an order with the values derived from its current
// product set. Totals are never stored; they are recomputed on every read.
type orderResponse struct {
	models.Order
	TotalPrice  decimal.Decimal `json:"total_price"`
	Fulfillable bool            `json:"fulfillable"`
}

func newOrderResponse(order models.Order) orderResponse {
	return orderResponse{
		Order:       order,
		TotalPrice:  order.TotalPrice(),
		Fulfillable: order.Fulfillable(),
	}
}

// HandleGetOrders retrieves all orders with their derived values.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return serviceError(c, err, "Could not retrieve orders")
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, newOrderResponse(order))
	}
	return c.JSON(resp)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Could not retrieve order")
	}
	return c.JSON(newOrderResponse(*order))
}

// CreateOrderRequest is the payload for creating an order. Status defaults
// to New when omitted; product_ids may be empty.
type CreateOrderRequest struct {
	CustomerID *string  `json:"customer_id"`
	Status     string   `json:"status"`
	ProductIDs []string `json:"product_ids"`
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := decodeStrict(c, &req); err != nil {
		return malformedRequest(c, err)
	}

	var customerID string
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}

	order, err := h.service.CreateOrder(customerID, models.OrderStatus(req.Status), req.ProductIDs)
	if err != nil {
		return serviceError(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(newOrderResponse(*order))
}

// UpdateOrderStatusRequest is the payload for updating an order's status.
type UpdateOrderStatusRequest struct {
	Status *string `json:"status"`
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateOrderStatusRequest
	if err := decodeStrict(c, &req); err != nil {
		return malformedRequest(c, err)
	}
	if req.Status == nil {
		var errs models.FieldErrors
		errs.Add("status", "this field is required")
		return validationFailed(c, errs)
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), models.OrderStatus(*req.Status))
	if err != nil {
		return serviceError(c, err, "Could not update order status")
	}
	return c.JSON(newOrderResponse(*order))
}

// AddOrderProductRequest is the payload for adding a product to an order.
type AddOrderProductRequest struct {
	ProductID *string `json:"product_id"`
}

// HandleAddProduct adds a product to the order's product set, leaving every
// other order field untouched.
func (h *OrderHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddOrderProductRequest
	if err := decodeStrict(c, &req); err != nil {
		return malformedRequest(c, err)
	}
	if req.ProductID == nil {
		var errs models.FieldErrors
		errs.Add("product_id", "this field is required")
		return validationFailed(c, errs)
	}

	order, err := h.service.AddProduct(c.Params("id"), *req.ProductID)
	if err != nil {
		return serviceError(c, err, "Could not add product to order")
	}
	return c.JSON(newOrderResponse(*order))
}

// HandleRemoveProduct removes a product from the order's product set. The
// product record itself survives.
func (h *OrderHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	order, err := h.service.RemoveProduct(c.Params("id"), c.Params("productID"))
	if err != nil {
		return serviceError(c, err, "Could not remove product from order")
	}
	return c.JSON(newOrderResponse(*order))
}

// HandleDeleteOrder deletes an order by its ID.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if err := h.service.DeleteOrder(orderID); err != nil {
		return serviceError(c, err, "Could not delete order")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s deleted successfully", orderID),
	})
}
