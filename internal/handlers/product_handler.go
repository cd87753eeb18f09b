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

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Reads are
// open to any authenticated principal; writes require an admin.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", middleware.RequirePermission(policy.OperationRead), h.HandleGetProducts)
	productRoutes.Get("/:id", middleware.RequirePermission(policy.OperationRead), h.HandleGetProductByID)
	productRoutes.Post("/", middleware.RequirePermission(policy.OperationWrite), h.HandleCreateProduct)
	productRoutes.Patch("/:id", middleware.RequirePermission(policy.OperationWrite), h.HandleUpdateProduct)
	productRoutes.Delete("/:id", middleware.RequirePermission(policy.OperationWrite), h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products, optionally filtered by the name
// query parameter (substring match).
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Query("name"))
	if err != nil {
		return serviceError(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// CreateProductRequest is the payload for creating a product. Pointer fields
// distinguish a missing field from a zero value, so every missing required
// field can be named individually.
type CreateProductRequest struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Available *bool            `json:"available"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := decodeStrict(c, &req); err != nil {
		return malformedRequest(c, err)
	}

	var errs models.FieldErrors
	if req.Name == nil {
		errs.Add("name", "this field is required")
	}
	if req.Price == nil {
		errs.Add("price", "this field is required")
	}
	if req.Available == nil {
		errs.Add("available", "this field is required")
	}
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	product := models.Product{
		Name:      *req.Name,
		Price:     *req.Price,
		Available: *req.Available,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return serviceError(c, err, "Could not create product")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update; only fields present in the
// payload change.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var patch services.ProductPatch
	if err := decodeStrict(c, &patch); err != nil {
		return malformedRequest(c, err)
	}

	product, err := h.service.UpdateProduct(c.Params("id"), patch)
	if err != nil {
		return serviceError(c, err, "Could not update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		return serviceError(c, err, "Could not delete product")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", productID),
	})
}
