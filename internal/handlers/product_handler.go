package handlers

import (
	"encoding/base64"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// ProductHandler handles HTTP requests for the catalog, both the public
// menu and the admin CRUD surface.
type ProductHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront menu routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleMenu)
	products.Get("/:id", h.HandleMenuProduct)
}

// RegisterAdminRoutes registers the catalog management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleAdminList)
	products.Post("/", h.HandleCreate)
	products.Get("/:id", h.HandleAdminGet)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleSoftDelete)
}

// HandleMenu lists available products for the storefront, optionally
// filtered by category.
func (h *ProductHandler) HandleMenu(c *fiber.Ctx) error {
	category := models.Category(c.Query("category"))
	products, err := h.service.List(services.ScopeStorefront, category)
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		return respondError(c, "Could not retrieve menu", err)
	}
	return c.JSON(products)
}

// HandleMenuProduct retrieves a single available product for the
// storefront. Retired products are reported as not found.
func (h *ProductHandler) HandleMenuProduct(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"), services.ScopeStorefront)
	if err != nil {
		return respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleAdminList lists the whole catalog, retired products included,
// newest first.
func (h *ProductHandler) HandleAdminList(c *fiber.Ctx) error {
	products, err := h.service.List(services.ScopeAdmin, "")
	if err != nil {
		log.Printf("Error listing catalog: %v", err)
		return respondError(c, "Could not retrieve catalog", err)
	}
	return c.JSON(products)
}

// HandleAdminGet retrieves a single product regardless of status.
func (h *ProductHandler) HandleAdminGet(c *fiber.Ctx) error {
	product, err := h.service.Get(c.Params("id"), services.ScopeAdmin)
	if err != nil {
		return respondError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// ProductRequest is the request body for creating a product. The image
// travels inline as base64 with its original filename.
type ProductRequest struct {
	Name          string               `json:"name" validate:"required,min=2,max=100"`
	Description   string               `json:"description" validate:"omitempty,max=500"`
	Price         decimal.Decimal      `json:"price"`
	Stock         int                  `json:"stock" validate:"gte=0"`
	Category      models.Category      `json:"category" validate:"required"`
	Status        models.ProductStatus `json:"status"`
	ImageBase64   string               `json:"image_base64" validate:"omitempty,base64"`
	ImageFilename string               `json:"image_filename"`
}

// HandleCreate creates a new catalog product, storing the image blob
// first when one is supplied.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	image, err := decodeImage(req.ImageBase64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid image encoding",
			"error":   err.Error(),
		})
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Status:      req.Status,
	}
	if err := h.service.Create(c.Context(), product, image, req.ImageFilename); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, "Could not create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// ProductUpdateRequest is the request body for a partial product update.
type ProductUpdateRequest struct {
	models.ProductUpdate
	ImageBase64   string `json:"image_base64" validate:"omitempty,base64"`
	ImageFilename string `json:"image_filename"`
}

// HandleUpdate applies a partial update; a new image replaces the old
// blob.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	image, err := decodeImage(req.ImageBase64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid image encoding",
			"error":   err.Error(),
		})
	}

	product, err := h.service.Update(c.Context(), c.Params("id"), req.ProductUpdate, image, req.ImageFilename)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update product", err)
	}

	return c.JSON(product)
}

// HandleSoftDelete retires a product. The record stays in the catalog.
func (h *ProductHandler) HandleSoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.SoftDelete(c.Context(), id); err != nil {
		log.Printf("Error retiring product %s: %v", id, err)
		return respondError(c, "Could not delete product", err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleImage serves a stored product image blob.
func (h *ProductHandler) HandleImage(c *fiber.Ctx) error {
	data, err := h.service.Image(c.Context(), c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Image not found",
		})
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}

func decodeImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(encoded)
}
