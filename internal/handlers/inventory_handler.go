package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// InventoryHandler handles HTTP requests for café supplies.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inventory routes.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventory := router.Group("/inventory")
	inventory.Get("/", h.HandleList)
	inventory.Post("/", h.HandleCreate)
	inventory.Get("/:id", h.HandleGet)
	inventory.Put("/:id", h.HandleUpdate)
	inventory.Patch("/:id/quantity", h.HandleSetQuantity)
}

// HandleList lists all inventory items ordered by name.
func (h *InventoryHandler) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		log.Printf("Error listing inventory: %v", err)
		return respondError(c, "Could not retrieve inventory", err)
	}
	return c.JSON(items)
}

// HandleGet retrieves a single inventory item.
func (h *InventoryHandler) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.Get(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve inventory item", err)
	}
	return c.JSON(item)
}

// HandleCreate adds a new inventory item.
func (h *InventoryHandler) HandleCreate(c *fiber.Ctx) error {
	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.Create(&item); err != nil {
		log.Printf("Error creating inventory item: %v", err)
		return respondError(c, "Could not create inventory item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate applies a partial update to an inventory item.
func (h *InventoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var upd models.InventoryUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.Update(c.Params("id"), upd)
	if err != nil {
		log.Printf("Error updating inventory item %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update inventory item", err)
	}
	return c.JSON(item)
}

// QuantityRequest is the request body for a stock level change.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// HandleSetQuantity replaces the stock level of an inventory item.
func (h *InventoryHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.SetQuantity(c.Params("id"), req.Quantity)
	if err != nil {
		log.Printf("Error setting quantity for inventory item %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update quantity", err)
	}
	return c.JSON(item)
}
