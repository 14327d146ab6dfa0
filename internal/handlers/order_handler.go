package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// OrderHandler handles HTTP requests for orders: public checkout plus the
// admin order management surface.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront checkout routes.
func (h *OrderHandler) RegisterPublicRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Post("/", h.HandleCreate)
	orders.Get("/:id/qr", h.HandlePickupQR)
}

// RegisterAdminRoutes registers the order management routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Get("/", h.HandleList)
	orders.Get("/:id", h.HandleGet)
	orders.Patch("/:id/status", h.HandleUpdateStatus)
}

// OrderRequest is the checkout request body. Any status-like field the
// caller includes is ignored: new orders are always pending.
type OrderRequest struct {
	Lines    []models.OrderLine  `json:"lines" validate:"required,min=1,dive"`
	Customer models.CustomerInfo `json:"customer" validate:"required"`
	Total    decimal.Decimal     `json:"total"`
}

// HandleCreate submits a new order from cart line snapshots.
func (h *OrderHandler) HandleCreate(c *fiber.Ctx) error {
	var req OrderRequest
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

	order, err := h.service.Create(req.Lines, req.Customer, req.Total)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleList retrieves orders newest first, optionally filtered by exact
// status.
func (h *OrderHandler) HandleList(c *fiber.Ctx) error {
	status := models.OrderStatus(c.Query("status"))
	orders, err := h.service.List(status)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGet retrieves a single order.
func (h *OrderHandler) HandleGet(c *fiber.Ctx) error {
	order, err := h.service.Get(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// StatusUpdateRequest is the request body for an order status change.
type StatusUpdateRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// HandleUpdateStatus moves an order along its lifecycle.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	orderID := c.Params("id")
	if err := h.service.UpdateStatus(orderID, req.Status); err != nil {
		log.Printf("Error updating order %s status: %v", orderID, err)
		return respondError(c, "Could not update order status", err)
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
		"status":  req.Status,
	})
}

// HandlePickupQR serves the PNG pickup QR code for an order.
func (h *OrderHandler) HandlePickupQR(c *fiber.Ctx) error {
	png, err := h.service.PickupQR(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not generate pickup QR", err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
