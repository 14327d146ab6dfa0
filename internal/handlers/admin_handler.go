package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/XenomaCode/milla13-api/internal/services"
)

// AdminHandler handles the dashboard, database seeding and spreadsheet
// exports.
type AdminHandler struct {
	orders  *services.OrderService
	seed    *services.SeedService
	exports *services.ExportService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(orders *services.OrderService, seed *services.SeedService, exports *services.ExportService) *AdminHandler {
	return &AdminHandler{
		orders:  orders,
		seed:    seed,
		exports: exports,
	}
}

// RegisterRoutes registers the admin utility routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)
	router.Post("/initialize", h.HandleInitialize)
	router.Get("/exports/products", h.HandleExportProducts)
	router.Get("/exports/orders", h.HandleExportOrders)
}

// HandleDashboard returns the derived order aggregation: pending count,
// completed revenue and the most recent orders.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.orders.Stats()
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return respondError(c, "Could not compute dashboard stats", err)
	}
	return c.JSON(stats)
}

// HandleInitialize runs the one-time database seed. There is no
// idempotence guarantee; re-running it against a seeded database fails
// on the unique staff email.
func (h *AdminHandler) HandleInitialize(c *fiber.Ctx) error {
	if err := h.seed.Initialize(); err != nil {
		log.Printf("Error initializing database: %v", err)
		return respondError(c, "Could not initialize database", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Database initialized successfully",
	})
}

// HandleExportProducts streams the catalog as an xlsx download.
func (h *AdminHandler) HandleExportProducts(c *fiber.Ctx) error {
	file, err := h.exports.ProductsWorkbook()
	if err != nil {
		log.Printf("Error exporting products: %v", err)
		return respondError(c, "Could not export products", err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename=products.xlsx`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Response().BodyWriter()); err != nil {
		log.Printf("Error writing products export: %v", err)
		return respondError(c, "Could not write export", err)
	}
	return nil
}

// HandleExportOrders streams all orders as an xlsx download.
func (h *AdminHandler) HandleExportOrders(c *fiber.Ctx) error {
	file, err := h.exports.OrdersWorkbook()
	if err != nil {
		log.Printf("Error exporting orders: %v", err)
		return respondError(c, "Could not export orders", err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename=orders.xlsx`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Response().BodyWriter()); err != nil {
		log.Printf("Error writing orders export: %v", err)
		return respondError(c, "Could not write export", err)
	}
	return nil
}
