package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// EmployeeHandler handles HTTP requests for the staff roster.
type EmployeeHandler struct {
	service  *services.EmployeeService
	validate *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the employee routes.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router) {
	employees := router.Group("/employees")
	employees.Get("/", h.HandleList)
	employees.Post("/", h.HandleCreate)
	employees.Get("/:id", h.HandleGet)
	employees.Put("/:id", h.HandleUpdate)
	employees.Delete("/:id", h.HandleDeactivate)
}

// HandleList lists active employees, optionally filtered by role.
func (h *EmployeeHandler) HandleList(c *fiber.Ctx) error {
	role := models.EmployeeRole(c.Query("role"))
	employees, err := h.service.List(role)
	if err != nil {
		log.Printf("Error listing employees: %v", err)
		return respondError(c, "Could not retrieve employees", err)
	}
	return c.JSON(employees)
}

// HandleGet retrieves a single employee.
func (h *EmployeeHandler) HandleGet(c *fiber.Ctx) error {
	employee, err := h.service.Get(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve employee", err)
	}
	return c.JSON(employee)
}

// HandleCreate adds a new employee to the roster.
func (h *EmployeeHandler) HandleCreate(c *fiber.Ctx) error {
	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.Create(&employee); err != nil {
		log.Printf("Error creating employee: %v", err)
		return respondError(c, "Could not create employee", err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// HandleUpdate applies a partial update to an employee.
func (h *EmployeeHandler) HandleUpdate(c *fiber.Ctx) error {
	var upd models.EmployeeUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	employee, err := h.service.Update(c.Params("id"), upd)
	if err != nil {
		log.Printf("Error updating employee %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update employee", err)
	}
	return c.JSON(employee)
}

// HandleDeactivate flips the employee inactive. The record is kept.
func (h *EmployeeHandler) HandleDeactivate(c *fiber.Ctx) error {
	if err := h.service.Deactivate(c.Params("id")); err != nil {
		log.Printf("Error deactivating employee %s: %v", c.Params("id"), err)
		return respondError(c, "Could not deactivate employee", err)
	}
	return c.JSON(fiber.Map{
		"message": "Employee deactivated successfully",
	})
}
