package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
)

// Notifier is the outbound notification channel for new orders. Delivery
// is best-effort and one-way; the persisted order is the source of truth.
type Notifier interface {
	PublishOrderSummary(summary string) error
}

// DashboardStats is the derived admin dashboard aggregation. It is
// computed from the order store on every request, never persisted.
type DashboardStats struct {
	PendingCount     int             `json:"pending_count"`
	CompletedCount   int             `json:"completed_count"`
	CompletedRevenue decimal.Decimal `json:"completed_revenue"`
	RecentOrders     []models.Order  `json:"recent_orders"`
}

// recentOrderCount is how many orders the dashboard shows.
const recentOrderCount = 5

// OrderService handles business logic related to orders.
type OrderService struct {
	repo     repositories.OrderRepository
	notifier Notifier
	baseURL  string
}

// NewOrderService creates a new OrderService. The notifier may be nil, in
// which case notifications are skipped.
func NewOrderService(repo repositories.OrderRepository, notifier Notifier, baseURL string) *OrderService {
	return &OrderService{
		repo:     repo,
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// Create validates and persists a new order. The total is recomputed
// server-side from the line snapshots and compared against the
// client-supplied value; a mismatch rejects the order. The status is
// always pending regardless of anything the caller sent. After the order
// is durable a summary notification is published asynchronously; a
// publish failure never fails or rolls back the creation.
func (s *OrderService) Create(lines []models.OrderLine, customer models.CustomerInfo, clientTotal decimal.Decimal) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one line", ErrValidation)
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i, line := range lines {
		if line.Name == "" {
			return nil, fmt.Errorf("%w: line %d is missing a product name", ErrValidation, i)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: line %d has a non-positive quantity", ErrValidation, i)
		}
		if line.Price.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has a negative price", ErrValidation, i)
		}
		total = total.Add(line.Subtotal())
	}

	if !total.Equal(clientTotal) {
		return nil, fmt.Errorf("%w: submitted total %s does not match computed total %s",
			ErrValidation, clientTotal.StringFixed(2), total.StringFixed(2))
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		Customer:  customer,
		Lines:     lines,
		Total:     total,
		Status:    models.OrderPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.notifier != nil {
		summary := FormatOrderSummary(order)
		go func() {
			if err := s.notifier.PublishOrderSummary(summary); err != nil {
				log.Printf("Warning: failed to publish notification for order %s: %v", order.ID, err)
			}
		}()
	}

	return order, nil
}

// List retrieves orders newest first, optionally filtered by exact status.
func (s *OrderService) List(status models.OrderStatus) ([]models.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	return s.repo.GetAll(status)
}

// Get retrieves a single order by its ID.
func (s *OrderService) Get(id string) (*models.Order, error) {
	return s.repo.GetByID(id)
}

// UpdateStatus moves an order along its lifecycle. Transitions are
// restricted to pending->processing->completed, with cancellation allowed
// from any non-terminal state.
func (s *OrderService) UpdateStatus(id string, next models.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, next)
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move order from %s to %s", ErrValidation, order.Status, next)
	}

	return s.repo.UpdateStatus(id, next)
}

// Stats computes the dashboard aggregation: pending count, completed
// count and revenue, and the most recent orders.
func (s *OrderService) Stats() (*DashboardStats, error) {
	orders, err := s.repo.GetAll("")
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{CompletedRevenue: decimal.Zero}
	for _, order := range orders {
		switch order.Status {
		case models.OrderPending:
			stats.PendingCount++
		case models.OrderCompleted:
			stats.CompletedCount++
			stats.CompletedRevenue = stats.CompletedRevenue.Add(order.Total)
		}
	}

	// orders are already newest first
	if len(orders) > recentOrderCount {
		orders = orders[:recentOrderCount]
	}
	stats.RecentOrders = orders
	return stats, nil
}

// PickupQR renders a PNG QR code pointing at the public order page, for
// printing on the pickup receipt.
func (s *OrderService) PickupQR(id string) ([]byte, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	data := fmt.Sprintf("%s/orders/%s", s.baseURL, order.ID)
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pickup QR for order %s: %w", id, err)
	}
	return png, nil
}

// FormatOrderSummary renders the human-readable notification text for a
// newly created order.
func FormatOrderSummary(order *models.Order) string {
	items := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
	}
	return fmt.Sprintf("New order #%s:\nCustomer: %s\nPhone: %s\nPickup time: %s\nTotal: $%s\nItems: %s",
		order.ID,
		order.Customer.Name,
		order.Customer.Phone,
		order.Customer.PickupTime,
		order.Total.StringFixed(2),
		strings.Join(items, ", "))
}

func validateCustomer(customer models.CustomerInfo) error {
	switch {
	case customer.Name == "":
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	case customer.Phone == "":
		return fmt.Errorf("%w: customer phone is required", ErrValidation)
	case customer.Email == "":
		return fmt.Errorf("%w: customer email is required", ErrValidation)
	case customer.PickupTime == "":
		return fmt.Errorf("%w: pickup time is required", ErrValidation)
	}
	return nil
}
