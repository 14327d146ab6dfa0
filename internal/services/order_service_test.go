package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// fakeNotifier records published summaries on a channel so tests can wait
// for the asynchronous publish.
type fakeNotifier struct {
	published chan string
	err       error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{published: make(chan string, 1)}
}

func (f *fakeNotifier) PublishOrderSummary(summary string) error {
	f.published <- summary
	return f.err
}

func validCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:       "Ana Torres",
		Phone:      "5551234567",
		Email:      "ana@example.com",
		PickupTime: "17:30",
	}
}

func cafeLines() []models.OrderLine {
	return []models.OrderLine{
		{ProductID: "p1", Name: "Americano", Price: decimal.NewFromFloat(50.0), Quantity: 2},
		{ProductID: "p2", Name: "Brownie", Price: decimal.NewFromFloat(30.0), Quantity: 1},
	}
}

func TestOrderService_CreateComputesTotalAndForcesPending(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	notifier := newFakeNotifier()
	svc := services.NewOrderService(repo, notifier, "http://localhost:8080")

	order, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.True(t, decimal.NewFromFloat(130.0).Equal(order.Total))
	assert.Len(t, order.Lines, 2)

	select {
	case summary := <-notifier.published:
		assert.Contains(t, summary, order.ID)
		assert.Contains(t, summary, "Ana Torres")
		assert.Contains(t, summary, "2x Americano")
		assert.Contains(t, summary, "1x Brownie")
		assert.Contains(t, summary, "130.00")
	case <-time.After(time.Second):
		t.Fatal("expected a notification to be published")
	}
}

func TestOrderService_CreateRejectsTotalMismatch(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, newFakeNotifier(), "http://localhost:8080")

	_, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(99.0))
	assert.ErrorIs(t, err, services.ErrValidation)

	orders, err := repo.GetAll("")
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_CreateValidation(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, newFakeNotifier(), "http://localhost:8080")

	// no lines
	_, err := svc.Create(nil, validCustomer(), decimal.Zero)
	assert.ErrorIs(t, err, services.ErrValidation)

	// missing contact fields
	customer := validCustomer()
	customer.Phone = ""
	_, err = svc.Create(cafeLines(), customer, decimal.NewFromFloat(130.0))
	assert.ErrorIs(t, err, services.ErrValidation)

	// non-positive quantity
	lines := cafeLines()
	lines[0].Quantity = 0
	_, err = svc.Create(lines, validCustomer(), decimal.NewFromFloat(30.0))
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestOrderService_NotificationFailureDoesNotFailCreation(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	notifier := newFakeNotifier()
	notifier.err = fmt.Errorf("broker unavailable")
	svc := services.NewOrderService(repo, notifier, "http://localhost:8080")

	order, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)

	// the publish was attempted and failed, yet the order is durable
	select {
	case <-notifier.published:
	case <-time.After(time.Second):
		t.Fatal("expected a publish attempt")
	}
	got, err := svc.Get(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPending, got.Status)
}

func TestOrderService_StatusTransitions(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, nil, "http://localhost:8080")

	order, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)

	// pending cannot jump straight to completed
	err = svc.UpdateStatus(order.ID, models.OrderCompleted)
	assert.ErrorIs(t, err, services.ErrValidation)

	assert.NoError(t, svc.UpdateStatus(order.ID, models.OrderProcessing))
	assert.NoError(t, svc.UpdateStatus(order.ID, models.OrderCompleted))

	// completed is terminal
	err = svc.UpdateStatus(order.ID, models.OrderCancelled)
	assert.ErrorIs(t, err, services.ErrValidation)

	// unknown status and unknown order
	err = svc.UpdateStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, services.ErrValidation)
	err = svc.UpdateStatus("no-such-order", models.OrderProcessing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestOrderService_CancelFromPendingAndProcessing(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, nil, "http://localhost:8080")

	first, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)
	assert.NoError(t, svc.UpdateStatus(first.ID, models.OrderCancelled))

	second, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)
	assert.NoError(t, svc.UpdateStatus(second.ID, models.OrderProcessing))
	assert.NoError(t, svc.UpdateStatus(second.ID, models.OrderCancelled))

	// cancelled is terminal
	err = svc.UpdateStatus(second.ID, models.OrderProcessing)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestOrderService_ListFiltersByStatus(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, nil, "http://localhost:8080")

	order, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)
	assert.NoError(t, svc.UpdateStatus(order.ID, models.OrderProcessing))
	assert.NoError(t, svc.UpdateStatus(order.ID, models.OrderCompleted))

	completed, err := svc.List(models.OrderCompleted)
	assert.NoError(t, err)
	assert.Len(t, completed, 1)
	assert.Equal(t, order.ID, completed[0].ID)

	pending, err := svc.List(models.OrderPending)
	assert.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.List("shipped")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestOrderService_Stats(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, nil, "http://localhost:8080")

	base := time.Now().Add(-time.Hour)
	seed := []struct {
		status models.OrderStatus
		total  float64
	}{
		{models.OrderPending, 50.0},
		{models.OrderPending, 80.0},
		{models.OrderCompleted, 130.0},
		{models.OrderCompleted, 65.0},
		{models.OrderCancelled, 30.0},
		{models.OrderProcessing, 55.0},
	}
	for i, o := range seed {
		err := repo.Create(&models.Order{
			Customer:  validCustomer(),
			Lines:     cafeLines(),
			Total:     decimal.NewFromFloat(o.total),
			Status:    o.status,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}

	stats, err := svc.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 2, stats.CompletedCount)
	assert.True(t, decimal.NewFromFloat(195.0).Equal(stats.CompletedRevenue))
	assert.Len(t, stats.RecentOrders, 5)
	// newest first
	assert.True(t, decimal.NewFromFloat(55.0).Equal(stats.RecentOrders[0].Total))
}

func TestOrderService_PickupQR(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	svc := services.NewOrderService(repo, nil, "http://localhost:8080")

	order, err := svc.Create(cafeLines(), validCustomer(), decimal.NewFromFloat(130.0))
	assert.NoError(t, err)

	png, err := svc.PickupQR(order.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	_, err = svc.PickupQR("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
