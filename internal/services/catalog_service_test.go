package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// fakeBlobStore is an in-memory blobstore.Store with switchable failures.
type fakeBlobStore struct {
	blobs      map[string][]byte
	deleted    []string
	failPut    bool
	failDelete bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, data []byte) error {
	if f.failPut {
		return fmt.Errorf("blob store unavailable")
	}
	f.blobs[key] = data
	return nil
}

func (f *fakeBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", key)
	}
	return data, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.failDelete {
		return fmt.Errorf("blob store unavailable")
	}
	delete(f.blobs, key)
	return nil
}

func newCatalog(t *testing.T) (*services.CatalogService, *repositories.MockProductRepository, *fakeBlobStore) {
	t.Helper()
	repo := repositories.NewMockProductRepository()
	blobs := newFakeBlobStore()
	return services.NewCatalogService(repo, blobs, "http://localhost:8080"), repo, blobs
}

func TestCatalogService_CreateAndGetRoundTrip(t *testing.T) {
	svc, _, _ := newCatalog(t)

	product := &models.Product{
		Name:        "Cappuccino",
		Description: "Espresso with steamed milk foam",
		Price:       decimal.NewFromFloat(65.0),
		Stock:       100,
		Category:    models.CategoryDrink,
	}
	err := svc.Create(context.Background(), product, nil, "")
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	got, err := svc.Get(product.ID, services.ScopeStorefront)
	assert.NoError(t, err)
	assert.Equal(t, "Cappuccino", got.Name)
	assert.True(t, decimal.NewFromFloat(65.0).Equal(got.Price))
	assert.Equal(t, models.CategoryDrink, got.Category)
	assert.Equal(t, models.ProductActive, got.Status)
}

func TestCatalogService_CreateValidation(t *testing.T) {
	svc, _, _ := newCatalog(t)

	cases := []struct {
		name    string
		product models.Product
	}{
		{"missing name", models.Product{Price: decimal.NewFromInt(10), Category: models.CategoryFood}},
		{"negative price", models.Product{Name: "Latte", Price: decimal.NewFromInt(-1), Category: models.CategoryDrink}},
		{"negative stock", models.Product{Name: "Latte", Price: decimal.NewFromInt(10), Stock: -5, Category: models.CategoryDrink}},
		{"unknown category", models.Product{Name: "Latte", Price: decimal.NewFromInt(10), Category: "sides"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.product
			err := svc.Create(context.Background(), &p, nil, "")
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestCatalogService_CreateWithImageFailureAbortsWholeOperation(t *testing.T) {
	svc, repo, blobs := newCatalog(t)
	blobs.failPut = true

	product := &models.Product{
		Name:     "Latte",
		Price:    decimal.NewFromFloat(55.0),
		Category: models.CategoryDrink,
	}
	err := svc.Create(context.Background(), product, []byte{0xFF, 0xD8}, "latte.jpg")
	assert.Error(t, err)

	// no half-created product with a broken image reference
	products, err := repo.ListAdmin()
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_CreateWithImageRecordsReference(t *testing.T) {
	svc, _, blobs := newCatalog(t)

	product := &models.Product{
		Name:     "Latte",
		Price:    decimal.NewFromFloat(55.0),
		Category: models.CategoryDrink,
	}
	err := svc.Create(context.Background(), product, []byte{0xFF, 0xD8}, "latte.jpg")
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ImageKey)
	assert.Contains(t, product.ImageURL, product.ImageKey)
	assert.Len(t, blobs.blobs, 1)
}

func TestCatalogService_SoftDeleteVisibility(t *testing.T) {
	svc, _, _ := newCatalog(t)

	product := &models.Product{
		Name:     "Brownie",
		Price:    decimal.NewFromFloat(30.0),
		Category: models.CategoryDessert,
	}
	assert.NoError(t, svc.Create(context.Background(), product, nil, ""))
	assert.NoError(t, svc.SoftDelete(context.Background(), product.ID))

	// the storefront never sees a retired product
	storefront, err := svc.List(services.ScopeStorefront, "")
	assert.NoError(t, err)
	assert.Empty(t, storefront)

	_, err = svc.Get(product.ID, services.ScopeStorefront)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// the admin context still sees it, marked retired
	all, err := svc.List(services.ScopeAdmin, "")
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, models.ProductRetired, all[0].Status)
	assert.False(t, all[0].Available())
}

func TestCatalogService_SoftDeleteBlobFailureIsNonFatal(t *testing.T) {
	svc, _, blobs := newCatalog(t)

	product := &models.Product{
		Name:     "Brownie",
		Price:    decimal.NewFromFloat(30.0),
		Category: models.CategoryDessert,
	}
	assert.NoError(t, svc.Create(context.Background(), product, []byte{0x1}, "brownie.jpg"))

	blobs.failDelete = true
	assert.NoError(t, svc.SoftDelete(context.Background(), product.ID))

	got, err := svc.Get(product.ID, services.ScopeAdmin)
	assert.NoError(t, err)
	assert.Equal(t, models.ProductRetired, got.Status)
	// image reference is retained on the record
	assert.NotEmpty(t, got.ImageKey)
}

func TestCatalogService_UpdatePartialFields(t *testing.T) {
	svc, _, _ := newCatalog(t)

	product := &models.Product{
		Name:        "Americano",
		Description: "Black coffee",
		Price:       decimal.NewFromFloat(50.0),
		Stock:       100,
		Category:    models.CategoryDrink,
	}
	assert.NoError(t, svc.Create(context.Background(), product, nil, ""))

	newPrice := decimal.NewFromFloat(52.5)
	updated, err := svc.Update(context.Background(), product.ID, models.ProductUpdate{Price: &newPrice}, nil, "")
	assert.NoError(t, err)
	assert.True(t, newPrice.Equal(updated.Price))
	// untouched fields survive the merge
	assert.Equal(t, "Americano", updated.Name)
	assert.Equal(t, "Black coffee", updated.Description)
	assert.Equal(t, 100, updated.Stock)

	badPrice := decimal.NewFromInt(-1)
	_, err = svc.Update(context.Background(), product.ID, models.ProductUpdate{Price: &badPrice}, nil, "")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCatalogService_UpdateReplacesImageBestEffort(t *testing.T) {
	svc, _, blobs := newCatalog(t)

	product := &models.Product{
		Name:     "Americano",
		Price:    decimal.NewFromFloat(50.0),
		Category: models.CategoryDrink,
	}
	assert.NoError(t, svc.Create(context.Background(), product, []byte{0x1}, "old.jpg"))
	oldKey := product.ImageKey

	blobs.failDelete = true // old-blob cleanup failure must not fail the update
	time.Sleep(time.Millisecond)
	updated, err := svc.Update(context.Background(), product.ID, models.ProductUpdate{}, []byte{0x2}, "new.jpg")
	assert.NoError(t, err)
	assert.NotEqual(t, oldKey, updated.ImageKey)
	assert.Contains(t, blobs.deleted, oldKey)
}

func TestCatalogService_StorefrontOrderingAndCategoryFilter(t *testing.T) {
	svc, _, _ := newCatalog(t)

	for _, p := range []*models.Product{
		{Name: "Latte", Price: decimal.NewFromInt(55), Category: models.CategoryDrink},
		{Name: "Americano", Price: decimal.NewFromInt(50), Category: models.CategoryDrink},
		{Name: "Brownie", Price: decimal.NewFromInt(30), Category: models.CategoryDessert},
	} {
		assert.NoError(t, svc.Create(context.Background(), p, nil, ""))
	}

	menu, err := svc.List(services.ScopeStorefront, "")
	assert.NoError(t, err)
	assert.Len(t, menu, 3)
	assert.Equal(t, "Americano", menu[0].Name)
	assert.Equal(t, "Brownie", menu[1].Name)
	assert.Equal(t, "Latte", menu[2].Name)

	drinks, err := svc.List(services.ScopeStorefront, models.CategoryDrink)
	assert.NoError(t, err)
	assert.Len(t, drinks, 2)

	_, err = svc.List(services.ScopeStorefront, "sides")
	assert.ErrorIs(t, err, services.ErrValidation)
}
