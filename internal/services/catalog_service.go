package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
	"github.com/XenomaCode/milla13-api/pkg/blobstore"
)

// CatalogScope selects the listing context: the storefront menu sees only
// active products, the admin panel sees the whole catalog.
type CatalogScope int

const (
	ScopeStorefront CatalogScope = iota
	ScopeAdmin
)

// CatalogService handles business logic for the product catalog,
// including product image blobs.
type CatalogService struct {
	repo    repositories.ProductRepository
	blobs   blobstore.Store
	baseURL string
}

// NewCatalogService creates a new CatalogService. baseURL is the public
// prefix under which uploaded images are served.
func NewCatalogService(repo repositories.ProductRepository, blobs blobstore.Store, baseURL string) *CatalogService {
	return &CatalogService{
		repo:    repo,
		blobs:   blobs,
		baseURL: baseURL,
	}
}

// List retrieves products for the given scope. Storefront listings
// contain only active products ordered by name ascending, optionally
// filtered by category; admin listings contain every product ordered by
// creation time descending.
func (s *CatalogService) List(scope CatalogScope, category models.Category) ([]models.Product, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if scope == ScopeAdmin {
		return s.repo.ListAdmin()
	}
	return s.repo.ListStorefront(category)
}

// Get retrieves a single product. Retired products are only visible in
// the admin scope; the storefront sees them as not found.
func (s *CatalogService) Get(id string, scope CatalogScope) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if scope == ScopeStorefront && product.Status == models.ProductRetired {
		return nil, fmt.Errorf("product %s: %w", id, repositories.ErrNotFound)
	}
	return product, nil
}

// Create validates and persists a new product. When image bytes are
// supplied the blob is stored first and the resulting reference recorded;
// a blob store failure fails the whole operation so no product is created
// with a broken image reference.
func (s *CatalogService) Create(ctx context.Context, product *models.Product, image []byte, filename string) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}

	if len(image) > 0 {
		key := blobstore.ObjectKey(time.Now(), filename)
		if err := s.blobs.Put(ctx, key, image); err != nil {
			return fmt.Errorf("failed to store product image: %w", err)
		}
		product.ImageKey = key
		product.ImageURL = s.imageURL(key)
	}

	return s.repo.Create(product)
}

// Update applies a partial update to an existing product. A new image is
// uploaded before the record write; the prior blob is then deleted
// best-effort, with failures logged but not fatal.
func (s *CatalogService) Update(ctx context.Context, id string, upd models.ProductUpdate, image []byte, filename string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		product.Name = *upd.Name
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		if upd.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
		}
		product.Price = *upd.Price
	}
	if upd.Stock != nil {
		if *upd.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be non-negative", ErrValidation)
		}
		product.Stock = *upd.Stock
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *upd.Status)
		}
		product.Status = *upd.Status
	}
	if upd.Category != nil {
		if !upd.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *upd.Category)
		}
		product.Category = *upd.Category
	}

	if len(image) > 0 {
		key := blobstore.ObjectKey(time.Now(), filename)
		if err := s.blobs.Put(ctx, key, image); err != nil {
			return nil, fmt.Errorf("failed to store product image: %w", err)
		}
		if product.ImageKey != "" {
			if err := s.blobs.Delete(ctx, product.ImageKey); err != nil {
				log.Printf("Failed to delete previous image %s for product %s: %v", product.ImageKey, id, err)
			}
		}
		product.ImageKey = key
		product.ImageURL = s.imageURL(key)
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// SoftDelete retires a product. The record and its image reference are
// retained; the blob itself is deleted best-effort.
func (s *CatalogService) SoftDelete(ctx context.Context, id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	product.Status = models.ProductRetired
	if err := s.repo.Save(product); err != nil {
		return err
	}

	if product.ImageKey != "" {
		if err := s.blobs.Delete(ctx, product.ImageKey); err != nil {
			log.Printf("Failed to delete image %s for retired product %s: %v", product.ImageKey, id, err)
		}
	}
	return nil
}

// Image fetches a stored product image blob by key.
func (s *CatalogService) Image(ctx context.Context, key string) ([]byte, error) {
	return s.blobs.Get(ctx, key)
}

func (s *CatalogService) validateProduct(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock must be non-negative", ErrValidation)
	}
	if !product.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, product.Category)
	}
	if product.Status != "" && !product.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, product.Status)
	}
	return nil
}

func (s *CatalogService) imageURL(key string) string {
	return s.baseURL + "/images/" + key
}
