// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"strings"

	"nutrilog/internal/domain"
)

// CatalogService encapsulates product catalog use cases.
type CatalogService struct {
	repo domain.ProductRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo domain.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// AddProduct inserts or overwrites the catalog entry for p.Name and
// persists the catalog. Nutrient values are stored as supplied; the
// collaborator coerces malformed numeric input to 0 before calling.
func (s *CatalogService) AddProduct(ctx context.Context, p domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("product name must not be empty")
	}
	return s.repo.SaveProduct(ctx, p)
}

// Lookup returns the product for name, or nil if it is unknown.
// An unknown product is not an error; it contributes zero nutrients
// wherever it is referenced.
func (s *CatalogService) Lookup(ctx context.Context, name string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, name)
}

// List returns every product in the catalog.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Catalog loads the full catalog for nutrient aggregation.
func (s *CatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(products), nil
}
