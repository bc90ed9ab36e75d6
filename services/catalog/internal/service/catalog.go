package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oms-integration/mockcommerce/pkg/pagination"
	"github.com/oms-integration/mockcommerce/services/catalog/internal/domain"
	"github.com/oms-integration/mockcommerce/services/catalog/internal/repository"
)

// CatalogService implements the product catalog operations.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts returns product summaries. When filter is non-empty, only
// products whose name or description contains it (case-insensitively) are
// included. A zero page means the caller asked for no pagination and the
// full filtered list is returned.
func (s *CatalogService) ListProducts(ctx context.Context, page pagination.Page, filter string) ([]domain.ItemSummary, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if filter != "" {
		needle := strings.ToLower(filter)
		kept := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				kept = append(kept, p)
			}
		}
		products = kept
	}

	if page.PageSize > 0 {
		products = pagination.Slice(products, page.Offset(), page.PageSize)
	}

	summaries := make([]domain.ItemSummary, len(products))
	for i := range products {
		summaries[i] = products[i].Summary()
	}
	return summaries, nil
}

// GetProduct retrieves the full detail record for a product.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProductInput holds the full replacement data for a product.
type UpdateProductInput struct {
	Name                 string
	Description          string
	Price                float64
	StockLevel           domain.StockLevel
	LeadTime             domain.LeadTime
	P2OFlag              bool
	AdditionalProperties map[string]any
}

// UpdateProduct replaces the details of an existing product and returns its
// updated summary.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (domain.ItemSummary, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.ItemSummary{}, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.StockLevel = input.StockLevel
	product.LeadTime = input.LeadTime
	product.P2OFlag = input.P2OFlag
	product.AdditionalProperties = input.AdditionalProperties

	if err := s.repo.Replace(ctx, product); err != nil {
		return domain.ItemSummary{}, fmt.Errorf("replace product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated", slog.String("product_id", id))
	return product.Summary(), nil
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}

// GetAvailability returns the stock/lead-time view of a product.
func (s *CatalogService) GetAvailability(ctx context.Context, id string) (domain.Availability, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Availability{}, err
	}
	return product.Availability(), nil
}
