package services

import (
	"context"
	"strings"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/models"
)

// CatalogService is a thin paging layer over the public catalog. No
// authentication is involved; browsing works logged out.
type CatalogService struct {
	api      api.Client
	pageSize int
}

func NewCatalogService(client api.Client, pageSize int) *CatalogService {
	return &CatalogService{api: client, pageSize: pageSize}
}

// Page fetches one page of the catalog, or of search results when the
// query is non-empty.
func (s *CatalogService) Page(ctx context.Context, query string, page int) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * s.pageSize
	query = strings.TrimSpace(query)
	if query == "" {
		return s.api.AllProducts(ctx, s.pageSize, skip)
	}
	return s.api.SearchProducts(ctx, query, s.pageSize, skip)
}

func (s *CatalogService) Product(ctx context.Context, id int) (*models.Product, error) {
	return s.api.ProductByID(ctx, id)
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.AllCategories(ctx)
}

func (s *CatalogService) Banners(ctx context.Context) ([]models.Banner, error) {
	return s.api.AllBanners(ctx)
}
