package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// CatalogAPI is the public catalog part of the backend.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	Featured(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Sizes(ctx context.Context) ([]models.Size, error)
	Team(ctx context.Context) ([]models.StaffMember, error)
}

// AllCategories in Filter.CategoryID matches every category.
const AllCategories = "all"

// Filter narrows a product search. Query is matched case-insensitively
// against title and description.
type Filter struct {
	Query      string
	CategoryID string
}

type CatalogService interface {
	Search(ctx context.Context, f Filter) ([]models.Product, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	Featured(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Sizes(ctx context.Context) ([]models.Size, error)
	Team(ctx context.Context) ([]models.StaffMember, error)
}

type catalogService struct {
	api CatalogAPI
}

func NewCatalogService(api CatalogAPI) CatalogService {
	return &catalogService{api: api}
}

// Search fetches the full product list and filters it locally; the backend
// offers no search endpoint.
func (s *catalogService) Search(ctx context.Context, f Filter) ([]models.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, f.CategoryID) && matchesQuery(p, query) {
			result = append(result, p)
		}
	}
	return result, nil
}

func matchesCategory(p models.Product, categoryID string) bool {
	if categoryID == "" || categoryID == AllCategories {
		return true
	}
	return p.Category != nil && p.Category.ID == categoryID
}

func matchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func (s *catalogService) Product(ctx context.Context, id string) (*models.Product, error) {
	return s.api.GetProduct(ctx, id)
}

func (s *catalogService) Featured(ctx context.Context) ([]models.Product, error) {
	return s.api.Featured(ctx)
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

func (s *catalogService) Sizes(ctx context.Context) ([]models.Size, error) {
	return s.api.Sizes(ctx)
}

func (s *catalogService) Team(ctx context.Context) ([]models.StaffMember, error) {
	return s.api.Team(ctx)
}
