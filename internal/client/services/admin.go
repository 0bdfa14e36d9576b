package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// AdminAPI is the admin part of the backend. The implementation must send
// requests through the session transport.
type AdminAPI interface {
	AdminOrders(ctx context.Context) ([]models.Order, error)
	AdminOrder(ctx context.Context, id string) (*models.Order, error)
	AdminDeleteOrder(ctx context.Context, id string) error

	AdminCategories(ctx context.Context) ([]models.Category, error)
	AdminCreateCategory(ctx context.Context, cat models.Category) (*models.Category, error)
	AdminUpdateCategory(ctx context.Context, cat models.Category) (*models.Category, error)
	AdminDeleteCategory(ctx context.Context, id string) error

	AdminSizes(ctx context.Context) ([]models.Size, error)
	AdminCreateSize(ctx context.Context, s models.Size) (*models.Size, error)
	AdminUpdateSize(ctx context.Context, s models.Size) (*models.Size, error)
	AdminDeleteSize(ctx context.Context, id string) error

	AdminCreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	AdminUpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	AdminDeleteProduct(ctx context.Context, id string) error

	AdminContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	AdminDeleteContactMessage(ctx context.Context, id string) error
}

// Guard admits a caller to location or returns the error that redirects
// them to login. *session.Store implements it.
type Guard interface {
	Guard(ctx context.Context, location string) error
}

// Locations passed to the guard.
const (
	LocationOrders     = "admin/orders"
	LocationCategories = "admin/categories"
	LocationSizes      = "admin/sizes"
	LocationProducts   = "admin/products"
	LocationMessages   = "admin/messages"
)

type categoryForm struct {
	Name string `json:"name" validate:"required,max=100"`
}

type sizeForm struct {
	Size string `json:"size" validate:"required,max=10"`
}

// AdminService is the admin console. Every call is guarded; a failed guard
// returns the *session.LoginRedirect unchanged.
type AdminService interface {
	Orders(ctx context.Context) ([]models.Order, error)
	Order(ctx context.Context, id string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Sizes(ctx context.Context) ([]models.Size, error)
	CreateSize(ctx context.Context, label string) (*models.Size, error)
	RenameSize(ctx context.Context, id, label string) (*models.Size, error)
	DeleteSize(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Messages(ctx context.Context) ([]models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id string) error
}

type adminService struct {
	api      AdminAPI
	guard    Guard
	validate *validator.Validate
}

func NewAdminService(api AdminAPI, guard Guard) AdminService {
	return &adminService{api: api, guard: guard, validate: newValidator()}
}

func (s *adminService) Orders(ctx context.Context) ([]models.Order, error) {
	if err := s.guard.Guard(ctx, LocationOrders); err != nil {
		return nil, err
	}
	return s.api.AdminOrders(ctx)
}

func (s *adminService) Order(ctx context.Context, id string) (*models.Order, error) {
	if err := s.guard.Guard(ctx, LocationOrders); err != nil {
		return nil, err
	}
	return s.api.AdminOrder(ctx, id)
}

func (s *adminService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.guard.Guard(ctx, LocationOrders); err != nil {
		return err
	}
	return s.api.AdminDeleteOrder(ctx, id)
}

func (s *adminService) Categories(ctx context.Context) ([]models.Category, error) {
	if err := s.guard.Guard(ctx, LocationCategories); err != nil {
		return nil, err
	}
	return s.api.AdminCategories(ctx)
}

func (s *adminService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if err := s.guard.Guard(ctx, LocationCategories); err != nil {
		return nil, err
	}
	if err := validate(s.validate, categoryForm{Name: name}); err != nil {
		return nil, err
	}
	cat, err := s.api.AdminCreateCategory(ctx, models.Category{Name: name})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (s *adminService) RenameCategory(ctx context.Context, id, name string) (*models.Category, error) {
	if err := s.guard.Guard(ctx, LocationCategories); err != nil {
		return nil, err
	}
	if err := validate(s.validate, categoryForm{Name: name}); err != nil {
		return nil, err
	}
	cat, err := s.api.AdminUpdateCategory(ctx, models.Category{ID: id, Name: name})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return cat, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.guard.Guard(ctx, LocationCategories); err != nil {
		return err
	}
	return s.api.AdminDeleteCategory(ctx, id)
}

func (s *adminService) Sizes(ctx context.Context) ([]models.Size, error) {
	if err := s.guard.Guard(ctx, LocationSizes); err != nil {
		return nil, err
	}
	return s.api.AdminSizes(ctx)
}

func (s *adminService) CreateSize(ctx context.Context, label string) (*models.Size, error) {
	if err := s.guard.Guard(ctx, LocationSizes); err != nil {
		return nil, err
	}
	if err := validate(s.validate, sizeForm{Size: label}); err != nil {
		return nil, err
	}
	size, err := s.api.AdminCreateSize(ctx, models.Size{Size: label})
	if err != nil {
		return nil, fmt.Errorf("create size: %w", err)
	}
	return size, nil
}

func (s *adminService) RenameSize(ctx context.Context, id, label string) (*models.Size, error) {
	if err := s.guard.Guard(ctx, LocationSizes); err != nil {
		return nil, err
	}
	if err := validate(s.validate, sizeForm{Size: label}); err != nil {
		return nil, err
	}
	size, err := s.api.AdminUpdateSize(ctx, models.Size{ID: id, Size: label})
	if err != nil {
		return nil, fmt.Errorf("update size: %w", err)
	}
	return size, nil
}

func (s *adminService) DeleteSize(ctx context.Context, id string) error {
	if err := s.guard.Guard(ctx, LocationSizes); err != nil {
		return err
	}
	return s.api.AdminDeleteSize(ctx, id)
}

func (s *adminService) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	if err := s.guard.Guard(ctx, LocationProducts); err != nil {
		return nil, err
	}
	if err := validate(s.validate, in); err != nil {
		return nil, err
	}
	p, err := s.api.AdminCreateProduct(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	if err := s.guard.Guard(ctx, LocationProducts); err != nil {
		return nil, err
	}
	if err := validate(s.validate, in); err != nil {
		return nil, err
	}
	p, err := s.api.AdminUpdateProduct(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.guard.Guard(ctx, LocationProducts); err != nil {
		return err
	}
	return s.api.AdminDeleteProduct(ctx, id)
}

func (s *adminService) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	if err := s.guard.Guard(ctx, LocationMessages); err != nil {
		return nil, err
	}
	return s.api.AdminContactMessages(ctx)
}

func (s *adminService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.guard.Guard(ctx, LocationMessages); err != nil {
		return err
	}
	return s.api.AdminDeleteContactMessage(ctx, id)
}
