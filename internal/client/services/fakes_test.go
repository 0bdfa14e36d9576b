package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

/*************
 * Fake backend
 *************/

type fakeAPI struct {
	// presets
	Products    []models.Product
	ProductsErr error
	Order       *models.Order
	OrderErr    error
	ContactErr  error
	AdminErr    error

	// captured
	LastOrder    *models.OrderRequest
	LastContact  *models.ContactMessage
	LastCategory *models.Category
	LastSize     *models.Size
	LastProduct  *models.ProductInput
	LastID       string
	AdminCalls   int
}

func (f *fakeAPI) ListProducts(context.Context) ([]models.Product, error) {
	return f.Products, f.ProductsErr
}

func (f *fakeAPI) GetProduct(_ context.Context, id string) (*models.Product, error) {
	for _, p := range f.Products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAPI) Featured(context.Context) ([]models.Product, error) { return f.Products[:1], nil }
func (f *fakeAPI) Categories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: "c1", Name: "Men"}}, nil
}
func (f *fakeAPI) Sizes(context.Context) ([]models.Size, error) {
	return []models.Size{{ID: "s1", Size: "M"}}, nil
}
func (f *fakeAPI) Team(context.Context) ([]models.StaffMember, error) { return nil, nil }

func (f *fakeAPI) PlaceOrder(_ context.Context, req models.OrderRequest) (*models.Order, error) {
	f.LastOrder = &req
	return f.Order, f.OrderErr
}

func (f *fakeAPI) SubmitContact(_ context.Context, msg models.ContactMessage) error {
	f.LastContact = &msg
	return f.ContactErr
}

func (f *fakeAPI) admin(id string) error {
	f.AdminCalls++
	f.LastID = id
	return f.AdminErr
}

func (f *fakeAPI) AdminOrders(context.Context) ([]models.Order, error) {
	return []models.Order{{ID: "o1"}}, f.admin("")
}
func (f *fakeAPI) AdminOrder(_ context.Context, id string) (*models.Order, error) {
	return &models.Order{ID: id}, f.admin(id)
}
func (f *fakeAPI) AdminDeleteOrder(_ context.Context, id string) error { return f.admin(id) }
func (f *fakeAPI) AdminCategories(context.Context) ([]models.Category, error) {
	return nil, f.admin("")
}
func (f *fakeAPI) AdminCreateCategory(_ context.Context, c models.Category) (*models.Category, error) {
	f.LastCategory = &c
	return &c, f.admin("")
}
func (f *fakeAPI) AdminUpdateCategory(_ context.Context, c models.Category) (*models.Category, error) {
	f.LastCategory = &c
	return &c, f.admin(c.ID)
}
func (f *fakeAPI) AdminDeleteCategory(_ context.Context, id string) error { return f.admin(id) }
func (f *fakeAPI) AdminSizes(context.Context) ([]models.Size, error)     { return nil, f.admin("") }
func (f *fakeAPI) AdminCreateSize(_ context.Context, s models.Size) (*models.Size, error) {
	f.LastSize = &s
	return &s, f.admin("")
}
func (f *fakeAPI) AdminUpdateSize(_ context.Context, s models.Size) (*models.Size, error) {
	f.LastSize = &s
	return &s, f.admin(s.ID)
}
func (f *fakeAPI) AdminDeleteSize(_ context.Context, id string) error { return f.admin(id) }
func (f *fakeAPI) AdminCreateProduct(_ context.Context, in models.ProductInput) (*models.Product, error) {
	f.LastProduct = &in
	return &models.Product{ID: "p-new", Title: in.Title}, f.admin("")
}
func (f *fakeAPI) AdminUpdateProduct(_ context.Context, id string, in models.ProductInput) (*models.Product, error) {
	f.LastProduct = &in
	return &models.Product{ID: id, Title: in.Title}, f.admin(id)
}
func (f *fakeAPI) AdminDeleteProduct(_ context.Context, id string) error { return f.admin(id) }
func (f *fakeAPI) AdminContactMessages(context.Context) ([]models.ContactMessage, error) {
	return nil, f.admin("")
}
func (f *fakeAPI) AdminDeleteContactMessage(_ context.Context, id string) error { return f.admin(id) }

/*************
 * Fake guard
 *************/

type fakeGuard struct {
	Err       error
	Locations []string
}

func (g *fakeGuard) Guard(_ context.Context, location string) error {
	g.Locations = append(g.Locations, location)
	return g.Err
}
