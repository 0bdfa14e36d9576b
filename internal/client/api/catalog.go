package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

const (
	productsPath         = "products/"
	featuredProductsPath = "featured-products/"
	categoriesPath       = "categories/"
	sizesPath            = "sizes/"
	teamPath             = "team/"
	contactPath          = "contact-us/"
	orderPath            = "order/"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var res struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &res, nil); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var res struct {
		Product *models.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, resource(productsPath, id), nil, &res, nil); err != nil {
		return nil, err
	}
	if res.Product == nil {
		return nil, ErrNotFound
	}
	return res.Product, nil
}

// Featured returns the products flagged for the home page.
func (c *Client) Featured(ctx context.Context) ([]models.Product, error) {
	var res struct {
		Products []models.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, featuredProductsPath, nil, &res, nil); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var res struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, categoriesPath, nil, &res, nil); err != nil {
		return nil, err
	}
	return res.Categories, nil
}

func (c *Client) Sizes(ctx context.Context) ([]models.Size, error) {
	var res struct {
		Sizes []models.Size `json:"sizes"`
	}
	if err := c.do(ctx, http.MethodGet, sizesPath, nil, &res, nil); err != nil {
		return nil, err
	}
	return res.Sizes, nil
}

func (c *Client) Team(ctx context.Context) ([]models.StaffMember, error) {
	var res struct {
		Team []models.StaffMember `json:"team"`
	}
	if err := c.do(ctx, http.MethodGet, teamPath, nil, &res, nil); err != nil {
		return nil, err
	}
	return res.Team, nil
}

// SubmitContact posts a contact form message.
func (c *Client) SubmitContact(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, contactPath, msg, nil, nil)
}

// PlaceOrder submits an order and returns the stored order as echoed back.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.doFlexible(ctx, http.MethodPost, orderPath, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Ping checks that the backend answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, sizesPath, nil, nil, nil)
}
