package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Admin endpoints. The Client must be built with the session transport.
const (
	adminOrdersPath     = "admin/orders/"
	adminCategoriesPath = "admin/categories/"
	adminSizesPath      = "admin/sizes/"
	adminProductsPath   = "admin/products/"
	adminContactPath    = "admin/contact-us/"
)

func (c *Client) AdminOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doFlexible(ctx, http.MethodGet, adminOrdersPath, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AdminOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.doFlexible(ctx, http.MethodGet, resource(adminOrdersPath, id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) AdminDeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource(adminOrdersPath, id), nil, nil, nil)
}

func (c *Client) AdminCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.doFlexible(ctx, http.MethodGet, adminCategoriesPath, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) AdminCreateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.doFlexible(ctx, http.MethodPost, adminCategoriesPath, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.doFlexible(ctx, http.MethodPut, resource(adminCategoriesPath, cat.ID), cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource(adminCategoriesPath, id), nil, nil, nil)
}

func (c *Client) AdminSizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := c.doFlexible(ctx, http.MethodGet, adminSizesPath, nil, &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

func (c *Client) AdminCreateSize(ctx context.Context, s models.Size) (*models.Size, error) {
	var out models.Size
	if err := c.doFlexible(ctx, http.MethodPost, adminSizesPath, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateSize(ctx context.Context, s models.Size) (*models.Size, error) {
	var out models.Size
	if err := c.doFlexible(ctx, http.MethodPut, resource(adminSizesPath, s.ID), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteSize(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource(adminSizesPath, id), nil, nil, nil)
}

func (c *Client) AdminCreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var out models.Product
	if err := c.doFlexible(ctx, http.MethodPost, adminProductsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateProduct(ctx context.Context, id string, in models.ProductInput) (*models.Product, error) {
	var out models.Product
	if err := c.doFlexible(ctx, http.MethodPut, resource(adminProductsPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource(adminProductsPath, id), nil, nil, nil)
}

func (c *Client) AdminContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := c.doFlexible(ctx, http.MethodGet, adminContactPath, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) AdminDeleteContactMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource(adminContactPath, id), nil, nil, nil)
}
