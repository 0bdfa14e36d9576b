package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/go-playground/validator/v10"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderAPI interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error)
}

// CheckoutForm is the delivery information collected at checkout.
type CheckoutForm struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required,number,max=20"`
}

type CheckoutService interface {
	// Checkout submits the cart as an order and clears the cart once the
	// backend has accepted it.
	Checkout(ctx context.Context, form CheckoutForm) (*models.Order, error)
}

type checkoutService struct {
	api      OrderAPI
	cart     *cart.Store
	log      logging.Logger
	validate *validator.Validate
}

func NewCheckoutService(api OrderAPI, c *cart.Store, log logging.Logger) CheckoutService {
	return &checkoutService{api: api, cart: c, log: log, validate: newValidator()}
}

func (s *checkoutService) Checkout(ctx context.Context, form CheckoutForm) (*models.Order, error) {
	if err := validate(s.validate, form); err != nil {
		return nil, err
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := models.OrderRequestFromCart(form.FullName, form.Phone, form.Address, items)
	order, err := s.api.PlaceOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	s.log.Info(ctx, "order placed", "order_id", order.ID, "lines", len(req.Items), "total", req.TotalPrice)

	if err := s.cart.Clear(ctx); err != nil {
		return order, fmt.Errorf("order %s placed but cart not cleared: %w", order.ID, err)
	}
	return order, nil
}
