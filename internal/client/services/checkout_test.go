package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T, items ...models.CartItem) *cart.Store {
	t.Helper()
	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c := cart.NewStore(ctx, storage.NewSQLiteRepository(db))
	for _, it := range items {
		require.NoError(t, c.Add(ctx, it))
	}
	return c
}

var validForm = CheckoutForm{FullName: "Rahim Uddin", Address: "House 1, Dhaka", Phone: "01700000000"}

func TestCheckout_Success(t *testing.T) {
	c := newCart(t,
		models.CartItem{ProductID: "p1", SizeID: "s-m", Size: "M", Price: 1500, Quantity: 2},
		models.CartItem{ProductID: "p2", Size: "L", Price: 800, Quantity: 1},
	)
	api := &fakeAPI{Order: &models.Order{ID: "o1"}}
	svc := NewCheckoutService(api, c, logging.Discard())

	order, err := svc.Checkout(context.Background(), validForm)
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	want := &models.OrderRequest{
		CustomerName:    "Rahim Uddin",
		CustomerPhone:   "01700000000",
		CustomerAddress: "House 1, Dhaka",
		TotalPrice:      3800,
		Items: []models.OrderLine{
			{ProductID: "p1", SizeID: "s-m", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
	assert.Empty(t, cmp.Diff(want, api.LastOrder))
	assert.Equal(t, 0, c.Len(), "cart cleared after acceptance")
}

func TestCheckout_Validation(t *testing.T) {
	c := newCart(t, models.CartItem{ProductID: "p1", Size: "M", Price: 100, Quantity: 1})
	api := &fakeAPI{}
	svc := NewCheckoutService(api, c, logging.Discard())

	_, err := svc.Checkout(context.Background(), CheckoutForm{Phone: "017-000"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("full_name"))
	assert.True(t, verr.Has("address"))
	assert.True(t, verr.Has("phone"))
	assert.Contains(t, verr.Error(), "phone (number)")

	assert.Nil(t, api.LastOrder)
	assert.Equal(t, 1, c.Len())
}

func TestCheckout_EmptyCart(t *testing.T) {
	api := &fakeAPI{}
	svc := NewCheckoutService(api, newCart(t), logging.Discard())

	_, err := svc.Checkout(context.Background(), validForm)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, api.LastOrder)
}

func TestCheckout_BackendFailureKeepsCart(t *testing.T) {
	boom := errors.New("boom")
	c := newCart(t, models.CartItem{ProductID: "p1", Size: "M", Price: 100, Quantity: 3})
	svc := NewCheckoutService(&fakeAPI{OrderErr: boom}, c, logging.Discard())

	_, err := svc.Checkout(context.Background(), validForm)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, c.TotalItems())
}

func TestContact_Send(t *testing.T) {
	api := &fakeAPI{}
	svc := NewContactService(api)

	err := svc.Send(context.Background(), ContactForm{Name: "Ayesha", Email: "ayesha@example.com", Message: "Do you ship abroad?"})
	require.NoError(t, err)
	require.NotNil(t, api.LastContact)
	assert.Equal(t, "ayesha@example.com", api.LastContact.Email)
}

func TestContact_Validation(t *testing.T) {
	api := &fakeAPI{}
	svc := NewContactService(api)

	err := svc.Send(context.Background(), ContactForm{Name: "A", Email: "not-an-email"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email"))
	assert.True(t, verr.Has("message"))
	assert.False(t, verr.Has("name"))
	assert.Nil(t, api.LastContact)
}
