package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Checkout collects delivery details and places the order for the cart.
func (a *App) Checkout(ctx context.Context, _ []string) error {
	c := cart.MustFromContext(ctx)
	if c.Len() == 0 {
		return services.ErrEmptyCart
	}
	printCart(a.out, c.Items(), c.TotalItems(), c.TotalPrice())

	var form services.CheckoutForm
	var err error
	if form.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Address, err = getSimpleText(a.reader, "Delivery address", a.out); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, "Phone number (digits only)", a.out); err != nil {
		return err
	}

	order, err := a.checkout.Checkout(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Thank you! Order %s has been placed.\n", order.ID)
	return nil
}

// Contact sends a message through the contact form.
func (a *App) Contact(ctx context.Context, _ []string) error {
	var form services.ContactForm
	var err error
	if form.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if form.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	if err := a.contact.Send(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Message sent. We will get back to you soon.")
	return nil
}
