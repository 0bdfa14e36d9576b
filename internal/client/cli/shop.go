package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/cart"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

// noSize stands in for the size argument of products sold without sizes.
const noSize = "-"

// Products lists products, optionally filtered by a free-text query.
func (a *App) Products(ctx context.Context, args []string) error {
	products, err := a.catalog.Search(ctx, services.Filter{Query: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	printProducts(a.out, products)
	return nil
}

// Category lists products in one category; "all" lists everything.
func (a *App) Category(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage("category <id|all> [query]")
	}
	products, err := a.catalog.Search(ctx, services.Filter{CategoryID: args[0], Query: strings.Join(args[1:], " ")})
	if err != nil {
		return err
	}
	printProducts(a.out, products)
	return nil
}

func (a *App) Featured(ctx context.Context, _ []string) error {
	products, err := a.catalog.Featured(ctx)
	if err != nil {
		return err
	}
	printProducts(a.out, products)
	return nil
}

func (a *App) Categories(ctx context.Context, _ []string) error {
	cats, err := a.catalog.Categories(ctx)
	if err != nil {
		return err
	}
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	return tw.Flush()
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage("show <product-id>")
	}
	p, err := a.catalog.Product(ctx, args[0])
	if err != nil {
		return err
	}
	printProduct(a.out, p)
	return nil
}

// Add puts a product in the cart. The size is the label shown by "show";
// products sold without sizes take "-".
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errUsage("add <product-id> <size|-> [qty]")
	}
	qty := 1
	if len(args) == 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return errUsage("add <product-id> <size|-> [qty]")
		}
		qty = n
	}

	p, err := a.catalog.Product(ctx, args[0])
	if err != nil {
		return err
	}
	item, err := cartItemFor(p, args[1], qty)
	if err != nil {
		return err
	}

	c := cart.MustFromContext(ctx)
	if err := c.Add(ctx, item); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %d x %s (%s). Cart: %d items, %s\n",
		qty, p.Title, displaySize(item.Size), c.TotalItems(), formatPrice(c.TotalPrice()))
	return nil
}

// cartItemFor snapshots p into a cart line for the given size label.
func cartItemFor(p *models.Product, sizeLabel string, qty int) (models.CartItem, error) {
	item := models.CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.PrimaryImage(),
		Price:     p.Price,
		Quantity:  qty,
	}

	if len(p.Sizes) == 0 {
		if sizeLabel != noSize {
			return models.CartItem{}, fmt.Errorf("%s is sold without sizes; use %q", p.Title, noSize)
		}
		return item, nil
	}

	size, ok := p.SizeByLabel(sizeLabel)
	if !ok {
		return models.CartItem{}, fmt.Errorf("size %q not available for %s (choose from %s)", sizeLabel, p.Title, sizeLabels(p.Sizes))
	}
	item.Size = size.Size
	item.SizeID = size.ID
	return item, nil
}

func displaySize(size string) string {
	if size == "" {
		return noSize
	}
	return size
}

func argSize(arg string) string {
	if arg == noSize {
		return ""
	}
	return arg
}

func (a *App) Cart(ctx context.Context, _ []string) error {
	c := cart.MustFromContext(ctx)
	printCart(a.out, c.Items(), c.TotalItems(), c.TotalPrice())
	return nil
}

// Qty sets a line's quantity; 0 removes it.
func (a *App) Qty(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage("qty <product-id> <size|-> <n>")
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return errUsage("qty <product-id> <size|-> <n>")
	}
	c := cart.MustFromContext(ctx)
	if err := c.UpdateQuantity(ctx, args[0], argSize(args[1]), n); err != nil {
		return err
	}
	printCart(a.out, c.Items(), c.TotalItems(), c.TotalPrice())
	return nil
}

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage("remove <product-id> <size|->")
	}
	c := cart.MustFromContext(ctx)
	if err := c.Remove(ctx, args[0], argSize(args[1])); err != nil {
		return err
	}
	printCart(a.out, c.Items(), c.TotalItems(), c.TotalPrice())
	return nil
}

func (a *App) Clear(ctx context.Context, _ []string) error {
	if err := cart.MustFromContext(ctx).Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Cart cleared.")
	return nil
}
