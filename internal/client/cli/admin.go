package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

const adminUsage = "admin <orders|order <id>|delorder <id>|messages|delmessage <id>|categories|addcategory <name>|rencategory <id> <name>|delcategory <id>|sizes|addsize <label>|rensize <id> <label>|delsize <id>|addproduct|editproduct <id>|delproduct <id>>"

// Admin dispatches admin subcommands. Every subcommand is guarded by the
// admin service; a missing or expired session ends in a forced logout.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage(adminUsage)
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "orders":
		orders, err := a.admin.Orders(ctx)
		if err != nil {
			return err
		}
		printOrders(a.out, orders)
	case "order":
		if len(rest) != 1 {
			return errUsage("admin order <id>")
		}
		order, err := a.admin.Order(ctx, rest[0])
		if err != nil {
			return err
		}
		printOrder(a.out, order)
	case "delorder":
		if len(rest) != 1 {
			return errUsage("admin delorder <id>")
		}
		return a.done(a.admin.DeleteOrder(ctx, rest[0]), "Order deleted.")

	case "messages":
		msgs, err := a.admin.Messages(ctx)
		if err != nil {
			return err
		}
		printMessages(a.out, msgs)
	case "delmessage":
		if len(rest) != 1 {
			return errUsage("admin delmessage <id>")
		}
		return a.done(a.admin.DeleteMessage(ctx, rest[0]), "Message deleted.")

	case "categories":
		cats, err := a.admin.Categories(ctx)
		if err != nil {
			return err
		}
		tw := newTable(a.out)
		fmt.Fprintln(tw, "ID\tNAME")
		for _, c := range cats {
			fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
		}
		return tw.Flush()
	case "addcategory":
		if len(rest) == 0 {
			return errUsage("admin addcategory <name>")
		}
		cat, err := a.admin.CreateCategory(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Category %s created.\n", cat.ID)
	case "rencategory":
		if len(rest) < 2 {
			return errUsage("admin rencategory <id> <name>")
		}
		_, err := a.admin.RenameCategory(ctx, rest[0], strings.Join(rest[1:], " "))
		return a.done(err, "Category renamed.")
	case "delcategory":
		if len(rest) != 1 {
			return errUsage("admin delcategory <id>")
		}
		return a.done(a.admin.DeleteCategory(ctx, rest[0]), "Category deleted.")

	case "sizes":
		sizes, err := a.admin.Sizes(ctx)
		if err != nil {
			return err
		}
		tw := newTable(a.out)
		fmt.Fprintln(tw, "ID\tSIZE")
		for _, s := range sizes {
			fmt.Fprintf(tw, "%s\t%s\n", s.ID, s.Size)
		}
		return tw.Flush()
	case "addsize":
		if len(rest) != 1 {
			return errUsage("admin addsize <label>")
		}
		size, err := a.admin.CreateSize(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Size %s created.\n", size.ID)
	case "rensize":
		if len(rest) != 2 {
			return errUsage("admin rensize <id> <label>")
		}
		_, err := a.admin.RenameSize(ctx, rest[0], rest[1])
		return a.done(err, "Size renamed.")
	case "delsize":
		if len(rest) != 1 {
			return errUsage("admin delsize <id>")
		}
		return a.done(a.admin.DeleteSize(ctx, rest[0]), "Size deleted.")

	case "addproduct":
		return a.addProduct(ctx)
	case "editproduct":
		if len(rest) != 1 {
			return errUsage("admin editproduct <id>")
		}
		return a.editProduct(ctx, rest[0])
	case "delproduct":
		if len(rest) != 1 {
			return errUsage("admin delproduct <id>")
		}
		return a.done(a.admin.DeleteProduct(ctx, rest[0]), "Product deleted.")

	default:
		return errUsage(adminUsage)
	}
	return nil
}

func (a *App) done(err error, msg string) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) addProduct(ctx context.Context) error {
	in, err := a.promptProduct()
	if err != nil {
		return err
	}
	p, err := a.admin.CreateProduct(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %s created.\n", p.ID)
	return nil
}

// editProduct replaces every field of product id with freshly prompted values.
func (a *App) editProduct(ctx context.Context, id string) error {
	in, err := a.promptProduct()
	if err != nil {
		return err
	}
	p, err := a.admin.UpdateProduct(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %s updated.\n", p.ID)
	return nil
}

// promptProduct collects a product interactively. Size and image lists are
// comma separated.
func (a *App) promptProduct() (models.ProductInput, error) {
	var in models.ProductInput
	var err error

	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return in, err
	}
	if in.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return in, err
	}
	price, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return in, err
	}
	if in.Price, err = strconv.ParseInt(price, 10, 64); err != nil {
		return in, &services.ValidationError{Fields: []services.FieldError{{Field: "price", Rule: "number"}}}
	}
	if in.CategoryID, err = getSimpleText(a.reader, "Category id (empty for none)", a.out); err != nil {
		return in, err
	}
	sizes, err := getSimpleText(a.reader, "Size ids, comma separated", a.out)
	if err != nil {
		return in, err
	}
	in.SizeIDs = splitList(sizes)
	images, err := getSimpleText(a.reader, "Image URLs, comma separated", a.out)
	if err != nil {
		return in, err
	}
	in.ImageURLs = splitList(images)
	return in, nil
}

// resume reopens the admin page a forced logout interrupted.
func (a *App) resume(ctx context.Context, from string) error {
	switch from {
	case services.LocationOrders:
		return a.Admin(ctx, []string{"orders"})
	case services.LocationCategories:
		return a.Admin(ctx, []string{"categories"})
	case services.LocationSizes:
		return a.Admin(ctx, []string{"sizes"})
	case services.LocationMessages:
		return a.Admin(ctx, []string{"messages"})
	default:
		return nil
	}
}
