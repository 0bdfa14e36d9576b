package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func formatPrice(p int64) string {
	return fmt.Sprintf("৳%d", p)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printProducts(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tSIZES\tPRICE")
	for _, p := range products {
		category := "-"
		if p.Category != nil {
			category = p.Category.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, category, sizeLabels(p.Sizes), formatPrice(p.Price))
	}
	_ = tw.Flush()
}

func sizeLabels(sizes []models.Size) string {
	if len(sizes) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(sizes))
	for _, s := range sizes {
		labels = append(labels, s.Size)
	}
	return strings.Join(labels, ",")
}

func printProduct(w io.Writer, p *models.Product) {
	fmt.Fprintf(w, "%s  %s\n", p.Title, formatPrice(p.Price))
	if p.Category != nil {
		fmt.Fprintf(w, "Category: %s\n", p.Category.Name)
	}
	fmt.Fprintf(w, "Sizes: %s\n", sizeLabels(p.Sizes))
	if img := p.PrimaryImage(); img != "" {
		fmt.Fprintf(w, "Image: %s\n", img)
	}
	if p.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Description)
	}
}

func printCart(w io.Writer, items []models.CartItem, totalItems int, totalPrice int64) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "PRODUCT\tTITLE\tSIZE\tQTY\tPRICE\tSUBTOTAL")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			it.ProductID, it.Title, displaySize(it.Size), it.Quantity, formatPrice(it.Price), formatPrice(it.Subtotal()))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Items: %d  Total: %s\n", totalItems, formatPrice(totalPrice))
}

func printOrders(w io.Writer, orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tPHONE\tITEMS\tTOTAL\tCONFIRMED\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%t\t%s\n",
			o.ID, o.CustomerName, o.CustomerPhone, len(o.Items), formatPrice(o.TotalPrice), o.IsConfirmed,
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()
}

func printOrder(w io.Writer, o *models.Order) {
	fmt.Fprintf(w, "Order %s  %s\n", o.ID, formatPrice(o.TotalPrice))
	fmt.Fprintf(w, "Customer: %s, %s\n", o.CustomerName, o.CustomerPhone)
	fmt.Fprintf(w, "Address: %s\n", o.CustomerAddress)
	tw := newTable(w)
	fmt.Fprintln(tw, "PRODUCT\tSIZE\tQTY")
	for _, it := range o.Items {
		size := "-"
		if it.Size != nil {
			size = it.Size.Size
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", it.Product.Title, size, it.Quantity)
	}
	_ = tw.Flush()
}

func printMessages(w io.Writer, msgs []models.ContactMessage) {
	if len(msgs) == 0 {
		fmt.Fprintln(w, "No messages.")
		return
	}
	for _, m := range msgs {
		flag := ""
		if !m.IsRead {
			flag = " [new]"
		}
		fmt.Fprintf(w, "%s  %s <%s>%s\n  %s\n", m.ID, m.Name, m.Email, flag, m.Message)
	}
}
