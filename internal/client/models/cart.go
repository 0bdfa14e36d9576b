package models

// CartItem is one line of the shopper's cart. Title, Image and Price are a
// snapshot taken when the item was added and are not refreshed afterwards.
// A line is identified by the (ProductID, Size) pair.
type CartItem struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Size      string `json:"size"`
	SizeID    string `json:"size_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// Matches reports whether the item is the line for (productID, size).
func (c CartItem) Matches(productID, size string) bool {
	return c.ProductID == productID && c.Size == size
}

// Subtotal is Price * Quantity.
func (c CartItem) Subtotal() int64 {
	return c.Price * int64(c.Quantity)
}
