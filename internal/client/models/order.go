package models

import "time"

type OrderItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Size     *Size   `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderItem `json:"items"`
	TotalPrice      int64       `json:"total_price"`
	IsConfirmed     bool        `json:"is_confirmed"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderLine is one requested line of a new order.
type OrderLine struct {
	ProductID string `json:"product_id"`
	SizeID    string `json:"size_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the checkout payload; the backend recomputes the total
// from its own prices.
type OrderRequest struct {
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	TotalPrice      int64       `json:"total_price"`
	Items           []OrderLine `json:"items_data"`
}

// OrderRequestFromCart builds order lines from cart items.
func OrderRequestFromCart(name, phone, address string, items []CartItem) OrderRequest {
	req := OrderRequest{
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		Items:           make([]OrderLine, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, OrderLine{ProductID: it.ProductID, SizeID: it.SizeID, Quantity: it.Quantity})
		req.TotalPrice += it.Subtotal()
	}
	return req
}
