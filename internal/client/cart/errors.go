package cart

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidItem     = errors.New("cart item has no product id")
	ErrNoStore         = errors.New("cart store not found in context")
)
