// Package cart holds the shopper's cart: an ordered list of line items keyed
// by (product id, size), mirrored to local storage on every change so it
// survives restarts.
package cart
