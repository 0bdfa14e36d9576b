// Package services contains the storefront client's application services:
// catalog search, checkout, the contact form and the guarded admin console.
//
// Services depend on narrow API interfaces that *api.Client satisfies, so
// they can be exercised with in-memory fakes.
package services
