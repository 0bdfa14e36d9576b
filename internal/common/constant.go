// Package common contains constants and helpers shared by the storefront
// client packages.
package common

const (
	// AuthorizationHeader carries "Bearer <access>" on authenticated calls.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the access token in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader tags every outbound API call for backend log correlation.
	RequestIDHeader = "X-Request-ID"
)
