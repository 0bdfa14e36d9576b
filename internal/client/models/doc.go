// Package models holds the storefront client's data types: cart lines,
// session identity and tokens, and the catalog and order shapes exchanged
// with the backend REST API.
package models
