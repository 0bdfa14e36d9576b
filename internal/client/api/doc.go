// Package api is the HTTP/JSON client for the storefront backend.
//
// # Overview
//
// Client covers three groups of endpoints, all resolved against one base URL
// (for example http://127.0.0.1:8000/api/):
//  1. Credential exchange: Login, Logout, RefreshToken. These satisfy the
//     session package's AuthAPI contract and always go out on a plain
//     transport.
//  2. The public catalog and checkout: products, categories, sizes, team,
//     contact form, order submission.
//  3. Admin CRUD under admin/. These expect the Client to be built with an
//     *http.Client whose transport is session.Store.Transport, which attaches
//     the bearer token and recovers from expired access tokens.
//
// # Error Handling
//
// Non-2xx responses become *HTTPError. errors.Is matches ErrUnauthorized for
// 401 and ErrNotFound for 404. Transport failures wrap ErrUnavailable.
package api
