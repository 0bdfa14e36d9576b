// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, local storage, the backend API client, the cart and
// session stores and the application services, then runs a REPL. Shoppers
// browse the catalog, fill the cart and check out; admins log in and manage
// orders, categories, sizes, products and contact messages.
//
// The stores reach command handlers through the request context (see
// cart.FromContext and session.FromContext). A background watcher pings the
// backend and keeps the online/offline mode shown in the prompt current.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
