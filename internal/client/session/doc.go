// Package session manages the admin's authenticated session.
//
// # Overview
//
// Store holds the signed-in user and its bearer token pair and mirrors both
// to local storage. The two fields are always written, loaded and cleared
// together, so a session is either complete or absent.
//
// Authenticated traffic goes through Store.Transport, an http.RoundTripper
// middleware that attaches the access token and, on a 401, exchanges the
// refresh token once and retries the request once. When the refresh fails
// the session is force-logged-out and the caller receives the original 401.
//
// Guard is the entry check for admin-only operations. It returns a
// *LoginRedirect when the session is missing or its access token has expired.
//
// # Concurrency
//
// Store is safe for concurrent use. Concurrent 401s share a single refresh
// call.
package session
