package session

import "fmt"

// Reason explains why a session was ended without the user asking.
type Reason string

const (
	ReasonNotAuthenticated Reason = "not_authenticated"
	ReasonSessionExpired   Reason = "session_expired"
	ReasonRefreshFailed    Reason = "refresh_failed"
)

// Message is the user-facing explanation for r.
func (r Reason) Message() string {
	switch r {
	case ReasonSessionExpired:
		return "Your session has expired. Please log in again."
	case ReasonRefreshFailed:
		return "Your session could not be renewed. Please log in again."
	default:
		return "Please log in to continue."
	}
}

// LoginRedirect tells the caller to send the user to the login surface.
// From is the location they were trying to reach, if known.
type LoginRedirect struct {
	Reason  Reason
	Message string
	From    string
}

func (r *LoginRedirect) Error() string {
	if r.From == "" {
		return fmt.Sprintf("login required (%s)", r.Reason)
	}
	return fmt.Sprintf("login required (%s) for %s", r.Reason, r.From)
}

// ForceLogoutHandler is notified after every forced logout.
type ForceLogoutHandler func(r *LoginRedirect)
