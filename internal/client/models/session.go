package models

// AuthUser identifies the signed-in admin.
type AuthUser struct {
	Username string `json:"username"`
}

// AuthTokens is the bearer token pair issued by the backend.
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResult is the payload of a successful credential exchange.
type LoginResult struct {
	User   AuthUser   `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}

// Complete reports whether every field the session needs is present.
func (r LoginResult) Complete() bool {
	return r.User.Username != "" && r.Tokens.Access != "" && r.Tokens.Refresh != ""
}
