package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

const (
	loginPath   = "accounts/login/"
	logoutPath  = "accounts/logout/"
	refreshPath = "accounts/token/refresh/"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Login exchanges credentials for a user and a token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.doFlexible(ctx, http.MethodPost, loginPath, loginRequest{Username: username, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout blacklists the refresh token on the backend. The access token
// authenticates the call.
func (c *Client) Logout(ctx context.Context, tokens models.AuthTokens) error {
	return c.do(ctx, http.MethodPost, logoutPath, refreshRequest{Refresh: tokens.Refresh}, nil, bearer(tokens.Access))
}

// RefreshToken exchanges a refresh token for a new access token. Refresh is
// set in the result only when the backend rotates it.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*models.AuthTokens, error) {
	var res models.AuthTokens
	if err := c.doFlexible(ctx, http.MethodPost, refreshPath, refreshRequest{Refresh: refresh}, &res); err != nil {
		return nil, err
	}
	if res.Access == "" {
		return nil, fmt.Errorf("%w: refresh response has no access token", ErrUnexpectedResponse)
	}
	return &res, nil
}
