package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Register creates a user.
func (c *Client) Register(ctx context.Context, in RegisterRequest) (*User, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}

	var user User
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/register",
		body:        body,
		contentType: "application/json",
	}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login exchanges form encoded credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	form := url.Values{"username": {username}, "password": {password}}

	var token Token
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/auth/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &token); err != nil {
		return nil, err
	}

	return &token, nil
}

// Me returns the profile behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me"}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GoogleAuthURL returns the consent URL of the test flow.
func (c *Client) GoogleAuthURL(ctx context.Context) (string, error) {
	var out struct {
		AuthURL string `json:"auth_url"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/login-test"}, &out); err != nil {
		return "", err
	}

	return out.AuthURL, nil
}

// SaveToken stores a Google token pair for the current user.
func (c *Client) SaveToken(ctx context.Context, accessToken, refreshToken string) error {
	q := url.Values{"access_token": {accessToken}}
	if refreshToken != "" {
		q.Set("refresh_token", refreshToken)
	}

	return c.do(ctx, request{method: http.MethodGet, path: "/save-token", query: q}, nil)
}
