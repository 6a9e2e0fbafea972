package client

import (
	"context"
	"net/http"
	"net/url"
)

// Accounts lists the Business Profile accounts of the current user.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var out struct {
		Accounts []Account `json:"accounts"`
	}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/test-accounts", noCache: true}, &out); err != nil {
		return nil, err
	}

	return out.Accounts, nil
}

// Locations lists the locations of one account.
func (c *Client) Locations(ctx context.Context, accountID string) ([]Location, error) {
	var out struct {
		Locations []Location `json:"locations"`
	}
	path := "/test-locations/" + url.PathEscape(bareID(accountID))
	if err := c.do(ctx, request{method: http.MethodGet, path: path, noCache: true}, &out); err != nil {
		return nil, err
	}

	return out.Locations, nil
}
