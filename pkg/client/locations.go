package client

import (
	"context"
	"net/http"
	"net/url"
)

// ActiveLocations returns the server side active set.
func (c *Client) ActiveLocations(ctx context.Context) ([]ActiveLocation, error) {
	var out []ActiveLocation
	if err := c.do(ctx, request{method: http.MethodGet, path: "/locations/active", noCache: true}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ActivateLocation adds a location to the active set. Activating twice is not an error.
func (c *Client) ActivateLocation(ctx context.Context, accountID, locationID, locationName string) (*ActiveLocation, error) {
	body, err := jsonBody(map[string]string{
		"account_id":    bareID(accountID),
		"location_id":   bareID(locationID),
		"location_name": locationName,
	})
	if err != nil {
		return nil, err
	}

	var out ActiveLocation
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/locations/active",
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeactivateLocation removes a location from the active set. accountID may be empty.
func (c *Client) DeactivateLocation(ctx context.Context, accountID, locationID string) error {
	var q url.Values
	if accountID != "" {
		q = url.Values{"account_id": {bareID(accountID)}}
	}

	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/locations/active/" + url.PathEscape(bareID(locationID)),
		query:  q,
	}, nil)
}
