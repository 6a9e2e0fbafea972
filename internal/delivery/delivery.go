// Package delivery contains the entry points that expose the use cases.
package delivery

import "context"

// Delivery is a long-running entry point such as the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
