package service

import (
	"context"
	"io"
)

// ImageStorage stores uploaded images and hands out URLs for them.
type ImageStorage interface {
	// Put writes the object under key.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// URL returns a URL the upstream API can fetch the object from.
	URL(ctx context.Context, key string) (string, error)
}
