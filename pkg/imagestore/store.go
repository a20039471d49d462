// Package imagestore persists uploaded menu photos and generated dish
// images, keyed by opaque references stored on sessions and items.
package imagestore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a reference resolves to nothing.
var ErrNotFound = errors.New("image not found")

// Store is the blob interface for menu photos and dish images.
type Store interface {
	// Put writes a blob under key and returns the reference to store.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Get resolves a reference to the blob and its content type.
	Get(ctx context.Context, ref string) ([]byte, string, error)

	// Delete removes a blob. Missing blobs are not an error.
	Delete(ctx context.Context, ref string) error
}
