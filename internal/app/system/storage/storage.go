// internal/app/system/storage/storage.go

// Package storage abstracts where uploaded facility images live. The core
// only ever stores the URL a backend hands back; backends are a local
// directory (dev) and S3 (production), chosen by config.
package storage

import (
	"context"
	"io"
)

// PutOptions carries optional metadata for a stored object.
type PutOptions struct {
	ContentType string
}

// Store is the object storage interface consumed by upload handlers.
type Store interface {
	// Put writes the object at path. Putting the same path twice is
	// idempotent: the second write replaces the first.
	Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error

	// URL returns the durable, client-servable URL for a stored path.
	URL(path string) string
}
