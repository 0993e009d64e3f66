package ports

import (
	"context"
	"io"
)

// ImageStore is the external byte-store collaborator. The core only passes
// the returned opaque references through; it never interprets them.
type ImageStore interface {
	// Store persists the bytes and returns an opaque reference. ext is the
	// file extension hint (without dot), contentType the MIME type.
	Store(ctx context.Context, r io.Reader, ext, contentType string) (string, error)
}
