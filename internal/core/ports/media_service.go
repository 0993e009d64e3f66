package ports

import (
	"context"
	"io"
)

// MediaService stores property/avatar photos and returns opaque refs.
type MediaService interface {
	// StoreUpload persists an uploaded file. The extension is derived
	// from the original filename.
	StoreUpload(ctx context.Context, r io.Reader, filename, contentType string) (string, error)
	// ImportFromURL fetches an image over HTTP and stores it.
	ImportFromURL(ctx context.Context, url string) (string, error)
}
