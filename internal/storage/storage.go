package storage

import (
	"context"
	"io"
)

// Store is the interface for document image storage backends. The local
// filesystem implementation covers single-node deployments; a cloud
// implementation (S3, Azure Blob) can replace it behind the same interface.
type Store interface {
	// Save writes the file under a fresh key within the given prefix
	// (for example "signatures" or "licenses") and returns the key.
	Save(ctx context.Context, prefix, filename string, reader io.Reader) (string, error)

	// Open returns a reader for the stored file.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether the key is present and its size in bytes.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the file. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
