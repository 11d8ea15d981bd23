// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// MinIO (any S3-compatible provider), Google Cloud Storage, or the in-memory store.
//
// Objects are addressed by path, "/<bucket>/<object>".
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidPath is returned when a path is not of the form "/<bucket>/<object>".
var ErrInvalidPath = errors.New("invalid object path")

// ErrObjectNotFound is returned when deleting an object that does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectOptions carries the metadata written alongside an object.
type ObjectOptions struct {
	ContentType string
	// PublicRead grants anonymous read access to the object.
	PublicRead bool
}

// Storage is the interface for uploading and deleting objects.
type Storage interface {
	// Upload streams data to the store under the given path.
	Upload(ctx context.Context, path string, reader io.Reader, size int64, opts ObjectOptions) error
	// Delete removes the object identified by path.
	Delete(ctx context.Context, path string) error
}

// ObjectPath joins a bucket and an object name into a storage path.
func ObjectPath(bucket, name string) string {
	return "/" + bucket + "/" + name
}

// SplitPath breaks a storage path into its bucket and object name.
func SplitPath(path string) (bucket, object string, err error) {
	trimmed, ok := strings.CutPrefix(path, "/")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	bucket, object, ok = strings.Cut(trimmed, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return bucket, object, nil
}
