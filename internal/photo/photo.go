// Package photo stores uploaded images and the records that describe them.
package photo

import (
	"context"
	"errors"
	"time"
)

// Photo is the record kept for every stored image. Records are created and
// deleted, never updated.
type Photo struct {
	ID         string    `json:"id" firestore:"-"`
	FileName   string    `json:"file_name" firestore:"file_name"`
	ServingURL string    `json:"serving_url" firestore:"serving_url"`
	UploadDate time.Time `json:"upload_date" firestore:"upload_date"`
}

// ErrNotFound is returned when no record exists for a well-formed key.
var ErrNotFound = errors.New("photo not found using the key provided")

// ErrInvalidKey is returned when a key is not well-formed for the document store.
var ErrInvalidKey = errors.New("invalid photo key")

// ValidationError reports an upload the user can correct.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// StorageError reports a failed object store or document store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// IsNotFound returns true when err should be reported as a missing photo:
// either the key could not be decoded or nothing is stored under it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidKey)
}

// IsStorage returns true when err came from a failed store operation.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// DocumentStore persists Photo records. Implementations return ErrInvalidKey
// for ids they cannot decode and ErrNotFound for well-formed ids with no record.
type DocumentStore interface {
	// Insert persists p and sets its ID.
	Insert(ctx context.Context, p *Photo) error
	List(ctx context.Context) ([]Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	Delete(ctx context.Context, id string) error
}

// URLResolver issues public serving URLs for stored objects.
type URLResolver interface {
	Resolve(ctx context.Context, path string) (string, error)
}
