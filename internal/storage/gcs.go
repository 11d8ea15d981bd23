package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// GCSStorage implements Storage on Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
}

// NewGCSStorage creates a GCS client using application default credentials.
func NewGCSStorage(ctx context.Context) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}
	return &GCSStorage{client: client}, nil
}

// Upload writes reader to the object at path. Public objects get the
// publicRead predefined ACL, which requires fine-grained bucket access control.
func (s *GCSStorage) Upload(ctx context.Context, path string, reader io.Reader, _ int64, opts ObjectOptions) error {
	bucket, name, err := SplitPath(path)
	if err != nil {
		return err
	}

	writer := s.client.Bucket(bucket).Object(name).NewWriter(ctx)
	writer.ContentType = opts.ContentType
	if opts.PublicRead {
		writer.PredefinedACL = "publicRead"
	}

	if _, err := io.Copy(writer, reader); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write to GCS object %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS write for %s: %w", path, err)
	}
	return nil
}

// Delete removes the object at path.
func (s *GCSStorage) Delete(ctx context.Context, path string) error {
	bucket, name, err := SplitPath(path)
	if err != nil {
		return err
	}

	if err := s.client.Bucket(bucket).Object(name).Delete(ctx); err != nil {
		if isGCSNotFound(err) {
			return fmt.Errorf("delete GCS object %s: %w", path, ErrObjectNotFound)
		}
		return fmt.Errorf("delete GCS object %s: %w", path, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}

func isGCSNotFound(err error) bool {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return true
	}
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
