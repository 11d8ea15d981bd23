package photo

import (
	"bytes"
	"context"
	"log"
	"mime"
	"path/filepath"
	"time"

	"github.com/snapshelf/service/internal/storage"
)

// fileNameLayout gives file names nanosecond resolution so concurrent
// uploads do not collide.
const fileNameLayout = "20060102T150405.000000000"

// Service stores photos across the object store and the document store.
type Service struct {
	objects storage.Storage
	docs    DocumentStore
	urls    URLResolver
	bucket  string
	now     func() time.Time
}

// NewService creates a Service writing blobs into bucket.
func NewService(objects storage.Storage, docs DocumentStore, urls URLResolver, bucket string) *Service {
	return &Service{
		objects: objects,
		docs:    docs,
		urls:    urls,
		bucket:  bucket,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// StoreNewPhoto writes data to the object store, resolves its serving URL and
// records it. No record is written unless the blob write and the URL
// resolution both succeed.
func (s *Service) StoreNewPhoto(ctx context.Context, data []byte, declaredName string) (*Photo, error) {
	uploadDate := s.now()
	fileName := "photo" + uploadDate.Format(fileNameLayout) + ".jpg"
	path := storage.ObjectPath(s.bucket, fileName)

	opts := storage.ObjectOptions{
		ContentType: mime.TypeByExtension(filepath.Ext(fileName)),
		PublicRead:  true,
	}
	if err := s.objects.Upload(ctx, path, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return nil, &StorageError{Op: "write object", Err: err}
	}

	servingURL, err := s.urls.Resolve(ctx, path)
	if err != nil {
		return nil, &StorageError{Op: "resolve serving url", Err: err}
	}

	p := &Photo{
		FileName:   fileName,
		ServingURL: servingURL,
		UploadDate: uploadDate,
	}
	if err := s.docs.Insert(ctx, p); err != nil {
		return nil, &StorageError{Op: "insert record", Err: err}
	}

	log.Printf("photo: stored %q as %s (%s)", declaredName, path, p.ID)
	return p, nil
}

// DeletePhoto removes the blob and then the record addressed by id. When the
// blob delete fails the record is left in place so the delete can be retried.
func (s *Service) DeletePhoto(ctx context.Context, id string) error {
	p, err := s.docs.Get(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return err
		}
		return &StorageError{Op: "get record", Err: err}
	}

	if p.FileName != "" {
		if err := s.objects.Delete(ctx, storage.ObjectPath(s.bucket, p.FileName)); err != nil {
			return &StorageError{Op: "delete object", Err: err}
		}
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		if IsNotFound(err) {
			return err
		}
		return &StorageError{Op: "delete record", Err: err}
	}

	log.Printf("photo: deleted %s (%s)", id, p.FileName)
	return nil
}

// ListPhotos returns every stored record.
func (s *Service) ListPhotos(ctx context.Context) ([]Photo, error) {
	photos, err := s.docs.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list records", Err: err}
	}
	return photos, nil
}
