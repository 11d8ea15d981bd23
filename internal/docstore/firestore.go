package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/snapshelf/service/internal/photo"
)

// maxDocumentIDBytes is Firestore's limit on document ID length.
const maxDocumentIDBytes = 1500

// Firestore stores records as documents of one collection. Keys are the
// auto-generated document IDs.
type Firestore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreClient creates and returns a new Firestore client for the given project ID.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}

// NewFirestore returns a store writing to the named collection.
func NewFirestore(client *firestore.Client, collection string) *Firestore {
	return &Firestore{client: client, collection: collection}
}

func (f *Firestore) Insert(ctx context.Context, p *photo.Photo) error {
	ref, _, err := f.client.Collection(f.collection).Add(ctx, p)
	if err != nil {
		return fmt.Errorf("add photo document: %w", err)
	}
	p.ID = ref.ID
	return nil
}

// List returns every document in the collection, oldest first.
func (f *Firestore) List(ctx context.Context) ([]photo.Photo, error) {
	iter := f.client.Collection(f.collection).Documents(ctx)
	defer iter.Stop()

	var photos []photo.Photo
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate photo documents: %w", err)
		}

		var p photo.Photo
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode photo document %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		photos = append(photos, p)
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].UploadDate.Before(photos[j].UploadDate)
	})
	return photos, nil
}

func (f *Firestore) Get(ctx context.Context, id string) (*photo.Photo, error) {
	if err := validateDocumentID(id); err != nil {
		return nil, err
	}

	doc, err := f.client.Collection(f.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, photo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get photo document %s: %w", id, err)
	}

	var p photo.Photo
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode photo document %s: %w", id, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

// Delete removes the document. Firestore deletes of missing documents succeed.
func (f *Firestore) Delete(ctx context.Context, id string) error {
	if err := validateDocumentID(id); err != nil {
		return err
	}

	if _, err := f.client.Collection(f.collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete photo document %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying client.
func (f *Firestore) Close() error {
	return f.client.Close()
}

// validateDocumentID applies Firestore's document ID constraints.
func validateDocumentID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty key", photo.ErrInvalidKey)
	case !utf8.ValidString(id):
		return fmt.Errorf("%w: key is not valid UTF-8", photo.ErrInvalidKey)
	case len(id) > maxDocumentIDBytes:
		return fmt.Errorf("%w: key longer than %d bytes", photo.ErrInvalidKey, maxDocumentIDBytes)
	case strings.Contains(id, "/"):
		return fmt.Errorf("%w: key contains '/'", photo.ErrInvalidKey)
	case id == "." || id == "..":
		return fmt.Errorf("%w: key %q is reserved", photo.ErrInvalidKey, id)
	case len(id) >= 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
		return fmt.Errorf("%w: key %q is reserved", photo.ErrInvalidKey, id)
	}
	return nil
}
