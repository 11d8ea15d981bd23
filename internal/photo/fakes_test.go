package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/snapshelf/service/internal/storage"
)

var errBackend = errors.New("backend unavailable")

// fakeDocs is an in-memory DocumentStore whose keys are "doc-<n>".
type fakeDocs struct {
	mu        sync.Mutex
	next      int
	photos    map[string]Photo
	order     []string
	insertErr error
	listErr   error
	deleteErr error
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{photos: make(map[string]Photo)}
}

func (f *fakeDocs) Insert(_ context.Context, p *Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.next++
	p.ID = "doc-" + strconv.Itoa(f.next)
	f.photos[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeDocs) List(_ context.Context) ([]Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Photo
	for _, id := range f.order {
		if p, ok := f.photos[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDocs) Get(_ context.Context, id string) (*Photo, error) {
	if err := f.checkKey(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (f *fakeDocs) Delete(_ context.Context, id string) error {
	if err := f.checkKey(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.photos[id]; !ok {
		return ErrNotFound
	}
	delete(f.photos, id)
	return nil
}

func (f *fakeDocs) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.photos)
}

func (f *fakeDocs) checkKey(id string) error {
	var n int
	if _, err := fmt.Sscanf(id, "doc-%d", &n); err != nil || "doc-"+strconv.Itoa(n) != id {
		return fmt.Errorf("%w: %q", ErrInvalidKey, id)
	}
	return nil
}

// failingObjects wraps a MemoryStorage and fails the selected operations.
type failingObjects struct {
	*storage.MemoryStorage
	uploadErr error
	deleteErr error
	deletes   int
}

func (f *failingObjects) Upload(ctx context.Context, path string, r io.Reader, size int64, opts storage.ObjectOptions) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	return f.MemoryStorage.Upload(ctx, path, r, size, opts)
}

func (f *failingObjects) Delete(ctx context.Context, path string) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.MemoryStorage.Delete(ctx, path)
}

type failingResolver struct{}

func (failingResolver) Resolve(context.Context, string) (string, error) {
	return "", errBackend
}
