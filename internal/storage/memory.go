package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// MemoryObject is a blob held by MemoryStorage.
type MemoryObject struct {
	Data        []byte
	ContentType string
	PublicRead  bool
	Modified    time.Time
}

// MemoryStorage keeps objects in process memory. It backs local development
// and tests; everything is lost on restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]MemoryObject
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string]MemoryObject)}
}

func (s *MemoryStorage) Upload(ctx context.Context, path string, reader io.Reader, _ int64, opts ObjectOptions) error {
	if _, _, err := SplitPath(path); err != nil {
		return err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read object %q: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[path] = MemoryObject{
		Data:        data,
		ContentType: opts.ContentType,
		PublicRead:  opts.PublicRead,
		Modified:    time.Now(),
	}
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, path string) error {
	if _, _, err := SplitPath(path); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[path]; !ok {
		return fmt.Errorf("delete object %q: %w", path, ErrObjectNotFound)
	}
	delete(s.objects, path)
	return nil
}

// Get returns the object stored at path.
func (s *MemoryStorage) Get(path string) (MemoryObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[path]
	return obj, ok
}

// Len returns the number of stored objects.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// ServeHTTP serves public objects by path. Mount it under the serving URL
// base with http.StripPrefix so that "/blobs/<bucket>/<object>" resolves.
func (s *MemoryStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	obj, ok := s.Get(r.URL.Path)
	if !ok || !obj.PublicRead {
		http.NotFound(w, r)
		return
	}
	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	http.ServeContent(w, r, r.URL.Path, obj.Modified, bytes.NewReader(obj.Data))
}
