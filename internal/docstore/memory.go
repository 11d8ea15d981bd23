// Package docstore implements photo.DocumentStore on PostgreSQL, Cloud
// Firestore, and process memory.
package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/snapshelf/service/internal/photo"
)

// Memory keeps records in process memory, keyed by random UUIDs.
type Memory struct {
	mu     sync.RWMutex
	photos map[string]photo.Photo
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{photos: make(map[string]photo.Photo)}
}

func (m *Memory) Insert(_ context.Context, p *photo.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	m.photos[p.ID] = *p
	return nil
}

// List returns records oldest first.
func (m *Memory) List(_ context.Context) ([]photo.Photo, error) {
	m.mu.RLock()
	out := make([]photo.Photo, 0, len(m.photos))
	for _, p := range m.photos {
		out = append(out, p)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].UploadDate.Before(out[j].UploadDate)
	})
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (*photo.Photo, error) {
	key, err := parseUUIDKey(id)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.photos[key]
	if !ok {
		return nil, photo.ErrNotFound
	}
	return &p, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	key, err := parseUUIDKey(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.photos[key]; !ok {
		return photo.ErrNotFound
	}
	delete(m.photos, key)
	return nil
}

// parseUUIDKey decodes id into its canonical UUID form.
func parseUUIDKey(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", photo.ErrInvalidKey, err)
	}
	return u.String(), nil
}
