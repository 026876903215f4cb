package gallery

import (
	"context"
	"fmt"
	"sync"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

// MemStore keeps scenes in process memory. It backs tests, the wasm
// build where no database is reachable, and galleryctl's default mode.
type MemStore struct {
	mu     sync.RWMutex
	scenes map[string]*scene.Document
}

func NewMemStore() *MemStore {
	return &MemStore{scenes: make(map[string]*scene.Document)}
}

func (s *MemStore) LoadScene(ctx context.Context, galleryID string) (*scene.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.scenes[galleryID]
	if !ok {
		return nil, fmt.Errorf("load scene %s: %w", galleryID, ErrNotFound)
	}
	return doc.Clone(), nil
}

func (s *MemStore) SaveScene(ctx context.Context, galleryID string, doc *scene.Document) error {
	if err := validateForSave(galleryID, doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Clone on the way in so later editor mutations cannot reach the
	// stored copy.
	s.scenes[galleryID] = doc.Clone()
	return nil
}

// Seed installs a document without the save-path validation, for wiring
// up fixtures.
func (s *MemStore) Seed(galleryID string, doc *scene.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenes[galleryID] = doc.Clone()
}
