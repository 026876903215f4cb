// Package gallery is the persistence boundary for gallery scenes: the
// Store contract the editor core consumes, the error taxonomy callers
// branch on, and Postgres, SQLite and in-memory implementations.
package gallery

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

var (
	ErrNotFound     = errors.New("gallery not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("invalid scene document")
	ErrTransient    = errors.New("transient storage error")
)

// Store loads and saves whole scene documents keyed by gallery id.
// Implementations wrap failures so callers can branch with errors.Is:
// ErrNotFound and ErrUnauthorized on load, ErrValidation, ErrUnauthorized
// and ErrTransient on save. Only ErrTransient is worth retrying.
type Store interface {
	LoadScene(ctx context.Context, galleryID string) (*scene.Document, error)
	SaveScene(ctx context.Context, galleryID string, doc *scene.Document) error
}

// validateForSave runs the shared structural checks before any backend
// touches storage.
func validateForSave(galleryID string, doc *scene.Document) error {
	if galleryID == "" {
		return fmt.Errorf("%w: empty gallery id", ErrValidation)
	}
	if err := scene.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
