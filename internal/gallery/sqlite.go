package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

// SQLiteStore persists scenes in a local SQLite file, the offline
// counterpart of PGStore for single-artist installs.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens (or creates) the database at path and runs the
// schema migration.
func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLiteStore, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w: %w", path, ErrTransient, err)
	}
	// A single connection sidesteps SQLITE_BUSY between writers.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, log: log}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS gallery_scenes (
			gallery_id TEXT PRIMARY KEY,
			doc        TEXT NOT NULL,
			version    INTEGER NOT NULL DEFAULT 1,
			updated_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("migrate gallery_scenes: %w: %w", ErrTransient, err)
	}
	return nil
}

func (s *SQLiteStore) LoadScene(ctx context.Context, galleryID string) (*scene.Document, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM gallery_scenes WHERE gallery_id = ?`,
		galleryID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("load scene %s: %w", galleryID, ErrNotFound)
		}
		return nil, fmt.Errorf("load scene %s: %w: %w", galleryID, ErrTransient, err)
	}

	doc, err := scene.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w: %v", galleryID, ErrValidation, err)
	}
	return doc, nil
}

func (s *SQLiteStore) SaveScene(ctx context.Context, galleryID string, doc *scene.Document) error {
	if err := validateForSave(galleryID, doc); err != nil {
		return err
	}

	data, err := scene.Encode(doc)
	if err != nil {
		return fmt.Errorf("save scene %s: %w: %v", galleryID, ErrValidation, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO gallery_scenes (gallery_id, doc, version, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (gallery_id) DO UPDATE SET
			doc        = excluded.doc,
			version    = gallery_scenes.version + 1,
			updated_at = excluded.updated_at`,
		galleryID, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save scene %s: %w: %w", galleryID, ErrTransient, err)
	}

	s.log.Debug("scene saved", "galleryId", galleryID, "objects", len(doc.Objects))
	return nil
}
