package gallery

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenes.db")
	store, err := OpenSQLite(context.Background(), path, testLogger())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSQLiteRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	doc := scene.NewSampleDocument()

	if err := store.SaveScene(ctx, "gal_1", doc); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}
	got, err := store.LoadScene(ctx, "gal_1")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatal("loaded document differs from saved document")
	}
}

func TestSQLiteLoadMissing(t *testing.T) {
	store, _ := openTestStore(t)
	_, err := store.LoadScene(context.Background(), "gal_missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSQLiteVersionBumps(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	doc := scene.NewDocument(640, 480)

	for range 3 {
		if err := store.SaveScene(ctx, "gal_1", doc); err != nil {
			t.Fatalf("SaveScene: %v", err)
		}
	}

	var version int
	err := store.db.QueryRowContext(ctx,
		`SELECT version FROM gallery_scenes WHERE gallery_id = ?`, "gal_1",
	).Scan(&version)
	if err != nil {
		t.Fatalf("query version: %v", err)
	}
	if version != 3 {
		t.Fatalf("version = %d, want 3", version)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scenes.db")

	store, err := OpenSQLite(ctx, path, testLogger())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	doc := scene.NewSampleDocument()
	if err := store.SaveScene(ctx, "gal_1", doc); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path, testLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.LoadScene(ctx, "gal_1")
	if err != nil {
		t.Fatalf("LoadScene after reopen: %v", err)
	}
	if len(got.Objects) != len(doc.Objects) {
		t.Fatalf("objects = %d, want %d", len(got.Objects), len(doc.Objects))
	}
}
