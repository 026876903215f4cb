package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artfolio/artfolio/canvas-go/internal/config"
	"github.com/artfolio/artfolio/canvas-go/internal/export"
	"github.com/artfolio/artfolio/canvas-go/internal/gallery"
	"github.com/artfolio/artfolio/canvas-go/internal/scene"
	"github.com/artfolio/artfolio/canvas-go/internal/typeid"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "seed":
		err = runSeed(ctx, cfg, os.Args[2:])
	case "show":
		err = runShow(ctx, cfg, os.Args[2:])
	case "export":
		err = runExport(ctx, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error(os.Args[1]+" failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: galleryctl <command> [flags]

commands:
  seed    create a gallery with the sample scene
  show    print a gallery's scene document as JSON
  export  render a gallery's scene to SVG or PNG

The store is chosen from the environment: ARTFOLIO_DATABASE_URL selects
Postgres, ARTFOLIO_SQLITE_PATH a local SQLite file, otherwise an
in-memory store that does not persist across runs.`)
}

// openStore picks a backend from the config. The returned func releases
// whatever the store holds open.
func openStore(ctx context.Context, cfg *config.Config) (gallery.Store, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		store := gallery.NewPGStore(pool, "", slog.Default())
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	case cfg.SQLitePath != "":
		store, err := gallery.OpenSQLite(ctx, cfg.SQLitePath, slog.Default())
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	default:
		slog.Warn("no database configured, scenes will not persist across runs")
		return gallery.NewMemStore(), func() {}, nil
	}
}

func runSeed(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	id := fs.String("gallery", "", "gallery id (generated when empty)")
	fs.Parse(args)

	if *id == "" {
		*id = typeid.NewGalleryID()
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	doc := scene.NewSampleDocument()
	if err := store.SaveScene(ctx, *id, doc); err != nil {
		return err
	}
	slog.Info("seeded gallery", "galleryId", *id, "objects", len(doc.Objects))
	fmt.Println(*id)
	return nil
}

func runShow(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("gallery", "", "gallery id")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("missing -gallery flag")
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	doc, err := store.LoadScene(ctx, *id)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runExport(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	id := fs.String("gallery", "", "gallery id")
	out := fs.String("out", "gallery.svg", "output file (.svg or .png)")
	format := fs.String("format", "", "svg or png (default from file extension)")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("missing -gallery flag")
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	doc, err := store.LoadScene(ctx, *id)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	exp := export.New(export.Options{
		Origin:   cfg.SiteOrigin,
		AssetDir: cfg.AssetDir,
		FontPath: cfg.FontPath,
		Logger:   slog.Default(),
	})

	kind := strings.ToLower(*format)
	if kind == "" {
		kind = strings.TrimPrefix(strings.ToLower(filepath.Ext(*out)), ".")
	}
	switch kind {
	case "png":
		err = exp.PNG(f, doc)
	case "svg", "":
		err = exp.SVG(f, doc)
	default:
		return fmt.Errorf("unknown format %q", kind)
	}
	if err != nil {
		return err
	}
	slog.Info("exported gallery", "galleryId", *id, "out", *out, "format", kind)
	return nil
}
