// Command atlasctl inspects and maintains stored atlas map documents.
//
// Usage:
//
//	atlasctl show <mapKey>            print the stored document
//	atlasctl import <mapKey> <file>   replace the document from a JSON file
//	atlasctl migrate <mapKey>         rewrite the document in canonical form
//
// migrate round-trips the document through the editor model, which coerces
// legacy vertex pairs to objects and collapses legacy array-shaped areas
// into the grouped regions category.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lorekeep/atlas/internal/config"
	"github.com/lorekeep/atlas/internal/document"
	"github.com/lorekeep/atlas/internal/logging"
	"github.com/lorekeep/atlas/internal/storage"
)

func main() {
	if err := config.Load("."); err != nil {
		// No config file is fine for a maintenance tool; run on defaults.
		config.SetDefaults()
	}

	log, err := logging.Setup("atlasctl")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}

	store, err := storage.NewService(config.Storage(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create storage service")
	}
	defer store.Close()

	args := os.Args[1:]
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	mapKey := args[1]

	switch strings.ToLower(args[0]) {
	case "show":
		err = show(ctx, store, mapKey)
	case "import":
		if len(args) < 3 {
			usage()
			os.Exit(2)
		}
		err = importFile(ctx, store, mapKey, args[2], log)
	case "migrate":
		err = migrate(ctx, store, mapKey, log)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: atlasctl show|import|migrate <mapKey> [file]")
}

func show(ctx context.Context, store storage.Service, mapKey string) error {
	doc, found, err := store.Load(ctx, mapKey)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no document stored for map %q", mapKey)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func importFile(ctx context.Context, store storage.Service, mapKey, path string, log zerolog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := store.Save(ctx, mapKey, doc); err != nil {
		return err
	}
	log.Info().Str("mapKey", mapKey).Str("file", path).Msg("Document imported")
	return nil
}

func migrate(ctx context.Context, store storage.Service, mapKey string, log zerolog.Logger) error {
	doc, found, err := store.Load(ctx, mapKey)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no document stored for map %q", mapKey)
	}

	flat := document.Normalize(doc)
	if err := store.Save(ctx, mapKey, document.Denormalize(flat)); err != nil {
		return err
	}
	log.Info().
		Str("mapKey", mapKey).
		Int("markers", len(flat.Markers)).
		Int("paths", len(flat.Paths)).
		Int("areas", len(flat.Areas)).
		Int("overlays", len(flat.Overlays)).
		Msg("Document migrated to canonical form")
	return nil
}
