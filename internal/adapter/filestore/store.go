package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// Store keeps one JSON file per dictation in a directory.
type Store struct {
	dir string
	log *slog.Logger
}

// New creates the directory if needed and returns a Store over it.
func New(logger *slog.Logger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create dir %s: %w", dir, err)
	}
	return &Store{
		dir: dir,
		log: logger.With("adapter", "filestore"),
	}, nil
}

func (s *Store) path(id uuid.UUID) string {
	return filepath.Join(s.dir, "dictation_"+id.String()+".json")
}

// Put writes the document, replacing any previous one with the same id.
// The file is written to a temporary name and renamed into place, so
// readers never observe a partial document.
func (s *Store) Put(ctx context.Context, id uuid.UUID, st domain.Structure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: marshal %s: %w", id, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".dictation_*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close %s: %w", id, err)
	}
	if err := os.Rename(tmpName, s.path(id)); err != nil {
		return fmt.Errorf("filestore: rename %s: %w", id, err)
	}

	s.log.DebugContext(ctx, "dictation stored", slog.String("dictation_id", id.String()), slog.Int("bytes", len(data)))
	return nil
}

// Get reads a document. A missing file is domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (domain.Structure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", id, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var st domain.Structure
	if err := dec.Decode(&st); err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", id, err)
	}
	return st, nil
}

// Ping checks that the directory is still accessible.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("filestore: stat %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("filestore: %s is not a directory", s.dir)
	}
	return nil
}
