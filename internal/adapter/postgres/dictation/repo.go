package dictation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/adapter/postgres"
	"github.com/heartmarshall/dictation-builder/internal/domain"
)

const table = "dictations"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo stores dictation documents in the dictations table as jsonb.
type Repo struct {
	db  postgres.DB
	log *slog.Logger
}

// New creates a Repo over db.
func New(logger *slog.Logger, db postgres.DB) *Repo {
	return &Repo{
		db:  db,
		log: logger.With("adapter", "postgres.dictation"),
	}
}

// Put inserts the document or replaces the stored one.
func (r *Repo) Put(ctx context.Context, id uuid.UUID, st domain.Structure) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("dictation %s: marshal: %w", id, err)
	}

	query, args, err := psql.Insert(table).
		Columns("id", "structure").
		Values(id, data).
		Suffix("ON CONFLICT (id) DO UPDATE SET structure = EXCLUDED.structure, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("dictation %s: build insert: %w", id, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "dictation", id)
	}

	r.log.DebugContext(ctx, "dictation stored", slog.String("dictation_id", id.String()), slog.Int("bytes", len(data)))
	return nil
}

// Get loads a document. An unknown id is domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domain.Structure, error) {
	query, args, err := psql.Select("structure").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("dictation %s: build select: %w", id, err)
	}

	var raw []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return nil, postgres.MapError(err, "dictation", id)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var st domain.Structure
	if err := dec.Decode(&st); err != nil {
		return nil, fmt.Errorf("dictation %s: decode: %w", id, err)
	}
	return st, nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
