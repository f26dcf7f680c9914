// Package repository implements the catalog store on top of PostgreSQL.
// The unique index on slug is the single source of mutual exclusion for
// concurrent allocations; conflicts are translated into storage.ErrConflict.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/storage"
)

func InitDB(ps string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", ps)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTable := `
		CREATE TABLE IF NOT EXISTS url_mappings (
		id BIGSERIAL PRIMARY KEY,
		slug TEXT NOT NULL,
		target_url TEXT NOT NULL,
		clicks BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE UNIQUE INDEX IF NOT EXISTS url_mappings_slug_idx ON url_mappings (slug);`

	_, err = db.Exec(createTable)
	if err != nil {
		logger.Fatal("cannot create table", zap.Error(err))
	}

	return db
}

type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:     db,
		logger: logger,
	}
}

func (r *URLRepository) Insert(ctx context.Context, v storage.URLMapping) (*storage.URLMapping, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO url_mappings(slug, target_url, clicks, created_at) VALUES ($1, $2, $3, $4) RETURNING id, slug, target_url, clicks, created_at;",
		v.Slug, v.Target, v.Clicks, v.CreatedAt,
	)

	var stored storage.URLMapping
	err := row.Scan(&stored.ID, &stored.Slug, &stored.Target, &stored.Clicks, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, storage.ErrConflict
		}

		r.logger.Error("insert failed", zap.Error(err))
		return nil, err
	}

	return &stored, nil
}

func (r *URLRepository) FindBySlug(ctx context.Context, slug string) (*storage.URLMapping, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, slug, target_url, clicks, created_at FROM url_mappings WHERE slug = $1;", slug)

	var record storage.URLMapping
	err := row.Scan(&record.ID, &record.Slug, &record.Target, &record.Clicks, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		r.logger.Error("find by slug failed", zap.Error(err))
		return nil, err
	}

	return &record, nil
}

// IncrementClicks is a single atomic add performed by the database, not a
// read-modify-write, so concurrent increments are never lost.
func (r *URLRepository) IncrementClicks(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE url_mappings SET clicks = clicks + 1 WHERE slug = $1;", slug)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r *URLRepository) Count(ctx context.Context) (int64, error) {
	row := r.db.QueryRowContext(ctx, "SELECT count(*) FROM url_mappings;")

	var total int64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *URLRepository) FindWindow(ctx context.Context, q storage.WindowQuery) ([]storage.URLMapping, error) {
	direction := "DESC"
	if q.Order == storage.SortOldest {
		direction = "ASC"
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, slug, target_url, clicks, created_at FROM url_mappings ORDER BY id "+direction+" LIMIT $1 OFFSET $2;",
		q.Limit, q.Offset,
	)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	records := make([]storage.URLMapping, 0, q.Limit)
	for rows.Next() {
		var record storage.URLMapping
		err = rows.Scan(&record.ID, &record.Slug, &record.Target, &record.Clicks, &record.CreatedAt)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *URLRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
