package service

import (
	"context"

	"github.com/dkrasnov/shrtnr/internal/models"
	"github.com/dkrasnov/shrtnr/internal/storage"
)

// Store is the slice of the catalog backend the service depends on.
type Store interface {
	Insert(context.Context, storage.URLMapping) (*storage.URLMapping, error)
	FindBySlug(context.Context, string) (*storage.URLMapping, error)
	IncrementClicks(context.Context, string) error
	Count(context.Context) (int64, error)
	FindWindow(context.Context, storage.WindowQuery) ([]storage.URLMapping, error)
	PingContext(context.Context) error
}

// ShortenerIface is implemented by Shortener and consumed by the HTTP handlers.
type ShortenerIface interface {
	Allocate(ctx context.Context, rawSlug string, rawTarget string, host HostContext) (*storage.URLMapping, error)
	Resolve(ctx context.Context, slug string) (string, error)
	List(ctx context.Context, page int, limit int, order storage.SortOrder) *models.ListResult
	PingContext(ctx context.Context) error
}
