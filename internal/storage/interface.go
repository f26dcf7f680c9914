package storage

import "context"

// StorageI is the contract every catalog backend satisfies. Insert is the
// only write that creates state and enforces slug uniqueness atomically.
type StorageI interface {
	Insert(context.Context, URLMapping) (*URLMapping, error)
	FindBySlug(context.Context, string) (*URLMapping, error)
	IncrementClicks(context.Context, string) error
	Count(context.Context) (int64, error)
	FindWindow(context.Context, WindowQuery) ([]URLMapping, error)
	PingContext(context.Context) error
}
