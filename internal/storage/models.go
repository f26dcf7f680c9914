package storage

import (
	"errors"
	"time"
)

// ErrConflict is returned when an insert hits the unique slug constraint.
var ErrConflict = errors.New("data conflict")

// ErrNotFound is returned when no mapping exists for a slug.
var ErrNotFound = errors.New("not found")

// URLMapping is the persisted slug -> target record. Only Clicks is ever
// mutated after creation.
type URLMapping struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Target    string    `json:"url"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

// SortOrder selects the direction of the insertion-order listing.
type SortOrder string

const (
	// SortNewest orders by store-assigned id descending.
	SortNewest SortOrder = "newest"
	// SortOldest orders by store-assigned id ascending.
	SortOldest SortOrder = "oldest"
)

// WindowQuery describes one page of the catalog. The ordering key is the
// store-assigned id, which is monotonic at insertion time.
type WindowQuery struct {
	Limit  int
	Offset int
	Order  SortOrder
}
