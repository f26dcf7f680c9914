package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// MemoryStorage keeps the catalog in a map guarded by a mutex. IDs are
// assigned from a counter so insertion order is recoverable.
type MemoryStorage struct {
	mu     sync.RWMutex
	bySlug map[string]*URLMapping
	nextID int64
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		bySlug: make(map[string]*URLMapping),
		nextID: 1,
	}, nil
}

func (m *MemoryStorage) Insert(_ context.Context, record URLMapping) (*URLMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bySlug[record.Slug]; exists {
		return nil, ErrConflict
	}

	record.ID = m.nextID
	m.nextID++

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	stored := record
	m.bySlug[record.Slug] = &stored

	result := stored
	return &result, nil
}

// remove undoes an insert that could not be made durable.
func (m *MemoryStorage) remove(slug string) {
	m.mu.Lock()
	delete(m.bySlug, slug)
	m.mu.Unlock()
}

func (m *MemoryStorage) FindBySlug(_ context.Context, slug string) (*URLMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.bySlug[slug]
	if !exists {
		return nil, ErrNotFound
	}

	result := *record
	return &result, nil
}

func (m *MemoryStorage) IncrementClicks(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.bySlug[slug]
	if !exists {
		return ErrNotFound
	}

	record.Clicks++
	return nil
}

func (m *MemoryStorage) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.bySlug)), nil
}

func (m *MemoryStorage) FindWindow(_ context.Context, q WindowQuery) ([]URLMapping, error) {
	m.mu.RLock()

	all := make([]URLMapping, 0, len(m.bySlug))
	for _, record := range m.bySlug {
		all = append(all, *record)
	}
	m.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if q.Order == SortOldest {
			return all[i].ID < all[j].ID
		}
		return all[i].ID > all[j].ID
	})

	if q.Offset >= len(all) {
		return []URLMapping{}, nil
	}

	end := q.Offset + q.Limit
	if end > len(all) {
		end = len(all)
	}

	return all[q.Offset:end], nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return errors.ErrUnsupported
}
