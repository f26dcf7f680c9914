package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStorage is a MemoryStorage snapshot backed by a JSON-lines journal.
// Every mutation appends the full record; replay on open is last-wins per
// slug, so click increments survive restarts without a rewrite pass.
type FileStorage struct {
	mu     sync.Mutex
	mem    *MemoryStorage
	file   *os.File
	logger *zap.Logger
}

func NewFileStorage(p string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, err
	}

	mem, err := CreateMemoryStorage()
	if err != nil {
		return nil, err
	}

	fs := &FileStorage{
		mem:    mem,
		file:   file,
		logger: logger,
	}

	if err := fs.replay(); err != nil {
		return nil, err
	}

	return fs, nil
}

// replay rebuilds the in-memory view from the journal.
func (fs *FileStorage) replay() error {
	if _, err := fs.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	latest := make(map[string]URLMapping)
	var maxID int64

	scanner := bufio.NewScanner(fs.file)
	for scanner.Scan() {
		var record URLMapping
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return fmt.Errorf("failed to parse JSON line: %w", err)
		}
		latest[record.Slug] = record
		if record.ID > maxID {
			maxID = record.ID
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	fs.mem.mu.Lock()
	for slug, record := range latest {
		stored := record
		fs.mem.bySlug[slug] = &stored
	}
	fs.mem.nextID = maxID + 1
	fs.mem.mu.Unlock()

	fs.logger.Info("file storage loaded", zap.Int("records", len(latest)))
	return nil
}

func (fs *FileStorage) append(record URLMapping) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = fs.file.Write(append(b, '\n'))
	return err
}

func (fs *FileStorage) Insert(ctx context.Context, record URLMapping) (*URLMapping, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stored, err := fs.mem.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := fs.append(*stored); err != nil {
		// Keep memory and journal in agreement: an entry that never hit
		// the journal would report conflicts now and vanish on restart.
		fs.mem.remove(stored.Slug)
		return nil, err
	}

	return stored, nil
}

func (fs *FileStorage) FindBySlug(ctx context.Context, slug string) (*URLMapping, error) {
	return fs.mem.FindBySlug(ctx, slug)
}

func (fs *FileStorage) IncrementClicks(ctx context.Context, slug string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.mem.IncrementClicks(ctx, slug); err != nil {
		return err
	}

	record, err := fs.mem.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}

	return fs.append(*record)
}

func (fs *FileStorage) Count(ctx context.Context) (int64, error) {
	return fs.mem.Count(ctx)
}

func (fs *FileStorage) FindWindow(ctx context.Context, q WindowQuery) ([]URLMapping, error) {
	return fs.mem.FindWindow(ctx, q)
}

func (fs *FileStorage) PingContext(ctx context.Context) error {
	return fs.mem.PingContext(ctx)
}

func (fs *FileStorage) Close() error {
	return fs.file.Close()
}
