// Package service contains the slug allocation, redirect resolution and
// catalog listing logic of the shortener.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/models"
	"github.com/dkrasnov/shrtnr/internal/storage"
)

// maxGenerateAttempts bounds the insert-retry loop for generated slugs. With
// the 64-symbol alphabet it is not expected to be reached.
const maxGenerateAttempts = 5

type Shortener struct {
	store      Store
	logger     *zap.Logger
	slugLength int
}

func NewShortener(store Store, logger *zap.Logger, slugLength int) *Shortener {
	if slugLength <= 0 {
		slugLength = DefaultSlugLength
	}

	return &Shortener{
		store:      store,
		logger:     logger,
		slugLength: slugLength,
	}
}

func (s *Shortener) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}

// Allocate commits a new slug -> target mapping. A caller-supplied slug gets
// one existence pre-check for a friendlier error; the store's unique index is
// what actually closes the race against concurrent creators of the same slug.
func (s *Shortener) Allocate(ctx context.Context, rawSlug string, rawTarget string, host HostContext) (*storage.URLMapping, error) {
	slug, err := ValidateInput(rawSlug, rawTarget, host)
	if err != nil {
		return nil, err
	}

	if slug != "" {
		return s.allocateCustom(ctx, slug, rawTarget, host)
	}

	return s.allocateGenerated(ctx, rawTarget)
}

func (s *Shortener) allocateCustom(ctx context.Context, slug string, target string, host HostContext) (*storage.URLMapping, error) {
	_, err := s.store.FindBySlug(ctx, slug)
	if err == nil {
		return nil, &SlugInUseError{ShortURL: host.ShortURL(slug)}
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	stored, err := s.store.Insert(ctx, storage.URLMapping{
		Slug:      slug,
		Target:    target,
		CreatedAt: time.Now(),
	})

	// A concurrent creator may have won between the pre-check and the
	// insert; the unique index reports it and the outcome is the same.
	if errors.Is(err, storage.ErrConflict) {
		return nil, &SlugInUseError{ShortURL: host.ShortURL(slug)}
	}

	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (s *Shortener) allocateGenerated(ctx context.Context, target string) (*storage.URLMapping, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		candidate, err := GenerateSlug(s.slugLength)
		if err != nil {
			return nil, err
		}

		stored, err := s.store.Insert(ctx, storage.URLMapping{
			Slug:      candidate,
			Target:    target,
			CreatedAt: time.Now(),
		})

		if errors.Is(err, storage.ErrConflict) {
			s.logger.Info("generated slug collided, retrying", zap.String("slug", candidate))
			continue
		}

		if err != nil {
			return nil, err
		}

		return stored, nil
	}

	return nil, ErrGenerationExhausted
}

// Resolve returns the redirect target for a slug. A miss and a failing store
// are indistinguishable to the caller. The click counter is best effort: an
// increment failure is logged and the redirect still happens.
func (s *Shortener) Resolve(ctx context.Context, slug string) (string, error) {
	record, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("lookup failed", zap.String("slug", slug), zap.Error(err))
		}
		return "", ErrNotFound
	}

	if err := s.store.IncrementClicks(ctx, slug); err != nil {
		s.logger.Warn("click increment failed", zap.String("slug", slug), zap.Error(err))
	}

	return record.Target, nil
}

// List returns one page of the catalog ordered by insertion. Count and window
// are two separate reads; a concurrent insert between them may skew the total
// by one, which is accepted. On store failure the shape stays well-formed.
func (s *Shortener) List(ctx context.Context, page int, limit int, order storage.SortOrder) *models.ListResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = models.DefaultPageLimit
	}
	if order != storage.SortOldest {
		order = storage.SortNewest
	}

	empty := &models.ListResult{Items: []storage.URLMapping{}}

	total, err := s.store.Count(ctx)
	if err != nil {
		s.logger.Error("count failed", zap.Error(err))
		return empty
	}

	items, err := s.store.FindWindow(ctx, storage.WindowQuery{
		Limit:  limit,
		Offset: (page - 1) * limit,
		Order:  order,
	})
	if err != nil {
		s.logger.Error("window query failed", zap.Error(err))
		return empty
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.ListResult{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
