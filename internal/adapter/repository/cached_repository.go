package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/vocquiz/internal/entity"
	"github.com/eslsoft/vocquiz/internal/infrastructure/config"
	"github.com/eslsoft/vocquiz/internal/repository"
)

// ErrNotCached is returned in offline mode when the source was never cached.
var ErrNotCached = errors.New("dictionary not cached")

// CachedRepository loads from the source and keeps a copy of every successful
// load. When the source is unreachable the cached copy is served instead.
// Malformed source data is never masked by the cache.
type CachedRepository struct {
	source  *SpreadsheetRepository
	cache   repository.DictionaryCache
	offline bool
	logger  logrus.FieldLogger
}

func NewCachedRepository(source *SpreadsheetRepository, cache repository.DictionaryCache, cfg *config.Config, logger logrus.FieldLogger) *CachedRepository {
	return &CachedRepository{
		source:  source,
		cache:   cache,
		offline: cfg.Cache.Offline,
		logger:  logger.WithField("source", source.Source()),
	}
}

func (r *CachedRepository) Load(ctx context.Context) ([]entity.Record, error) {
	if r.offline {
		return r.fromCache(ctx)
	}

	records, err := r.source.Load(ctx)
	if err == nil {
		if r.cache != nil {
			if serr := r.cache.Save(ctx, r.source.Source(), records); serr != nil {
				r.logger.Warnf("cache dictionary failed: %v", serr)
			}
		}
		return records, nil
	}

	if errors.Is(err, entity.ErrMalformedRow) || errors.Is(err, entity.ErrMisalignedRecord) || r.cache == nil {
		return nil, err
	}
	cached, cerr := r.fromCache(ctx)
	if cerr != nil {
		return nil, err
	}
	r.logger.Warnf("source unavailable (%v), using cached dictionary", err)
	return cached, nil
}

// Refresh loads from the source only and overwrites the cache.
func (r *CachedRepository) Refresh(ctx context.Context) (int, error) {
	records, err := r.source.Load(ctx)
	if err != nil {
		return 0, err
	}
	if r.cache == nil {
		return len(records), nil
	}
	if err := r.cache.Save(ctx, r.source.Source(), records); err != nil {
		return 0, fmt.Errorf("cache dictionary: %w", err)
	}
	return len(records), nil
}

func (r *CachedRepository) fromCache(ctx context.Context) ([]entity.Record, error) {
	if r.cache == nil {
		return nil, ErrNotCached
	}
	records, ok, err := r.cache.Fetch(ctx, r.source.Source())
	if err != nil {
		return nil, fmt.Errorf("read cached dictionary: %w", err)
	}
	if !ok {
		return nil, ErrNotCached
	}
	return records, nil
}
