package usecase

import (
	"context"
	"log"
	"time"

	"campushire/internal/repository"
)

const optionsCacheKey = "meta:options"
const optionsCacheTTL = 10 * time.Minute

type OptionsUsecase interface {
	FilterOptions(ctx context.Context) (repository.FilterOptions, error)
}

type Options struct {
	vocab  repository.VocabularyRepository
	cache  StatsCache
	logger *log.Logger
}

func NewOptionsUsecase(vocab repository.VocabularyRepository, cache StatsCache, logger *log.Logger) *Options {
	return &Options{vocab: vocab, cache: cache, logger: logger}
}

// FilterOptions returns the filter dropdown vocabularies. They change
// rarely, so a short redis TTL absorbs most of the DISTINCT scans.
func (u *Options) FilterOptions(ctx context.Context) (repository.FilterOptions, error) {
	if u.cache != nil {
		var cached repository.FilterOptions
		hit, err := u.cache.GetJSON(ctx, optionsCacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	opts, err := u.vocab.FilterOptions(ctx)
	if err != nil {
		return repository.FilterOptions{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, optionsCacheKey, opts, optionsCacheTTL)
	}
	return opts, nil
}
