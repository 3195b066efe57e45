package app

import (
	"context"
	"time"

	"github.com/sainath-666/pgstay/internal/domain"
)

const (
	listingsKey   = "listings:all"
	listingKeyPre = "listing:"
)

// ListingQueryService fetches listings from the backend, optionally through
// a cache, and derives display subsets with the filter engine. A nil cache
// disables caching entirely.
type ListingQueryService struct {
	api      domain.MarketClient
	cache    domain.Cache
	cacheTTL time.Duration
	engine   *FilterEngine
}

func NewListingQueryService(api domain.MarketClient, cache domain.Cache, ttl time.Duration, engine *FilterEngine) *ListingQueryService {
	return &ListingQueryService{api: api, cache: cache, cacheTTL: ttl, engine: engine}
}

// Browse fetches the full listing set and filters it client-side. On fetch
// failure the display set is empty, never stale.
func (s *ListingQueryService) Browse(ctx context.Context, c domain.FilterCriteria) ([]domain.Listing, error) {
	all, err := s.fetchAll(ctx)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	return s.engine.Filter(all, c), nil
}

// All returns the unfiltered fetched set (the "PGs available" count).
func (s *ListingQueryService) All(ctx context.Context) ([]domain.Listing, error) {
	all, err := s.fetchAll(ctx)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	return all, nil
}

func (s *ListingQueryService) fetchAll(ctx context.Context) ([]domain.Listing, error) {
	if s.cache != nil {
		var cached []domain.Listing
		if ok, _ := s.cache.Get(ctx, listingsKey, &cached); ok {
			return cached, nil
		}
	}
	all, err := s.api.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, listingsKey, all, s.cacheTTL)
	}
	return all, nil
}

// Get returns a single listing by id.
func (s *ListingQueryService) Get(ctx context.Context, id string) (domain.Listing, error) {
	key := listingKeyPre + id
	if s.cache != nil {
		var cached domain.Listing
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	l, err := s.api.GetListing(ctx, id)
	if err != nil {
		return domain.Listing{}, &domain.FetchError{Err: err}
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, l, s.cacheTTL)
	}
	return l, nil
}

// Invalidate drops cached copies of a listing after its data changed
// server-side (e.g. the owner edited it).
func (s *ListingQueryService) Invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, listingKeyPre+id)
	_ = s.cache.Del(ctx, listingsKey)
}
