package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stayquery/internal/adapters/observability"
	"stayquery/internal/domain"
	"stayquery/internal/geo"
)

// Fallback reasons, also used as metric labels.
const (
	reasonUnavailable = "unavailable"
	reasonEmpty       = "empty"
	reasonError       = "error"
)

// SearchService runs one provider attempt per search and degrades to
// deterministic fallback data; it never returns an error.
type SearchService struct {
	provider domain.AccommodationProvider
	places   *geo.Gazetteer
	prices   PriceTable
	cache    domain.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewSearchService wires the orchestrator. provider and cache may be nil.
func NewSearchService(p domain.AccommodationProvider, places *geo.Gazetteer, prices PriceTable, c domain.Cache, ttl time.Duration) *SearchService {
	if places == nil {
		places = geo.Default()
	}
	return &SearchService{provider: p, places: places, prices: prices, cache: c, cacheTTL: ttl, now: time.Now}
}

func (s *SearchService) Search(ctx context.Context, params domain.SearchParams) []domain.Accommodation {
	if s.provider == nil || !s.provider.IsAvailable() {
		return s.fallback(params, reasonUnavailable, nil)
	}

	key := s.cacheKey(params)
	if s.cache != nil {
		var cached []domain.Accommodation
		if ok, err := s.cache.Get(ctx, key, &cached); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache read failed")
		} else if ok && len(cached) > 0 {
			observability.ObserveSearch("cache", "hit")
			return cached
		}
	}

	res, err := s.callProvider(ctx, buildProviderRequest(params, s.places))
	if err != nil {
		return s.fallback(params, reasonError, err)
	}
	hotels := mapProviderHotels(res.Data, params)
	if len(hotels) == 0 {
		return s.fallback(params, reasonEmpty, nil)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, hotels, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("search cache write failed")
		}
	}
	observability.ObserveSearch("provider", "ok")
	return hotels
}

// callProvider converts a provider panic into an error so it takes the
// fallback path like any other failure.
func (s *SearchService) callProvider(ctx context.Context, req domain.ProviderSearchRequest) (res domain.ProviderSearchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()
	return s.provider.SearchAccommodations(ctx, req)
}

func (s *SearchService) fallback(params domain.SearchParams, reason string, err error) []domain.Accommodation {
	ev := log.Warn().Str("reason", reason).Str("city", params.City)
	if err != nil {
		ev = ev.Err(err).Str("err_type", observability.LabelErr(err))
	}
	ev.Msg("serving fallback results")
	observability.ObserveSearch("fallback", reason)
	return fallbackHotels(params, s.prices)
}

// cacheKey hashes the full params and scopes them to the current UTC day,
// so an entry never outlives the day it was computed on.
func (s *SearchService) cacheKey(params domain.SearchParams) string {
	b, _ := json.Marshal(params)
	sum := sha1.Sum(b)
	day := domain.DateOf(s.now().UTC()).String()
	return "search:" + day + ":" + hex.EncodeToString(sum[:])
}
