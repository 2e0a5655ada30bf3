package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayquery/internal/domain"
	"stayquery/internal/geo"
)

// ReferenceService seeds and loads the Gazetteer and price table rows kept
// in the destination repository.
type ReferenceService struct {
	repo domain.DestinationRepository
}

func NewReferenceService(r domain.DestinationRepository) *ReferenceService {
	return &ReferenceService{repo: r}
}

func (s *ReferenceService) SeedDestination(ctx context.Context, d domain.Destination) error {
	if d.Key == "" {
		return fmt.Errorf("seed destination: empty key")
	}
	if err := s.repo.UpsertDestination(ctx, d); err != nil {
		return fmt.Errorf("upsert destination %q: %w", d.Key, err)
	}
	return nil
}

func (s *ReferenceService) SeedPrice(ctx context.Context, city string, base float64) error {
	if base < minBasePrice {
		return fmt.Errorf("seed price %q: base %.2f below %.2f", city, base, minBasePrice)
	}
	if err := s.repo.UpsertCityPrice(ctx, city, base); err != nil {
		return fmt.Errorf("upsert city price %q: %w", city, err)
	}
	return nil
}

// Load reads both tables. An empty table falls back to the built-in one so a
// fresh database still serves every known city.
func (s *ReferenceService) Load(ctx context.Context) (*geo.Gazetteer, PriceTable, error) {
	ds, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, PriceTable{}, fmt.Errorf("list destinations: %w", err)
	}
	prices, err := s.repo.ListCityPrices(ctx)
	if err != nil {
		return nil, PriceTable{}, fmt.Errorf("list city prices: %w", err)
	}

	places := geo.Default()
	if len(ds) > 0 {
		places = geo.New(ds)
	} else {
		log.Warn().Msg("destination table empty; using built-in gazetteer")
	}
	table := DefaultPriceTable()
	if len(prices) > 0 {
		table = NewPriceTable(prices, defaultBasePrice)
	} else {
		log.Warn().Msg("city price table empty; using built-in prices")
	}
	return places, table, nil
}
