package app_test

import (
	"context"
	"errors"
	"testing"

	"stayquery/internal/app"
	"stayquery/internal/domain"
)

type fakeRepo struct {
	dests  []domain.Destination
	prices map[string]float64
	err    error
}

func (f *fakeRepo) UpsertDestination(ctx context.Context, d domain.Destination) error {
	if f.err != nil {
		return f.err
	}
	f.dests = append(f.dests, d)
	return nil
}

func (f *fakeRepo) UpsertCityPrice(ctx context.Context, city string, base float64) error {
	if f.prices == nil {
		f.prices = map[string]float64{}
	}
	f.prices[city] = base
	return nil
}

func (f *fakeRepo) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return f.dests, f.err
}

func (f *fakeRepo) ListCityPrices(ctx context.Context) (map[string]float64, error) {
	return f.prices, nil
}

func TestReferenceService_LoadEmptyUsesBuiltins(t *testing.T) {
	svc := app.NewReferenceService(&fakeRepo{})

	places, prices, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if _, ok := places.Lookup("orlando"); !ok {
		t.Fatalf("built-in gazetteer not used")
	}
	if got := prices.Base("Paris"); got != 200 {
		t.Fatalf("paris base = %v; want 200", got)
	}
}

func TestReferenceService_SeedThenLoad(t *testing.T) {
	repo := &fakeRepo{}
	svc := app.NewReferenceService(repo)
	ctx := context.Background()

	if err := svc.SeedDestination(ctx, domain.Destination{Key: "porto", Name: "Porto", Latitude: 41.15, Longitude: -8.61, Country: "PT"}); err != nil {
		t.Fatalf("seed destination: %v", err)
	}
	if err := svc.SeedPrice(ctx, "porto", 95); err != nil {
		t.Fatalf("seed price: %v", err)
	}
	if err := svc.SeedPrice(ctx, "nowhere", 20); err == nil {
		t.Fatalf("expected a base below the minimum to be rejected")
	}
	if err := svc.SeedDestination(ctx, domain.Destination{}); err == nil {
		t.Fatalf("expected empty key to be rejected")
	}

	places, prices, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if places.Len() != 1 {
		t.Fatalf("gazetteer len = %d; want 1", places.Len())
	}
	if p, ok := places.Lookup("Porto"); !ok || p.Country != "PT" {
		t.Fatalf("porto lookup = %+v, %v", p, ok)
	}
	if got := prices.Base("porto"); got != 95 {
		t.Fatalf("porto base = %v", got)
	}
	if got := prices.Base("orlando"); got != 120 {
		t.Fatalf("unknown city should use the default, got %v", got)
	}
}

func TestReferenceService_Errors(t *testing.T) {
	boom := errors.New("db down")
	svc := app.NewReferenceService(&fakeRepo{err: boom})

	if _, _, err := svc.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if err := svc.SeedDestination(context.Background(), domain.Destination{Key: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
