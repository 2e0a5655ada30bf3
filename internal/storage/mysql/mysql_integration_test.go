//go:build integration

package mysql_test

import (
	"context"
	"testing"

	"stayquery/internal/domain"
	"stayquery/internal/geo"
	mysqlrepo "stayquery/internal/storage/mysql"
	"stayquery/internal/storage/mysql/mysqltest"
)

func TestRepo_MySQL_DestinationsAndPrices(t *testing.T) {
	db := mysqltest.Start(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Arrange: insert out of order, with an accented alias and a re-upsert
	rows := []domain.Destination{
		{Key: "São Paulo", Name: "São Paulo", Latitude: -23.55, Longitude: -46.63, Country: "BR", Position: 2},
		{Key: "sao paulo", Name: "São Paulo", Latitude: -23.55, Longitude: -46.63, Country: "BR", Position: 1},
		{Key: "orlando", Name: "Orlando", Latitude: 0, Longitude: 0, Country: "US", Position: 0},
		{Key: "orlando", Name: "Orlando", Latitude: 28.54, Longitude: -81.38, Country: "US", Position: 0},
	}
	for _, d := range rows {
		if err := repo.UpsertDestination(ctx, d); err != nil {
			t.Fatalf("UpsertDestination(%q): %v", d.Key, err)
		}
	}
	if err := repo.UpsertCityPrice(ctx, "Orlando", 140); err != nil {
		t.Fatalf("UpsertCityPrice: %v", err)
	}
	if err := repo.UpsertCityPrice(ctx, "orlando", 155.5); err != nil {
		t.Fatalf("UpsertCityPrice: %v", err)
	}

	// Assert
	ds, err := repo.ListDestinations(ctx)
	if err != nil {
		t.Fatalf("ListDestinations: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("expected 3 destinations, got %+v", ds)
	}
	if ds[0].Key != "orlando" || ds[1].Key != "sao paulo" || ds[2].Key != "são paulo" {
		t.Fatalf("unexpected order: %+v", ds)
	}
	if ds[0].Latitude != 28.54 {
		t.Fatalf("re-upsert not applied: %+v", ds[0])
	}

	g := geo.New(ds)
	if p, ok := g.Lookup("SÃO PAULO"); !ok || p.Country != "BR" {
		t.Fatalf("gazetteer from db: %+v, %v", p, ok)
	}

	prices, err := repo.ListCityPrices(ctx)
	if err != nil {
		t.Fatalf("ListCityPrices: %v", err)
	}
	if len(prices) != 1 || prices["orlando"] != 155.5 {
		t.Fatalf("unexpected prices: %v", prices)
	}
}
