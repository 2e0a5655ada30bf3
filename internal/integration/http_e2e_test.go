//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	httpserver "stayquery/internal/adapters/http_server"
	"stayquery/internal/adapters/liteapi"
	redisad "stayquery/internal/adapters/redis"
	"stayquery/internal/app"
	"stayquery/internal/domain"
	"stayquery/internal/parser"
	mysqlrepo "stayquery/internal/storage/mysql"
	"stayquery/internal/storage/mysql/mysqltest"
)

type searchBody struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Hotels  []domain.Accommodation `json:"hotels"`
	Message string                 `json:"message"`
}

func postSearch(t *testing.T, url, query string) searchBody {
	t.Helper()
	res, err := http.Post(url+"/v1/search", "application/json", strings.NewReader(`{"query":"`+query+`"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var body searchBody
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestHTTP_EndToEnd_Search(t *testing.T) {
	ctx := context.Background()

	// Reference data lives in MySQL; only Porto is known there.
	db := mysqltest.Start(t)
	ref := app.NewReferenceService(mysqlrepo.New(db))
	if err := ref.SeedDestination(ctx, domain.Destination{Key: "porto", Name: "Porto", Latitude: 41.15, Longitude: -8.61, Country: "PT"}); err != nil {
		t.Fatalf("seed destination: %v", err)
	}
	if err := ref.SeedPrice(ctx, "porto", 90); err != nil {
		t.Fatalf("seed price: %v", err)
	}
	places, prices, err := ref.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Fake provider knows hotels only for coordinate searches.
	var providerHits int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&providerHits, 1)
		var req domain.ProviderSearchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		if req.Latitude == nil {
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"p1","name":"Ribeira Palace","star_rating":4,
			"rates":[{"id":"r-hi","total_amount":700,"currency":"EUR"},{"id":"r-lo","total_amount":450,"currency":"EUR"}]}]}`))
	}))
	defer provider.Close()

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	client := liteapi.New(liteapi.Config{BaseURL: provider.URL, APIKey: "k", RPS: 50, Timeout: 2 * time.Second})
	clock := func() time.Time { return time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC) }
	search := app.NewSearchService(client, places, prices, cache, time.Minute)
	q := app.NewQueryService(parser.New(places, clock), search)

	srv := httpserver.New(5 * time.Second)
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// Known city: provider result, then served from redis.
	first := postSearch(t, ts.URL, "hotel in porto from nov 20 to 25 for 2 guests")
	if first.Count != 1 || first.Hotels[0].ID != "p1" || first.Hotels[0].RateID != "r-lo" || first.Hotels[0].PricePerNight != 90 {
		t.Fatalf("unexpected provider result: %+v", first)
	}
	second := postSearch(t, ts.URL, "hotel in porto from nov 20 to 25 for 2 guests")
	if second.Count != 1 || atomic.LoadInt32(&providerHits) != 1 {
		t.Fatalf("expected cached result, provider hits = %d", providerHits)
	}

	// Unknown city: free-text search comes back empty, fallback uses the default base.
	fb := postSearch(t, ts.URL, "hotel in springfield from nov 20 to 22")
	if fb.Count != 3 || fb.Hotels[0].Name != "Springfield Grand Hotel" || fb.Hotels[0].PricePerNight != 120 {
		t.Fatalf("unexpected fallback: %+v", fb)
	}
	if !strings.HasPrefix(fb.Message, "Found 3 hotels in Springfield") {
		t.Fatalf("message = %q", fb.Message)
	}
}
