package liteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"stayquery/internal/adapters/observability"
	"stayquery/internal/domain"
)

const (
	serviceName    = "liteapi"
	searchEndpoint = "/hotels/search"
)

var (
	ErrUnavailable  = errors.New("liteapi: unavailable")
	ErrUnauthorized = errors.New("liteapi: unauthorized")
	ErrForbidden    = errors.New("liteapi: forbidden")
	ErrRateLimited  = errors.New("liteapi: rate limited")
)

type Config struct {
	BaseURL string
	APIKey  string
	RPS     int
	Timeout time.Duration

	// breaker
	MaxFailures  uint32
	OpenDuration time.Duration
}

// Client is the accommodation provider. It makes a single attempt per
// search; repeated failures open the breaker and the client reports itself
// unavailable until it half-opens.
type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
	cb   *gobreaker.CircuitBreaker
}

func New(cfg Config) *Client {
	if cfg.RPS <= 0 {
		cfg.RPS = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenDuration <= 0 {
		cfg.OpenDuration = 30 * time.Second
	}
	maxFailures := cfg.MaxFailures

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: 1,
		Timeout:     cfg.OpenDuration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("provider breaker state change")
			observability.ObserveBreaker(to == gobreaker.StateOpen)
		},
	})

	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		key:  cfg.APIKey,
		hc:   &http.Client{Timeout: cfg.Timeout},
		rl:   rate.NewLimiter(rate.Limit(cfg.RPS), cfg.RPS),
		cb:   cb,
	}
}

func (c *Client) IsAvailable() bool {
	return c.key != "" && c.cb.State() != gobreaker.StateOpen
}

func (c *Client) SearchAccommodations(ctx context.Context, req domain.ProviderSearchRequest) (domain.ProviderSearchResult, error) {
	if c.key == "" {
		return domain.ProviderSearchResult{}, ErrUnavailable
	}
	v, err := c.cb.Execute(func() (interface{}, error) {
		var out domain.ProviderSearchResult
		if err := c.post(ctx, searchEndpoint, req, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.ProviderSearchResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return domain.ProviderSearchResult{}, fmt.Errorf("search accommodations: %w", err)
	}
	return v.(domain.ProviderSearchResult), nil
}

// ---- Internals ----

// post sends one JSON request with client-side rate limiting; no retries.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "stayquery/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveProvider(endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveProvider(endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		// read a small error body for diagnostics
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
}
