package domain

import "context"

// AccommodationProvider is the external hotel inventory. A single attempt is
// made per search; callers absorb failures.
type AccommodationProvider interface {
	IsAvailable() bool
	SearchAccommodations(ctx context.Context, req ProviderSearchRequest) (ProviderSearchResult, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// DestinationRepository backs the Gazetteer and the fallback price table.
type DestinationRepository interface {
	// Write paths
	UpsertDestination(ctx context.Context, d Destination) error
	UpsertCityPrice(ctx context.Context, city string, base float64) error

	// Read paths
	ListDestinations(ctx context.Context) ([]Destination, error)
	ListCityPrices(ctx context.Context) (map[string]float64, error)
}

// Destination is one Gazetteer row; Key is the lower-cased lookup name and
// Position keeps table-declaration order.
type Destination struct {
	Key       string
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
	Position  int
}

// Provider wire models
type ProviderSearchRequest struct {
	Location     string   `json:"location,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	RadiusKm     int      `json:"radius,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	CheckIn      string   `json:"checkin"`
	CheckOut     string   `json:"checkout"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
	Rooms        int      `json:"rooms"`
	MinRating    *int     `json:"min_rating,omitempty"`
	MaxRating    *int     `json:"max_rating,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
}

type ProviderSearchResult struct {
	Data []ProviderHotel `json:"data"`
}

type ProviderHotel struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	StarRating *float64       `json:"star_rating,omitempty"`
	Address    *string        `json:"address,omitempty"`
	Rates      []ProviderRate `json:"rates"`
	Amenities  []string       `json:"amenities,omitempty"`
	DistanceKm *float64       `json:"distance,omitempty"`
	Photos     []string       `json:"photos,omitempty"`
}

type ProviderRate struct {
	ID          string  `json:"id,omitempty"`
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
}
