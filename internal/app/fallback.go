package app

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stayquery/internal/domain"
)

const (
	defaultBasePrice = 120.0
	// the cheapest tier is base-50, so smaller bases would not stay positive
	minBasePrice = 60.0
)

var builtinPrices = map[string]float64{
	"orlando":        140,
	"miami":          190,
	"new york":       250,
	"nyc":            250,
	"las vegas":      130,
	"los angeles":    210,
	"san francisco":  230,
	"chicago":        170,
	"boston":         200,
	"honolulu":       260,
	"cancun":         160,
	"rio de janeiro": 120,
	"sao paulo":      110,
	"são paulo":      110,
	"london":         220,
	"paris":          200,
	"rome":           160,
	"madrid":         140,
	"barcelona":      170,
	"lisbon":         130,
	"amsterdam":      190,
	"dubai":          230,
	"tokyo":          180,
	"singapore":      210,
	"bangkok":        90,
	"sydney":         200,
}

// PriceTable holds per-city base nightly prices for fallback results.
type PriceTable struct {
	base map[string]float64
	def  float64
}

func NewPriceTable(base map[string]float64, def float64) PriceTable {
	if def < minBasePrice {
		def = defaultBasePrice
	}
	t := PriceTable{base: make(map[string]float64, len(base)), def: def}
	for k, v := range base {
		if v >= minBasePrice {
			t.base[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
	return t
}

func DefaultPriceTable() PriceTable { return NewPriceTable(builtinPrices, defaultBasePrice) }

func (t PriceTable) Base(city string) float64 {
	if v, ok := t.base[strings.ToLower(strings.TrimSpace(city))]; ok {
		return v
	}
	return t.def
}

// Entries returns a copy of the per-city prices.
func (t PriceTable) Entries() map[string]float64 {
	out := make(map[string]float64, len(t.base))
	for k, v := range t.base {
		out[k] = v
	}
	return out
}

func starMultiplier(p domain.Preferences) float64 {
	switch {
	case p.MinStars != nil && *p.MinStars >= 5:
		return 2.0
	case p.MinStars != nil && *p.MinStars >= 4:
		return 1.5
	case p.MaxStars != nil && *p.MaxStars <= 3:
		return 0.7
	}
	return 1.0
}

var fallbackTiers = []struct {
	suffix    string
	discount  float64
	rating    float64
	street    string
	amenities []string
	distance  string
}{
	{"Grand Hotel", 0, 4.5, "1 Main Street", []string{"Free WiFi", "Pool", "Restaurant", "Fitness Center"}, "0.5 km"},
	{"Plaza Hotel", 30, 4.0, "250 Central Avenue", []string{"Free WiFi", "Breakfast", "Parking"}, "1.2 km"},
	{"Inn & Suites", 50, 3.5, "48 Station Road", []string{"Free WiFi", "Parking"}, "2.5 km"},
}

// fallbackHotels is a pure function of params and the price table.
func fallbackHotels(p domain.SearchParams, prices PriceTable) []domain.Accommodation {
	city := cityTitle(p.City)
	base := prices.Base(p.City)
	mult := starMultiplier(p.Preferences)
	nights := p.Nights()

	out := make([]domain.Accommodation, 0, len(fallbackTiers))
	for i, tier := range fallbackTiers {
		perNight := round2((base - tier.discount) * mult)
		amenities := make([]string, len(tier.amenities))
		copy(amenities, tier.amenities)
		out = append(out, domain.Accommodation{
			ID:            fallbackID(p.City, i),
			Name:          city + " " + tier.suffix,
			Rating:        tier.rating,
			Address:       tier.street + ", " + city,
			PricePerNight: perNight,
			TotalPrice:    round2(perNight * float64(nights*p.Rooms)),
			Currency:      defaultCurrency,
			Amenities:     amenities,
			Distance:      tier.distance,
			CheckIn:       p.CheckIn,
			CheckOut:      p.CheckOut,
			Guests:        p.Guests,
			Rooms:         p.Rooms,
			Availability:  availableLabel,
		})
	}
	return out
}

func fallbackID(city string, tier int) string {
	name := "stayquery:fallback:" + strings.ToLower(city) + ":" + strconv.Itoa(tier)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func cityTitle(city string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(city))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
