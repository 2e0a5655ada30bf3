package app

import (
	"fmt"

	"stayquery/internal/domain"
	"stayquery/internal/geo"
)

const (
	searchRadiusKm  = 10
	providerLimit   = 20
	maxResults      = 5
	maxAmenities    = 5
	defaultCurrency = "USD"
	availableLabel  = "Available"
	cityCenterLabel = "City center"
)

/********** request **********/

// buildProviderRequest searches by coordinate when the Gazetteer knows the
// city, otherwise by free-text location.
func buildProviderRequest(p domain.SearchParams, places *geo.Gazetteer) domain.ProviderSearchRequest {
	req := domain.ProviderSearchRequest{
		Limit:        providerLimit,
		CheckIn:      p.CheckIn.String(),
		CheckOut:     p.CheckOut.String(),
		Adults:       p.Guests,
		Children:     0,
		Rooms:        p.Rooms,
		MinRating:    p.Preferences.MinStars,
		MaxRating:    p.Preferences.MaxStars,
		MinPrice:     p.Preferences.MinPrice,
		MaxPrice:     p.Preferences.MaxPrice,
		Amenities:    p.Preferences.Amenities,
		PropertyType: string(p.Preferences.PropertyType),
	}
	if place, ok := places.Lookup(p.City); ok {
		lat, lon := place.Latitude, place.Longitude
		req.Latitude, req.Longitude = &lat, &lon
		req.RadiusKm = searchRadiusKm
	} else {
		req.Location = p.City
	}
	return req
}

/********** response **********/

// mapProviderHotels keeps the first maxResults hotels that offer a rate.
func mapProviderHotels(in []domain.ProviderHotel, p domain.SearchParams) []domain.Accommodation {
	nights := p.Nights()
	out := make([]domain.Accommodation, 0, maxResults)
	for _, h := range in {
		if len(out) == maxResults {
			break
		}
		rate, ok := cheapestRate(h.Rates)
		if !ok {
			continue
		}
		currency := rate.Currency
		if currency == "" {
			currency = defaultCurrency
		}
		out = append(out, domain.Accommodation{
			ID:            h.ID,
			Name:          h.Name,
			Rating:        rating(h.StarRating),
			Address:       deref(h.Address),
			PricePerNight: round2(rate.TotalAmount / float64(nights)),
			TotalPrice:    round2(rate.TotalAmount),
			Currency:      currency,
			Amenities:     truncate(h.Amenities, maxAmenities),
			Distance:      distanceLabel(h.DistanceKm),
			CheckIn:       p.CheckIn,
			CheckOut:      p.CheckOut,
			Guests:        p.Guests,
			Rooms:         p.Rooms,
			Availability:  availableLabel,
			Image:         firstOrEmpty(h.Photos),
			RateID:        rate.ID,
		})
	}
	return out
}

func cheapestRate(rs []domain.ProviderRate) (domain.ProviderRate, bool) {
	if len(rs) == 0 {
		return domain.ProviderRate{}, false
	}
	best := rs[0]
	for _, r := range rs[1:] {
		if r.TotalAmount < best.TotalAmount {
			best = r
		}
	}
	return best, true
}

/********** tiny helpers **********/

func rating(p *float64) float64 {
	switch {
	case p == nil || *p < 0:
		return 0
	case *p > 5:
		return 5
	}
	return *p
}

func distanceLabel(km *float64) string {
	if km == nil {
		return cityCenterLabel
	}
	return fmt.Sprintf("%.1f km", *km)
}

func truncate(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	out := make([]string, n)
	copy(out, s[:n])
	return out
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
