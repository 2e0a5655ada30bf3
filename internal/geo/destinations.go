package geo

import "stayquery/internal/domain"

type row struct {
	key, name string
	lat, lon  float64
	country   string
}

// Order matters: full-text scans return the first key found.
var builtin = []row{
	{"orlando", "Orlando", 28.5383, -81.3792, "US"},
	{"miami", "Miami", 25.7617, -80.1918, "US"},
	{"new york", "New York", 40.7128, -74.0060, "US"},
	{"nyc", "New York", 40.7128, -74.0060, "US"},
	{"las vegas", "Las Vegas", 36.1699, -115.1398, "US"},
	{"los angeles", "Los Angeles", 34.0522, -118.2437, "US"},
	{"san francisco", "San Francisco", 37.7749, -122.4194, "US"},
	{"chicago", "Chicago", 41.8781, -87.6298, "US"},
	{"boston", "Boston", 42.3601, -71.0589, "US"},
	{"washington", "Washington", 38.9072, -77.0369, "US"},
	{"honolulu", "Honolulu", 21.3069, -157.8583, "US"},
	{"cancun", "Cancun", 21.1619, -86.8515, "MX"},
	{"mexico city", "Mexico City", 19.4326, -99.1332, "MX"},
	{"toronto", "Toronto", 43.6532, -79.3832, "CA"},
	{"rio de janeiro", "Rio de Janeiro", -22.9068, -43.1729, "BR"},
	{"sao paulo", "São Paulo", -23.5505, -46.6333, "BR"},
	{"são paulo", "São Paulo", -23.5505, -46.6333, "BR"},
	{"buenos aires", "Buenos Aires", -34.6037, -58.3816, "AR"},
	{"london", "London", 51.5074, -0.1278, "GB"},
	{"paris", "Paris", 48.8566, 2.3522, "FR"},
	{"rome", "Rome", 41.9028, 12.4964, "IT"},
	{"milan", "Milan", 45.4642, 9.1900, "IT"},
	{"madrid", "Madrid", 40.4168, -3.7038, "ES"},
	{"barcelona", "Barcelona", 41.3851, 2.1734, "ES"},
	{"lisbon", "Lisbon", 38.7223, -9.1393, "PT"},
	{"lisboa", "Lisbon", 38.7223, -9.1393, "PT"},
	{"amsterdam", "Amsterdam", 52.3676, 4.9041, "NL"},
	{"berlin", "Berlin", 52.5200, 13.4050, "DE"},
	{"vienna", "Vienna", 48.2082, 16.3738, "AT"},
	{"prague", "Prague", 50.0755, 14.4378, "CZ"},
	{"athens", "Athens", 37.9838, 23.7275, "GR"},
	{"istanbul", "Istanbul", 41.0082, 28.9784, "TR"},
	{"dubai", "Dubai", 25.2048, 55.2708, "AE"},
	{"tokyo", "Tokyo", 35.6762, 139.6503, "JP"},
	{"singapore", "Singapore", 1.3521, 103.8198, "SG"},
	{"bangkok", "Bangkok", 13.7563, 100.5018, "TH"},
	{"bali", "Bali", -8.3405, 115.0920, "ID"},
	{"sydney", "Sydney", -33.8688, 151.2093, "AU"},
}

// Destinations returns the built-in table with declaration positions set.
func Destinations() []domain.Destination {
	out := make([]domain.Destination, 0, len(builtin))
	for i, r := range builtin {
		out = append(out, domain.Destination{
			Key:       r.key,
			Name:      r.name,
			Latitude:  r.lat,
			Longitude: r.lon,
			Country:   r.country,
			Position:  i,
		})
	}
	return out
}
