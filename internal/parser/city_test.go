package parser

import (
	"testing"

	"stayquery/internal/geo"
)

func TestCityResolver(t *testing.T) {
	r := CityResolver{Places: geo.Default()}

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact after template", "i need a hotel in orlando from nov 20 to 25th", "orlando"},
		{"at preposition", "accommodation at paris for 2", "paris"},
		{"trip to", "trip to new york for 3 nights", "new york"},
		{"alias key", "hotel in nyc starting dec 1", "nyc"},
		{"candidate contains key", "hotel in downtown miami", "miami"},
		{"key contains candidate", "hotel in vegas on nov 3", "las vegas"},
		{"trailing clause", "5 star resort in dubai with a pool", "dubai"},
		{"unknown candidate returned raw", "hotel in springfield for 2", "springfield"},
		{"trailing punctuation trimmed", "a room in atlantis.", "atlantis"},
		{"full-text scan", "looking at tokyo hotels next month", "tokyo"},
		{"scan follows declaration order", "miami or orlando, whichever is cheaper", "orlando"},
		{"nothing", "somewhere warm please", ""},
		{"check-in date is not a place", "i'm checking in dec 28 for 3 nights", ""},
		{"check-in marker skipped for later city", "check in nov 3, check out nov 8, paris, 2 guests", "paris"},
		{"hyphenated check-in", "check-in dec 1 in lisbon", "lisbon"},
		{"count is not a place", "4 guests in 1 room", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Resolve(tc.input); got != tc.expected {
				t.Fatalf("Resolve(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}
