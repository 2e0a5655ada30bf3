package messages_test

import (
	"strings"
	"testing"

	"stayquery/internal/domain"
	"stayquery/internal/messages"
)

func params(guests int) domain.SearchParams {
	return domain.SearchParams{
		City:     "new york",
		CheckIn:  domain.NewDate(2026, 11, 20),
		CheckOut: domain.NewDate(2026, 11, 25),
		Guests:   guests,
		Rooms:    1,
	}
}

func TestResultSummary(t *testing.T) {
	cases := []struct {
		name   string
		count  int
		guests int
		lang   string
		want   string
	}{
		{"english plural", 3, 2, "en", "Found 3 hotels in New York for 2 guests, 5 nights (2026-11-20 to 2026-11-25)."},
		{"english singular", 1, 1, "en", "Found 1 hotel in New York for 1 guest, 5 nights (2026-11-20 to 2026-11-25)."},
		{"portuguese", 3, 2, "pt", "Encontrei 3 hotéis em New York para 2 hóspedes, 5 noites (2026-11-20 a 2026-11-25)."},
		{"spanish singular guest", 5, 1, "es", "Encontré 5 hoteles en New York para 1 huésped, 5 noches (2026-11-20 al 2026-11-25)."},
		{"region subtag", 3, 2, "pt-BR", "Encontrei 3 hotéis em New York para 2 hóspedes, 5 noites (2026-11-20 a 2026-11-25)."},
		{"unknown falls back to english", 3, 2, "de", "Found 3 hotels in New York for 2 guests, 5 nights (2026-11-20 to 2026-11-25)."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := messages.ResultSummary(params(tc.guests), tc.count, tc.lang); got != tc.want {
				t.Fatalf("ResultSummary() = %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestMissingFieldPrompt(t *testing.T) {
	missing := []string{domain.FieldCity, domain.FieldCheckOut}

	en := messages.MissingFieldPrompt(missing, "")
	if !strings.Contains(en, "city, check-out date") || !strings.Contains(en, "Orlando") {
		t.Fatalf("unexpected english prompt: %q", en)
	}
	es := messages.MissingFieldPrompt(missing, "es")
	if !strings.Contains(es, "ciudad, fecha de salida") {
		t.Fatalf("unexpected spanish prompt: %q", es)
	}
	pt := messages.MissingFieldPrompt([]string{domain.FieldCheckIn}, "pt")
	if !strings.Contains(pt, "data de check-in") {
		t.Fatalf("unexpected portuguese prompt: %q", pt)
	}
}

func TestPreferenceSummary(t *testing.T) {
	five := 5
	three := 3

	cases := []struct {
		name string
		in   domain.Preferences
		lang string
		want string
	}{
		{"empty", domain.Preferences{}, "en", ""},
		{"flags outside the summary", domain.Preferences{GymRequired: true, NearAirport: true}, "en", ""},
		{
			"fixed order",
			domain.Preferences{NearDowntown: true, PoolRequired: true, MinStars: &five, NearBeach: true, FreeBreakfast: true},
			"en",
			"Looking for: 5+ stars, pool, breakfast included, near the beach, downtown",
		},
		{"upper bound only", domain.Preferences{MaxStars: &three}, "en", "Looking for: up to 3 stars"},
		{"spanish", domain.Preferences{PoolRequired: true, NearBeach: true}, "es", "Buscando: piscina, cerca de la playa"},
		{"portuguese", domain.Preferences{FreeBreakfast: true}, "pt", "Procurando: café da manhã incluído"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := messages.PreferenceSummary(tc.in, tc.lang); got != tc.want {
				t.Fatalf("PreferenceSummary() = %q; want %q", got, tc.want)
			}
		})
	}
}
