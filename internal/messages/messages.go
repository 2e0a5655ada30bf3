// Package messages composes the user-facing strings for en, pt and es.
// Unknown language codes fall back to English.
package messages

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stayquery/internal/domain"
)

const DefaultLanguage = "en"

type plural struct{ one, many string }

func (p plural) count(n int) string {
	if n == 1 {
		return "1 " + p.one
	}
	return strconv.Itoa(n) + " " + p.many
}

type locale struct {
	tag     language.Tag
	fields  map[string]string
	missing string // %s = field list
	example string

	found   string // count, city, guests, nights, from, to
	hotels  plural
	guests  plural
	nights  plural
	rangeTo string

	prefIntro string
	stars     string // %d
	maxStars  string // %d
	pool      string
	breakfast string
	beach     string
	downtown  string
}

var locales = map[string]locale{
	"en": {
		tag: language.English,
		fields: map[string]string{
			domain.FieldCity:     "city",
			domain.FieldCheckIn:  "check-in date",
			domain.FieldCheckOut: "check-out date",
		},
		missing: "To search for hotels I still need the %s.",
		example: `Try something like: "I need a hotel in Orlando from Nov 20 to 25 for 2 guests".`,

		found:   "Found %s in %s for %s, %s (%s %s %s).",
		hotels:  plural{"hotel", "hotels"},
		guests:  plural{"guest", "guests"},
		nights:  plural{"night", "nights"},
		rangeTo: "to",

		prefIntro: "Looking for",
		stars:     "%d+ stars",
		maxStars:  "up to %d stars",
		pool:      "pool",
		breakfast: "breakfast included",
		beach:     "near the beach",
		downtown:  "downtown",
	},
	"pt": {
		tag: language.Portuguese,
		fields: map[string]string{
			domain.FieldCity:     "cidade",
			domain.FieldCheckIn:  "data de check-in",
			domain.FieldCheckOut: "data de check-out",
		},
		missing: "Para buscar hotéis ainda preciso de: %s.",
		example: `Tente algo como: "Preciso de um hotel em Orlando de 20 a 25 de novembro para 2 hóspedes".`,

		found:   "Encontrei %s em %s para %s, %s (%s %s %s).",
		hotels:  plural{"hotel", "hotéis"},
		guests:  plural{"hóspede", "hóspedes"},
		nights:  plural{"noite", "noites"},
		rangeTo: "a",

		prefIntro: "Procurando",
		stars:     "%d+ estrelas",
		maxStars:  "até %d estrelas",
		pool:      "piscina",
		breakfast: "café da manhã incluído",
		beach:     "perto da praia",
		downtown:  "no centro",
	},
	"es": {
		tag: language.Spanish,
		fields: map[string]string{
			domain.FieldCity:     "ciudad",
			domain.FieldCheckIn:  "fecha de entrada",
			domain.FieldCheckOut: "fecha de salida",
		},
		missing: "Para buscar hoteles todavía necesito: %s.",
		example: `Prueba algo como: "Necesito un hotel en Orlando del 20 al 25 de noviembre para 2 huéspedes".`,

		found:   "Encontré %s en %s para %s, %s (%s %s %s).",
		hotels:  plural{"hotel", "hoteles"},
		guests:  plural{"huésped", "huéspedes"},
		nights:  plural{"noche", "noches"},
		rangeTo: "al",

		prefIntro: "Buscando",
		stars:     "%d+ estrellas",
		maxStars:  "hasta %d estrellas",
		pool:      "piscina",
		breakfast: "desayuno incluido",
		beach:     "cerca de la playa",
		downtown:  "en el centro",
	},
}

// Normalize maps a client language code to a supported one.
func Normalize(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	if _, ok := locales[l]; ok {
		return l
	}
	return DefaultLanguage
}

func lookup(lang string) locale { return locales[Normalize(lang)] }

// MissingFieldPrompt lists the missing fields and gives an example query.
func MissingFieldPrompt(missing []string, lang string) string {
	loc := lookup(lang)
	names := make([]string, 0, len(missing))
	for _, f := range missing {
		if n, ok := loc.fields[f]; ok {
			names = append(names, n)
		} else {
			names = append(names, f)
		}
	}
	return fmt.Sprintf(loc.missing, strings.Join(names, ", ")) + " " + loc.example
}

func ResultSummary(p domain.SearchParams, count int, lang string) string {
	loc := lookup(lang)
	city := cases.Title(loc.tag).String(strings.TrimSpace(p.City))
	return fmt.Sprintf(loc.found,
		loc.hotels.count(count),
		city,
		loc.guests.count(p.Guests),
		loc.nights.count(p.Nights()),
		p.CheckIn, loc.rangeTo, p.CheckOut,
	)
}

// PreferenceSummary covers stars, pool, breakfast, beach and downtown in that
// order; it is empty when none of them is set.
func PreferenceSummary(pr domain.Preferences, lang string) string {
	loc := lookup(lang)
	var parts []string
	switch {
	case pr.MinStars != nil:
		parts = append(parts, fmt.Sprintf(loc.stars, *pr.MinStars))
	case pr.MaxStars != nil:
		parts = append(parts, fmt.Sprintf(loc.maxStars, *pr.MaxStars))
	}
	if pr.PoolRequired {
		parts = append(parts, loc.pool)
	}
	if pr.FreeBreakfast {
		parts = append(parts, loc.breakfast)
	}
	if pr.NearBeach {
		parts = append(parts, loc.beach)
	}
	if pr.NearDowntown {
		parts = append(parts, loc.downtown)
	}
	if len(parts) == 0 {
		return ""
	}
	return loc.prefIntro + ": " + strings.Join(parts, ", ")
}
