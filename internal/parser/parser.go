// Package parser turns a free-text accommodation request into a ParsedQuery
// using deterministic, ordered pattern rules.
package parser

import (
	"strings"
	"time"

	"stayquery/internal/domain"
	"stayquery/internal/geo"
)

type Parser struct {
	cities CityResolver
	dates  DateResolver
	party  PartyResolver
	prefs  PreferenceExtractor
}

// New builds a Parser. now supplies the reference day for year rollover;
// nil means time.Now.
func New(places *geo.Gazetteer, now func() time.Time) *Parser {
	return &Parser{
		cities: CityResolver{Places: places},
		dates:  DateResolver{Now: now},
	}
}

func (p *Parser) Parse(text string) domain.ParsedQuery {
	lower := strings.ToLower(text)

	dr := p.dates.Resolve(lower)
	party := p.party.Resolve(lower)
	q := domain.ParsedQuery{
		City:        p.cities.Resolve(lower),
		CheckIn:     dr.CheckIn,
		CheckOut:    dr.CheckOut,
		Guests:      party.Guests,
		Rooms:       party.Rooms,
		Preferences: p.prefs.Resolve(text),
	}
	q.MissingFields = missingFields(q)
	return q
}

func missingFields(q domain.ParsedQuery) []string {
	missing := []string{}
	if q.City == "" {
		missing = append(missing, domain.FieldCity)
	}
	if q.CheckIn == nil {
		missing = append(missing, domain.FieldCheckIn)
	}
	if q.CheckOut == nil {
		missing = append(missing, domain.FieldCheckOut)
	}
	return missing
}
