package parser

import (
	"regexp"
	"strconv"
	"strings"

	"stayquery/internal/domain"
)

const amountPat = `(\d[\d,]*(?:\.\d+)?)`

var (
	explicitStarsRe = regexp.MustCompile(`\b([1-5])\s*-?\s*stars?\b`)

	luxuryRe  = regexp.MustCompile(`\bluxury\b|\b5[\s-]star|\bfive[\s-]star`)
	upscaleRe = regexp.MustCompile(`\bupscale\b|\bpremium\b|\b4[\s-]star|\bfour[\s-]star`)
	budgetRe  = regexp.MustCompile(`\b(?:budget|cheap|affordable|economical)\b`)

	maxPriceRe = regexp.MustCompile(`\b(?:under|less than|below|max|maximum|up to)\s*(?:\$\s*` + amountPat + `|` + amountPat + `\s*(?:dollars|usd|bucks))`)
	minPriceRe = regexp.MustCompile(`\b(?:over|more than|above|min|minimum|at least)\s*(?:\$\s*` + amountPat + `|` + amountPat + `\s*(?:dollars|usd|bucks))`)

	airportRe  = regexp.MustCompile(`\bairport\b`)
	beachRe    = regexp.MustCompile(`\b(?:beach|beachfront|ocean|oceanfront|sea|seaside)\b`)
	downtownRe = regexp.MustCompile(`\b(?:downtown|center|centre|central)\b`)
)

type amenityRule struct {
	tag string
	re  *regexp.Regexp
	set func(*domain.Preferences)
}

var amenityRules = []amenityRule{
	{"pool", regexp.MustCompile(`\b(?:pools?|swimming)\b`), func(p *domain.Preferences) { p.PoolRequired = true }},
	{"gym", regexp.MustCompile(`\b(?:gym|fitness|workout)\b`), func(p *domain.Preferences) { p.GymRequired = true }},
	{"spa", regexp.MustCompile(`\b(?:spa|wellness|massages?)\b`), func(p *domain.Preferences) { p.SpaRequired = true }},
	{"breakfast", regexp.MustCompile(`\bbreakfast\b`), func(p *domain.Preferences) { p.FreeBreakfast = true }},
	{"wifi", regexp.MustCompile(`\b(?:wifi|wi-fi|internet)\b`), nil},
	{"parking", regexp.MustCompile(`\bparking\b`), func(p *domain.Preferences) { p.FreeParking = true }},
	{"pets", regexp.MustCompile(`\b(?:pets?|dogs?|cats?)\b`), func(p *domain.Preferences) { p.PetFriendly = true }},
	{"restaurant", regexp.MustCompile(`\b(?:restaurants?|dining)\b`), nil},
}

// First match wins.
var propertyTypeRules = []struct {
	kind domain.PropertyType
	re   *regexp.Regexp
}{
	{domain.PropertyResort, regexp.MustCompile(`\bresorts?\b`)},
	{domain.PropertyApartment, regexp.MustCompile(`\b(?:apartments?|condos?)\b`)},
	{domain.PropertyVilla, regexp.MustCompile(`\bvillas?\b`)},
	{domain.PropertyHostel, regexp.MustCompile(`\bhostels?\b`)},
}

// PreferenceExtractor runs independent keyword scans; several may fire.
type PreferenceExtractor struct{}

func (PreferenceExtractor) Resolve(text string) domain.Preferences {
	lower := strings.ToLower(text)
	var p domain.Preferences

	if m := explicitStarsRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		p.MinStars, p.MaxStars = intPtr(n), intPtr(n)
	}
	// Quality keywords run after the explicit number and overwrite it.
	switch {
	case luxuryRe.MatchString(lower):
		setMinStars(&p, 5)
	case upscaleRe.MatchString(lower):
		setMinStars(&p, 4)
	}
	if budgetRe.MatchString(lower) {
		setMaxStars(&p, 3)
	}

	if v, ok := amount(maxPriceRe, lower); ok {
		p.MaxPrice = &v
	}
	if v, ok := amount(minPriceRe, lower); ok {
		p.MinPrice = &v
	}

	for _, r := range amenityRules {
		if r.re.MatchString(lower) {
			p.Amenities = append(p.Amenities, r.tag)
			if r.set != nil {
				r.set(&p)
			}
		}
	}

	p.NearAirport = airportRe.MatchString(lower)
	p.NearBeach = beachRe.MatchString(lower)
	p.NearDowntown = downtownRe.MatchString(lower)

	for _, r := range propertyTypeRules {
		if r.re.MatchString(lower) {
			p.PropertyType = r.kind
			break
		}
	}
	return p
}

// setMinStars overwrites the lower bound and drops an upper bound it would contradict.
func setMinStars(p *domain.Preferences, n int) {
	p.MinStars = intPtr(n)
	if p.MaxStars != nil && *p.MaxStars < n {
		p.MaxStars = nil
	}
}

func setMaxStars(p *domain.Preferences, n int) {
	p.MaxStars = intPtr(n)
	if p.MinStars != nil && *p.MinStars > n {
		p.MinStars = nil
	}
}

func amount(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func intPtr(n int) *int { return &n }
