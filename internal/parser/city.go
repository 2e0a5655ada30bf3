package parser

import (
	"regexp"
	"strings"

	"stayquery/internal/geo"
)

const stopPat = `(?:\s+(?:from|for|check|starting|on)\b|$)`

// Tried in order; the first capture wins.
var cityTemplates = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:hotels?|accommodations?|lodging|stay|place|rooms?|resorts?|apartments?|villas?|hostels?)\s+(?:in|at|near)\s+(.+?)` + stopPat),
	regexp.MustCompile(`\bin\s+(.+?)` + stopPat),
	regexp.MustCompile(`\btrip\s+to\s+(.+?)` + stopPat),
}

var (
	// "check in"/"checking in" introduce a date, not a place
	checkMarkerRe = regexp.MustCompile(`\bcheck(?:ing)?[\s-]*$`)
	// a place name never opens with a date or a count
	notPlaceRe = regexp.MustCompile(`^(?:\d|` + monthPat + `\.?\s+\d)`)
)

// CityResolver maps free text to a Gazetteer key, or to the raw captured
// place name when the Gazetteer has no match.
type CityResolver struct {
	Places *geo.Gazetteer
}

func (r CityResolver) Resolve(text string) string {
	candidate := captureCandidate(text)
	if candidate == "" {
		return r.scan(text)
	}
	if _, ok := r.Places.Lookup(candidate); ok {
		return candidate
	}
	if key := r.fuzzy(candidate); key != "" {
		return key
	}
	return candidate
}

func captureCandidate(text string) string {
	for _, re := range cityTemplates {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if checkMarkerRe.MatchString(text[:loc[0]]) {
				continue
			}
			c := strings.Trim(text[loc[2]:loc[3]], " \t,.;:!?\"'")
			if c == "" || notPlaceRe.MatchString(c) {
				continue
			}
			return c
		}
	}
	return ""
}

// fuzzy matches when either string contains the other. Candidates shorter
// than three letters only match by containing a key.
func (r CityResolver) fuzzy(candidate string) string {
	for _, k := range r.Places.Keys() {
		if strings.Contains(candidate, k) || (len(candidate) >= 3 && strings.Contains(k, candidate)) {
			return k
		}
	}
	return ""
}

func (r CityResolver) scan(text string) string {
	for _, k := range r.Places.Keys() {
		if strings.Contains(text, k) {
			return k
		}
	}
	return ""
}
