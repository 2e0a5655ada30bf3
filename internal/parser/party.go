package parser

import (
	"regexp"
	"strconv"
)

const (
	maxGuests     = 20
	defaultGuests = 2
)

const countPat = `(\d{1,2}|one|two|three|four|five|six|seven|eight|nine|ten)`

var (
	guestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b` + countPat + `\s+(?:people|persons?|guests?|adults?|travell?ers)\b`),
		regexp.MustCompile(`\b` + countPat + `\s+of\s+us\b`),
		regexp.MustCompile(`\bfor\s+` + countPat + `\b`),
	}
	roomRe = regexp.MustCompile(`\b` + countPat + `\s+rooms?\b`)

	coupleRe = regexp.MustCompile(`\b(?:couple|two of us)\b`)
	soloRe   = regexp.MustCompile(`\b(?:just me|solo|alone)\b`)

	// "for 3 nights" is a stay length, not a party size
	forNotGuestsRe = regexp.MustCompile(`^\s*(?:nights?|days?|weeks?|rooms?|stars?|-star|bucks|dollars)\b`)
)

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

type Party struct {
	Guests int
	Rooms  int
}

type PartyResolver struct{}

func (PartyResolver) Resolve(text string) Party {
	guests := resolveGuests(text)
	rooms := (guests + 1) / 2
	// more rooms than guests is never a real request
	if m := roomRe.FindStringSubmatch(text); m != nil {
		if n, ok := count(m[1]); ok && n >= 1 && n <= guests {
			rooms = n
		}
	}
	if rooms < 1 {
		rooms = 1
	}
	return Party{Guests: guests, Rooms: rooms}
}

func resolveGuests(text string) int {
	for _, re := range guestPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if forNotGuestsRe.MatchString(text[loc[1]:]) {
				continue
			}
			if n, ok := count(text[loc[2]:loc[3]]); ok && n >= 1 && n <= maxGuests {
				return n
			}
		}
	}
	switch {
	case coupleRe.MatchString(text):
		return 2
	case soloRe.MatchString(text):
		return 1
	}
	return defaultGuests
}

func count(s string) (int, bool) {
	if n, ok := wordNumbers[s]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
