package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"stayquery/internal/domain"
)

const (
	monthPat = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	dayPat   = `(\d{1,2})(?:st|nd|rd|th)?\b`
	yearPat  = `(?:,?\s*(\d{4}))?`
	// month day [year]; three capture groups
	monthDayPat = `\b` + monthPat + `\.?\s+` + dayPat + yearPat
)

var (
	// 1. "from nov 20 to 25th", "dec 28 - jan 2"
	rangeRe = regexp.MustCompile(`(?:\bfrom\s+)?` + monthDayPat +
		`\s*(?:\bto\b|\buntil\b|\bthrough\b|\btill\b|-|–)\s*(?:` + monthPat + `\.?\s+)?` + dayPat + yearPat + `\b`)

	// 2. check-in markers
	checkInMarkerRe   = regexp.MustCompile(`\b(?:from|checking in|check-in|check in|starting|arriving|on)\s+(?:on\s+)?` + monthDayPat)
	checkInBeforeToRe = regexp.MustCompile(monthDayPat + `\s+(?:to|until)\b`)

	// 3. check-out markers
	checkOutMarkerRe = regexp.MustCompile(`\b(?:to|until|through|till|checking out|check-out|check out|leaving)\s+(?:on\s+)?` + monthDayPat)
	checkOutDayRe    = regexp.MustCompile(`\b(?:to|until|through|till|checking out|check-out|check out|leaving)\s+(?:the\s+)?` + dayPat + `(?:\s+(?:of\s+)?` + monthPat + `)?\b`)

	// 4. duration
	durationRe = regexp.MustCompile(`\b(\d{1,3})\s*(nights?|days?|weeks?)\b`)

	// a number followed by one of these is a count, not a day of month
	countTailRe = regexp.MustCompile(`^\s*(?:nights?|days?|weeks?|people|persons?|guests?|adults?|kids?|children|travell?ers|rooms?|of us|stars?|-star)\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// DateRange is the resolver output; either field may be nil.
type DateRange struct {
	CheckIn  *domain.Date
	CheckOut *domain.Date
}

// DateResolver extracts a stay from lower-cased text. Bare month/day values
// refer to their next occurrence relative to Now.
type DateResolver struct {
	Now func() time.Time
}

func (r DateResolver) Resolve(text string) DateRange {
	today := domain.DateOf(r.now())
	var out DateRange

	if in, outDate, ok := r.matchRange(text, today); ok {
		out.CheckIn = &in
		if outDate != nil {
			out.CheckOut = outDate
		}
	} else if in, ok := r.matchCheckIn(text, today); ok {
		out.CheckIn = &in
		if co, ok := r.matchCheckOut(text, in); ok {
			out.CheckOut = &co
		}
	}

	if out.CheckIn != nil && out.CheckOut == nil {
		if n, ok := stayLength(text); ok {
			co := out.CheckIn.AddDays(n)
			out.CheckOut = &co
		}
	}
	return out
}

func (r DateResolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r DateResolver) matchRange(text string, today domain.Date) (domain.Date, *domain.Date, bool) {
	for _, loc := range rangeRe.FindAllStringSubmatchIndex(text, -1) {
		if countTailRe.MatchString(text[loc[1]:]) {
			continue
		}
		g := groups(text, loc)
		inMonth := months[g[1][:3]]
		in, ok := resolveDate(inMonth, g[2], g[3], today)
		if !ok {
			continue
		}

		outMonth := inMonth
		if g[4] != "" {
			outMonth = months[g[4][:3]]
		}
		year := in.Year()
		if outMonth < inMonth {
			year++
		}
		if g[6] != "" {
			year, _ = strconv.Atoi(g[6])
		}
		day, _ := strconv.Atoi(g[5])
		co, ok := calendarDate(year, outMonth, day)
		if !ok || !co.After(in) {
			return in, nil, true
		}
		return in, &co, true
	}
	return domain.Date{}, nil, false
}

func (r DateResolver) matchCheckIn(text string, today domain.Date) (domain.Date, bool) {
	for _, re := range []*regexp.Regexp{checkInMarkerRe, checkInBeforeToRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if d, ok := resolveDate(months[m[1][:3]], m[2], m[3], today); ok {
				return d, true
			}
		}
	}
	return domain.Date{}, false
}

func (r DateResolver) matchCheckOut(text string, in domain.Date) (domain.Date, bool) {
	for _, m := range checkOutMarkerRe.FindAllStringSubmatch(text, -1) {
		month := months[m[1][:3]]
		year := in.Year()
		if month < in.Month() {
			year++
		}
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		day, _ := strconv.Atoi(m[2])
		if d, ok := calendarDate(year, month, day); ok && d.After(in) {
			return d, true
		}
	}

	for _, loc := range checkOutDayRe.FindAllStringSubmatchIndex(text, -1) {
		if countTailRe.MatchString(text[loc[1]:]) {
			continue
		}
		g := groups(text, loc)
		day, _ := strconv.Atoi(g[1])
		year, month := in.Year(), in.Month()
		if g[2] != "" {
			month = months[g[2][:3]]
			if month < in.Month() {
				year++
			}
		} else if day <= in.Day() {
			// "from nov 28 until the 2nd" runs into the next month
			month++
			if month > time.December {
				month = time.January
				year++
			}
		}
		if d, ok := calendarDate(year, month, day); ok && d.After(in) {
			return d, true
		}
	}
	return domain.Date{}, false
}

func stayLength(text string) (int, bool) {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	if strings.HasPrefix(m[2], "week") {
		n *= 7
	}
	return n, true
}

// resolveDate applies the next-occurrence rule unless an explicit year is given.
func resolveDate(month time.Month, dayStr, yearStr string, today domain.Date) (domain.Date, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return domain.Date{}, false
	}
	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return domain.Date{}, false
		}
		return calendarDate(year, month, day)
	}
	d, ok := calendarDate(today.Year(), month, day)
	if !ok {
		// Feb 29 outside a leap year
		return calendarDate(today.Year()+1, month, day)
	}
	if d.Before(today) {
		return calendarDate(today.Year()+1, month, day)
	}
	return d, true
}

// calendarDate rejects days that time.Date would normalize into another month.
func calendarDate(year int, month time.Month, day int) (domain.Date, bool) {
	if day < 1 || day > 31 {
		return domain.Date{}, false
	}
	d := domain.NewDate(year, month, day)
	if d.Month() != month || d.Day() != day {
		return domain.Date{}, false
	}
	return d, true
}

// groups turns submatch indexes into strings; unmatched groups are "".
func groups(text string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if s, e := loc[2*i], loc[2*i+1]; s >= 0 {
			out[i] = text[s:e]
		}
	}
	return out
}
