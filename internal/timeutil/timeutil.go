package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical calendar date layout used everywhere in the service.
const ISODate = "2006-01-02"

// Reference is the caller-supplied "now". All date/time resolution and past
// checks run against it, never against a wall clock, so identical inputs
// always produce identical results.
type Reference struct {
	Date   string `json:"isoDate"` // YYYY-MM-DD
	Hour   int    `json:"hour"`    // 0-23
	Minute int    `json:"minute"`  // 0-59
}

// Now builds a Reference from a concrete instant. Only glue code (HTTP
// handlers, the CLI) should call this; the core always receives a Reference.
func Now(t time.Time) Reference {
	return Reference{
		Date:   t.Format(ISODate),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Clock renders the reference time-of-day as HH:MM.
func (r Reference) Clock() string {
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

func (r Reference) day() (time.Time, bool) {
	t, err := time.Parse(ISODate, r.Date)
	return t, err == nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Full month names come before their abbreviations so "june" never half-matches "jun".
const monthAlternatives = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec`

var (
	numberRe   = regexp.MustCompile(`(\d+)`)
	dayMonthRe = regexp.MustCompile(`(\d{1,2})\s+(` + monthAlternatives + `)`)
	monthDayRe = regexp.MustCompile(`(` + monthAlternatives + `)\s+(\d{1,2})`)
	meridiemRe = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(am|pm)`)
)

// ResolveDate converts a free-form date expression into a YYYY-MM-DD string.
// Unrecognized or empty expressions resolve to the reference date.
func ResolveDate(expr string, ref Reference) string {
	today, ok := ref.day()
	if !ok {
		return ref.Date
	}

	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "", "today":
		return ref.Date
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(ISODate)
	case "yesterday":
		return today.AddDate(0, 0, -1).Format(ISODate)
	}

	// A bare weekday name means the next occurrence, never today.
	if wd, ok := weekdays[expr]; ok {
		ahead := (int(wd) - int(today.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return today.AddDate(0, 0, ahead).Format(ISODate)
	}

	// Relative offsets like "in 5 days" or "next 2 weeks".
	if strings.Contains(expr, "next") || strings.Contains(expr, "in") {
		if m := numberRe.FindString(expr); m != "" {
			n, _ := strconv.Atoi(m)
			switch {
			case strings.Contains(expr, "week"):
				return today.AddDate(0, 0, 7*n).Format(ISODate)
			case strings.Contains(expr, "day"):
				return today.AddDate(0, 0, n).Format(ISODate)
			}
		}
	}

	if resolved, ok := resolveMonthDay(expr, today); ok {
		return resolved
	}

	// Well-formed ISO dates pass through unchanged.
	if len(expr) == 10 {
		if t, err := time.Parse(ISODate, expr); err == nil {
			return t.Format(ISODate)
		}
	}

	return ref.Date
}

// resolveMonthDay handles "16 july", "july 16" and 3-letter abbreviations.
// A month/day already past this year rolls to next year; a month/day equal to
// the reference date stays in the current year, leaving the validator's
// same-day rule to decide. Impossible days like Feb 30 resolve to the
// reference date.
func resolveMonthDay(expr string, today time.Time) (string, bool) {
	var day int
	var month time.Month

	if m := dayMonthRe.FindStringSubmatch(expr); m != nil {
		day, _ = strconv.Atoi(m[1])
		month = months[m[2]]
	} else if m := monthDayRe.FindStringSubmatch(expr); m != nil {
		month = months[m[1]]
		day, _ = strconv.Atoi(m[2])
	} else {
		return "", false
	}

	candidate := time.Date(today.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if candidate.Month() != month || candidate.Day() != day {
		return today.Format(ISODate), true
	}
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, month, day, 0, 0, 0, 0, time.UTC)
	}
	return candidate.Format(ISODate), true
}

// ResolveTime converts a free-form time expression into a 24h HH:MM string.
// It returns "" when no time can be derived; callers decide any default.
func ResolveTime(expr string, ref Reference) string {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return ""
	}

	// Noon and midnight are called out before the generic am/pm rule.
	if strings.Contains(expr, "12 am") || strings.Contains(expr, "12am") {
		return "00:00"
	}
	if strings.Contains(expr, "12 pm") || strings.Contains(expr, "12pm") {
		return "12:00"
	}

	if m := meridiemRe.FindStringSubmatch(expr); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if m[3] == "pm" && hour != 12 {
			hour += 12
		} else if m[3] == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour%24, minute%60)
	}

	// Relative offsets like "in 3 hours" or "next 30 minutes", measured from
	// the reference with modulo-24 wraparound.
	if strings.Contains(expr, "next") || strings.Contains(expr, "in") {
		if m := numberRe.FindString(expr); m != "" {
			n, _ := strconv.Atoi(m)
			switch {
			case strings.Contains(expr, "hour"):
				return fmt.Sprintf("%02d:%02d", (ref.Hour+n)%24, ref.Minute)
			case strings.Contains(expr, "minute"):
				total := ref.Minute + n
				return fmt.Sprintf("%02d:%02d", (ref.Hour+total/60)%24, total%60)
			}
		}
	}

	if strings.Contains(expr, ":") {
		parts := strings.SplitN(expr, ":", 2)
		hour, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		minute, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errM == nil && hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 {
			return fmt.Sprintf("%02d:%02d", hour, minute)
		}
	}

	switch {
	case strings.Contains(expr, "morning"):
		return "09:00"
	case strings.Contains(expr, "afternoon"):
		return "14:00"
	case strings.Contains(expr, "evening"):
		return "18:00"
	case strings.Contains(expr, "night"):
		return "20:00"
	}

	return ""
}
