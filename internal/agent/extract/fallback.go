package extract

import (
	"regexp"
	"strings"

	"github.com/arnavgoel/remindme/internal/agent"
	"github.com/arnavgoel/remindme/internal/timeutil"
)

const descriptionLimit = 200

var (
	// Tails that belong to the when, not the what.
	prepositionTailRe = regexp.MustCompile(`(?i)\s+(?:at|on|by)\s+.*$`)
	relativeTailRe    = regexp.MustCompile(`(?i)\s+(?:today|tomorrow|tonight|yesterday|next\s+\w+|in\s+\d+\s+\w+)\b.*$`)
	clockTailRe       = regexp.MustCompile(`(?i)\s+\d{1,2}(?::\d{2})?\s*(?:am|pm)\b.*$`)

	remindMeToRe  = regexp.MustCompile(`(?i)\bremind me to\s+(.+)$`)
	obligationRe  = regexp.MustCompile(`(?i)\b(?:need to|have to|must)\s+(.+)$`)
	leadingVerbRe = regexp.MustCompile(`(?i)^(?:please\s+)?((?:call|meet|submit|buy|send|email|pay|book|finish|attend|join|visit|pick up)\b.*)$`)

	triggerPhraseRe = regexp.MustCompile(`(?i)\b(?:remind me|reminder|remember|please)\b`)
	weekdayScanRe   = regexp.MustCompile(`(?i)\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
	spacesRe        = regexp.MustCompile(`\s+`)
)

// A titleMatcher captures a candidate title from one message shape. Matchers
// run in priority order; the first non-empty capture wins.
type titleMatcher struct {
	name    string
	capture func(string) (string, bool)
}

var titleMatchers = []titleMatcher{
	{"remind-me-to", captureGroup(remindMeToRe)},
	{"obligation", captureGroup(obligationRe)},
	{"leading-verb", captureGroup(leadingVerbRe)},
	{"prefix-before-when-clause", func(msg string) (string, bool) {
		stripped := stripWhenTail(msg)
		if stripped != msg {
			return stripped, true
		}
		return "", false
	}},
}

func captureGroup(re *regexp.Regexp) func(string) (string, bool) {
	return func(msg string) (string, bool) {
		if m := re.FindStringSubmatch(msg); m != nil {
			return m[1], true
		}
		return "", false
	}
}

// Fallback derives a best-effort reminder candidate straight from the raw
// message when structured extraction produced nothing usable. It never fails:
// absence of any signal yields {"Reminder", "today", no time}.
func Fallback(message string, ref timeutil.Reference) *agent.ReminderCandidate {
	return &agent.ReminderCandidate{
		Title:       fallbackTitle(message),
		Date:        scanDate(message),
		Time:        timeutil.ResolveTime(message, ref),
		Description: truncate(strings.TrimSpace(message), descriptionLimit),
	}
}

func fallbackTitle(message string) string {
	msg := strings.TrimSpace(message)

	for _, m := range titleMatchers {
		if captured, ok := m.capture(msg); ok {
			if title := collapse(stripWhenTail(captured)); title != "" {
				return title
			}
		}
	}

	// Nothing matched: drop trigger phrases and time clauses, keep the rest.
	cleaned := triggerPhraseRe.ReplaceAllString(msg, "")
	if title := collapse(stripWhenTail(cleaned)); title != "" {
		return title
	}
	return "Reminder"
}

// scanDate looks for a date keyword anywhere in the message and returns it as
// a raw expression for the normalizer.
func scanDate(message string) string {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "tomorrow") {
		return "tomorrow"
	}
	if m := weekdayScanRe.FindString(lower); m != "" {
		return m
	}
	return "today"
}

func stripWhenTail(text string) string {
	text = prepositionTailRe.ReplaceAllString(text, "")
	text = relativeTailRe.ReplaceAllString(text, "")
	return clockTailRe.ReplaceAllString(text, "")
}

func collapse(text string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))
}

func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
