package screening

import (
	"strings"
	"time"

	"github.com/artem13815/resume-screening/pkg/resume"
)

// dateLayouts — допустимые форматы дат в записях об опыте.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"01/2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

const hoursPerYear = 24 * 365.25

// parseDateToken parses a free-form resume date. "present", "current",
// "now" and the empty string mean the reference time.
func parseDateToken(tok string, now time.Time) (time.Time, bool) {
	tok = strings.TrimSpace(tok)
	switch strings.ToLower(tok) {
	case "", "present", "current", "now":
		return now, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// totalExperienceYears sums per-entry spans. Entries with an unparseable
// start date contribute zero and are counted in unparsed.
func totalExperienceYears(entries []resume.Experience, now time.Time) (years float64, unparsed int) {
	for _, e := range entries {
		start, ok := parseDateToken(e.StartDate, now)
		if !ok || strings.TrimSpace(e.StartDate) == "" {
			unparsed++
			continue
		}
		end, ok := parseDateToken(e.EndDate, now)
		if !ok {
			unparsed++
			continue
		}
		if span := end.Sub(start); span > 0 {
			years += span.Hours() / hoursPerYear
		}
	}
	return years, unparsed
}
