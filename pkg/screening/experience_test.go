package screening

import (
	"testing"
	"time"

	"github.com/artem13815/resume-screening/pkg/resume"
)

func TestParseDateToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2021", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"Jan 2021", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"January 2021", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2021-03", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"03/2021", time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"2021-03-15", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"present", now, true},
		{"Current", now, true},
		{"NOW", now, true},
		{"", now, true},
		{"yesterday", time.Time{}, false},
		{"13/2021", time.Time{}, false},
	}
	for _, c := range cases {
		got, ok := parseDateToken(c.in, now)
		if ok != c.ok {
			t.Errorf("parseDateToken(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("parseDateToken(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTotalExperienceYears(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []resume.Experience{
		{StartDate: "2020", EndDate: "2023"},
		{StartDate: "Jun 2024", EndDate: "present"},
		{StartDate: "whenever", EndDate: "2024"},
		{StartDate: "2023", EndDate: "2020"},
	}
	years, unparsed := totalExperienceYears(entries, now)
	// 3 years + 1 year; the reversed span contributes zero.
	if years < 3.9 || years > 4.1 {
		t.Errorf("years = %v, want about 4", years)
	}
	if unparsed != 1 {
		t.Errorf("unparsed = %d, want 1", unparsed)
	}
}

func TestHighestEducationRank(t *testing.T) {
	cases := []struct {
		degree string
		want   int
	}{
		{"PhD in Physics", eduDoctorate},
		{"Master of Science", eduMaster},
		{"MBA", eduMaster},
		{"B.Sc. Computer Science", eduBachelor},
		{"Associate Degree", eduAssociate},
		{"High School Diploma", eduHighSchool},
		{"Certificate of Attendance", eduNone},
		{"", eduNone},
	}
	for _, c := range cases {
		got := highestEducationRank([]resume.Education{{Degree: c.degree}})
		if got != c.want {
			t.Errorf("highestEducationRank(%q) = %d, want %d", c.degree, got, c.want)
		}
	}

	multi := []resume.Education{
		{Degree: "B.Sc. Computer Science"},
		{Degree: "Master of Science"},
	}
	if got := highestEducationRank(multi); got != eduMaster {
		t.Errorf("best of several degrees = %d, want %d", got, eduMaster)
	}
}
