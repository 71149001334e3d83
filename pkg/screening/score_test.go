package screening

import (
	"reflect"
	"testing"
	"time"

	"github.com/artem13815/resume-screening/pkg/resume"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func fptr(f float64) *float64 { return &f }

func devRecord() resume.Record {
	return resume.Record{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		TechnicalSkills: map[string][]string{
			"languages": {"Python", "Go"},
			"tools":     {"Docker"},
		},
		Experience: []resume.Experience{
			{
				Company:     "Acme",
				Title:       "Backend Engineer",
				Description: "Built services in Python, deployed on k8s",
				StartDate:   "2020",
				EndDate:     "2023",
			},
		},
		Education: []resume.Education{
			{Institution: "State University", Degree: "B.Sc. Computer Science", StartDate: "2014", EndDate: "2018"},
		},
		KeyAccomplishments: "Cut deployment time by 70% via CI automation",
	}
}

func TestScoreNoCriteriaIsPerfect(t *testing.T) {
	res := Score(devRecord(), Criteria{}, testNow)
	if res.Score != 100 {
		t.Errorf("score = %v, want 100", res.Score)
	}
	if !res.Qualified {
		t.Error("no criteria must qualify everyone")
	}
}

func TestScorePartialRequiredCoverage(t *testing.T) {
	c := Criteria{RequiredSkills: []string{"Python", "Machine Learning"}}
	res := Score(devRecord(), c, testNow)

	if !reflect.DeepEqual(res.MatchedRequired, []string{"Python"}) {
		t.Errorf("matched = %v", res.MatchedRequired)
	}
	if !reflect.DeepEqual(res.MissingRequired, []string{"Machine Learning"}) {
		t.Errorf("missing = %v", res.MissingRequired)
	}
	// 0.4*0.5 + full weight for the four dimensions without criteria.
	if res.Score != 80 {
		t.Errorf("score = %v, want 80", res.Score)
	}
	if res.Qualified {
		t.Error("a missing required skill must disqualify")
	}
}

func TestScoreSkillAliases(t *testing.T) {
	c := Criteria{RequiredSkills: []string{"Kubernetes", "Golang"}}
	res := Score(devRecord(), c, testNow)
	// "k8s" appears only in the experience description; "Go" is listed.
	if len(res.MissingRequired) != 0 {
		t.Errorf("missing = %v, want aliases to match", res.MissingRequired)
	}
	if !res.Qualified {
		t.Error("expected qualified")
	}
}

func TestScoreExperienceYears(t *testing.T) {
	res := Score(devRecord(), Criteria{MinYearsExperience: fptr(2)}, testNow)
	if res.ExperienceYears != 3.0 {
		t.Errorf("years = %v, want 3.0", res.ExperienceYears)
	}
	if !res.Qualified {
		t.Error("3 years must satisfy a 2 year minimum")
	}

	res = Score(devRecord(), Criteria{MinYearsExperience: fptr(5)}, testNow)
	if res.Qualified {
		t.Error("3 years must not satisfy a 5 year minimum")
	}
	// 100 * (0.4 + 0.2 + 0.2*(3/5) + 0.1 + 0.1) = 92
	if res.Score != 92 {
		t.Errorf("score = %v, want 92", res.Score)
	}
}

func TestScoreOpenEndedExperienceUsesNow(t *testing.T) {
	rec := devRecord()
	rec.Experience = []resume.Experience{
		{StartDate: "Jun 2023", EndDate: "present"},
	}
	res := Score(rec, Criteria{MinYearsExperience: fptr(1)}, testNow)
	if res.ExperienceYears != 2.0 {
		t.Errorf("years = %v, want 2.0", res.ExperienceYears)
	}
}

func TestScoreUnparseableDatesFlagged(t *testing.T) {
	rec := devRecord()
	rec.Experience = append(rec.Experience, resume.Experience{
		StartDate: "since the dawn of time", EndDate: "2024",
	})
	res := Score(rec, Criteria{MinYearsExperience: fptr(2)}, testNow)
	if res.ExperienceYears != 3.0 {
		t.Errorf("years = %v, unparseable entry must add zero", res.ExperienceYears)
	}
	found := false
	for _, r := range res.Rationale {
		if r == "1 experience entries had unparseable dates and were not counted" {
			found = true
		}
	}
	if !found {
		t.Errorf("rationale = %v, want an unparseable-dates note", res.Rationale)
	}
}

func TestScoreEducationRanking(t *testing.T) {
	res := Score(devRecord(), Criteria{RequiredEducationLevel: "Bachelor"}, testNow)
	if !res.Qualified {
		t.Error("a B.Sc. must satisfy a bachelor requirement")
	}
	res = Score(devRecord(), Criteria{RequiredEducationLevel: "Master"}, testNow)
	if res.Qualified {
		t.Error("a B.Sc. must not satisfy a master requirement")
	}
	// 100 * (0.4 + 0.2 + 0.2 + 0 + 0.1) = 90
	if res.Score != 90 {
		t.Errorf("score = %v, want 90", res.Score)
	}
}

func TestScoreKeywords(t *testing.T) {
	c := Criteria{Keywords: []string{"deployment", "terraform"}}
	res := Score(devRecord(), c, testNow)
	// "deployment" is in accomplishments, "terraform" is nowhere.
	// 100 * (0.4 + 0.2 + 0.2 + 0.1 + 0.1*0.5) = 95
	if res.Score != 95 {
		t.Errorf("score = %v, want 95", res.Score)
	}
	if !res.Qualified {
		t.Error("keywords affect the score only, never qualification")
	}
}

func TestScoreRationaleOrder(t *testing.T) {
	c := Criteria{
		RequiredSkills:         []string{"Python"},
		PreferredSkills:        []string{"Terraform"},
		MinYearsExperience:     fptr(2),
		RequiredEducationLevel: "Bachelor",
		Keywords:               []string{"deployment"},
	}
	res := Score(devRecord(), c, testNow)
	if len(res.Rationale) != 5 {
		t.Fatalf("rationale = %v, want 5 statements", res.Rationale)
	}
	wantOrder := []string{"required", "preferred", "experience", "education", "keywords"}
	checks := []string{
		"all 1 required skills matched",
		"matched 0 of 1 preferred skills",
		"3.0 years of experience meets the 2.0 year minimum",
		`education requirement "Bachelor" satisfied`,
		"matched 1 of 1 keywords",
	}
	for i, want := range checks {
		if res.Rationale[i] != want {
			t.Errorf("rationale[%d] (%s) = %q, want %q", i, wantOrder[i], res.Rationale[i], want)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	c := Criteria{
		RequiredSkills:     []string{"Python", "Docker"},
		PreferredSkills:    []string{"Go", "Terraform"},
		MinYearsExperience: fptr(2),
		Keywords:           []string{"deployment"},
	}
	first := Score(devRecord(), c, testNow)
	for i := 0; i < 10; i++ {
		if got := Score(devRecord(), c, testNow); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
