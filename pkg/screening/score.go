package screening

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/artem13815/resume-screening/pkg/nlp"
	"github.com/artem13815/resume-screening/pkg/resume"
)

// Веса измерений. Сумма равна единице; измерение без критериев отдаёт
// свой вес полностью (покрытие 1).
const (
	weightRequired   = 0.40
	weightPreferred  = 0.20
	weightExperience = 0.20
	weightEducation  = 0.10
	weightKeywords   = 0.10
)

// Score оценивает кандидата по критериям. Функция чистая и
// детерминированная: одинаковые вход и now дают одинаковый результат.
func Score(rec resume.Record, c Criteria, now time.Time) Result {
	c.Normalize()
	rec.Normalize()

	res := Result{
		CandidateName:    rec.Name,
		CandidateEmail:   rec.Email,
		MatchedRequired:  []string{},
		MissingRequired:  []string{},
		MatchedPreferred: []string{},
		Rationale:        []string{},
	}

	// Candidate skill corpus: explicit skills (with alias variants) plus
	// normalized experience descriptions.
	skillSet := map[string]struct{}{}
	for _, s := range rec.AllSkills() {
		for _, v := range nlp.SkillVariants(s) {
			skillSet[v] = struct{}{}
		}
	}
	var descParts []string
	for _, e := range rec.Experience {
		descParts = append(descParts, e.Description)
	}
	descText := nlp.Normalize(strings.Join(descParts, " "))

	hasSkill := func(want string) bool {
		for _, v := range nlp.SkillVariants(want) {
			if _, ok := skillSet[v]; ok {
				return true
			}
			if nlp.ContainsPhrase(descText, v) {
				return true
			}
		}
		return false
	}

	// Required skills.
	requiredCoverage := 1.0
	if len(c.RequiredSkills) > 0 {
		for _, s := range c.RequiredSkills {
			if hasSkill(s) {
				res.MatchedRequired = append(res.MatchedRequired, s)
			} else {
				res.MissingRequired = append(res.MissingRequired, s)
			}
		}
		requiredCoverage = float64(len(res.MatchedRequired)) / float64(len(c.RequiredSkills))
		if len(res.MissingRequired) == 0 {
			res.Rationale = append(res.Rationale, fmt.Sprintf("all %d required skills matched", len(c.RequiredSkills)))
		} else {
			res.Rationale = append(res.Rationale, fmt.Sprintf("missing required skills: %s", strings.Join(res.MissingRequired, ", ")))
		}
	}

	// Preferred skills.
	preferredCoverage := 1.0
	if len(c.PreferredSkills) > 0 {
		for _, s := range c.PreferredSkills {
			if hasSkill(s) {
				res.MatchedPreferred = append(res.MatchedPreferred, s)
			}
		}
		preferredCoverage = float64(len(res.MatchedPreferred)) / float64(len(c.PreferredSkills))
		res.Rationale = append(res.Rationale, fmt.Sprintf("matched %d of %d preferred skills", len(res.MatchedPreferred), len(c.PreferredSkills)))
	}

	// Experience.
	years, unparsed := totalExperienceYears(rec.Experience, now)
	res.ExperienceYears = math.Round(years*10) / 10
	experienceCoverage := 1.0
	enoughExperience := true
	if c.MinYearsExperience != nil {
		min := *c.MinYearsExperience
		if min > 0 {
			experienceCoverage = math.Min(years/min, 1)
		}
		enoughExperience = years >= min
		if enoughExperience {
			res.Rationale = append(res.Rationale, fmt.Sprintf("%.1f years of experience meets the %.1f year minimum", years, min))
		} else {
			res.Rationale = append(res.Rationale, fmt.Sprintf("%.1f years of experience is below the %.1f year minimum", years, min))
		}
	}
	if unparsed > 0 {
		res.Rationale = append(res.Rationale, fmt.Sprintf("%d experience entries had unparseable dates and were not counted", unparsed))
	}

	// Education.
	educationCoverage := 1.0
	educationOK := true
	if wantRank, ok := educationRank(c.RequiredEducationLevel); ok {
		haveRank := highestEducationRank(rec.Education)
		educationOK = haveRank >= wantRank
		if educationOK {
			educationCoverage = 1.0
			res.Rationale = append(res.Rationale, fmt.Sprintf("education requirement %q satisfied", c.RequiredEducationLevel))
		} else {
			educationCoverage = 0.0
			res.Rationale = append(res.Rationale, fmt.Sprintf("education requirement %q not met", c.RequiredEducationLevel))
		}
	}

	// Keywords: plain case-insensitive substring over free text.
	keywordCoverage := 1.0
	if len(c.Keywords) > 0 {
		haystack := strings.ToLower(strings.Join(append(append([]string{}, descParts...), rec.KeyAccomplishments), " "))
		matched := 0
		for _, kw := range c.Keywords {
			if strings.Contains(haystack, strings.ToLower(strings.TrimSpace(kw))) {
				matched++
			}
		}
		keywordCoverage = float64(matched) / float64(len(c.Keywords))
		res.Rationale = append(res.Rationale, fmt.Sprintf("matched %d of %d keywords", matched, len(c.Keywords)))
	}

	raw := 100 * (weightRequired*requiredCoverage +
		weightPreferred*preferredCoverage +
		weightExperience*experienceCoverage +
		weightEducation*educationCoverage +
		weightKeywords*keywordCoverage)
	res.Score = math.Round(raw*10) / 10

	res.Qualified = len(res.MissingRequired) == 0 && enoughExperience && educationOK
	return res
}
