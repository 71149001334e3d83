package resume

import "strings"

// Record — структурированное представление резюме, результат извлечения.
// Неизменяемо после привязки к задаче.
type Record struct {
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Links              []string            `json:"links"`
	Experience         []Experience        `json:"experience"`
	Education          []Education         `json:"education"`
	TechnicalSkills    map[string][]string `json:"technical_skills"`
	KeyAccomplishments string              `json:"key_accomplishments"`
}

// Experience — запись об опыте работы. Даты — свободные токены
// ("2021", "Jan 2021", "present"), не валидируются как календарные.
type Experience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Education — запись об образовании.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Normalize replaces nil collections with empty ones so that JSON output
// is always [] / {} rather than null.
func (r *Record) Normalize() {
	if r.Links == nil {
		r.Links = []string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.TechnicalSkills == nil {
		r.TechnicalSkills = map[string][]string{}
	}
}

// Empty reports whether extraction produced nothing useful.
func (r Record) Empty() bool {
	return strings.TrimSpace(r.Name) == "" &&
		strings.TrimSpace(r.Email) == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.AllSkills()) == 0
}

// AllSkills flattens technical skills across categories preserving
// category iteration independence (order is not significant for matching).
func (r Record) AllSkills() []string {
	var out []string
	for _, group := range r.TechnicalSkills {
		out = append(out, group...)
	}
	return out
}
