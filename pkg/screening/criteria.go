package screening

import "strings"

// Criteria — требования вакансии, по которым оценивается кандидат.
// Все текстовые сравнения регистронезависимы.
type Criteria struct {
	RequiredSkills         []string `json:"requiredSkills"`
	PreferredSkills        []string `json:"preferredSkills"`
	MinYearsExperience     *float64 `json:"minYearsExperience,omitempty"`
	RequiredEducationLevel string   `json:"requiredEducationLevel,omitempty"`
	Keywords               []string `json:"keywords"`
}

// Normalize drops blank entries and replaces nil slices with empty ones.
func (c *Criteria) Normalize() {
	c.RequiredSkills = cleanList(c.RequiredSkills)
	c.PreferredSkills = cleanList(c.PreferredSkills)
	c.Keywords = cleanList(c.Keywords)
	c.RequiredEducationLevel = strings.TrimSpace(c.RequiredEducationLevel)
}

// Empty reports whether no criterion is set at all.
func (c Criteria) Empty() bool {
	return len(c.RequiredSkills) == 0 &&
		len(c.PreferredSkills) == 0 &&
		c.MinYearsExperience == nil &&
		c.RequiredEducationLevel == "" &&
		len(c.Keywords) == 0
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
