package screening

import (
	"github.com/artem13815/resume-screening/pkg/nlp"
	"github.com/artem13815/resume-screening/pkg/resume"
)

// Education levels, ranked. Anything unrecognized ranks as none.
const (
	eduNone = iota
	eduHighSchool
	eduAssociate
	eduBachelor
	eduMaster
	eduDoctorate
)

var eduLevelNames = map[string]int{
	"high school": eduHighSchool,
	"highschool":  eduHighSchool,
	"associate":   eduAssociate,
	"bachelor":    eduBachelor,
	"bachelors":   eduBachelor,
	"master":      eduMaster,
	"masters":     eduMaster,
	"doctorate":   eduDoctorate,
	"phd":         eduDoctorate,
}

// educationRank maps a named level ("bachelor", "PhD") to its rank.
func educationRank(level string) (int, bool) {
	n := nlp.Normalize(level)
	if n == "" {
		return eduNone, false
	}
	if r, ok := eduLevelNames[n]; ok {
		return r, true
	}
	return eduNone, false
}

// degreeKeywords are matched as phrases inside a normalized degree title,
// checked from the highest rank down.
var degreeKeywords = []struct {
	rank    int
	phrases []string
}{
	{eduDoctorate, []string{"phd", "ph d", "doctorate", "doctoral", "doctor of philosophy"}},
	{eduMaster, []string{"master", "masters", "mba", "msc", "m sc", "m s"}},
	{eduBachelor, []string{"bachelor", "bachelors", "bsc", "b sc", "b s", "b a", "ba", "bs", "btech", "b tech", "beng", "b eng"}},
	{eduAssociate, []string{"associate"}},
	{eduHighSchool, []string{"high school", "secondary school", "ged"}},
}

// highestEducationRank scans degree titles and returns the best rank found.
func highestEducationRank(entries []resume.Education) int {
	best := eduNone
	for _, e := range entries {
		deg := nlp.Normalize(e.Degree)
		if deg == "" {
			continue
		}
		for _, kw := range degreeKeywords {
			if kw.rank <= best {
				break
			}
			for _, p := range kw.phrases {
				if nlp.ContainsPhrase(deg, p) {
					best = kw.rank
					break
				}
			}
		}
	}
	return best
}
