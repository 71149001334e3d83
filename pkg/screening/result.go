package screening

import (
	"time"

	"github.com/google/uuid"
)

// Result — оценка одного кандидата. Никогда не сохраняется: скрининг
// пересчитывается по запросу.
type Result struct {
	JobID            uuid.UUID `json:"jobId"`
	CandidateName    string    `json:"candidateName,omitempty"`
	CandidateEmail   string    `json:"candidateEmail,omitempty"`
	Score            float64   `json:"score"`
	Qualified        bool      `json:"qualified"`
	MatchedRequired  []string  `json:"matchedRequired"`
	MissingRequired  []string  `json:"missingRequired"`
	MatchedPreferred []string  `json:"matchedPreferred"`
	ExperienceYears  float64   `json:"experienceYears"`
	Rationale        []string  `json:"rationale"`
	Skipped          bool      `json:"skipped,omitempty"`
	SkipReason       string    `json:"skipReason,omitempty"`
}

// Report — итог одного прогона скрининга по пачке задач.
type Report struct {
	ScreeningID    uuid.UUID `json:"screeningId"`
	TotalResumes   int       `json:"totalResumes"`
	QualifiedCount int       `json:"qualifiedCount"`
	Results        []Result  `json:"results"`
	Criteria       Criteria  `json:"criteria"`
	CompletedAt    time.Time `json:"completedAt"`
}
