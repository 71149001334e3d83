// Package job defines the extraction job entity and its status state machine.
//
// Valid status graph:
//
//	PENDING ──► PROCESSING ──► COMPLETED
//	    │            │
//	    └────────────┴───────► FAILED
//
// COMPLETED and FAILED are terminal: the only way out is deletion.
package job

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/resume"
)

// Status — состояние задачи извлечения.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

var (
	// ErrNotFound возвращается при обращении к несуществующей задаче.
	ErrNotFound = errors.New("job not found")
	// ErrTerminalState возвращается при попытке перевести задачу из
	// терминального состояния.
	ErrTerminalState = errors.New("job is in a terminal state")
	// ErrInvalidTransition возвращается для прочих запрещённых переходов.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	// PENDING → COMPLETED is legal: the gateway may finish before anyone
	// observed the PROCESSING hop.
	StatusPending:    {StatusProcessing, StatusCompleted, StatusFailed},
	StatusProcessing: {StatusCompleted, StatusFailed},
	// COMPLETED and FAILED are terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// IsTerminal returns true for COMPLETED and FAILED.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition returns true when moving from → to is permitted by the
// state machine.
func CanTransition(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ErrorInfo — описание ошибки извлечения, хранимое на задаче.
type ErrorInfo struct {
	Kind    errs.Kind `json:"kind"`
	Message string    `json:"message"`
}

// Job хранит метаданные загруженного файла и жизненный цикл извлечения.
//
// Инвариант: Result != nil ⟺ Status == COMPLETED,
// Error != nil ⟺ Status == FAILED.
type Job struct {
	ID        uuid.UUID      `json:"id"`
	Filename  string         `json:"filename"`
	MimeType  string         `json:"mimeType"`
	Size      int64          `json:"sizeB"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Result    *resume.Record `json:"result,omitempty"`
	Error     *ErrorInfo     `json:"error,omitempty"`
}

// Clone returns a deep-enough copy: the record itself is immutable once
// stored, so sharing the pointed-to value is safe, but the Job envelope
// must not alias store-internal state.
func (j Job) Clone() Job {
	cp := j
	if j.Result != nil {
		rec := *j.Result
		cp.Result = &rec
	}
	if j.Error != nil {
		ei := *j.Error
		cp.Error = &ei
	}
	return cp
}
