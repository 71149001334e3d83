package job

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-screening/pkg/resume"
)

// MemoryStore — потокобезопасное хранилище задач в памяти процесса.
// Бэкенд по умолчанию: без гарантий сохранности за пределами жизни процесса.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*Job
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[uuid.UUID]*Job),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Create(_ context.Context, filename, mimeType string, size int64) (Job, error) {
	j := Job{
		ID:       uuid.New(),
		Filename: filename,
		MimeType: mimeType,
		Size:     size,
		Status:   StatusPending,
	}
	s.mu.Lock()
	ts := s.now()
	j.CreatedAt = ts
	j.UpdatedAt = ts
	s.jobs[j.ID] = &j
	s.mu.Unlock()
	return j.Clone(), nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j.Clone(), nil
}

func (s *MemoryStore) List(_ context.Context, f ListFilter) ([]Job, int, error) {
	s.mu.RLock()
	matched := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		matched = append(matched, j.Clone())
	}
	s.mu.RUnlock()

	// Newest first; identifier breaks creation-time ties deterministically.
	sort.Slice(matched, func(i, k int) bool {
		if !matched[i].CreatedAt.Equal(matched[k].CreatedAt) {
			return matched[i].CreatedAt.After(matched[k].CreatedAt)
		}
		return matched[i].ID.String() < matched[k].ID.String()
	})

	total := len(matched)
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []Job{}, total, nil
	}
	end := total
	if f.Limit > 0 && offset+f.Limit < end {
		end = offset + f.Limit
	}
	return matched[offset:end], total, nil
}

func (s *MemoryStore) MarkProcessing(_ context.Context, id uuid.UUID) error {
	return s.transition(id, StatusProcessing, func(j *Job) {})
}

func (s *MemoryStore) UpdateResult(_ context.Context, id uuid.UUID, rec *resume.Record) error {
	return s.transition(id, StatusCompleted, func(j *Job) {
		j.Result = rec
		j.Error = nil
	})
}

func (s *MemoryStore) UpdateFailure(_ context.Context, id uuid.UUID, info ErrorInfo) error {
	return s.transition(id, StatusFailed, func(j *Job) {
		j.Result = nil
		j.Error = &info
	})
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

// transition applies the state machine under the write lock so that status
// and result/error always change together.
func (s *MemoryStore) transition(id uuid.UUID, to Status, apply func(*Job)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	if !CanTransition(j.Status, to) {
		if IsTerminal(j.Status) {
			return ErrTerminalState
		}
		return ErrInvalidTransition
	}
	j.Status = to
	apply(j)
	j.UpdatedAt = s.now()
	return nil
}
