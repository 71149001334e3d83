package job

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/resume-screening/pkg/resume"
)

// ListFilter ограничивает выборку списка задач.
type ListFilter struct {
	// Status, когда непустой, оставляет только задачи в этом состоянии.
	Status Status
	Limit  int
	Offset int
}

// Store — порт хранилища задач. Реализации: in-memory (по умолчанию),
// postgres, redis. Каждая мутация атомарна относительно конкурентных
// читателей: читатель никогда не видит COMPLETED без результата и наоборот.
type Store interface {
	// Create allocates a new identifier and registers a PENDING job.
	Create(ctx context.Context, filename, mimeType string, size int64) (Job, error)
	// Get returns a copy of the job or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (Job, error)
	// List returns jobs ordered by creation time descending plus the total
	// count matching the filter. Pagination is a pure slice.
	List(ctx context.Context, f ListFilter) ([]Job, int, error)
	// MarkProcessing transitions PENDING → PROCESSING.
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// UpdateResult transitions PENDING/PROCESSING → COMPLETED, stores the
	// record and clears any error. Fails with ErrNotFound or ErrTerminalState.
	UpdateResult(ctx context.Context, id uuid.UUID, rec *resume.Record) error
	// UpdateFailure transitions PENDING/PROCESSING → FAILED with the error
	// descriptor. Fails with ErrNotFound or ErrTerminalState.
	UpdateFailure(ctx context.Context, id uuid.UUID, info ErrorInfo) error
	// Delete removes the job; repeated deletes return ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
