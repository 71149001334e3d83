package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/resume"
)

// JobRepository хранит задачи извлечения в PostgreSQL.
// Результат и дескриптор ошибки лежат в jsonb/текстовых колонках;
// инвариант "COMPLETED ⟺ result" обеспечивается условными UPDATE.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS extraction_jobs (
	id UUID PRIMARY KEY,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	status TEXT NOT NULL,
	result JSONB,
	error_kind TEXT,
	error_message TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS extraction_jobs_created_at_idx ON extraction_jobs (created_at DESC);
CREATE INDEX IF NOT EXISTS extraction_jobs_status_idx ON extraction_jobs (status);
`)
	return err
}

func (r *JobRepository) Create(ctx context.Context, filename, mimeType string, size int64) (job.Job, error) {
	j := job.Job{
		ID:        uuid.New(),
		Filename:  filename,
		MimeType:  mimeType,
		Size:      size,
		Status:    job.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	j.UpdatedAt = j.CreatedAt
	_, err := r.pool.Exec(ctx, `
INSERT INTO extraction_jobs (id, filename, mime_type, size_bytes, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, j.ID, j.Filename, j.MimeType, j.Size, string(j.Status), j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}

const jobColumns = `id, filename, mime_type, size_bytes, status, result, error_kind, error_message, created_at, updated_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var (
		j          job.Job
		status     string
		resultJSON []byte
		errKind    *string
		errMsg     *string
		created    time.Time
		updated    time.Time
	)
	if err := row.Scan(&j.ID, &j.Filename, &j.MimeType, &j.Size, &status, &resultJSON, &errKind, &errMsg, &created, &updated); err != nil {
		return job.Job{}, err
	}
	st, err := job.ParseStatus(status)
	if err != nil {
		return job.Job{}, err
	}
	j.Status = st
	j.CreatedAt = created.UTC()
	j.UpdatedAt = updated.UTC()
	if len(resultJSON) > 0 {
		var rec resume.Record
		if err := json.Unmarshal(resultJSON, &rec); err != nil {
			return job.Job{}, fmt.Errorf("decode job result: %w", err)
		}
		j.Result = &rec
	}
	if errKind != nil {
		j.Error = &job.ErrorInfo{Kind: errs.Kind(*errKind)}
		if errMsg != nil {
			j.Error.Message = *errMsg
		}
	}
	return j, nil
}

func (r *JobRepository) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+jobColumns+` FROM extraction_jobs WHERE id = $1
`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Job, int, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var total int
	if f.Status != "" {
		if err := r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM extraction_jobs WHERE status = $1`, string(f.Status),
		).Scan(&total); err != nil {
			return nil, 0, err
		}
	} else {
		if err := r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM extraction_jobs`,
		).Scan(&total); err != nil {
			return nil, 0, err
		}
	}

	var (
		rows pgx.Rows
		err  error
	)
	if f.Status != "" {
		rows, err = r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM extraction_jobs
WHERE status = $3
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2
`, limit, offset, string(f.Status))
	} else {
		rows, err = r.pool.Query(ctx, `
SELECT `+jobColumns+` FROM extraction_jobs
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2
`, limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, j)
	}
	return res, total, rows.Err()
}

func (r *JobRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE extraction_jobs
SET status = $2, updated_at = $3
WHERE id = $1 AND status = $4
`, id, string(job.StatusProcessing), time.Now().UTC(), string(job.StatusPending))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, id)
	}
	return nil
}

func (r *JobRepository) UpdateResult(ctx context.Context, id uuid.UUID, rec *resume.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode job result: %w", err)
	}
	// Conditional UPDATE keeps status and result in one atomic write.
	tag, err := r.pool.Exec(ctx, `
UPDATE extraction_jobs
SET status = $2, result = $3, error_kind = NULL, error_message = NULL, updated_at = $4
WHERE id = $1 AND status IN ($5, $6)
`, id, string(job.StatusCompleted), payload, time.Now().UTC(),
		string(job.StatusPending), string(job.StatusProcessing))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, id)
	}
	return nil
}

func (r *JobRepository) UpdateFailure(ctx context.Context, id uuid.UUID, info job.ErrorInfo) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE extraction_jobs
SET status = $2, result = NULL, error_kind = $3, error_message = $4, updated_at = $5
WHERE id = $1 AND status IN ($6, $7)
`, id, string(job.StatusFailed), string(info.Kind), info.Message, time.Now().UTC(),
		string(job.StatusPending), string(job.StatusProcessing))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, id)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM extraction_jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

// explainMiss distinguishes "no such job" from "terminal state refused the
// transition" after a conditional update touched zero rows.
func (r *JobRepository) explainMiss(ctx context.Context, id uuid.UUID) error {
	var status string
	err := r.pool.QueryRow(ctx,
		`SELECT status FROM extraction_jobs WHERE id = $1`, id,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return job.ErrNotFound
	}
	if err != nil {
		return err
	}
	st, err := job.ParseStatus(status)
	if err != nil {
		return err
	}
	if job.IsTerminal(st) {
		return job.ErrTerminalState
	}
	return job.ErrInvalidTransition
}

// compile-time check
var _ job.Store = (*JobRepository)(nil)
