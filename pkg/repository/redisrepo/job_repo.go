package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/resume"
)

const (
	jobKeyPrefix = "job:"
	indexKey     = "jobs:index"
)

// JobRepository хранит задачи в Redis: JSON-блоб на ключ job:<id> плюс
// sorted set jobs:index (score — время создания) для выдачи по убыванию.
// Ненулевой TTL даёт автоматическое истечение задач.
type JobRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewJobRepository(rdb *redis.Client, ttl time.Duration) *JobRepository {
	return &JobRepository{rdb: rdb, ttl: ttl}
}

func jobKey(id uuid.UUID) string { return jobKeyPrefix + id.String() }

func (r *JobRepository) Create(ctx context.Context, filename, mimeType string, size int64) (job.Job, error) {
	now := time.Now().UTC()
	j := job.Job{
		ID:        uuid.New(),
		Filename:  filename,
		MimeType:  mimeType,
		Size:      size,
		Status:    job.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	payload, err := json.Marshal(j)
	if err != nil {
		return job.Job{}, err
	}
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, jobKey(j.ID), payload, r.ttl)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(now.UnixNano()), Member: j.ID.String()})
	if _, err := pipe.Exec(ctx); err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	raw, err := r.rdb.Get(ctx, jobKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return job.Job{}, job.ErrNotFound
	}
	if err != nil {
		return job.Job{}, err
	}
	var j job.Job
	if err := json.Unmarshal(raw, &j); err != nil {
		return job.Job{}, fmt.Errorf("decode job %s: %w", id, err)
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

	// Newest first; the index may reference expired keys, those are skipped.
	ids, err := r.rdb.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, 0, err
	}

	matched := make([]job.Job, 0, len(ids))
	for _, rawID := range ids {
		id, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		j, err := r.Get(ctx, id)
		if errors.Is(err, job.ErrNotFound) {
			// TTL took the blob; drop the dangling index entry.
			_ = r.rdb.ZRem(ctx, indexKey, rawID).Err()
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		matched = append(matched, j)
	}

	total := len(matched)
	if offset >= total {
		return []job.Job{}, total, nil
	}
	end := total
	if offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

func (r *JobRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, job.StatusProcessing, func(j *job.Job) {})
}

func (r *JobRepository) UpdateResult(ctx context.Context, id uuid.UUID, rec *resume.Record) error {
	return r.transition(ctx, id, job.StatusCompleted, func(j *job.Job) {
		j.Result = rec
		j.Error = nil
	})
}

func (r *JobRepository) UpdateFailure(ctx context.Context, id uuid.UUID, info job.ErrorInfo) error {
	return r.transition(ctx, id, job.StatusFailed, func(j *job.Job) {
		j.Result = nil
		j.Error = &info
	})
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.rdb.Del(ctx, jobKey(id)).Result()
	if err != nil {
		return err
	}
	_ = r.rdb.ZRem(ctx, indexKey, id.String()).Err()
	if deleted == 0 {
		return job.ErrNotFound
	}
	return nil
}

// transition applies the state machine under WATCH so a concurrent writer
// forces a retry instead of a lost update.
func (r *JobRepository) transition(ctx context.Context, id uuid.UUID, to job.Status, apply func(*job.Job)) error {
	key := jobKey(id)
	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return job.ErrNotFound
		}
		if err != nil {
			return err
		}
		var j job.Job
		if err := json.Unmarshal(raw, &j); err != nil {
			return fmt.Errorf("decode job %s: %w", id, err)
		}
		if !job.CanTransition(j.Status, to) {
			if job.IsTerminal(j.Status) {
				return job.ErrTerminalState
			}
			return job.ErrInvalidTransition
		}
		j.Status = to
		apply(&j)
		j.UpdatedAt = time.Now().UTC()
		payload, err := json.Marshal(j)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, redis.KeepTTL)
			return nil
		})
		return err
	}

	for i := 0; i < 3; i++ {
		err := r.rdb.Watch(ctx, txn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("job %s: too much contention", id)
}

// compile-time check
var _ job.Store = (*JobRepository)(nil)
