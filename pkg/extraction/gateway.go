package extraction

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/job"
	"github.com/artem13815/resume-screening/pkg/resume"
)

type task struct {
	jobID    uuid.UUID
	filename string
	mimeType string
	data     []byte
}

// Gateway асинхронно выполняет извлечение: принимает задачи в очередь,
// прогоняет их через пул воркеров и фиксирует результат в хранилище.
//
// Повторяются только транспортные сбои (с экспоненциальной задержкой);
// таймаут и отказ провайдера финализируют задачу сразу.
type Gateway struct {
	store     job.Store
	extractor Extractor
	log       *zap.Logger

	queue    chan task
	wg       sync.WaitGroup
	stopOnce sync.Once

	timeout     time.Duration
	retryMax    int
	backoffBase time.Duration
}

type GatewayOptions struct {
	Workers   int
	QueueSize int
	// Timeout bounds a single extraction attempt.
	Timeout  time.Duration
	RetryMax int
	// BackoffBase is the delay before the first retry; it doubles per attempt.
	BackoffBase time.Duration
}

func NewGateway(store job.Store, extractor Extractor, log *zap.Logger, opts GatewayOptions) *Gateway {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 128
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.RetryMax < 0 {
		opts.RetryMax = 0
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = 500 * time.Millisecond
	}
	g := &Gateway{
		store:       store,
		extractor:   extractor,
		log:         log,
		queue:       make(chan task, opts.QueueSize),
		timeout:     opts.Timeout,
		retryMax:    opts.RetryMax,
		backoffBase: opts.BackoffBase,
	}
	for i := 0; i < opts.Workers; i++ {
		g.wg.Add(1)
		go g.worker()
	}
	return g
}

// Submit queues the job for extraction. mimeType is the type the validator
// established; the worker trusts it over the filename. It never blocks: a
// full queue is reported as a transport error so the caller can signal
// backpressure.
func (g *Gateway) Submit(jobID uuid.UUID, filename, mimeType string, data []byte) error {
	select {
	case g.queue <- task{jobID: jobID, filename: filename, mimeType: mimeType, data: data}:
		return nil
	default:
		return errs.New(errs.KindTransport, "extraction queue is full")
	}
}

// Shutdown stops accepting tasks and waits for in-flight ones to drain.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.stopOnce.Do(func() { close(g.queue) })
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gateway) worker() {
	defer g.wg.Done()
	for t := range g.queue {
		g.process(t)
	}
}

func (g *Gateway) process(t task) {
	ctx := context.Background()

	if err := g.store.MarkProcessing(ctx, t.jobID); err != nil {
		// Deleted or already finalized; nothing to do.
		if errors.Is(err, job.ErrNotFound) || errors.Is(err, job.ErrTerminalState) {
			return
		}
		g.log.Warn("mark processing failed", zap.String("job_id", t.jobID.String()), zap.Error(err))
		return
	}

	rec, err := g.extractWithRetry(t)
	if err != nil {
		info := job.ErrorInfo{Kind: errs.KindOf(err), Message: err.Error()}
		if uerr := g.store.UpdateFailure(ctx, t.jobID, info); uerr != nil && !errors.Is(uerr, job.ErrNotFound) {
			g.log.Warn("record failure", zap.String("job_id", t.jobID.String()), zap.Error(uerr))
		}
		g.log.Info("extraction failed",
			zap.String("job_id", t.jobID.String()),
			zap.String("kind", string(info.Kind)),
			zap.String("filename", t.filename))
		return
	}

	if uerr := g.store.UpdateResult(ctx, t.jobID, &rec); uerr != nil {
		// Deleted while extracting; drop the result silently.
		if !errors.Is(uerr, job.ErrNotFound) {
			g.log.Warn("record result", zap.String("job_id", t.jobID.String()), zap.Error(uerr))
		}
		return
	}
	g.log.Info("extraction completed", zap.String("job_id", t.jobID.String()), zap.String("filename", t.filename))
}

func (g *Gateway) extractWithRetry(t task) (resume.Record, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		rec, err := g.extractor.Extract(ctx, t.filename, t.mimeType, t.data)
		cancel()
		if err == nil {
			return rec, nil
		}
		lastErr = err
		if !errs.Retryable(err) || attempt >= g.retryMax {
			return resume.Record{}, lastErr
		}
		delay := g.backoffBase << attempt
		g.log.Info("retrying extraction",
			zap.String("job_id", t.jobID.String()),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err))
		time.Sleep(delay)
	}
}
