package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/tiktok-downloader/internal/download"
	"github.com/ytget/tiktok-downloader/internal/logger"
	"github.com/ytget/tiktok-downloader/internal/model"
)

// DefaultEventBuffer is the capacity of the event channel
const DefaultEventBuffer = 64

// Runner processes one batch at a time
type Runner struct {
	dl          download.Downloader
	eventBuffer int

	mu       sync.Mutex
	state    model.BatchState
	paused   bool
	resume   chan struct{} // closed by Resume
	cancel   context.CancelFunc
	progress model.Progress
	batchID  string
}

// Option configures a Runner
type Option func(*Runner)

// WithEventBuffer sets the event channel capacity
func WithEventBuffer(n int) Option {
	return func(r *Runner) {
		if n >= 0 {
			r.eventBuffer = n
		}
	}
}

// NewRunner creates an idle runner using dl for every URL
func NewRunner(dl download.Downloader, opts ...Option) *Runner {
	r := &Runner{
		dl:          dl,
		eventBuffer: DefaultEventBuffer,
		state:       model.BatchStateIdle,
		progress:    model.Progress{Index: -1},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the worker for urls and returns its event channel.
// The channel is closed after EventFinished.
func (r *Runner) Start(ctx context.Context, urls []string) (<-chan Event, error) {
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	r.mu.Lock()
	if !r.state.CanStart() {
		r.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.paused = false
	r.resume = make(chan struct{})
	r.state = model.BatchStateRunning
	r.progress = model.Progress{Total: len(urls), Index: -1}
	r.batchID = uuid.NewString()
	batchID := r.batchID
	r.mu.Unlock()

	queue := make([]string, len(urls))
	copy(queue, urls)

	events := make(chan Event, r.eventBuffer)
	go r.run(runCtx, cancel, batchID, queue, events)

	logger.Info("Batch started", "batch", batchID, "urls", len(queue))
	return events, nil
}

// Pause makes the worker wait before starting the next URL
func (r *Runner) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.IsActive() || r.state == model.BatchStateStopping {
		return ErrNotRunning
	}
	if r.paused {
		return nil
	}
	r.paused = true
	r.resume = make(chan struct{})
	r.state = model.BatchStatePaused
	logger.Info("Batch pause requested", "batch", r.batchID)
	return nil
}

// Resume releases a paused worker
func (r *Runner) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.IsActive() {
		return ErrNotRunning
	}
	if !r.paused {
		return nil
	}
	r.paused = false
	close(r.resume)
	if r.state == model.BatchStatePaused {
		r.state = model.BatchStateRunning
	}
	logger.Info("Batch resumed", "batch", r.batchID)
	return nil
}

// TogglePause pauses a running batch or resumes a paused one and returns the new paused value
func (r *Runner) TogglePause() (bool, error) {
	if r.IsPaused() {
		return false, r.Resume()
	}
	if err := r.Pause(); err != nil {
		return false, err
	}
	return true, nil
}

// Stop abandons the remaining URLs and interrupts the in-flight download
func (r *Runner) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.IsActive() {
		return ErrNotRunning
	}
	if r.state == model.BatchStateStopping {
		return nil
	}
	r.state = model.BatchStateStopping
	r.cancel()
	logger.Info("Batch stop requested", "batch", r.batchID)
	return nil
}

// State returns the current batch state
func (r *Runner) State() model.BatchState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// IsPaused reports whether a pause is in effect
func (r *Runner) IsPaused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

// Progress returns the latest counters
func (r *Runner) Progress() model.Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress
}

// run is the worker loop
func (r *Runner) run(ctx context.Context, cancel context.CancelFunc, batchID string, urls []string, events chan<- Event) {
	defer close(events)
	defer cancel()

	start := time.Now()
	total := len(urls)
	progress := model.Progress{Total: total, Index: -1}
	summary := model.Summary{BatchID: batchID, Total: total}

	events <- Event{Type: EventStarted, BatchID: batchID, Progress: progress}

	for i, url := range urls {
		if ctx.Err() != nil {
			logger.Info("Batch stopped before item", "batch", batchID, "index", i)
			break
		}

		if err := r.waitWhilePaused(ctx, batchID, progress, events); err != nil {
			break
		}

		item := model.NewBatchItem(i, url)
		item.Status = model.ItemStatusDownloading
		item.StartedAt = time.Now()
		progress.Index = i
		r.setProgress(progress)

		events <- Event{Type: EventItemStarted, BatchID: batchID, Item: *item, Progress: progress}

		sink, closeSink := r.progressSink(batchID, *item, progress, events)
		res, err := r.dl.Download(ctx, url, sink)
		closeSink()
		item.FinishedAt = time.Now()

		evType := EventItemCompleted
		switch {
		case err == nil:
			progress.Completed++
			item.Status = model.ItemStatusCompleted
			if res != nil {
				item.OutputPath = res.OutputPath
			}
			logger.Debug("Item completed", "batch", batchID, "index", i, "url", url, "duration", item.Duration())
		case ctx.Err() != nil:
			evType = EventItemStopped
			item.Status = model.ItemStatusStopped
			item.LastError = err.Error()
			item.ErrorKind = string(download.KindCanceled)
			logger.Info("Item interrupted by stop", "batch", batchID, "index", i, "url", url)
		default:
			evType = EventItemFailed
			progress.Failed++
			item.Status = model.ItemStatusFailed
			item.LastError = err.Error()
			item.ErrorKind = string(download.KindOf(err))
			logger.Warn("Item failed", "batch", batchID, "index", i, "url", url, "kind", item.ErrorKind, "error", err)
		}
		r.setProgress(progress)

		ev := Event{Type: evType, BatchID: batchID, Item: *item, Progress: progress}
		if evType != EventItemCompleted {
			ev.Err = err
		}
		events <- ev
	}

	summary.Completed = progress.Completed
	summary.Failed = progress.Failed
	summary.Skipped = total - progress.Completed - progress.Failed
	summary.Stopped = ctx.Err() != nil

	r.mu.Lock()
	r.state = model.BatchStateFinished
	r.paused = false
	r.progress = progress
	r.mu.Unlock()

	logger.InfoWithDuration("Batch finished", start,
		"batch", batchID, "completed", summary.Completed, "failed", summary.Failed, "skipped", summary.Skipped, "stopped", summary.Stopped)

	events <- Event{Type: EventFinished, BatchID: batchID, Progress: progress, Summary: summary}
}

// waitWhilePaused blocks until the batch is resumed or ctx is done
func (r *Runner) waitWhilePaused(ctx context.Context, batchID string, progress model.Progress, events chan<- Event) error {
	announced := false
	for {
		r.mu.Lock()
		if !r.paused {
			r.mu.Unlock()
			break
		}
		resume := r.resume
		r.mu.Unlock()

		if !announced {
			announced = true
			events <- Event{Type: EventPaused, BatchID: batchID, Progress: progress}
		}

		select {
		case <-resume:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if announced {
		events <- Event{Type: EventResumed, BatchID: batchID, Progress: progress}
	}
	return nil
}

// progressSink forwards in-flight samples for one item. Samples are dropped when
// the consumer lags, and ignored once the returned closer has run.
func (r *Runner) progressSink(batchID string, item model.BatchItem, progress model.Progress, events chan<- Event) (download.ProgressFunc, func()) {
	var (
		mu   sync.Mutex
		done bool
	)
	sink := func(p download.Progress) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		select {
		case events <- Event{Type: EventItemProgress, BatchID: batchID, Item: item, Progress: progress, Percent: p.Percent}:
		default:
		}
	}
	closeSink := func() {
		mu.Lock()
		done = true
		mu.Unlock()
	}
	return sink, closeSink
}

func (r *Runner) setProgress(p model.Progress) {
	r.mu.Lock()
	r.progress = p
	r.mu.Unlock()
}
