package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-geo-toolkit/internal/config"
	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

// Workers runs the client background workers as one group.
type Workers struct {
	workers []Worker
	cancel  context.CancelFunc
}

// NewClientWorkers creates the client background workers: the save event
// watcher and, when cfg.SubmitInterval is positive, the automatic submission
// job.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	w := &Workers{}
	w.workers = append(w.workers, NewSaveEventWorker(services.Session, services.Forms.Events(), logger))
	if cfg.SubmitInterval > 0 {
		w.workers = append(w.workers, NewSubmitWorker(services.SubmitJob, cfg.SubmitInterval, logger))
	}
	return w
}

// Run starts every worker in order. Workers stop when ctx is cancelled or
// Stop is called.
func (w *Workers) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order and waits for them.
func (w *Workers) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// submitWorker runs the automatic submission job.
type submitWorker struct {
	job      service.SubmitJob
	interval time.Duration
	logger   *logger.Logger
}

// NewSubmitWorker returns a worker that runs job every interval.
func NewSubmitWorker(job service.SubmitJob, interval time.Duration, logger *logger.Logger) Worker {
	return &submitWorker{job: job, interval: interval, logger: logger}
}

func (w *submitWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("automatic submission started")
	w.job.Start(ctx, w.interval)
}

func (w *submitWorker) Stop() {
	w.job.Stop()
}

// saveEventWorker feeds save events into the edit session's dirty tables.
type saveEventWorker struct {
	session *service.EditSession
	events  <-chan models.SaveEvent
	logger  *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSaveEventWorker returns a worker that marks tables dirty in session as
// save events arrive on events.
func NewSaveEventWorker(session *service.EditSession, events <-chan models.SaveEvent, logger *logger.Logger) Worker {
	return &saveEventWorker{session: session, events: events, logger: logger}
}

func (w *saveEventWorker) Run(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.session.Watch(ctx, w.events)
		w.logger.Debug().Msg("save event watcher stopped")
	}()
}

func (w *saveEventWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
