// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-geo-toolkit/internal/logger"
)

const defaultSubmitInterval = 5 * time.Minute

type submitJob struct {
	submitter Submitter
	dirty     *DirtyTables

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSubmitJob creates a job that calls submitter.Submit on a ticker while
// dirty is non-empty. The job is idle until Start is called.
func NewSubmitJob(submitter Submitter, dirty *DirtyTables, logger *logger.Logger) SubmitJob {
	return &submitJob{submitter: submitter, dirty: dirty, logger: logger}
}

// Start implements SubmitJob. It stops any previously running job, then
// launches a background goroutine that submits every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *submitJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSubmitInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *submitJob) tick(ctx context.Context) {
	if j.dirty.Len() == 0 {
		return
	}

	err := j.submitter.Submit(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSubmissionInProgress), errors.Is(err, ErrFormOpen):
		j.logger.Debug().Err(err).Msg("automatic submission skipped")
	default:
		j.logger.Warn().Err(err).Msg("automatic submission failed")
	}
}

// Stop implements SubmitJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *submitJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
