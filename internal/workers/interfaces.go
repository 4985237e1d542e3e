// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the worker keeps running in
// its own goroutine until ctx is cancelled or Stop is called. Stop blocks
// until the worker has exited.
//
// Example implementation:
//
//	type MyWorker struct{ wg sync.WaitGroup }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    w.wg.Add(1)
//	    go func() { defer w.wg.Done(); <-ctx.Done() }()
//	}
//
//	func (w *MyWorker) Stop() { w.wg.Wait() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
