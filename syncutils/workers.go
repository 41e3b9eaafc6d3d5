package syncutils

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Workers runs jobs with bounded concurrency and collects their errors.
type Workers struct {
	wg        sync.WaitGroup
	available chan struct{}

	mu   sync.Mutex
	errs []error
}

// Go blocks until a worker is free and runs f on it. A panic in f is
// recovered and reported as an error by Wait.
func (w *Workers) Go(f func() error) {
	<-w.available

	w.wg.Go(func() {
		defer func() { w.available <- struct{}{} }()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("worker panicked", "error-msg", r)
				w.report(fmt.Errorf("worker panicked: %v", r))
			}
		}()

		err := f()
		if err != nil {
			w.report(err)
		}
	})
}

func (w *Workers) report(err error) {
	w.mu.Lock()
	w.errs = append(w.errs, err)
	w.mu.Unlock()
}

// Wait blocks until every job finished and returns their joined errors.
func (w *Workers) Wait() (err error) {
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	return errors.Join(w.errs...)
}

func NewWorkers(n int) (w *Workers) {
	if n < 1 {
		n = 1
	}
	w = &Workers{
		available: make(chan struct{}, n),
	}
	for range n {
		w.available <- struct{}{}
	}
	return w
}
