package syncutils_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/pluto-org-co/randomint/syncutils"
	"github.com/stretchr/testify/assert"
)

func Test_Workers(t *testing.T) {
	t.Run("Bounded", func(t *testing.T) {
		assertions := assert.New(t)

		const limit = 4
		workers := syncutils.NewWorkers(limit)

		var running, peak atomic.Int64
		for range 100 {
			workers.Go(func() error {
				current := running.Add(1)
				for {
					old := peak.Load()
					if current <= old || peak.CompareAndSwap(old, current) {
						break
					}
				}
				running.Add(-1)
				return nil
			})
		}

		assertions.Nil(workers.Wait(), "no job failed")
		assertions.LessOrEqual(peak.Load(), int64(limit), "concurrency must be bounded")
	})
	t.Run("Errors", func(t *testing.T) {
		assertions := assert.New(t)

		errBoom := errors.New("boom")
		workers := syncutils.NewWorkers(2)
		workers.Go(func() error { return errBoom })
		workers.Go(func() error { return nil })
		workers.Go(func() error { panic("kaboom") })

		err := workers.Wait()
		assertions.ErrorIs(err, errBoom, "job errors must be reported")
		assertions.Contains(err.Error(), "kaboom", "panics must be reported")
	})
}
