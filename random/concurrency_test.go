package random_test

import (
	"fmt"
	"testing"

	"github.com/pluto-org-co/randomint/entropy"
	"github.com/pluto-org-co/randomint/random"
	"github.com/pluto-org-co/randomint/syncutils"
	"github.com/stretchr/testify/assert"
)

func Test_Concurrent(t *testing.T) {
	const jobs = 64
	const perJob = 200

	for name, sampler := range map[string]*random.Sampler{
		"Secure": random.New(random.Config{Logger: quiet}),
		"Fallback": random.New(random.Config{
			Adapter:               entropy.None(),
			AllowInsecureFallback: true,
			Logger:                quiet,
		}),
	} {
		t.Run(name, func(t *testing.T) {
			assertions := assert.New(t)

			workers := syncutils.NewWorkers(8)
			for job := range jobs {
				max := int64(job + 1)
				workers.Go(func() error {
					for range perJob {
						n, err := sampler.Below(max)
						if err != nil {
							return fmt.Errorf("failed to sample below %d: %w", max, err)
						}
						if n < 0 || n >= max {
							return fmt.Errorf("%d out of [0, %d)", n, max)
						}
					}
					return nil
				})
			}

			if !assertions.Nil(workers.Wait(), "concurrent sampling should succeed") {
				return
			}
			stats := sampler.Stats()
			assertions.GreaterOrEqual(stats.Draws, uint64(jobs*perJob), "every call draws at least once")
			assertions.Zero(stats.Failures)
		})
	}
}
