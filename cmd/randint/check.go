package main

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/pluto-org-co/randomint/random"
	"github.com/pluto-org-co/randomint/syncutils"
	"github.com/urfave/cli/v3"
)

const (
	DrawsFlag   = "draws"
	WorkersFlag = "workers"
)

const (
	maxBuckets = 1 << 16
	chunkSize  = 1024
	// Standard normal quantile for a ~0.1% significance level.
	significance = 3.09
)

func CheckCommand() (cmd *cli.Command) {
	return &cli.Command{
		Name:        "check",
		Usage:       "chi-squared uniformity check of the sampler",
		Description: "samples values concurrently and fails when the residues do not look uniform",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     MaxFlag,
				Usage:    fmt.Sprintf("exclusive upper bound, between 2 and %d", maxBuckets),
				Required: true,
			},
			&cli.IntFlag{
				Name:  DrawsFlag,
				Usage: "number of values to sample",
				Value: 100_000,
			},
			&cli.IntFlag{
				Name:  WorkersFlag,
				Usage: "concurrent samplers",
				Value: runtime.NumCPU(),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			max := c.Int64(MaxFlag)
			if max < 2 || max > maxBuckets {
				return fmt.Errorf("max must be between 2 and %d, got %d", maxBuckets, max)
			}
			draws := c.Int(DrawsFlag)
			if draws < 1 {
				return fmt.Errorf("draws must be positive, got %d", draws)
			}

			sampler, logger, err := setup(c)
			if err != nil {
				return err
			}

			var buckets = make([]atomic.Uint64, max)
			workers := syncutils.NewWorkers(c.Int(WorkersFlag))
			logger.Info("Sampling", "max", max, "draws", draws)
			for remaining := draws; remaining > 0; remaining -= chunkSize {
				size := min(chunkSize, remaining)
				workers.Go(func() error {
					for range size {
						n, err := sampler.Below(max)
						if err != nil {
							return fmt.Errorf("failed to sample: %w", err)
						}
						buckets[n].Add(1)
					}
					return nil
				})
			}
			err = workers.Wait()
			if err != nil {
				return err
			}

			var observed = make([]uint64, max)
			for index := range buckets {
				observed[index] = buckets[index].Load()
			}

			statistic := random.ChiSquared(observed)
			df := int(max - 1)
			critical := random.ChiSquaredCritical(df, significance)
			stats := sampler.Stats()
			logger.Info("Sampled",
				"draws", stats.Draws,
				"rejections", stats.Rejections,
				"insecure-draws", stats.InsecureDraws,
			)

			fmt.Fprintf(c.Root().Writer, "chi2=%.3f df=%d critical=%.3f\n", statistic, df, critical)
			if statistic > critical {
				return fmt.Errorf("distribution does not look uniform: chi2 %.3f above %.3f", statistic, critical)
			}
			fmt.Fprintln(c.Root().Writer, "uniform")
			return nil
		},
	}
}
