package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

const (
	MaxFlag   = "max"
	CountFlag = "count"
)

func BelowCommand() (cmd *cli.Command) {
	return &cli.Command{
		Name:        "below",
		Usage:       "print random integers in [0, max)",
		Description: "prints one uniformly distributed integer per line",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     MaxFlag,
				Usage:    "exclusive upper bound, at most 2^53",
				Required: true,
			},
			&cli.IntFlag{
				Name:  CountFlag,
				Usage: "number of values to print",
				Value: 1,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			sampler, logger, err := setup(c)
			if err != nil {
				return err
			}

			max := c.Int64(MaxFlag)
			count := c.Int(CountFlag)
			logger.Debug("Sampling", "max", max, "count", count)

			for range count {
				n, err := sampler.Below(max)
				if err != nil {
					return fmt.Errorf("failed to sample: %w", err)
				}
				fmt.Fprintln(c.Root().Writer, n)
			}
			return nil
		},
	}
}
