package main

import (
	"context"
	"fmt"

	"github.com/pluto-org-co/randomint/cmd/randint/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func ConfigCommand() (cmd *cli.Command) {
	return &cli.Command{
		Name:        "config",
		Usage:       "print an example configuration",
		Description: "the output can be saved and passed back with --config",
		Action: func(ctx context.Context, c *cli.Command) (err error) {
			contents, err := yaml.Marshal(config.Example)
			if err != nil {
				return fmt.Errorf("failed to marshal configuration: %w", err)
			}

			_, err = c.Root().Writer.Write(contents)
			if err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}
			return nil
		},
	}
}
