package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/pluto-org-co/randomint/cmd/randint/config"
	"github.com/pluto-org-co/randomint/random"
	"github.com/urfave/cli/v3"
)

const (
	ConfigFlag           = "config"
	LogLevelFlag         = "log-level"
	InsecureFallbackFlag = "insecure-fallback"
)

func NewRandint() (cmd *cli.Command) {
	return &cli.Command{
		Name:  "randint",
		Usage: "uniformly distributed random integers from a secure source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Usage:   "yaml configuration file",
				Sources: cli.EnvVars("RANDINT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    LogLevelFlag,
				Usage:   "overrides the configured log level",
				Sources: cli.EnvVars("RANDINT_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    InsecureFallbackFlag,
				Usage:   "allow a non cryptographic generator when no secure facility exists",
				Sources: cli.EnvVars("RANDINT_INSECURE_FALLBACK"),
			},
		},
		Commands: []*cli.Command{
			BelowCommand(),
			CheckCommand(),
			ConfigCommand(),
		},
	}
}

// setup loads the configuration and returns the sampler and logger shared by
// the sub commands.
func setup(c *cli.Command) (sampler *random.Sampler, logger *slog.Logger, err error) {
	cfg := config.Config{}
	if filename := c.String(ConfigFlag); filename != "" {
		cfg, err = config.Load(filename)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	if level := c.String(LogLevelFlag); level != "" {
		cfg.LogLevel = level
	}
	if c.Bool(InsecureFallbackFlag) {
		cfg.InsecureFallback = true
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	logger = slog.New(slog.NewTextHandler(c.Root().ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))

	sampler, err = cfg.Sampler(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare sampler: %w", err)
	}
	return sampler, logger.With("facility", sampler.Facility()), nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error-msg", err)
	}

	ctx := context.TODO()
	err = NewRandint().Run(ctx, os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
