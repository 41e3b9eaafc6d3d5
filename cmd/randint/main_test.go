package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)

	cmd := NewRandint()
	cmd.Writer = stdout
	cmd.ErrWriter = stderr
	err = cmd.Run(context.TODO(), append([]string{"randint"}, args...))
	return stdout, stderr, err
}

func Test_Randint(t *testing.T) {
	t.Run("Below", func(t *testing.T) {
		assertions := assert.New(t)

		stdout, _, err := run("below", "--max", "10", "--count", "50")
		if !assertions.Nil(err, "failed to run below") {
			return
		}

		lines := strings.Fields(stdout.String())
		assertions.Len(lines, 50, "one value per line")
		for _, line := range lines {
			n, err := strconv.ParseInt(line, 10, 64)
			if !assertions.Nil(err, "failed to parse %q", line) {
				return
			}
			assertions.True(n >= 0 && n < 10, "%d out of [0, 10)", n)
		}
	})
	t.Run("BelowInvalid", func(t *testing.T) {
		_, _, err := run("below", "--max", "0")
		assert.NotNil(t, err, "max 0 must be rejected")
	})
	t.Run("Check", func(t *testing.T) {
		assertions := assert.New(t)

		stdout, _, err := run("check", "--max", "6", "--draws", "12000", "--workers", "4")
		if !assertions.Nil(err, "failed to run check") {
			return
		}
		assertions.Contains(stdout.String(), "df=5")
		assertions.Contains(stdout.String(), "uniform")
	})
	t.Run("CheckInvalid", func(t *testing.T) {
		_, _, err := run("check", "--max", "1")
		assert.NotNil(t, err, "a single bucket cannot be checked")
	})
	t.Run("Config", func(t *testing.T) {
		assertions := assert.New(t)

		stdout, _, err := run("config")
		if !assertions.Nil(err, "failed to run config") {
			return
		}
		assertions.Contains(stdout.String(), "crypto-rand")
		assertions.Contains(stdout.String(), "insecure-fallback: false")

		filename := filepath.Join(t.TempDir(), "config.yaml")
		err = os.WriteFile(filename, stdout.Bytes(), 0o644)
		if !assertions.Nil(err, "failed to write config") {
			return
		}

		stdout, stderr, err := run("--config", filename, "--log-level", "debug", "below", "--max", "5")
		if !assertions.Nil(err, "failed to run with config") {
			return
		}
		assertions.Len(strings.Fields(stdout.String()), 1)
		assertions.Contains(stderr.String(), "Sampling", "debug logs should be enabled")
	})
}
