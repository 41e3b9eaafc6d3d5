// Copyright (C) 2025 ZedCloud Org.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// Package random draws uniformly distributed integers in [0, max) from a
// secure entropy facility without modulo bias.
package random

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/pluto-org-co/randomint/entropy"
)

// PrecisionCeiling is the largest accepted max and the size of the sampled
// space: every integer up to it is exactly representable as a float64.
const PrecisionCeiling = 1 << precisionBits

const (
	precisionBits = 53
	// Bits taken from the second word to complete the 32 bits of the first.
	lowBits = precisionBits - 32
)

type Config struct {
	// Ordered candidates handed to entropy.Discover. Nil selects the defaults.
	Facilities []entropy.Facility
	// Adapter takes precedence over Facilities.
	Adapter *entropy.Adapter
	// AllowInsecureFallback is equivalent to calling EnableInsecureFallback
	// right after construction.
	AllowInsecureFallback bool
	// Insecure is only read when no secure facility is available and the
	// fallback is enabled. Nil selects a runtime seeded ChaCha8.
	Insecure rand.Source
	Logger   *slog.Logger
}

type Sampler struct {
	adapter *entropy.Adapter
	logger  *slog.Logger

	fallback atomic.Bool
	warnOnce sync.Once

	insecureMu sync.Mutex
	insecure   rand.Source

	stats counters
}

func New(cfg Config) (s *Sampler) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	adapter := cfg.Adapter
	if adapter == nil {
		adapter = entropy.Discover(cfg.Facilities...)
	}

	insecure := cfg.Insecure
	if insecure == nil {
		insecure = runtimeSeededSource()
	}

	s = &Sampler{
		adapter:  adapter,
		logger:   logger,
		insecure: insecure,
	}

	if adapter.Available() {
		logger.Debug("Selected secure random facility", "facility", adapter.Facility())
	} else {
		logger.Error("could not find a suitable secure random facility", "error-msg", adapter.ProbeErrors())
	}

	if cfg.AllowInsecureFallback {
		s.EnableInsecureFallback()
	}
	return s
}

// EnableInsecureFallback lets the sampler use a non cryptographic generator
// when no secure facility was found. The warning is only logged once.
func (s *Sampler) EnableInsecureFallback() {
	s.warnOnce.Do(func() {
		s.logger.Warn("falling back to an insecure pseudo-random source for random number generation")
	})
	s.fallback.Store(true)
}

func (s *Sampler) Fallback() (enabled bool) {
	return s.fallback.Load()
}

// Secure reports whether values come from a cryptographic facility.
func (s *Sampler) Secure() (ok bool) {
	return s.adapter.Available()
}

func (s *Sampler) Facility() (name string) {
	return s.adapter.Facility()
}

// Below returns a uniformly distributed integer in [0, max).
// max must be in [1, PrecisionCeiling].
func (s *Sampler) Below(max int64) (n int64, err error) {
	err = validateMax(max)
	if err != nil {
		return 0, err
	}

	limit := uint64(max)
	// Largest multiple of limit inside the sampled space. Values at or above
	// it would make the lowest residues more likely.
	threshold := (PrecisionCeiling / limit) * limit
	for {
		value, err := s.random53()
		if err != nil {
			s.stats.failures.Add(1)
			return 0, err
		}
		if value < threshold {
			return int64(value % limit), nil
		}
		s.stats.rejections.Add(1)
	}
}

// BelowFloat64 is Below for callers holding the bound as a float64, as
// decoded from JSON for example. Fractional, infinite and NaN bounds are
// rejected.
func (s *Sampler) BelowFloat64(max float64) (n int64, err error) {
	if math.IsNaN(max) || math.IsInf(max, 0) || math.Trunc(max) != max {
		return 0, fmt.Errorf("%w: max must be an integer, got %v", ErrInvalidArgument, max)
	}
	if max < 1 || max > PrecisionCeiling {
		return 0, fmt.Errorf("%w: max must be in [1, %d], got %v", ErrInvalidArgument, int64(PrecisionCeiling), max)
	}
	return s.Below(int64(max))
}

func validateMax(max int64) (err error) {
	if max < 1 {
		return fmt.Errorf("%w: max must be a positive integer, got %d", ErrInvalidArgument, max)
	}
	if max > PrecisionCeiling {
		return fmt.Errorf("%w: max %d exceeds the precision ceiling %d", ErrInvalidArgument, max, int64(PrecisionCeiling))
	}
	return nil
}

// random53 returns a value in [0, PrecisionCeiling).
func (s *Sampler) random53() (value uint64, err error) {
	if !s.adapter.Available() {
		if !s.fallback.Load() {
			return 0, ErrNoSecureSource
		}

		s.insecureMu.Lock()
		value = s.insecure.Uint64() >> (64 - precisionBits)
		s.insecureMu.Unlock()

		s.stats.draws.Add(1)
		s.stats.insecureDraws.Add(1)
		return value, nil
	}

	var words [2]uint32
	err = s.adapter.Fill(words[:])
	if err != nil {
		return 0, fmt.Errorf("failed to fill random words: %w", err)
	}
	s.stats.draws.Add(1)

	// First word: bits 21..52. Top 21 bits of the second word: bits 0..20.
	value = uint64(words[0])<<lowBits | uint64(words[1]>>(32-lowBits))
	return value, nil
}
