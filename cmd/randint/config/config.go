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

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pluto-org-co/randomint/entropy"
	"github.com/pluto-org-co/randomint/random"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Facilities in preference order. Empty selects the defaults.
	Facilities       []string `yaml:"facilities"`
	InsecureFallback bool     `yaml:"insecure-fallback"`
	LogLevel         string   `yaml:"log-level"`
}

var Example = Config{
	Facilities: []string{
		entropy.CryptoRandName,
		entropy.GetrandomName,
		entropy.FastrandName,
	},
	InsecureFallback: false,
	LogLevel:         "info",
}

func Load(filename string) (cfg Config, err error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read file: %w", err)
	}

	err = yaml.Unmarshal(contents, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to unmarshal contents: %w", err)
	}
	return cfg, nil
}

func (c *Config) Level() (level slog.Level, err error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err = level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return level, fmt.Errorf("failed to parse log level: %w", err)
	}
	return level, nil
}

func (c *Config) Sampler(logger *slog.Logger) (sampler *random.Sampler, err error) {
	var facilities = make([]entropy.Facility, 0, len(c.Facilities))
	for _, name := range c.Facilities {
		facility, err := entropy.FacilityByName(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve facility: %w", err)
		}
		facilities = append(facilities, facility)
	}

	sampler = random.New(random.Config{
		Facilities:            facilities,
		AllowInsecureFallback: c.InsecureFallback,
		Logger:                logger,
	})
	return sampler, nil
}
