package metrics_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pluto-org-co/randomint/entropy"
	"github.com/pluto-org-co/randomint/metrics"
	"github.com/pluto-org-co/randomint/random"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func Test_Collector(t *testing.T) {
	t.Run("Secure", func(t *testing.T) {
		assertions := assert.New(t)

		// One rejected draw for max 3 followed by an accepted one.
		raw := bytes.NewReader([]byte{
			0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x38, 0x00,
		})
		sampler := random.New(random.Config{
			Facilities: []entropy.Facility{entropy.NewReaderFacility("synthetic", raw)},
			Logger:     quiet,
		})
		_, err := sampler.Below(3)
		if !assertions.Nil(err, "failed to sample") {
			return
		}

		collector := metrics.NewCollector("randomint", sampler)
		registry := prometheus.NewPedanticRegistry()
		if !assertions.Nil(registry.Register(collector), "failed to register collector") {
			return
		}

		expected := `
# HELP randomint_sampler_draws_total Random 53-bit values drawn, rejected ones included
# TYPE randomint_sampler_draws_total counter
randomint_sampler_draws_total 2
# HELP randomint_sampler_rejections_total Draws discarded because they fell in the biased tail
# TYPE randomint_sampler_rejections_total counter
randomint_sampler_rejections_total 1
# HELP randomint_sampler_insecure_draws_total Draws served by the insecure fallback
# TYPE randomint_sampler_insecure_draws_total counter
randomint_sampler_insecure_draws_total 0
# HELP randomint_sampler_failures_total Calls that failed to obtain entropy
# TYPE randomint_sampler_failures_total counter
randomint_sampler_failures_total 0
# HELP randomint_sampler_secure_source Whether a secure random facility is in use
# TYPE randomint_sampler_secure_source gauge
randomint_sampler_secure_source{facility="synthetic"} 1
`
		err = testutil.GatherAndCompare(registry, strings.NewReader(expected))
		assertions.Nil(err, "unexpected metrics")
	})
	t.Run("Fallback", func(t *testing.T) {
		assertions := assert.New(t)

		sampler := random.New(random.Config{
			Adapter:               entropy.None(),
			AllowInsecureFallback: true,
			Logger:                quiet,
		})
		for range 5 {
			_, err := sampler.Below(10)
			if !assertions.Nil(err, "failed to sample") {
				return
			}
		}

		collector := metrics.NewCollector("randomint", sampler)
		assertions.Equal(5, testutil.CollectAndCount(collector))

		insecure := testutil.CollectAndCount(collector, "randomint_sampler_insecure_draws_total")
		assertions.Equal(1, insecure)

		expected := `
# HELP randomint_sampler_secure_source Whether a secure random facility is in use
# TYPE randomint_sampler_secure_source gauge
randomint_sampler_secure_source{facility="none"} 0
`
		err := testutil.CollectAndCompare(collector, strings.NewReader(expected), "randomint_sampler_secure_source")
		assertions.Nil(err, "unexpected metrics")
	})
}
