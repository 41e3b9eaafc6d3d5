package random

import "sync/atomic"

type Stats struct {
	// Draws counts 53-bit values drawn, rejected ones included.
	Draws uint64
	// Rejections counts draws that fell in the biased tail.
	Rejections uint64
	// InsecureDraws counts draws served by the insecure fallback.
	InsecureDraws uint64
	// Failures counts calls that returned an entropy error.
	Failures uint64
}

type counters struct {
	draws         atomic.Uint64
	rejections    atomic.Uint64
	insecureDraws atomic.Uint64
	failures      atomic.Uint64
}

func (s *Sampler) Stats() (stats Stats) {
	return Stats{
		Draws:         s.stats.draws.Load(),
		Rejections:    s.stats.rejections.Load(),
		InsecureDraws: s.stats.insecureDraws.Load(),
		Failures:      s.stats.failures.Load(),
	}
}
