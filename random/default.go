package random

import "sync"

// Default returns the process wide sampler, built on first use with the
// default facilities and slog.Default as logger.
var Default = sync.OnceValue(func() *Sampler {
	return New(Config{})
})

func Below(max int64) (n int64, err error) {
	return Default().Below(max)
}

func EnableInsecureFallback() {
	Default().EnableInsecureFallback()
}
