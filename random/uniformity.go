package random

import "math"

// ChiSquared returns Pearson's statistic of the observed bucket counts
// against a uniform expectation.
func ChiSquared(observed []uint64) (statistic float64) {
	var total uint64
	for _, count := range observed {
		total += count
	}
	if total == 0 || len(observed) == 0 {
		return 0
	}

	expected := float64(total) / float64(len(observed))
	for _, count := range observed {
		delta := float64(count) - expected
		statistic += delta * delta / expected
	}
	return statistic
}

// ChiSquaredCritical approximates the upper critical value of the chi-squared
// distribution with df degrees of freedom at the standard normal quantile z
// (Wilson-Hilferty). z = 3.09 is roughly a 0.1% significance level.
func ChiSquaredCritical(df int, z float64) (critical float64) {
	if df <= 0 {
		return 0
	}
	k := float64(df)
	term := 1 - 2/(9*k) + z*math.Sqrt(2/(9*k))
	return k * term * term * term
}
