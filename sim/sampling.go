package sim

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Binomial draws from Binomial(n, p) using rng as the random source.
// Degenerate parameters short-circuit: n <= 0 or p <= 0 yields 0, p >= 1
// yields n.
func Binomial(rng *rand.Rand, n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	b := distuv.Binomial{N: float64(n), P: p, Src: rng}
	return int(b.Rand())
}

// Uniform draws from Uniform(min, max) using rng as the random source.
func Uniform(rng *rand.Rand, min, max float64) float64 {
	u := distuv.Uniform{Min: min, Max: max, Src: rng}
	return u.Rand()
}

// Bernoulli draws a 0/1 value with success probability p.
func Bernoulli(rng *rand.Rand, p float64) int {
	b := distuv.Bernoulli{P: p, Src: rng}
	return int(b.Rand())
}
