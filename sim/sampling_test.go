package sim

import (
	"testing"

	"golang.org/x/exp/rand"
)

func newTestRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestBinomial_DegenerateParameters(t *testing.T) {
	rng := newTestRNG(1)

	tests := []struct {
		name string
		n    int
		p    float64
		want int
	}{
		{"zero trials", 0, 0.5, 0},
		{"negative trials", -3, 0.5, 0},
		{"zero probability", 100, 0.0, 0},
		{"negative probability", 100, -0.1, 0},
		{"certain success", 100, 1.0, 100},
		{"above one", 100, 1.5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Binomial(rng, tt.n, tt.p); got != tt.want {
				t.Errorf("Binomial(%d, %v) = %d, want %d", tt.n, tt.p, got, tt.want)
			}
		})
	}
}

func TestBinomial_WithinBounds(t *testing.T) {
	rng := newTestRNG(2)
	for i := 0; i < 1000; i++ {
		got := Binomial(rng, 50, 0.3)
		if got < 0 || got > 50 {
			t.Fatalf("Binomial(50, 0.3) = %d, want value in [0, 50]", got)
		}
	}
}

func TestUniform_WithinBounds(t *testing.T) {
	rng := newTestRNG(3)
	for i := 0; i < 1000; i++ {
		got := Uniform(rng, 0.05, 1.0)
		if got < 0.05 || got >= 1.0 {
			t.Fatalf("Uniform(0.05, 1.0) = %v, want value in [0.05, 1.0)", got)
		}
	}
}

func TestBernoulli_ZeroOne(t *testing.T) {
	rng := newTestRNG(4)
	seenZero, seenOne := false, false
	for i := 0; i < 1000; i++ {
		got := Bernoulli(rng, 0.5)
		switch got {
		case 0:
			seenZero = true
		case 1:
			seenOne = true
		default:
			t.Fatalf("Bernoulli(0.5) = %d, want 0 or 1", got)
		}
	}
	if !seenZero || !seenOne {
		t.Errorf("Bernoulli(0.5) never produced both outcomes in 1000 draws (zero=%v one=%v)", seenZero, seenOne)
	}
}
