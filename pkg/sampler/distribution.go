package sampler

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Distribution selects the weight curve applied over candidate positions.
type Distribution int

const (
	SigmoidIncreasing Distribution = iota
	SigmoidDecreasing
	Uniform
	LinearIncreasing
	LinearDecreasing
	Gaussian
)

// ErrUnknownDistribution is returned by ParseDistribution for unsupported names.
var ErrUnknownDistribution = errors.New("unknown distribution")

var distributionNames = [...]string{
	SigmoidIncreasing: "sigmoide_i",
	SigmoidDecreasing: "sigmoide_-i",
	Uniform:           "uniform",
	LinearIncreasing:  "linear_i",
	LinearDecreasing:  "linear_-i",
	Gaussian:          "gaussian",
}

// WeightFunc returns one strictly positive weight per position for n candidates.
type WeightFunc func(n int) []float64

var weightFuncs = map[Distribution]WeightFunc{
	SigmoidIncreasing: func(n int) []float64 { return sigmoid(n, 1) },
	SigmoidDecreasing: func(n int) []float64 { return sigmoid(n, -1) },
	Uniform:           uniform,
	LinearIncreasing:  func(n int) []float64 { return linear(n, true) },
	LinearDecreasing:  func(n int) []float64 { return linear(n, false) },
	Gaussian:          gaussian,
}

// Distributions lists every supported distribution in declaration order.
func Distributions() []Distribution {
	out := make([]Distribution, 0, len(distributionNames))
	for d := range distributionNames {
		out = append(out, Distribution(d))
	}
	return out
}

func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionNames) {
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
	return distributionNames[d]
}

// Valid reports whether d is one of the declared distributions.
func (d Distribution) Valid() bool {
	_, ok := weightFuncs[d]
	return ok
}

// Weights returns the weight of each of the n positions.
func (d Distribution) Weights(n int) []float64 {
	fn, ok := weightFuncs[d]
	if !ok || n <= 0 {
		return nil
	}
	return fn(n)
}

// ParseDistribution maps a configuration name such as "sigmoide_i" to a Distribution.
func ParseDistribution(name string) (Distribution, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d, n := range distributionNames {
		if n == name {
			return Distribution(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
}

// sigmoid spreads n positions symmetrically around zero, starting at -ceil(n/2),
// and weights them with n / (1 + e^(-sign*λx)) where λ = 10/n.
func sigmoid(n int, sign float64) []float64 {
	lambda := 10 / float64(n)
	x0 := -(n + 1) / 2
	out := make([]float64, n)
	for i := range out {
		x := float64(x0 + i)
		out[i] = float64(n) / (1 + math.Exp(-sign*lambda*x))
	}
	return out
}

func uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func linear(n int, increasing bool) []float64 {
	out := make([]float64, n)
	for i := range out {
		if increasing {
			out[i] = float64(i + 1)
		} else {
			out[i] = float64(n - i)
		}
	}
	return out
}

// gaussian is a bell curve centred on the middle position with σ = n/6,
// so the ends of the list sit about three deviations out.
func gaussian(n int) []float64 {
	mu := float64(n-1) / 2
	sigma := math.Max(float64(n)/6, 1)
	out := make([]float64, n)
	for i := range out {
		d := float64(i) - mu
		out[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
	}
	return out
}
