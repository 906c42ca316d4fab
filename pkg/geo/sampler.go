package geo

import (
	"math"
	"math/rand"
)

// Sampler produces synthetic locations by perturbing a fixed base point
// with bounded uniform noise on each axis.
type Sampler struct {
	base      Point
	latJitter float64
	lonJitter float64
	altJitter float64
	rng       *rand.Rand
}

// NewSampler creates a Sampler around the given base point. The jitter
// magnitudes bound the perturbation applied per axis.
func NewSampler(base Point, latJitter, lonJitter, altJitter float64, rng *rand.Rand) *Sampler {
	return &Sampler{
		base:      base,
		latJitter: latJitter,
		lonJitter: lonJitter,
		altJitter: altJitter,
		rng:       rng,
	}
}

// Sample returns a new Point with each axis offset uniformly in
// [-jitter, +jitter] from the base. Latitude and longitude are rounded
// to 6 decimal places, altitude to 2.
func (s *Sampler) Sample() Point {
	return Point{
		Latitude:  roundTo(s.base.Latitude+s.uniform(s.latJitter), 6),
		Longitude: roundTo(s.base.Longitude+s.uniform(s.lonJitter), 6),
		Altitude:  roundTo(s.base.Altitude+s.uniform(s.altJitter), 2),
	}
}

// uniform draws from [-magnitude, +magnitude).
func (s *Sampler) uniform(magnitude float64) float64 {
	return (s.rng.Float64()*2 - 1) * magnitude
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
