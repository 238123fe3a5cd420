package worldgen

import "github.com/aquilax/go-perlin"

// NoiseSource abstracts the 3D coherent noise function every generator
// samples from, so tests can substitute a deterministic stand-in without
// depending on perlin's internals.
type NoiseSource interface {
	Noise3D(x, y, z float64) float64
}

// perlinSource adapts aquilax/go-perlin to NoiseSource. alpha and beta
// control the per-octave amplitude and frequency falloff; n is the
// octave count. These match go-perlin's own recommended defaults for
// smooth terrain-scale noise.
type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlinSource builds a NoiseSource seeded from seed, tuned for
// terrain-scale generation (2 octaves, amplitude halving, frequency
// doubling per octave).
func NewPerlinSource(seed int64) NoiseSource {
	return &perlinSource{p: perlin.NewPerlin(2, 2, 2, seed)}
}

func (s *perlinSource) Noise3D(x, y, z float64) float64 {
	return s.p.Noise3D(x, y, z)
}
