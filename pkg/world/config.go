package world

import (
	"runtime"

	"github.com/leterax/go-voxels/pkg/worldgen"
)

// Config holds the tunables a World is built with (spec.md §2, §4.4).
type Config struct {
	// ChunkSize is the edge length of every chunk's voxel cube. Must be
	// <= 64, since the bitmask packs one bit per voxel per 64-bit column.
	ChunkSize int
	// RenderDistance is how many chunk layers out a loader keeps meshed.
	// Chunks are kept simulated (generated, but not necessarily meshed)
	// one layer further out, so meshing always has generated neighbours.
	RenderDistance int
	// WorkerCount is how many background goroutines the chunk worker
	// pool runs. Defaults to runtime.NumCPU().
	WorkerCount int
	// Seed drives every world generator's noise sources.
	Seed int64
	// Generator selects which built-in terrain recipe populates chunks.
	Generator worldgen.Kind
}

func defaultConfig() Config {
	return Config{
		ChunkSize:      64,
		RenderDistance: 4,
		WorkerCount:    runtime.NumCPU(),
		Seed:           1,
		Generator:      worldgen.KindPlainsWithTrees,
	}
}

// Option configures a World at construction time.
type Option func(*Config)

// WithChunkSize overrides the chunk edge length. Panics at New if size
// is not in [1, 64].
func WithChunkSize(size int) Option {
	return func(c *Config) { c.ChunkSize = size }
}

// WithRenderDistance overrides how many chunk layers stay meshed around
// each loader.
func WithRenderDistance(distance int) Option {
	return func(c *Config) { c.RenderDistance = distance }
}

// WithWorkerCount overrides the chunk worker pool's goroutine count.
func WithWorkerCount(n int) Option {
	return func(c *Config) { c.WorkerCount = n }
}

// WithSeed overrides the world generator's noise seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithGenerator overrides the built-in terrain generator kind.
func WithGenerator(kind worldgen.Kind) Option {
	return func(c *Config) { c.Generator = kind }
}
