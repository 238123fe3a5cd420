package world

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-voxels/pkg/worldgen"
)

func TestDefaultConfig_MatchesDocumentedDefaults(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, 64, cfg.ChunkSize)
	assert.Equal(t, 4, cfg.RenderDistance)
	assert.Equal(t, runtime.NumCPU(), cfg.WorkerCount)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, worldgen.KindPlainsWithTrees, cfg.Generator)
}

func TestOptions_OverrideIndividualFields(t *testing.T) {
	cfg := defaultConfig()
	opts := []Option{
		WithChunkSize(16),
		WithRenderDistance(2),
		WithWorkerCount(3),
		WithSeed(99),
		WithGenerator(worldgen.KindCube),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	assert.Equal(t, 16, cfg.ChunkSize)
	assert.Equal(t, 2, cfg.RenderDistance)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, worldgen.KindCube, cfg.Generator)
}
