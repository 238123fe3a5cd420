// Package world ties the chunk grid, the chunk worker pool, and a
// registry of chunk loaders into one facade: the entry point an
// application embeds to drive a live voxel world (spec.md §2, §4.4-4.6).
package world

import (
	"fmt"
	"log"
	"sync"

	"github.com/leterax/go-voxels/pkg/bitmask"
	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/voxel"
	"github.com/leterax/go-voxels/pkg/worker"
	"github.com/leterax/go-voxels/pkg/worldgen"
)

// World owns the chunk map, the shared voxel dataset, and the worker
// pool that generates and meshes chunks in the background.
//
// Locking follows a fixed order: the chunk map's own lock, then (if
// needed) an individual chunk's lock. No code path ever acquires a
// chunk's lock and then reaches back for the map lock, which is what
// makes that order deadlock-free across any number of loaders.
type World struct {
	cfg Config

	mu     sync.RWMutex
	chunks map[chunkgrid.ChunkPosition]*chunkgrid.Chunk

	dataset *voxel.Dataset
	pool    *worker.Pool

	loadersMu    sync.RWMutex
	loaders      map[worker.LoaderID]*loaderState
	nextLoaderID uint64
}

type loaderState struct {
	pos            chunkgrid.ChunkPosition
	renderDistance int
	simulate       []chunkgrid.ChunkPosition
	render         []chunkgrid.ChunkPosition
}

// New builds a World from opts, starts its worker pool, and begins
// draining worker results in the background.
func New(opts ...Option) *World {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ChunkSize < 1 || cfg.ChunkSize > bitmask.MaxSize {
		panic(fmt.Sprintf("world: chunk size %d out of range [1, %d]", cfg.ChunkSize, bitmask.MaxSize))
	}

	w := &World{
		cfg:     cfg,
		chunks:  make(map[chunkgrid.ChunkPosition]*chunkgrid.Chunk),
		dataset: voxel.NewDataset(),
		loaders: make(map[worker.LoaderID]*loaderState),
	}

	generator := worldgen.New(cfg.Generator, cfg.Seed)
	w.pool = worker.NewPool(cfg.WorkerCount, w, generator, cfg.ChunkSize)

	go w.drainResults()

	return w
}

// Config returns the configuration this World was built with.
func (w *World) Config() Config { return w.cfg }

// Get implements worker.Store.
func (w *World) Get(pos chunkgrid.ChunkPosition) (*chunkgrid.Chunk, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunks[pos]
	return c, ok
}

// GetOrCreate implements worker.Store.
func (w *World) GetOrCreate(pos chunkgrid.ChunkPosition) (*chunkgrid.Chunk, bool) {
	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c, false
	}
	w.mu.RUnlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[pos]; ok {
		return c, false
	}
	c := chunkgrid.NewChunk(pos)
	w.chunks[pos] = c
	return c, true
}

// MergeDataset implements worker.Store.
func (w *World) MergeDataset(d *voxel.Dataset) {
	w.dataset.Merge(d)
}

// ChunkCount returns how many chunks currently exist, at any state.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// drainResults consumes worker results for the lifetime of the World,
// updating each loader's simulate/render sets as they arrive.
func (w *World) drainResults() {
	for res := range w.pool.Results() {
		switch r := res.(type) {
		case worker.ChunksStateUpdateResult:
			w.loadersMu.Lock()
			if state, ok := w.loaders[r.Loader]; ok {
				state.simulate = append(state.simulate, r.ToSimulate...)
				state.render = append(state.render, r.ToRender...)
			}
			w.loadersMu.Unlock()
		case worker.ChunksGeneratedResult:
			// Newly generated chunks may complete the neighbourhood of
			// chunks an earlier remesh pass had to skip, so every
			// loader's render region is remeshed again.
			w.loadersMu.RLock()
			for _, state := range w.loaders {
				w.pool.Submit(worker.RemeshChunksCmd{Center: state.pos, RenderDistance: state.renderDistance})
			}
			w.loadersMu.RUnlock()
		case worker.ChunksEnsuredResult:
			// No additional bookkeeping; AddLoader/MoveLoader queue the
			// generate command for the same range up front.
		default:
			log.Printf("world: unrecognized worker result %T", res)
		}
	}
}

// Close stops the worker pool and waits for its goroutines to exit.
func (w *World) Close() {
	w.pool.Close()
}
