package world

import (
	"sync/atomic"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/worker"
)

// AddLoader registers a new chunk loader centered at pos, synchronously
// seeds its simulate/render sets to the full surrounding cube (render
// distance + 1 layers for simulation, render distance for rendering),
// and kicks off the ensure/generate/remesh pipeline over that same
// region. Unlike a later MoveLoader, there's no prior position to diff
// against, so the initial sets are computed directly rather than
// waiting on a worker-posted ChunksStateUpdateResult.
func (w *World) AddLoader(pos chunkgrid.ChunkPosition) worker.LoaderID {
	id := worker.LoaderID(atomic.AddUint64(&w.nextLoaderID, 1))

	rd := w.cfg.RenderDistance
	state := &loaderState{
		pos:            pos,
		renderDistance: rd,
		simulate:       cubePositions(pos, rd+1),
		render:         cubePositions(pos, rd),
	}

	w.loadersMu.Lock()
	w.loaders[id] = state
	w.loadersMu.Unlock()

	w.requestRegion(pos, rd)
	return id
}

// cubePositions returns every chunk position within Chebyshev distance
// radius of center, center included.
func cubePositions(center chunkgrid.ChunkPosition, radius int) []chunkgrid.ChunkPosition {
	r := int32(radius)
	out := make([]chunkgrid.ChunkPosition, 0, (2*radius+1)*(2*radius+1)*(2*radius+1))
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				out = append(out, center.Add(chunkgrid.ChunkPosition{X: x, Y: y, Z: z}))
			}
		}
	}
	return out
}

// RemoveLoader unregisters a loader. Its chunks are left in the map;
// eviction of chunks no longer needed by any loader is out of scope
// here (spec.md Non-goals).
func (w *World) RemoveLoader(id worker.LoaderID) {
	w.loadersMu.Lock()
	delete(w.loaders, id)
	w.loadersMu.Unlock()
}

// MoveLoader recenters a loader at newPos. If it actually moved to a
// new chunk, this ensures and generates the newly exposed region and
// asks a worker to recompute which chunks now need simulating versus
// rendering.
func (w *World) MoveLoader(id worker.LoaderID, newPos chunkgrid.ChunkPosition) {
	w.loadersMu.Lock()
	state, ok := w.loaders[id]
	if !ok {
		w.loadersMu.Unlock()
		return
	}
	shift := newPos.Sub(state.pos)
	state.pos = newPos
	rd := state.renderDistance
	w.loadersMu.Unlock()

	if shift == (chunkgrid.ChunkPosition{}) {
		return
	}

	w.requestRegion(newPos, rd)
	w.pool.Submit(worker.UpdateChunkLoaderChunksCmd{
		Loader:         id,
		RenderDistance: rd,
		NewPos:         newPos,
		Shift:          shift,
	})
}

// requestRegion queues the ensure -> generate -> remesh pipeline over
// every chunk within rd+1 layers of center, correlated by one GroupID.
func (w *World) requestRegion(center chunkgrid.ChunkPosition, rd int) {
	group := worker.NewGroupID()
	total := chunkgrid.CumulativeCount(rd + 1)

	w.pool.Submit(worker.EnsureChunksCmd{Group: group, Center: center, IndexFrom: 0, IndexTo: total})
	w.pool.Submit(worker.GenerateChunksCmd{Group: group, Center: center, IndexFrom: 0, IndexTo: total})
	w.pool.Submit(worker.RemeshChunksCmd{Center: center, RenderDistance: rd})
}

// LoaderRenderSet returns a copy of loader id's render set: the cube
// seeded by AddLoader plus every position a worker has since reported
// as newly needing rendering. Reported positions are appended, never
// removed, and the set is not recomputed synchronously.
func (w *World) LoaderRenderSet(id worker.LoaderID) []chunkgrid.ChunkPosition {
	w.loadersMu.RLock()
	defer w.loadersMu.RUnlock()
	state, ok := w.loaders[id]
	if !ok {
		return nil
	}
	out := make([]chunkgrid.ChunkPosition, len(state.render))
	copy(out, state.render)
	return out
}
