package worker

import (
	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/mesher"
)

// remeshOne meshes one chunk if it is Dirty and all 26 neighbours exist
// with a bitmask already. Otherwise it leaves the chunk untouched; a
// later remesh pass (triggered once the missing neighbour generates)
// picks it back up.
func (p *Pool) remeshOne(pos chunkgrid.ChunkPosition) {
	chunk, ok := p.store.Get(pos)
	if !ok || chunk.State() != chunkgrid.StateDirty {
		return
	}

	var neighbors mesher.Neighbors
	for idx, off := range mesher.NeighborOffsets {
		neighborPos := pos.Add(chunkgrid.ChunkPosition{X: off.X, Y: off.Y, Z: off.Z})
		neighborChunk, ok := p.store.Get(neighborPos)
		if !ok {
			return
		}
		mask := neighborChunk.Bitmask()
		if mask == nil {
			return
		}
		neighbors[idx] = mask
	}

	origin := pos.ChunkOrigin(p.chunkSize)
	faces, err := mesher.Mesh(chunk.Bitmask(), &neighbors, origin, chunk.Octree())
	if err != nil {
		return
	}
	chunk.SetFaces(faces)
}

func (p *Pool) remeshChunks(c RemeshChunksCmd) {
	r := int32(c.RenderDistance)
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			for z := -r; z <= r; z++ {
				pos := c.Center.Add(chunkgrid.ChunkPosition{X: x, Y: y, Z: z})
				p.remeshOne(pos)
			}
		}
	}
}

func (p *Pool) multithreadedRemeshChunks(c MultithreadedRemeshChunksCmd) {
	for _, rel := range chunkgrid.Range(c.IndexFrom, c.IndexTo) {
		pos := c.Center.Add(toChunkPosition(rel))
		p.remeshOne(pos)
	}
}
