package worker

import (
	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/voxel"
)

func toChunkPosition(v chunkgrid.Vec3i) chunkgrid.ChunkPosition {
	return chunkgrid.ChunkPosition{X: v.X, Y: v.Y, Z: v.Z}
}

func (p *Pool) ensureChunks(c EnsureChunksCmd) {
	positions := chunkgrid.Range(c.IndexFrom, c.IndexTo)
	created := make([]*chunkgrid.Chunk, 0, len(positions))

	for _, rel := range positions {
		pos := c.Center.Add(toChunkPosition(rel))
		chunk, isNew := p.store.GetOrCreate(pos)
		if isNew {
			created = append(created, chunk)
		}
	}

	p.post(ChunksEnsuredResult{
		Group:     c.Group,
		Center:    c.Center,
		IndexFrom: c.IndexFrom,
		IndexTo:   c.IndexTo,
		New:       created,
	})
}

func (p *Pool) generateChunks(c GenerateChunksCmd) {
	positions := chunkgrid.Range(c.IndexFrom, c.IndexTo)
	dataset := voxel.NewDataset()

	var toGenerate []chunkgrid.ChunkPosition
	for _, rel := range positions {
		pos := c.Center.Add(toChunkPosition(rel))
		chunk, _ := p.store.GetOrCreate(pos)
		if chunk.State() != chunkgrid.StateEmpty {
			continue
		}
		toGenerate = append(toGenerate, pos)
	}

	for _, pos := range toGenerate {
		tree := p.generator.GenerateChunk(dataset, pos, p.chunkSize)

		chunk, ok := p.store.Get(pos)
		if !ok {
			continue
		}
		if chunk.State() == chunkgrid.StateEmpty {
			chunk.SetData(tree)
		}
	}

	p.store.MergeDataset(dataset)
	p.post(ChunksGeneratedResult{Group: c.Group})
}
