package worker

import "github.com/leterax/go-voxels/pkg/chunkgrid"

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// axisProcessor computes the leading slab of positions a moving loader
// newly needs, along one axis. coords places (a, b, c) back into the
// right (X, Y, Z) slot for that axis. Simulated chunks get one extra
// ring of render distance so meshing has generated neighbours to read
// (spec.md §4.4).
func axisProcessor(
	toSimulate, toRender *[]chunkgrid.ChunkPosition,
	fromSim, fromRend, shift, secondDim, thirdDim, renderDistance int32,
	coords func(a, b, c int32) chunkgrid.ChunkPosition,
) {
	var simFrom, simTo, rendFrom, rendTo int32

	// The slab runs back from the leading face by the move's length,
	// capped at the region's width: a longer jump uncovers the whole
	// region and nothing beyond it.
	span := shift * sign32(shift)
	simSpan, rendSpan := min(span, 2*renderDistance+3), min(span, 2*renderDistance+1)

	if shift < 0 {
		simFrom, simTo = fromSim, fromSim+simSpan
		rendFrom, rendTo = fromRend, fromRend+rendSpan
	} else {
		simFrom, simTo = fromSim-simSpan+1, fromSim+1
		rendFrom, rendTo = fromRend-rendSpan+1, fromRend+1
	}

	for a := simFrom; a < simTo; a++ {
		for b := secondDim - renderDistance - 1; b <= secondDim+renderDistance+1; b++ {
			for c := thirdDim - renderDistance - 1; c <= thirdDim+renderDistance+1; c++ {
				*toSimulate = append(*toSimulate, coords(a, b, c))
			}
		}
	}

	for a := rendFrom; a < rendTo; a++ {
		for b := secondDim - renderDistance; b <= secondDim+renderDistance; b++ {
			for c := thirdDim - renderDistance; c <= thirdDim+renderDistance; c++ {
				*toRender = append(*toRender, coords(a, b, c))
			}
		}
	}
}

func (p *Pool) updateChunkLoaderChunks(c UpdateChunkLoaderChunksCmd) {
	rd := int32(c.RenderDistance)
	pos := c.NewPos
	shift := c.Shift

	// The leading slab sits on the +axis face the loader is moving
	// toward, not the trailing face it's moving away from: offset from
	// the new position in the direction of travel (sign(shift)), not
	// against it.
	fromSimX := pos.X + sign32(shift.X)*(rd+1)
	fromSimY := pos.Y + sign32(shift.Y)*(rd+1)
	fromSimZ := pos.Z + sign32(shift.Z)*(rd+1)

	fromRendX := pos.X + sign32(shift.X)*rd
	fromRendY := pos.Y + sign32(shift.Y)*rd
	fromRendZ := pos.Z + sign32(shift.Z)*rd

	var toSimulate, toRender []chunkgrid.ChunkPosition

	axisProcessor(&toSimulate, &toRender, fromSimX, fromRendX, shift.X, pos.Y, pos.Z, rd,
		func(a, b, c int32) chunkgrid.ChunkPosition { return chunkgrid.ChunkPosition{X: a, Y: b, Z: c} })
	axisProcessor(&toSimulate, &toRender, fromSimY, fromRendY, shift.Y, pos.X, pos.Z, rd,
		func(a, b, c int32) chunkgrid.ChunkPosition { return chunkgrid.ChunkPosition{X: b, Y: a, Z: c} })
	axisProcessor(&toSimulate, &toRender, fromSimZ, fromRendZ, shift.Z, pos.X, pos.Y, rd,
		func(a, b, c int32) chunkgrid.ChunkPosition { return chunkgrid.ChunkPosition{X: b, Y: c, Z: a} })

	p.post(ChunksStateUpdateResult{
		Loader:     c.Loader,
		ToSimulate: toSimulate,
		ToRender:   toRender,
	})
}
