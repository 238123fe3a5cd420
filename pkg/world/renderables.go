package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-voxels/pkg/camera"
	"github.com/leterax/go-voxels/pkg/chunkgrid"
)

func (w *World) snapshotChunks() []*chunkgrid.Chunk {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*chunkgrid.Chunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		out = append(out, c)
	}
	return out
}

// Renderables returns every face of every Meshed chunk, unfiltered.
func (w *World) Renderables() []chunkgrid.Face {
	var faces []chunkgrid.Face
	for _, c := range w.snapshotChunks() {
		if c.State() == chunkgrid.StateMeshed {
			faces = append(faces, c.Faces()...)
		}
	}
	return faces
}

// RenderablesInFrustum returns faces belonging only to Meshed chunks
// whose bounding cube intersects frustum, culling the rest before the
// caller ever touches their face lists.
func (w *World) RenderablesInFrustum(frustum *camera.Frustum) []chunkgrid.Face {
	size := float32(w.cfg.ChunkSize)

	var faces []chunkgrid.Face
	for _, c := range w.snapshotChunks() {
		if c.State() != chunkgrid.StateMeshed {
			continue
		}

		origin := c.Position().ChunkOrigin(w.cfg.ChunkSize)
		min := mgl32.Vec3{float32(origin.X), float32(origin.Y), float32(origin.Z)}
		max := min.Add(mgl32.Vec3{size, size, size})

		if frustum.IntersectsAABB(min, max) == camera.Outside {
			continue
		}
		faces = append(faces, c.Faces()...)
	}
	return faces
}
