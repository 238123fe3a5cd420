package worker

import "github.com/leterax/go-voxels/pkg/chunkgrid"

// Result is one message a Pool worker posts back on its result channel.
type Result interface {
	isResult()
}

// ChunksEnsuredResult answers an EnsureChunksCmd: the chunks created by
// this call, alongside the request parameters so the caller can tell
// which in-flight request just completed.
type ChunksEnsuredResult struct {
	Group              GroupID
	Center             chunkgrid.ChunkPosition
	IndexFrom, IndexTo int
	New                []*chunkgrid.Chunk
}

func (ChunksEnsuredResult) isResult() {}

// ChunksGeneratedResult answers a GenerateChunksCmd: generation for that
// group's shell range has finished.
type ChunksGeneratedResult struct {
	Group GroupID
}

func (ChunksGeneratedResult) isResult() {}

// ChunksStateUpdateResult answers an UpdateChunkLoaderChunksCmd: the
// chunk positions the loader newly needs simulated, and the (smaller)
// subset it newly needs rendered, after its move.
type ChunksStateUpdateResult struct {
	Loader     LoaderID
	ToSimulate []chunkgrid.ChunkPosition
	ToRender   []chunkgrid.ChunkPosition
}

func (ChunksStateUpdateResult) isResult() {}
