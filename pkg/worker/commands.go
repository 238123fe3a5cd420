package worker

import "github.com/leterax/go-voxels/pkg/chunkgrid"

// Command is one unit of work a Pool worker pulls off the queue. The
// concrete types below are the only implementations; Pool.handle
// switches on them exhaustively.
type Command interface {
	isCommand()
}

// EnsureChunksCmd creates (but does not generate) every chunk in shell
// indices [IndexFrom, IndexTo) around Center that doesn't exist yet. The
// worker replies with ChunksEnsuredResult carrying the freshly created
// chunks.
type EnsureChunksCmd struct {
	Group            GroupID
	Center           chunkgrid.ChunkPosition
	IndexFrom, IndexTo int
}

func (EnsureChunksCmd) isCommand() {}

// GenerateChunksCmd fills every still-Empty chunk in shell indices
// [IndexFrom, IndexTo) around Center using the pool's generator,
// creating any chunk in that range that does not exist yet (an
// EnsureChunksCmd for the same range may still be running on another
// worker). The worker replies with ChunksGeneratedResult once done.
type GenerateChunksCmd struct {
	Group            GroupID
	Center           chunkgrid.ChunkPosition
	IndexFrom, IndexTo int
}

func (GenerateChunksCmd) isCommand() {}

// RemeshChunksCmd remeshes every Dirty chunk within RenderDistance of
// Center whose 26 neighbours are all generated. It produces no result;
// callers poll chunk state directly.
type RemeshChunksCmd struct {
	Center         chunkgrid.ChunkPosition
	RenderDistance int
}

func (RemeshChunksCmd) isCommand() {}

// MultithreadedRemeshChunksCmd is RemeshChunksCmd restricted to shell
// indices [IndexFrom, IndexTo), so several workers can remesh disjoint
// slices of the same surrounding cube concurrently.
type MultithreadedRemeshChunksCmd struct {
	Center           chunkgrid.ChunkPosition
	IndexFrom, IndexTo int
}

func (MultithreadedRemeshChunksCmd) isCommand() {}

// UpdateChunkLoaderChunksCmd recomputes which chunks a loader needs
// simulated and rendered after it moves by Shift chunks to NewPos. The
// worker replies with ChunksStateUpdateResult.
type UpdateChunkLoaderChunksCmd struct {
	Loader         LoaderID
	RenderDistance int
	NewPos         chunkgrid.ChunkPosition
	Shift          chunkgrid.ChunkPosition
}

func (UpdateChunkLoaderChunksCmd) isCommand() {}
