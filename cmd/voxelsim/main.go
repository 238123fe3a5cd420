// Command voxelsim drives the world engine headlessly: it spins up a
// World, parks one chunk loader at the origin, waits until every chunk
// of the requested region has been created (or a timeout passes), and
// then reports the chunk count, how many chunks of the loader's render
// set are meshed at that moment, and the face count. It exercises the
// same pipeline a graphical client would, without a renderer or window
// attached.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/world"
	"github.com/leterax/go-voxels/pkg/worldgen"
)

func main() {
	renderDist := flag.Int("renderdist", 4, "render distance, in chunks")
	chunkSize := flag.Int("chunksize", 32, "chunk edge length (<= 64)")
	seed := flag.Int64("seed", 1, "world generator seed")
	workers := flag.Int("workers", 0, "chunk worker count (0 = runtime.NumCPU())")
	generator := flag.String("generator", string(worldgen.KindPlainsWithTrees), "cube | floating_islands | peaks_and_valleys | plains_with_trees")
	settleTimeout := flag.Duration("timeout", 10*time.Second, "how long to wait for the initial region to settle")
	flag.Parse()

	opts := []world.Option{
		world.WithChunkSize(*chunkSize),
		world.WithRenderDistance(*renderDist),
		world.WithSeed(*seed),
		world.WithGenerator(worldgen.Kind(*generator)),
	}
	if *workers > 0 {
		opts = append(opts, world.WithWorkerCount(*workers))
	}

	w := world.New(opts...)
	defer w.Close()

	fmt.Printf("voxelsim: starting world (chunk_size=%d render_distance=%d generator=%s seed=%d)\n",
		*chunkSize, *renderDist, *generator, *seed)

	loader := w.AddLoader(chunkgrid.ChunkPosition{})
	expected := chunkgrid.CumulativeCount(*renderDist + 1)

	deadline := time.Now().Add(*settleTimeout)
	for time.Now().Before(deadline) {
		if w.ChunkCount() >= expected {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	meshed := 0
	for _, pos := range w.LoaderRenderSet(loader) {
		if c, ok := w.Get(pos); ok && c.State() == chunkgrid.StateMeshed {
			meshed++
		}
	}

	faces := w.Renderables()

	fmt.Printf("voxelsim: chunks=%d/%d meshed_in_render_set=%d faces=%d\n",
		w.ChunkCount(), expected, meshed, len(faces))

	if w.ChunkCount() < expected {
		log.Printf("voxelsim: region did not fully settle within %s", *settleTimeout)
	}
}
