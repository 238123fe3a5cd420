package worldgen

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/quadtree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// PlainsWithTreesGenerator layers a hill-smoothed height field over a
// flat plain, scatters a sparse forest over the ground-level (Y == 0)
// chunks west of X == 0, and occasionally merges a floating island patch into chunks
// high above the surface.
type PlainsWithTreesGenerator struct {
	clouds *FloatingIslandsGenerator

	noise      NoiseSource
	hillsNoise NoiseSource

	noiseFrequency       float64
	noiseFrequencyHills  float64
	noiseAmplitude       float64
	noiseAmplitudeHills  float64
	hillsSmoothingLength int64

	seed int64
}

// NewPlainsWithTreesGenerator returns a PlainsWithTreesGenerator seeded
// from seed with the default hill and cloud tuning.
func NewPlainsWithTreesGenerator(seed int64) *PlainsWithTreesGenerator {
	clouds := NewFloatingIslandsGenerator(seed)
	clouds.SetColors(voxel.Color{R: 250, G: 250, B: 250}, voxel.Color{R: 150, G: 150, B: 250})

	return &PlainsWithTreesGenerator{
		clouds:               clouds,
		noise:                NewPerlinSource(seed),
		hillsNoise:           NewPerlinSource(^seed),
		noiseFrequency:       0.01,
		noiseFrequencyHills:  0.01,
		noiseAmplitude:       12.0,
		noiseAmplitudeHills:  100.0,
		hillsSmoothingLength: 100,
		seed:                 seed,
	}
}

func clampI64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func plainsColor(currentMin int64, noiseValue float64, grassLevel int64) voxel.Color {
	belowWater := currentMin < grassLevel-8
	high := currentMin > grassLevel+15
	peak := currentMin > grassLevel+50
	even := currentMin%2 == 0

	bandHigh := high && noiseValue > 0.7

	var red, green, blue byte
	switch {
	case peak:
		if even {
			red, green, blue = 150, 150, 150
		} else {
			red, green, blue = 190, 190, 190
		}
	case bandHigh:
		red = clampByte(int64(maxF(0, 50-noiseValue)))
		green = clampByte(int64(maxF(0, 220-noiseValue*4.0)))
		blue = clampByte(int64(maxF(0, 50-noiseValue)))
	case belowWater:
		if even {
			red = 10
		} else {
			red = 25
		}
		green = clampByte(int64(minF(255, noiseValue*10.0)))
		if even {
			blue = 175
		} else {
			blue = 200
		}
	default:
		red = 30
		if even {
			green = 125
		} else {
			green = 145
		}
		blue = 20
	}

	return voxel.Color{R: red, G: green, B: blue}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// GenerateChunk implements Generator.
func (g *PlainsWithTreesGenerator) GenerateChunk(dataset *voxel.Dataset, origin chunkgrid.ChunkPosition, size int) *chunkgrid.VoxelOctree {
	tree := octree.FromMaxSize[*voxel.Voxel](uint32(size))
	o := origin.ChunkOrigin(size)
	worldOriginX, worldOriginY, worldOriginZ := int64(o.X), int64(o.Y), int64(o.Z)
	grassLevel := int64(8) - worldOriginY

	// tops caches each column's local surface height (-1 if the column is
	// entirely air) so plantForest can look up a planting spot without
	// re-walking the octree.
	tops := make([][]int32, size)
	for i := range tops {
		tops[i] = make([]int32, size)
	}

	for i := 0; i < size; i++ {
		x := worldOriginX + int64(i)

		for k := 0; k < size; k++ {
			z := worldOriginZ + int64(k)

			noiseValue := g.noise.Noise3D(float64(x)*g.noiseFrequency, 1.0, float64(z)*g.noiseFrequency) * g.noiseAmplitude

			if worldOriginZ >= 0 {
				mul := float64(clampI64(z, 0, g.hillsSmoothingLength)) / float64(g.hillsSmoothingLength)
				noiseValue += (g.hillsNoise.Noise3D(float64(x)*g.noiseFrequencyHills, 1.0, float64(z)*g.noiseFrequencyHills) + 0.5) * g.noiseAmplitudeHills * mul
			}

			currentMin := grassLevel + int64(noiseValue)
			if currentMin < 0 || currentMin < worldOriginY {
				tops[i][k] = -1
				continue
			}

			top := currentMin - worldOriginY
			if top > int64(size-1) {
				top = int64(size - 1)
			}
			tops[i][k] = int32(top)

			color := plainsColor(currentMin, noiseValue, grassLevel)
			v := dataset.Intern(
				fmt.Sprintf("grass_%d", currentMin),
				color, voxel.Material{Density: 10},
			)
			tree.Fill(
				octree.Vec3i{X: uint32(i), Y: 0, Z: uint32(k)},
				octree.Vec3i{X: uint32(i), Y: uint32(top), Z: uint32(k)},
				v,
			)
		}
	}

	if origin.Y == 0 && origin.X < 0 {
		heightMap := buildHeightMap(size, tops)
		g.plantForest(dataset, tree, origin, size, heightMap)
	}

	if origin.Y >= 2 {
		rngSeed := worldOriginX + worldOriginY*13 + worldOriginZ*107
		rng := rand.New(rand.NewSource(rngSeed))
		rngVal := byte(rng.Intn(256))
		if rngVal > 175 {
			g.clouds.fillInto(dataset, tree, worldOriginX, worldOriginY, worldOriginZ, size)
		}
	}

	return tree
}

// buildHeightMap packs tops, a size x size grid of per-column surface
// heights (-1 for air columns), into a Quadtree so plantForest can query
// a planting spot in O(depth) instead of walking the octree per
// candidate. The quadtree's edge is the next power of two at or above
// size; sample points beyond size read as -1, same as an air column.
func buildHeightMap(size int, tops [][]int32) *quadtree.Quadtree {
	depth := uint8(bits.Len32(uint32(size - 1)))
	return quadtree.Build(depth, func(x, y uint32) float64 {
		if int(x) >= size || int(y) >= size {
			return -1
		}
		return float64(tops[x][y])
	})
}

func (g *PlainsWithTreesGenerator) plantForest(dataset *voxel.Dataset, tree *chunkgrid.VoxelOctree, origin chunkgrid.ChunkPosition, size int, heightMap *quadtree.Quadtree) {
	seed := (int64(absI32(origin.X)) << 32) | (int64(absI32(origin.Y)) << 16) | int64(absI32(origin.Z))
	randoms := generateUniqueUint32(seed, 100)

	// If the whole chunk is cached as grounded (no air column anywhere),
	// every candidate must sample non-negative; quadrants narrow that
	// guarantee when the chunk as a whole isn't uniformly grounded.
	allGrounded := heightMap.Min() >= 0

	edge := heightMap.EdgeLength()
	half := edge / 2
	var quadrantGrounded [4]bool
	if !allGrounded && half > 0 {
		quadrantGrounded[0] = heightMap.RegionMin(0, 0, half) >= 0
		quadrantGrounded[1] = heightMap.RegionMin(half, 0, half) >= 0
		quadrantGrounded[2] = heightMap.RegionMin(0, half, half) >= 0
		quadrantGrounded[3] = heightMap.RegionMin(half, half, half) >= 0
	}

	for _, r := range randoms {
		if r%100 >= 20 {
			continue
		}

		cells := uint32(size) * uint32(size)
		idx := r % cells
		x := idx % uint32(size)
		z := (idx / uint32(size)) % uint32(size)

		top := heightMap.Value(x, z)
		if top < 0 {
			quadrant := 0
			if x >= half {
				quadrant |= 1
			}
			if z >= half {
				quadrant |= 2
			}
			if allGrounded || (half > 0 && quadrantGrounded[quadrant]) {
				panic("plantForest: quadtree region cached as grounded but sampled an air column")
			}
			continue
		}

		plantTree(dataset, tree, x, uint32(top)+1, z, size)
	}
}

func absI32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func plantTree(dataset *voxel.Dataset, tree *chunkgrid.VoxelOctree, x, y, z uint32, size int) {
	if x < 2 || x > uint32(size)-3 || y > uint32(size)-9 || z < 2 || z > uint32(size)-3 {
		return
	}

	log := dataset.Intern("log", voxel.Color{R: 175, G: 40, B: 20}, voxel.Material{Density: 10})
	leaves := dataset.Intern("leaves", voxel.Color{R: 20, G: 100, B: 20}, voxel.Material{Density: 10})

	tree.Fill(
		octree.Vec3i{X: x, Y: y, Z: z},
		octree.Vec3i{X: x, Y: y + 5, Z: z},
		log,
	)
	tree.Fill(
		octree.Vec3i{X: x - 2, Y: y + 5, Z: z - 2},
		octree.Vec3i{X: x + 2, Y: y + 7, Z: z + 2},
		leaves,
	)
	tree.Fill(
		octree.Vec3i{X: x - 1, Y: y + 8, Z: z - 1},
		octree.Vec3i{X: x + 1, Y: y + 8, Z: z + 1},
		leaves,
	)
}

// generateUniqueUint32 returns n distinct pseudo-random uint32 values
// deterministically derived from seed.
func generateUniqueUint32(seed int64, n int) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[uint32]struct{}, n)
	out := make([]uint32, 0, n)

	for len(out) < n {
		v := rng.Uint32()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
