package worldgen

import (
	"fmt"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// PeaksAndValleysGenerator builds a rolling terrain surface from 3D
// noise: everything below an amplitude-scaled band is solid rock,
// everything above it is air, and the band itself is colored by
// whether a cell sits below the water line, above the tree line, or in
// between.
type PeaksAndValleysGenerator struct {
	noise          NoiseSource
	noiseFrequency float64
	noiseAmplitude float64
}

// NewPeaksAndValleysGenerator returns a PeaksAndValleysGenerator seeded
// from seed with the default noise tuning.
func NewPeaksAndValleysGenerator(seed int64) *PeaksAndValleysGenerator {
	return &PeaksAndValleysGenerator{
		noise:          NewPerlinSource(seed),
		noiseFrequency: 0.025,
		noiseAmplitude: 10.0,
	}
}

func clampByte(v int64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// GenerateChunk implements Generator.
func (g *PeaksAndValleysGenerator) GenerateChunk(dataset *voxel.Dataset, origin chunkgrid.ChunkPosition, size int) *chunkgrid.VoxelOctree {
	tree := octree.FromMaxSize[*voxel.Voxel](uint32(size))
	grassLevel := int64(8) - int64(origin.Y)

	o := origin.ChunkOrigin(size)
	worldOriginX, worldOriginY, worldOriginZ := int64(o.X), int64(o.Y), int64(o.Z)
	sizeI := int64(size)

	if float64(worldOriginY+sizeI) < -1.0*g.noiseAmplitude {
		color := voxel.Color{R: 204, G: 204, B: 196}
		v := dataset.Intern(
			fmt.Sprintf("pastel-r=%d,g=%d,b=%d", color.R, color.G, color.B),
			color, voxel.Material{Density: 10},
		)
		tree.Fill(
			octree.Vec3i{X: 0, Y: 0, Z: 0},
			octree.Vec3i{X: uint32(size - 1), Y: uint32(size - 1), Z: uint32(size - 1)},
			v,
		)
		return tree
	}

	if float64(worldOriginY) > 1.0*g.noiseAmplitude {
		return tree
	}

	for i := 0; i < size; i++ {
		x := worldOriginX + int64(i)

		for j := size - 1; j >= 0; j-- {
			y := worldOriginY + int64(j)

			for k := 0; k < size; k++ {
				z := worldOriginZ + int64(k)

				noiseValue := g.noise.Noise3D(
					(float64(x)+1.0)*g.noiseFrequency,
					(float64(y)+1.0)*g.noiseFrequency,
					(float64(z)+1.0)*g.noiseFrequency,
				)
				multiplied := noiseValue * g.noiseAmplitude
				currentMin := grassLevel + int64(multiplied)

				if y > currentMin {
					continue
				}

				belowWater := y < grassLevel-5
				tooHigh := y > grassLevel+7

				var red, blue byte
				switch {
				case y%2 == 0:
					red = 10
				case belowWater:
					red = 20
				case tooHigh:
					red = 250
				default:
					red = 128
				}
				switch {
				case belowWater:
					blue = 150
				case tooHigh:
					blue = 250
				default:
					blue = 10
				}
				green := clampByte(127 + int64(multiplied*10.0))

				color := voxel.Color{R: red, G: green, B: blue}
				v := dataset.Intern(
					fmt.Sprintf("pastel-r=%d,g=%d,b=%d", color.R, color.G, color.B),
					color, voxel.Material{Density: 10},
				)
				tree.Insert(uint32(i), uint32(j), uint32(k), v)
			}
		}
	}

	return tree
}
