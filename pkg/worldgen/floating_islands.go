package worldgen

import (
	"fmt"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// FloatingIslandsGenerator scatters disconnected blobs of solid voxels
// wherever 3D noise crosses a high threshold, giving a top crust color
// to any voxel whose cell directly above falls back under the
// threshold and an interior color to the rest.
type FloatingIslandsGenerator struct {
	noise          NoiseSource
	noiseFrequency float64
	colorTop       voxel.Color
	color          voxel.Color
	threshold      float64
}

// NewFloatingIslandsGenerator returns a FloatingIslandsGenerator seeded
// from seed with the default island density and coloring.
func NewFloatingIslandsGenerator(seed int64) *FloatingIslandsGenerator {
	return &FloatingIslandsGenerator{
		noise:          NewPerlinSource(seed),
		noiseFrequency: 0.025,
		colorTop:       voxel.Color{R: 25, G: 150, B: 15},
		color:          voxel.Color{R: 100, G: 50, B: 15},
		threshold:      0.9,
	}
}

// SetColors overrides the interior and crust colors, the way
// PlainsWithTreesGenerator recolors its embedded clouds generator.
func (g *FloatingIslandsGenerator) SetColors(interior, top voxel.Color) {
	g.color = interior
	g.colorTop = top
}

func (g *FloatingIslandsGenerator) fillInto(dataset *voxel.Dataset, tree *chunkgrid.VoxelOctree, worldOriginX, worldOriginY, worldOriginZ int64, size int) {
	for i := 0; i < size; i++ {
		x := worldOriginX + int64(i)

		for j := size - 1; j >= 0; j-- {
			y := worldOriginY + int64(j)

			for k := 0; k < size; k++ {
				z := worldOriginZ + int64(k)

				value := g.noise.Noise3D(
					(float64(x)+1.0)*g.noiseFrequency,
					(float64(y)+1.0)*g.noiseFrequency,
					(float64(z)+1.0)*g.noiseFrequency,
				)
				if value < g.threshold {
					continue
				}

				valueAbove := g.noise.Noise3D(
					(float64(x)+1.0)*g.noiseFrequency,
					(float64(y)+2.0)*g.noiseFrequency,
					(float64(z)+1.0)*g.noiseFrequency,
				)

				color := g.color
				density := 20.0
				if valueAbove < g.threshold {
					color = g.colorTop
					density = 10.0
				}

				v := dataset.Intern(
					fmt.Sprintf("pastel-r=%d,g=%d,b=%d", color.R, color.G, color.B),
					color,
					voxel.Material{Density: density},
				)
				tree.Insert(uint32(i), uint32(j), uint32(k), v)
			}
		}
	}
}

// GenerateChunk implements Generator.
func (g *FloatingIslandsGenerator) GenerateChunk(dataset *voxel.Dataset, origin chunkgrid.ChunkPosition, size int) *chunkgrid.VoxelOctree {
	tree := octree.FromMaxSize[*voxel.Voxel](uint32(size))
	o := origin.ChunkOrigin(size)
	g.fillInto(dataset, tree, int64(o.X), int64(o.Y), int64(o.Z), size)
	return tree
}
