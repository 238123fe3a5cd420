package worldgen

import (
	"fmt"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// CubeGenerator carves a banded sphere-in-a-box out of solid noise: a
// thin shell of grass-colored voxels near the dimensions' boundary,
// deepening through two earth tones toward a hot core, with anything
// outside a noise threshold or too close to the exact center left
// empty. Chunks with a negative index or lying past the configured
// dimensions are returned empty.
type CubeGenerator struct {
	noise          NoiseSource
	noiseFrequency float64

	dimX, dimY, dimZ       int64
	halfX, halfY, halfZ    int64
	maxDimension           int64

	colorStart      voxel.Color
	colorDeep1      voxel.Color
	colorDeep2      voxel.Color
	colorNearCenter voxel.Color
	colorCenter     voxel.Color
}

// NewCubeGenerator returns a CubeGenerator whose noise is seeded from
// seed and whose solid region spans dimX x dimY x dimZ voxels.
func NewCubeGenerator(seed int64, dimX, dimY, dimZ int64) *CubeGenerator {
	max := dimX
	if dimY > max {
		max = dimY
	}
	if dimZ > max {
		max = dimZ
	}
	return &CubeGenerator{
		noise:           NewPerlinSource(seed),
		noiseFrequency:  0.025,
		dimX:            dimX,
		dimY:            dimY,
		dimZ:            dimZ,
		halfX:           dimX / 2,
		halfY:           dimY / 2,
		halfZ:           dimZ / 2,
		maxDimension:    max,
		colorStart:      voxel.Color{R: 25, G: 150, B: 15},
		colorDeep1:      voxel.Color{R: 100, G: 50, B: 15},
		colorDeep2:      voxel.Color{R: 53, G: 10, B: 0},
		colorNearCenter: voxel.Color{R: 255, G: 0, B: 0},
		colorCenter:     voxel.Color{R: 250, G: 100, B: 20},
	}
}

func wrapMod(v, dim int64) int64 {
	m := v % dim
	if m < 0 {
		m += dim
	}
	return m
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func lerpByte(a, b byte, t float64) byte {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v + 0.5)
}

func lerpColor(c1, c2 voxel.Color, t float64) voxel.Color {
	return voxel.Color{
		R: lerpByte(c1.R, c2.R, t),
		G: lerpByte(c1.G, c2.G, t),
		B: lerpByte(c1.B, c2.B, t),
	}
}

// GenerateChunk implements Generator.
func (g *CubeGenerator) GenerateChunk(dataset *voxel.Dataset, origin chunkgrid.ChunkPosition, size int) *chunkgrid.VoxelOctree {
	tree := octree.FromMaxSize[*voxel.Voxel](uint32(size))

	if origin.X < 0 || origin.Y < 0 || origin.Z < 0 {
		return tree
	}
	chunksX := g.dimX / int64(size)
	chunksY := g.dimY / int64(size)
	chunksZ := g.dimZ / int64(size)
	if int64(origin.X) >= chunksX || int64(origin.Y) >= chunksY || int64(origin.Z) >= chunksZ {
		return tree
	}

	worldOriginX := int64(origin.X) * int64(size)
	worldOriginY := int64(origin.Y) * int64(size)
	worldOriginZ := int64(origin.Z) * int64(size)
	halfMaxDim := float64(g.maxDimension) / 2.0

	for i := 0; i < size; i++ {
		x := worldOriginX + int64(i)
		xMod := wrapMod(x, g.dimX)

		for j := 0; j < size; j++ {
			y := worldOriginY + int64(j)
			yMod := wrapMod(y, g.dimY)

			for k := 0; k < size; k++ {
				z := worldOriginZ + int64(k)
				zMod := wrapMod(z, g.dimZ)

				value := g.noise.Noise3D(
					(float64(x)+1.0)*g.noiseFrequency,
					(float64(y)+1.0)*g.noiseFrequency,
					(float64(z)+1.0)*g.noiseFrequency,
				)

				maxCoord := maxI64(
					maxI64(
						g.halfX-minI64(xMod, g.dimX-1-xMod),
						g.halfY-minI64(yMod, g.dimY-1-yMod),
					),
					g.halfZ-minI64(zMod, g.dimZ-1-zMod),
				)

				if value < 0.25 || maxCoord < 5 {
					continue
				}

				gradient := float64(maxCoord) / halfMaxDim
				gradientInv := 1.0 - gradient

				var color voxel.Color
				switch {
				case gradientInv == 0.0:
					color = g.colorStart
				case gradientInv < 0.8:
					color = lerpColor(g.colorDeep1, g.colorDeep2, gradientInv/0.8)
				case gradientInv < 0.9:
					color = lerpColor(g.colorDeep2, g.colorNearCenter, (gradientInv-0.8)/0.2)
				default:
					color = g.colorCenter
				}

				v := dataset.Intern(
					fmt.Sprintf("grass-%g", gradient),
					color,
					voxel.Material{Density: 10},
				)
				tree.Insert(uint32(i), uint32(j), uint32(k), v)
			}
		}
	}

	return tree
}
