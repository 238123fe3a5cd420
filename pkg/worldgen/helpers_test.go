package worldgen

import "github.com/leterax/go-voxels/pkg/voxel"

func newTestDataset() *voxel.Dataset {
	return voxel.NewDataset()
}
