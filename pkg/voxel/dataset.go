package voxel

import (
	"fmt"
	"sync"
)

// Dataset interns materials, colors, common-data tuples, and voxel
// descriptors by name so that generators sharing a dataset never allocate
// two equal values. A Dataset built by one generator is local to that
// generator's goroutine during generation and is later merged into the
// world's global dataset (see Merge). Every intern call and Merge take
// the Dataset's own lock.
type Dataset struct {
	mu sync.RWMutex

	materials map[string]Material
	colors    map[string]Color
	common    map[string]*CommonData
	voxels    map[string]*Voxel
}

// NewDataset returns an empty, ready-to-use Dataset.
func NewDataset() *Dataset {
	return &Dataset{
		materials: make(map[string]Material),
		colors:    make(map[string]Color),
		common:    make(map[string]*CommonData),
		voxels:    make(map[string]*Voxel),
	}
}

// InternMaterial returns the material stored under name, registering m if
// name hasn't been seen before. Callers must not reuse a name for two
// different materials; name collisions are treated as equality by
// contract and are not checked.
func (d *Dataset) InternMaterial(name string, m Material) Material {
	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.materials[name]; ok {
		return existing
	}
	d.materials[name] = m
	return m
}

// InternColor is InternMaterial's counterpart for colors.
func (d *Dataset) InternColor(name string, c Color) Color {
	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.colors[name]; ok {
		return existing
	}
	d.colors[name] = c
	return c
}

// commonKey builds the composite key "c:{color}|m:{material}" spec.md §3
// mandates for the CommonData table.
func commonKey(c Color, m Material) string {
	return fmt.Sprintf("c:%d,%d,%d|m:%g", c.R, c.G, c.B, m.Density)
}

// InternCommonData returns the shared *CommonData for (color, material),
// creating it on first use.
func (d *Dataset) InternCommonData(c Color, m Material) *CommonData {
	key := commonKey(c, m)

	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.common[key]; ok {
		return existing
	}
	cd := &CommonData{Material: m, Color: c}
	d.common[key] = cd
	return cd
}

// InternVoxel returns the shared *Voxel for a given CommonData and tag set,
// keyed by the CommonData's composite key plus the tags. Most callers pass
// an empty tag slice and get one shared voxel per (color, material) pair,
// which is what lets a large Octree.Fill store a single reference.
func (d *Dataset) InternVoxel(common *CommonData, tags []string) *Voxel {
	key := voxelKey(common, tags)

	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.voxels[key]; ok {
		return existing
	}
	v := &Voxel{Common: common, Tags: tags}
	d.voxels[key] = v
	return v
}

func voxelKey(common *CommonData, tags []string) string {
	key := commonKey(common.Color, common.Material)
	for _, t := range tags {
		key += "|t:" + t
	}
	return key
}

// Intern is a convenience wrapper composing InternColor, InternMaterial,
// InternCommonData, and InternVoxel behind one call, the shape most
// generators use.
func (d *Dataset) Intern(name string, c Color, m Material) *Voxel {
	color := d.InternColor(name, c)
	material := d.InternMaterial(name, m)
	common := d.InternCommonData(color, material)
	return d.InternVoxel(common, nil)
}

// Merge folds other's entries into d, last-write-wins on identical keys.
// Values for a shared key are required to be equal by contract (spec.md
// §3); Merge does not verify this, matching the append-only dataset model
// spec.md §9 describes the test suite as assuming.
func (d *Dataset) Merge(other *Dataset) {
	other.mu.RLock()
	defer other.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	for k, v := range other.materials {
		d.materials[k] = v
	}
	for k, v := range other.colors {
		d.colors[k] = v
	}
	for k, v := range other.common {
		d.common[k] = v
	}
	for k, v := range other.voxels {
		d.voxels[k] = v
	}
}

// Len reports the number of interned voxel descriptors, mostly useful in
// tests that assert on dataset growth.
func (d *Dataset) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.voxels)
}
