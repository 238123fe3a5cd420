package chunkgrid

import "fmt"

// Shell layer L>0 is the cubic surface at Chebyshev distance L around a
// center chunk, containing 24*L^2 + 2 positions (spec.md §4.3). Layer 0
// is the center chunk alone. Positions are produced in six sides, in the
// fixed order top, +X, bottom, -X, -Z, +Z, so that two workers handed
// disjoint index ranges never claim the same chunk and never miss one.

// LayerCount returns the number of chunk positions in shell layer L.
func LayerCount(layer int) int {
	if layer < 0 {
		panic(fmt.Sprintf("chunkgrid: negative shell layer %d", layer))
	}
	if layer == 0 {
		return 1
	}
	return 24*layer*layer + 2
}

// CumulativeCount returns the total number of positions in layers
// [0, layer], i.e. the global index one past the last position of that
// layer.
func CumulativeCount(layer int) int {
	total := 0
	for l := 0; l <= layer; l++ {
		total += LayerCount(l)
	}
	return total
}

// layerAndOffset finds the shell layer containing global index idx and
// idx's offset within that layer.
func layerAndOffset(idx int) (layer, offset int) {
	if idx < 0 {
		panic(fmt.Sprintf("chunkgrid: negative shell index %d", idx))
	}
	base := 0
	for l := 0; ; l++ {
		count := LayerCount(l)
		if idx < base+count {
			return l, idx - base
		}
		base += count
	}
}

// sideSizes returns the six side sizes, in fixed order, for shell layer
// L>0: top, +X, bottom, -X, -Z, +Z.
func sideSizes(layer int) [6]int {
	full := (2*layer + 1) * (2*layer + 1)
	midFull := (2*layer - 1) * (2*layer + 1)
	small := (2*layer - 1) * (2*layer - 1)
	return [6]int{full, midFull, full, midFull, small, small}
}

// decodeOffset maps a (layer, offset) pair to the signed (dx, dy, dz)
// offset from the shell's center, following the fixed side order.
func decodeOffset(layer, offset int) Vec3i {
	if layer == 0 {
		return Vec3i{}
	}
	L := int32(layer)
	sizes := sideSizes(layer)

	side := 0
	remaining := offset
	for remaining >= sizes[side] {
		remaining -= sizes[side]
		side++
	}

	switch side {
	case 0: // top: dy = +L, full (dx, dz) square
		width := 2*layer + 1
		a, b := remaining/width, remaining%width
		return Vec3i{int32(a) - L, L, int32(b) - L}
	case 2: // bottom: dy = -L, full (dx, dz) square
		width := 2*layer + 1
		a, b := remaining/width, remaining%width
		return Vec3i{int32(a) - L, -L, int32(b) - L}
	case 1: // +X: dx = +L, dy strictly interior, dz full
		width := 2*layer + 1
		a, b := remaining/width, remaining%width
		return Vec3i{L, int32(a) - L + 1, int32(b) - L}
	case 3: // -X: dx = -L, dy strictly interior, dz full
		width := 2*layer + 1
		a, b := remaining/width, remaining%width
		return Vec3i{-L, int32(a) - L + 1, int32(b) - L}
	case 4: // -Z: dz = -L, dx and dy strictly interior
		width := 2*layer - 1
		a, b := remaining/width, remaining%width
		return Vec3i{int32(a) - L + 1, int32(b) - L + 1, -L}
	case 5: // +Z: dz = +L, dx and dy strictly interior
		width := 2*layer - 1
		a, b := remaining/width, remaining%width
		return Vec3i{int32(a) - L + 1, int32(b) - L + 1, L}
	default:
		panic("chunkgrid: unreachable shell side")
	}
}

// PositionAtIndex returns the chunk-relative offset at global shell index
// idx, where indices run 0, 1, 2, ... through layer 0, then layer 1, then
// layer 2, and so on.
func PositionAtIndex(idx int) Vec3i {
	layer, offset := layerAndOffset(idx)
	return decodeOffset(layer, offset)
}

// Layer returns every position in exactly shell layer L, in the fixed
// side order.
func Layer(layer int) []Vec3i {
	count := LayerCount(layer)
	out := make([]Vec3i, count)
	for i := 0; i < count; i++ {
		out[i] = decodeOffset(layer, i)
	}
	return out
}

// Range returns the positions at global shell indices [from, to), so that
// workers can be handed disjoint slices of the surrounding cube without
// shared iteration state.
func Range(from, to int) []Vec3i {
	if to < from {
		panic(fmt.Sprintf("chunkgrid: shell range [%d, %d) has negative length", from, to))
	}
	out := make([]Vec3i, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, PositionAtIndex(i))
	}
	return out
}
