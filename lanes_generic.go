//go:build !amd64

package pga

// normLanes spreads a plane normalization factor across the four component
// lanes. The degenerate e0 lane starts empty and has 1 added in, so the
// offset passes through Normalize untouched on every architecture.
func normLanes(r float32) [4]float32 {
	lanes := [4]float32{0, r, r, r}
	lanes[0] += 1
	return lanes
}
