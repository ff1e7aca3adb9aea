package pga

// normLanes spreads a plane normalization factor across the four component
// lanes. The degenerate e0 lane is blended to exactly 1 so the offset passes
// through Normalize untouched.
func normLanes(r float32) [4]float32 {
	lanes := [4]float32{r, r, r, r}
	lanes[0] = 1
	return lanes
}
