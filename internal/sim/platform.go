package sim

// Platform is the walkable horizontal span of the stage floor.
// It is recomputed on resize and selected by stage.
type Platform struct {
	LeftEdge  float64
	RightEdge float64
	Width     float64
}

// newPlatform centers a span covering fraction of the viewport width.
func newPlatform(viewportW, fraction float64) Platform {
	w := viewportW * fraction
	left := (viewportW - w) / 2
	return Platform{
		LeftEdge:  left,
		RightEdge: left + w,
		Width:     w,
	}
}

// Supports reports whether a player centered at x stands on the platform.
func (p Platform) Supports(x float64) bool {
	return x >= p.LeftEdge && x <= p.RightEdge
}
