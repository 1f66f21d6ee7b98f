package skyfall

import "github.com/vovakirdan/tui-skyfall/internal/core"

// Fallback extents used when no usable viewport is available.
// Matches the default terminal size the platform assumes elsewhere.
const (
	fallbackViewportW = 80.0
	fallbackViewportH = 24.0
)

// Viewport is the visible region of the world in cell units. The origin is
// the top-left corner; x grows right and y grows down, matching screen space.
type Viewport struct {
	W float64
	H float64
}

// resolveViewport derives the viewport from the runtime config. The second
// return value is false when the config carries no usable dimensions, in
// which case callers fall back to the documented constants.
func resolveViewport(cfg core.RuntimeConfig) (Viewport, bool) {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		return Viewport{W: fallbackViewportW, H: fallbackViewportH}, false
	}
	return Viewport{W: float64(cfg.ScreenW), H: float64(cfg.ScreenH)}, true
}

// HalfWidth returns half the visible width.
func (v Viewport) HalfWidth() float64 {
	return v.W / 2
}

// TopY returns the y coordinate of the top visible edge.
func (v Viewport) TopY() float64 {
	return 0
}

// BottomY returns the y coordinate of the bottom visible edge.
func (v Viewport) BottomY() float64 {
	return v.H
}
