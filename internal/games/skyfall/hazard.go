package skyfall

import (
	"math"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
	"github.com/vovakirdan/tui-skyfall/internal/session"
)

const (
	// DefaultFallSpeed substitutes a non-positive configured fall speed, cells/sec.
	DefaultFallSpeed = 5.0

	// despawnMargin is how far below the viewport's bottom edge a hazard may
	// fall before it is destroyed.
	despawnMargin = 2.0

	// fallbackLowerBoundary is the despawn row used when no viewport is
	// available (fallback height plus the margin).
	fallbackLowerBoundary = fallbackViewportH + despawnMargin
)

// Hazard is a single falling obstacle. The x field is the sprite's
// horizontal center; y is its top row. Each instance falls straight down at
// a fixed speed, is destroyed past the lower boundary, and ends the run on
// first contact with the player.
type Hazard struct {
	sess *session.Session

	x      float64
	y      float64
	speed  float64
	width  int
	height int

	lowerY    float64
	collided  bool
	destroyed bool

	// onDestroyed fires exactly once when the hazard despawns past the
	// lower boundary. Set by the spawner to maintain its registry.
	onDestroyed func(*Hazard)
}

// newHazard creates a hazard at the given position. The lower boundary is
// computed once from the viewport; without one the fallback constant is used.
func newHazard(x, y float64, cfg config.SkyfallHazards, vp Viewport, vpOK bool, sess *session.Session) *Hazard {
	width := cfg.Width
	if width <= 0 {
		width = 1
	}
	height := cfg.Height
	if height <= 0 {
		height = 1
	}

	lowerY := fallbackLowerBoundary
	if vpOK {
		lowerY = vp.BottomY() + despawnMargin
	}

	h := &Hazard{
		sess:   sess,
		x:      x,
		y:      y,
		width:  width,
		height: height,
		lowerY: lowerY,
	}
	h.SetFallSpeed(cfg.FallSpeed)
	return h
}

// SetFallSpeed configures the fall speed, substituting the built-in default
// for non-positive values.
func (h *Hazard) SetFallSpeed(speed float64) {
	if speed <= 0 {
		speed = DefaultFallSpeed
	}
	h.speed = speed
}

// FallSpeed returns the effective fall speed in cells/sec.
func (h *Hazard) FallSpeed() float64 {
	return h.speed
}

// Tick advances the hazard by one frame of raw (unscaled) elapsed time.
// Movement is skipped entirely while the session is over, while simulation
// time is halted, or when the speed is not positive; the spawner's delay
// timers run on the real clock and are not subject to this freeze.
func (h *Hazard) Tick(dt float64) {
	if h.destroyed {
		return
	}
	clock := h.sess.Clock()
	if h.sess.IsOver() || clock.Halted() || h.speed <= 0 {
		return
	}

	h.y += h.speed * clock.Scaled(dt)

	if h.y > h.lowerY {
		h.destroy()
	}
}

// destroy marks the hazard dead and fires the destroyed notification once.
func (h *Hazard) destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	if h.onDestroyed != nil {
		h.onDestroyed(h)
	}
}

// Destroyed reports whether the hazard has despawned.
func (h *Hazard) Destroyed() bool {
	return h.destroyed
}

// OnPlayerContact handles an overlap with the player. Entry and continued
// overlap funnel in here every tick; only the first contact registers - the
// collided flag makes the instance inert to further contact. The flag is
// instance-local, so one hazard's collision never suppresses another's.
func (h *Hazard) OnPlayerContact() {
	if h.collided {
		return
	}
	h.collided = true
	h.sess.GameOver()
}

// Collided reports whether this hazard has already registered a collision.
func (h *Hazard) Collided() bool {
	return h.collided
}

// X returns the sprite's horizontal center.
func (h *Hazard) X() float64 {
	return h.x
}

// Y returns the sprite's top row.
func (h *Hazard) Y() float64 {
	return h.y
}

// Rect returns the hazard's collision rectangle in screen coordinates.
func (h *Hazard) Rect() core.Rect {
	left := int(math.Round(h.x - float64(h.width)/2))
	return core.NewRect(left, int(math.Round(h.y)), h.width, h.height)
}
