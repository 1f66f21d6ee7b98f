package skyfall

import (
	"math"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
	"github.com/vovakirdan/tui-skyfall/internal/session"
)

// defaultMoveSpeed substitutes a non-positive configured move speed, cells/sec.
const defaultMoveSpeed = 20.0

// Player is the controllable character at the bottom of the screen. It moves
// horizontally within bounds derived once from the viewport; the x field is
// the sprite's horizontal center in world cells.
type Player struct {
	sess *session.Session

	x      float64
	row    int // Top row of the sprite in screen space
	speed  float64
	width  int
	height int

	minX float64
	maxX float64

	facingRight bool
}

// newPlayer creates the player positioned at the horizontal center of the
// viewport. Movement bounds are computed here, once, from the viewport
// half-width and the sprite's own half-width so the rendered extent never
// crosses the screen edge.
func newPlayer(cfg config.SkyfallPlayer, vp Viewport, sess *session.Session) *Player {
	speed := cfg.MoveSpeed
	if speed <= 0 {
		speed = defaultMoveSpeed
	}
	width := cfg.Width
	if width <= 0 {
		width = 1
	}
	height := cfg.Height
	if height <= 0 {
		height = 1
	}

	half := float64(width) / 2
	minX := half
	maxX := vp.W - half
	if maxX < minX {
		// Degenerate viewport narrower than the sprite: pin to center
		minX = vp.HalfWidth()
		maxX = minX
	}

	row := int(vp.BottomY()) - cfg.BottomOffset - height
	if row < 0 {
		row = 0
	}

	return &Player{
		sess:        sess,
		x:           vp.HalfWidth(),
		row:         row,
		speed:       speed,
		width:       width,
		height:      height,
		minX:        minX,
		maxX:        maxX,
		facingRight: true,
	}
}

// Tick advances the player by one frame. intent is the raw horizontal input,
// one of -1, 0, +1; dt is the elapsed frame time in seconds (already scaled
// by the simulation clock). The player is inert once the session is over.
func (p *Player) Tick(intent int, dt float64) {
	if p.sess.IsOver() {
		return
	}

	candidate := p.x + float64(intent)*p.speed*dt
	p.x = core.ClampF(candidate, p.minX, p.maxX)

	// Zero intent retains the previous facing
	if intent > 0 {
		p.facingRight = true
	} else if intent < 0 {
		p.facingRight = false
	}
}

// X returns the sprite's horizontal center.
func (p *Player) X() float64 {
	return p.x
}

// Bounds returns the horizontal clamp interval for the sprite center.
func (p *Player) Bounds() (minX, maxX float64) {
	return p.minX, p.maxX
}

// FacingRight reports the current facing direction.
func (p *Player) FacingRight() bool {
	return p.facingRight
}

// MoveSpeed returns the effective horizontal speed in cells/sec.
func (p *Player) MoveSpeed() float64 {
	return p.speed
}

// Rect returns the player's collision rectangle in screen coordinates.
func (p *Player) Rect() core.Rect {
	left := int(math.Round(p.x - float64(p.width)/2))
	return core.NewRect(left, p.row, p.width, p.height)
}
