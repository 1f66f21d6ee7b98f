// Package skyfall implements a falling-hazard avoidance game. The player
// slides along the bottom of the screen dodging hazards that rain down from
// above; a single touch ends the run. Game state lives in an explicit
// session object shared by the player, hazards, and spawner.
package skyfall

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
	"github.com/vovakirdan/tui-skyfall/internal/registry"
	"github.com/vovakirdan/tui-skyfall/internal/session"
)

// Visual characters for rendering
const (
	PlayerBody  = '█'
	PlayerHead  = '◆'
	HazardChar  = '▼'
	GroundChar  = '═'
	defaultRate = 60
)

// dodgeBonus is added to the score for every hazard that falls past the
// player without contact.
const dodgeBonus = 25

// Game implements the Skyfall game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.SkyfallConfig
	difficulty *config.DifficultyManager

	clock   *core.Clock
	sess    *session.Session
	player  *Player
	spawner *Spawner
	rng     *rand.Rand

	vp   Viewport
	vpOK bool

	dt        float64 // Seconds per tick
	score     int
	dodged    int
	paused    bool
	tickCount int
	seed      int64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Skyfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSkyfall(configPath)
	if err != nil {
		cfg = config.DefaultSkyfallConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySkyfallPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = defaultRate
	}
	g.dt = 1.0 / float64(tickRate)

	seed := runtime.Seed
	if seed == 0 {
		seed = 1 // Platform normally substitutes a time-based seed
	}
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))

	g.clock = core.NewClock()
	g.sess = session.New(g.clock)
	g.sess.SetReloadFunc(g.rebuildWorld)

	g.vp, g.vpOK = resolveViewport(runtime)

	g.score = 0
	g.dodged = 0
	g.paused = false
	g.tickCount = 0
	g.spawner = nil
	g.buildWorld()
}

// buildWorld creates the player and spawner and starts the spawn run.
func (g *Game) buildWorld() {
	g.player = newPlayer(g.cfg.Player, g.vp, g.sess)

	g.spawner = newSpawner(g.cfg, g.sess, g.vp, g.vpOK, g.rng, g.difficulty)
	g.spawner.onDespawn = func(*Hazard) {
		g.dodged++
		g.score += dodgeBonus
	}
	g.spawner.Begin(g.clock.Real())
}

// rebuildWorld is the session's reload hook: it tears the old world down
// and builds a fresh one. Teardown clears the spawner's run flag, so the
// new spawn run is permitted.
func (g *Game) rebuildWorld() {
	if g.spawner != nil {
		g.spawner.Teardown()
	}
	g.score = 0
	g.dodged = 0
	g.paused = false
	g.tickCount = 0
	g.buildWorld()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sess.IsOver() {
		if in.Has(core.ActionRestart) {
			g.sess.Restart()
			return core.StepResult{State: g.State()}
		}
	} else if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.clock.SetScale(0)
		} else {
			g.clock.SetScale(1)
		}
	}

	g.clock.Advance(g.dt)

	// Spawn countdowns run on the real clock: they keep ticking while
	// simulation time is halted by a pause or game over.
	g.spawner.Tick(g.clock.Real(), g.score, g.tickCount)

	g.player.Tick(in.Dir(), g.clock.Scaled(g.dt))

	hazards := g.spawner.Hazards()
	for _, h := range hazards {
		h.Tick(g.dt)
	}

	// Contact checks every tick: entry and continued overlap funnel into
	// the same per-hazard handler
	playerRect := g.player.Rect()
	for _, h := range hazards {
		if h.Destroyed() {
			continue
		}
		if h.Rect().Intersects(playerRect) {
			h.OnPlayerContact()
		}
	}

	if !g.paused && !g.sess.IsOver() {
		g.tickCount++
		g.score++ // Survival score
	}

	return core.StepResult{State: g.State()}
}

// Session exposes the run state shared by the game's components.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Dodged returns how many hazards fell past the player this run.
func (g *Game) Dodged() int {
	return g.dodged
}

// Ticks returns how many simulation ticks this run has lasted.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Seed returns the RNG seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Ground line just below the player
	groundY := g.player.Rect().Bottom()
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, h := range g.spawner.Hazards() {
		g.drawHazard(dst, h)
	}

	g.drawPlayer(dst)

	// HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText)

	if g.difficulty.IsEnabled() {
		speed := g.difficulty.FallSpeed(g.cfg.Hazards.FallSpeed, g.score, g.tickCount)
		speedText := fmt.Sprintf(" Spd: %.1f ", speed)
		dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.sess.IsOver() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPlayer renders the player character: a head row above a body row,
// with the head leaning in the facing direction.
func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.player.Rect()

	headX := r.X
	if g.player.FacingRight() {
		headX = r.Right() - 1
	}
	dst.SetColored(headX, r.Y, PlayerHead, core.ColorBrightCyan)

	for y := r.Y + 1; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, PlayerBody, core.ColorCyan)
		}
	}
}

// drawHazard renders a single falling hazard.
func (g *Game) drawHazard(dst *core.Screen, h *Hazard) {
	r := h.Rect()
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			dst.SetColored(r.X+dx, r.Y+dy, HazardChar, core.ColorBrightRed)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.sess.IsOver(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("skyfall", func() registry.Game {
		return New()
	})
}
