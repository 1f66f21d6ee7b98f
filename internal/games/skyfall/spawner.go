package skyfall

import (
	"math/rand"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/session"
)

// SpawnPhase is the spawner's position in its lifecycle.
type SpawnPhase int

const (
	PhaseIdle SpawnPhase = iota
	PhaseInitializing
	PhaseSpawning
	PhaseDone
)

// String returns a human-readable name for the phase.
func (p SpawnPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInitializing:
		return "initializing"
	case PhaseSpawning:
		return "spawning"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Spawner creates a bounded number of hazards at randomized horizontal
// positions with randomized gaps between them. Scheduling is an explicit
// due-at timestamp evaluated once per tick against the REAL clock, so a
// pending spawn countdown keeps running while simulation time is halted.
// The spawner owns the live-hazard registry and a spawned-this-run flag
// that together guard against double spawn runs.
type Spawner struct {
	cfg  config.SkyfallConfig
	sess *session.Session
	rng  *rand.Rand
	diff *config.DifficultyManager

	vp   Viewport
	vpOK bool

	phase   SpawnPhase
	spawned bool // set for the duration of one spawn run
	live    []*Hazard

	nextIndex int
	nextDueAt float64 // real-clock timestamp of the next spawn

	spawnMinX float64
	spawnMaxX float64
	spawnY    float64

	// onSpawn fires for every hazard created; onDespawn fires when a hazard
	// falls past the lower boundary without player contact. Wired by the game.
	onSpawn   func(*Hazard)
	onDespawn func(*Hazard)
}

// newSpawner creates an idle spawner. Begin starts a spawn run.
func newSpawner(cfg config.SkyfallConfig, sess *session.Session, vp Viewport, vpOK bool, rng *rand.Rand, diff *config.DifficultyManager) *Spawner {
	return &Spawner{
		cfg:   cfg,
		sess:  sess,
		rng:   rng,
		diff:  diff,
		vp:    vp,
		vpOK:  vpOK,
		phase: PhaseIdle,
	}
}

// Begin starts a spawn run at the given real-clock timestamp. It is a no-op
// while a run is already represented by the spawned flag or while the live
// registry is non-empty, so re-entry cannot start a second concurrent run.
func (s *Spawner) Begin(now float64) {
	if s.spawned || len(s.live) > 0 {
		return
	}
	s.spawned = true
	s.phase = PhaseInitializing
	s.initialize()

	if s.cfg.Hazards.Count <= 0 {
		// Nothing to spawn; degrade silently
		s.phase = PhaseDone
		return
	}

	s.nextIndex = 0
	s.nextDueAt = now // First hazard spawns immediately
	s.phase = PhaseSpawning
}

// initialize clears leftovers and computes the spawn region.
func (s *Spawner) initialize() {
	// Destroy hazards left over from a previous run without firing despawn
	// notifications; cleanup is not a dodge.
	for _, h := range s.live {
		h.onDestroyed = nil
		h.destroy()
	}
	s.live = s.live[:0]

	if s.cfg.Spawn.UseViewportBounds && s.vpOK {
		// Full visible width, spawning just above the top edge
		s.spawnMinX = 0
		s.spawnMaxX = s.vp.W
		s.spawnY = s.vp.TopY() - s.cfg.Spawn.TopMargin
	} else {
		s.spawnMinX = s.cfg.Spawn.MinX
		s.spawnMaxX = s.cfg.Spawn.MaxX
		s.spawnY = s.cfg.Spawn.Height
	}
	if s.spawnMaxX < s.spawnMinX {
		s.spawnMaxX = s.spawnMinX
	}
}

// Tick evaluates the spawn schedule against the current real-clock time.
// score and ticks feed difficulty scaling.
func (s *Spawner) Tick(now float64, score, ticks int) {
	if s.phase != PhaseSpawning {
		return
	}

	for s.nextIndex < s.cfg.Hazards.Count && now >= s.nextDueAt {
		s.spawnOne(score, ticks)
		s.nextIndex++

		if s.nextIndex >= s.cfg.Hazards.Count {
			// No delay after the last spawn
			s.phase = PhaseDone
			return
		}
		s.nextDueAt += s.nextDelay(score, ticks)
	}
}

// spawnOne creates a hazard at a uniformly sampled horizontal position.
func (s *Spawner) spawnOne(score, ticks int) {
	x := s.spawnMinX
	if span := s.spawnMaxX - s.spawnMinX; span > 0 {
		x += s.rng.Float64() * span
	}

	h := newHazard(x, s.spawnY, s.cfg.Hazards, s.vp, s.vpOK, s.sess)

	base := s.cfg.Hazards.FallSpeed
	if base <= 0 {
		base = DefaultFallSpeed
	}
	h.SetFallSpeed(s.diff.FallSpeed(base, score, ticks))

	h.onDestroyed = func(hz *Hazard) {
		s.remove(hz)
		if s.onDespawn != nil {
			s.onDespawn(hz)
		}
	}

	s.live = append(s.live, h)
	if s.onSpawn != nil {
		s.onSpawn(h)
	}
}

// nextDelay samples the gap before the next spawn from [delayMin, delayMax),
// then applies difficulty scaling.
func (s *Spawner) nextDelay(score, ticks int) float64 {
	min := s.cfg.Hazards.DelayMin
	max := s.cfg.Hazards.DelayMax
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}

	d := min
	if span := max - min; span > 0 {
		d += s.rng.Float64() * span
	}
	return s.diff.Delay(d, score, ticks)
}

// remove deregisters a hazard from the live registry.
func (s *Spawner) remove(h *Hazard) {
	for i, candidate := range s.live {
		if candidate == h {
			s.live = append(s.live[:i], s.live[i+1:]...)
			return
		}
	}
}

// Teardown resets the spawner: the spawned flag and the live registry are
// cleared, permitting a future spawn run after a restart.
func (s *Spawner) Teardown() {
	for _, h := range s.live {
		h.onDestroyed = nil
		h.destroy()
	}
	s.live = s.live[:0]
	s.spawned = false
	s.nextIndex = 0
	s.phase = PhaseIdle
}

// Hazards returns a snapshot of the live registry, safe to iterate while
// hazards despawn.
func (s *Spawner) Hazards() []*Hazard {
	return append([]*Hazard(nil), s.live...)
}

// LiveCount returns the number of hazards currently alive.
func (s *Spawner) LiveCount() int {
	return len(s.live)
}

// TotalSpawned returns how many hazards this run has created so far.
func (s *Spawner) TotalSpawned() int {
	return s.nextIndex
}

// Phase returns the spawner's current lifecycle phase.
func (s *Spawner) Phase() SpawnPhase {
	return s.phase
}

// SpawnRegion returns the computed spawn bounds and height.
func (s *Spawner) SpawnRegion() (minX, maxX, y float64) {
	return s.spawnMinX, s.spawnMaxX, s.spawnY
}
