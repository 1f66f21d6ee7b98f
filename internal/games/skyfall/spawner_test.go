package skyfall

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-skyfall/internal/config"
)

func testSpawnerConfig() config.SkyfallConfig {
	return config.SkyfallConfig{
		Player: testPlayerConfig(),
		Hazards: config.SkyfallHazards{
			Count:     5,
			FallSpeed: 8.0,
			DelayMin:  0.1,
			DelayMax:  0.1,
			Width:     3,
			Height:    1,
		},
		Spawn: config.SkyfallSpawn{
			UseViewportBounds: false,
			MinX:              -2,
			MaxX:              2,
			Height:            -1,
		},
		Difficulty: config.DifficultyConfig{Enabled: false},
	}
}

func newTestSpawner(cfg config.SkyfallConfig, seed int64) *Spawner {
	sess := newTestSession()
	rng := rand.New(rand.NewSource(seed))
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return newSpawner(cfg, sess, Viewport{W: 80, H: 24}, true, rng, diff)
}

// drive advances the spawner's real-time schedule up to the given time.
func drive(s *Spawner, upTo float64) {
	const dt = 1.0 / 120
	for now := 0.0; now <= upTo; now += dt {
		s.Tick(now, 0, 0)
	}
}

func TestSpawnCountAndBounds(t *testing.T) {
	s := newTestSpawner(testSpawnerConfig(), 42)

	var spawnedX []float64
	s.onSpawn = func(h *Hazard) { spawnedX = append(spawnedX, h.X()) }

	s.Begin(0)
	if s.Phase() != PhaseSpawning {
		t.Fatalf("phase after Begin = %s, expected spawning", s.Phase())
	}

	// With four fixed 0.1s gaps the final spawn is not due before t=0.4
	drive(s, 0.39)
	if len(spawnedX) >= 5 {
		t.Errorf("all hazards spawned before the accumulated delays elapsed (%d at t=0.39)", len(spawnedX))
	}

	drive(s, 0.5)
	if len(spawnedX) != 5 {
		t.Fatalf("spawned %d hazards, expected exactly 5", len(spawnedX))
	}
	if s.Phase() != PhaseDone {
		t.Errorf("phase after run = %s, expected done", s.Phase())
	}

	for i, x := range spawnedX {
		if x < -2 || x >= 2 {
			t.Errorf("hazard %d spawned at x=%f, outside [-2, 2)", i, x)
		}
	}
}

func TestSpawnHeight(t *testing.T) {
	s := newTestSpawner(testSpawnerConfig(), 1)

	var spawned []*Hazard
	s.onSpawn = func(h *Hazard) { spawned = append(spawned, h) }

	s.Begin(0)
	s.Tick(0, 0, 0)

	if len(spawned) != 1 {
		t.Fatalf("first hazard should spawn immediately, got %d", len(spawned))
	}
	if spawned[0].Y() != -1 {
		t.Errorf("spawn height = %f, expected configured -1", spawned[0].Y())
	}
}

func TestSpawnRegionFromViewport(t *testing.T) {
	cfg := testSpawnerConfig()
	cfg.Spawn.UseViewportBounds = true
	cfg.Spawn.TopMargin = 2

	s := newTestSpawner(cfg, 1)
	s.Begin(0)

	minX, maxX, y := s.SpawnRegion()
	if minX != 0 || maxX != 80 {
		t.Errorf("viewport-derived range = [%f, %f), expected [0, 80)", minX, maxX)
	}
	if y != -2 {
		t.Errorf("viewport-derived spawn height = %f, expected -2 (top edge minus margin)", y)
	}
}

func TestSpawnGuardAgainstDoubleRun(t *testing.T) {
	s := newTestSpawner(testSpawnerConfig(), 42)

	spawned := 0
	s.onSpawn = func(*Hazard) { spawned++ }

	s.Begin(0)
	drive(s, 1.0)
	if spawned != 5 {
		t.Fatalf("first run spawned %d, expected 5", spawned)
	}

	// Run flag still set, registry non-empty: a second Begin must do nothing
	s.Begin(2.0)
	drive(s, 3.0)
	if spawned != 5 {
		t.Errorf("second Begin created hazards: total %d", spawned)
	}

	// Even with the run flag cleared, a non-empty registry blocks a new run
	s.spawned = false
	s.Begin(4.0)
	drive(s, 5.0)
	if spawned != 5 {
		t.Errorf("Begin with live hazards created more: total %d", spawned)
	}
}

func TestTeardownPermitsNewRun(t *testing.T) {
	s := newTestSpawner(testSpawnerConfig(), 42)

	spawned := 0
	s.onSpawn = func(*Hazard) { spawned++ }

	s.Begin(0)
	drive(s, 1.0)

	s.Teardown()
	if s.Phase() != PhaseIdle {
		t.Errorf("phase after teardown = %s, expected idle", s.Phase())
	}
	if s.LiveCount() != 0 {
		t.Errorf("registry not cleared on teardown: %d live", s.LiveCount())
	}

	s.Begin(0)
	drive(s, 1.0)
	if spawned != 10 {
		t.Errorf("teardown should permit a fresh run, total spawned = %d", spawned)
	}
}

func TestZeroCountNeverSpawns(t *testing.T) {
	cfg := testSpawnerConfig()
	cfg.Hazards.Count = 0

	s := newTestSpawner(cfg, 1)
	spawned := 0
	s.onSpawn = func(*Hazard) { spawned++ }

	s.Begin(0)
	drive(s, 2.0)

	if spawned != 0 {
		t.Errorf("zero-count spawner created %d hazards", spawned)
	}
	if s.Phase() != PhaseDone {
		t.Errorf("zero-count run should finish immediately, phase = %s", s.Phase())
	}
}

func TestDespawnRemovesFromRegistry(t *testing.T) {
	cfg := testSpawnerConfig()
	cfg.Hazards.Count = 1

	s := newTestSpawner(cfg, 1)
	despawned := 0
	s.onDespawn = func(*Hazard) { despawned++ }

	s.Begin(0)
	s.Tick(0, 0, 0)
	if s.LiveCount() != 1 {
		t.Fatalf("expected 1 live hazard, got %d", s.LiveCount())
	}

	h := s.Hazards()[0]
	h.y = h.lowerY + 1
	h.Tick(1.0 / 60)

	if s.LiveCount() != 0 {
		t.Errorf("despawned hazard still registered: %d live", s.LiveCount())
	}
	if despawned != 1 {
		t.Errorf("despawn callback fired %d times, expected 1", despawned)
	}
}

func TestSpawnDeterminism(t *testing.T) {
	run := func() []float64 {
		s := newTestSpawner(testSpawnerConfig(), 12345)
		var xs []float64
		s.onSpawn = func(h *Hazard) { xs = append(xs, h.X()) }
		s.Begin(0)
		drive(s, 1.0)
		return xs
	}

	a := run()
	b := run()

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d position differs: %f vs %f", i, a[i], b[i])
		}
	}
}
