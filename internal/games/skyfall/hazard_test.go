package skyfall

import (
	"testing"

	"github.com/vovakirdan/tui-skyfall/internal/config"
)

func testHazardConfig() config.SkyfallHazards {
	return config.SkyfallHazards{
		Count:     5,
		FallSpeed: 8.0,
		DelayMin:  0.1,
		DelayMax:  0.1,
		Width:     3,
		Height:    1,
	}
}

func TestHazardDefaultFallSpeed(t *testing.T) {
	cfg := testHazardConfig()
	cfg.FallSpeed = 0

	h := newHazard(10, 0, cfg, Viewport{W: 80, H: 24}, true, newTestSession())

	if h.FallSpeed() != DefaultFallSpeed {
		t.Errorf("FallSpeed() = %f, expected default %f", h.FallSpeed(), DefaultFallSpeed)
	}

	h.SetFallSpeed(-3)
	if h.FallSpeed() != DefaultFallSpeed {
		t.Errorf("negative speed should substitute default, got %f", h.FallSpeed())
	}

	h.SetFallSpeed(12)
	if h.FallSpeed() != 12 {
		t.Errorf("positive speed should be kept, got %f", h.FallSpeed())
	}
}

func TestHazardFalls(t *testing.T) {
	h := newHazard(10, 0, testHazardConfig(), Viewport{W: 80, H: 24}, true, newTestSession())

	h.Tick(0.5)

	if h.Y() != 4.0 { // 8 cells/sec * 0.5s
		t.Errorf("Y = %f, expected 4.0", h.Y())
	}
}

func TestHazardFrozenByGameOver(t *testing.T) {
	sess := newTestSession()
	h := newHazard(10, 5, testHazardConfig(), Viewport{W: 80, H: 24}, true, sess)

	sess.GameOver()
	h.Tick(1.0)

	if h.Y() != 5.0 {
		t.Errorf("hazard moved during game over: Y = %f", h.Y())
	}
}

func TestHazardFrozenByTimeHalt(t *testing.T) {
	sess := newTestSession()
	h := newHazard(10, 5, testHazardConfig(), Viewport{W: 80, H: 24}, true, sess)

	// Halted clock without game over (pause) also freezes falling
	sess.Clock().SetScale(0)
	h.Tick(1.0)

	if h.Y() != 5.0 {
		t.Errorf("hazard moved while time was halted: Y = %f", h.Y())
	}

	sess.Clock().SetScale(1)
	h.Tick(1.0)
	if h.Y() != 13.0 {
		t.Errorf("hazard should resume falling, Y = %f", h.Y())
	}
}

func TestHazardDespawnBelowBoundary(t *testing.T) {
	h := newHazard(10, 0, testHazardConfig(), Viewport{W: 80, H: 24}, true, newTestSession())

	destroyed := 0
	h.onDestroyed = func(*Hazard) { destroyed++ }

	// Drop it below the lower boundary; the next tick must remove it
	h.y = h.lowerY + 1
	h.Tick(1.0 / 60)

	if !h.Destroyed() {
		t.Error("hazard below the boundary should be destroyed on the next tick")
	}
	if destroyed != 1 {
		t.Errorf("destroyed notification fired %d times, expected exactly 1", destroyed)
	}

	// Further ticks must not fire again
	h.Tick(1.0 / 60)
	if destroyed != 1 {
		t.Errorf("destroyed notification re-fired, total %d", destroyed)
	}
}

func TestHazardFallbackBoundary(t *testing.T) {
	h := newHazard(10, 0, testHazardConfig(), Viewport{W: fallbackViewportW, H: fallbackViewportH}, false, newTestSession())

	if h.lowerY != fallbackLowerBoundary {
		t.Errorf("lower boundary without viewport = %f, expected fallback %f", h.lowerY, fallbackLowerBoundary)
	}
}

func TestHazardSingleCollision(t *testing.T) {
	sess := newTestSession()
	h := newHazard(10, 5, testHazardConfig(), Viewport{W: 80, H: 24}, true, sess)

	overCalls := 0
	sess.OnGameOver(func() { overCalls++ })

	// Entry plus repeated continued-overlap frames funnel into the handler
	h.OnPlayerContact()
	h.OnPlayerContact()
	h.OnPlayerContact()

	if !h.Collided() {
		t.Error("hazard should register the collision")
	}
	if overCalls != 1 {
		t.Errorf("game-over fired %d times from one hazard, expected 1", overCalls)
	}
}

func TestHazardCollisionFlagIsInstanceLocal(t *testing.T) {
	sess := newTestSession()
	cfg := testHazardConfig()
	vp := Viewport{W: 80, H: 24}

	h1 := newHazard(10, 5, cfg, vp, true, sess)
	h2 := newHazard(20, 5, cfg, vp, true, sess)

	h1.OnPlayerContact()

	if h2.Collided() {
		t.Error("one hazard's collision must not mark another")
	}

	// The second hazard still registers its own contact; the session call
	// is an idempotent no-op.
	h2.OnPlayerContact()
	if !h2.Collided() {
		t.Error("second hazard should register its own collision")
	}
}
