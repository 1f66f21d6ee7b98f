package session

import (
	"testing"

	"github.com/vovakirdan/tui-skyfall/internal/core"
)

func TestGameOverIdempotent(t *testing.T) {
	clock := core.NewClock()
	s := New(clock)

	notified := 0
	s.OnGameOver(func() { notified++ })

	s.GameOver()
	s.GameOver()

	if !s.IsOver() {
		t.Error("session should be over after GameOver")
	}
	if notified != 1 {
		t.Errorf("game-over notification should fire exactly once, fired %d times", notified)
	}
	if !clock.Halted() {
		t.Error("GameOver should halt the simulation clock")
	}
}

func TestListenerOrder(t *testing.T) {
	s := New(core.NewClock())

	var order []int
	s.OnGameOver(func() { order = append(order, 1) })
	s.OnGameOver(func() { order = append(order, 2) })
	s.OnGameOver(func() { order = append(order, 3) })

	s.GameOver()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("listeners should fire in registration order, got %v", order)
	}
}

func TestRestart(t *testing.T) {
	clock := core.NewClock()
	s := New(clock)

	restarted := 0
	reloaded := 0
	s.OnRestart(func() {
		restarted++
		// State must already be reset when the notification fires
		if s.IsOver() {
			t.Error("restart listener should observe the reset state")
		}
		if clock.Halted() {
			t.Error("restart listener should observe a running clock")
		}
		// Reload runs after notification
		if reloaded != 0 {
			t.Error("reload hook should run after restart listeners")
		}
	})
	s.SetReloadFunc(func() { reloaded++ })

	s.GameOver()
	s.Restart()

	if s.IsOver() {
		t.Error("session should not be over after Restart")
	}
	if clock.Halted() {
		t.Error("Restart should resume the simulation clock")
	}
	if restarted != 1 {
		t.Errorf("restart notification fired %d times, expected 1", restarted)
	}
	if reloaded != 1 {
		t.Errorf("reload hook invoked %d times, expected 1", reloaded)
	}
}

func TestRestartFromRunningState(t *testing.T) {
	// Restart is valid regardless of prior state
	clock := core.NewClock()
	s := New(clock)

	s.Restart()

	if s.IsOver() || clock.Halted() {
		t.Error("Restart from a running session should leave it running")
	}
}

func TestResetStateDoesNotNotify(t *testing.T) {
	clock := core.NewClock()
	s := New(clock)

	notified := 0
	reloaded := 0
	s.OnGameOver(func() { notified++ })
	s.OnRestart(func() { notified++ })
	s.SetReloadFunc(func() { reloaded++ })

	s.GameOver()
	notified = 0

	s.ResetState()

	if s.IsOver() {
		t.Error("ResetState should clear the game-over flag")
	}
	if clock.Halted() {
		t.Error("ResetState should resume the simulation clock")
	}
	if notified != 0 {
		t.Errorf("ResetState should not notify, fired %d notifications", notified)
	}
	if reloaded != 0 {
		t.Error("ResetState should not invoke the reload hook")
	}
}

func TestGameOverAfterRestart(t *testing.T) {
	s := New(core.NewClock())

	notified := 0
	s.OnGameOver(func() { notified++ })

	s.GameOver()
	s.Restart()
	s.GameOver()

	if notified != 2 {
		t.Errorf("a fresh game-over after restart should notify again, got %d", notified)
	}
}
