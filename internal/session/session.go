// Package session holds the shared run state for one game session: the
// game-over flag, the simulation clock, and lifecycle notifications. It is
// passed explicitly to every component that needs it, which keeps the game
// core testable in isolation.
package session

import "github.com/vovakirdan/tui-skyfall/internal/core"

// Listener receives a session lifecycle notification. Listeners are invoked
// synchronously, in registration order, on the tick that triggered them.
type Listener func()

// Session tracks whether the current run has ended and controls the
// simulation time scale. The game-over flag only ever transitions
// false→true (GameOver) and true→false (Restart, ResetState).
type Session struct {
	clock            *core.Clock
	over             bool
	overListeners    []Listener
	restartListeners []Listener
	reload           func()
}

// New creates a session driving the given clock.
func New(clock *core.Clock) *Session {
	return &Session{clock: clock}
}

// Clock returns the simulation clock this session controls.
func (s *Session) Clock() *core.Clock {
	return s.clock
}

// SetReloadFunc installs the hook invoked at the end of Restart, after the
// restart notification has fired. The hook rebuilds the world.
func (s *Session) SetReloadFunc(fn func()) {
	s.reload = fn
}

// OnGameOver registers a listener for the game-over notification.
func (s *Session) OnGameOver(l Listener) {
	s.overListeners = append(s.overListeners, l)
}

// OnRestart registers a listener for the restart notification.
func (s *Session) OnRestart(l Listener) {
	s.restartListeners = append(s.restartListeners, l)
}

// IsOver reports whether the current run has ended.
func (s *Session) IsOver() bool {
	return s.over
}

// GameOver ends the current run: it sets the game-over flag, halts
// simulation time, and fires the game-over notification. Calling it again
// while already over is a no-op and fires nothing.
func (s *Session) GameOver() {
	if s.over {
		return
	}
	s.over = true
	s.clock.SetScale(0)
	for _, l := range s.overListeners {
		l()
	}
}

// Restart clears the game-over flag and resumes simulation time, then fires
// the restart notification and invokes the reload hook. State is reset
// before notifying so listeners observe the post-restart values.
func (s *Session) Restart() {
	s.over = false
	s.clock.SetScale(1)
	for _, l := range s.restartListeners {
		l()
	}
	if s.reload != nil {
		s.reload()
	}
}

// ResetState clears the game-over flag and resumes simulation time without
// notifying listeners or reloading. Used for state-only resets.
func (s *Session) ResetState() {
	s.over = false
	s.clock.SetScale(1)
}
