package skyfall

// RunState represents the current game state.
type RunState string

const (
	StatePlaying  RunState = "playing"
	StatePaused   RunState = "paused"
	StateGameOver RunState = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick           int
	Score          int
	Dodged         int
	State          RunState
	PlayerX        float64
	FacingRight    bool
	HazardsLive    int
	HazardsSpawned int
	SpawnPhase     string
	RealTime       float64
	SimTime        float64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.sess.IsOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:           g.tickCount,
		Score:          g.score,
		Dodged:         g.dodged,
		State:          state,
		PlayerX:        g.player.X(),
		FacingRight:    g.player.FacingRight(),
		HazardsLive:    g.spawner.LiveCount(),
		HazardsSpawned: g.spawner.TotalSpawned(),
		SpawnPhase:     g.spawner.Phase().String(),
		RealTime:       g.clock.Real(),
		SimTime:        g.clock.Sim(),
	}
}
