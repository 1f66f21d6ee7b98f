package config

import "testing"

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, DelayReduction: 0.5},
	})

	if lvl := d.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at score 0 = %f, expected 0.0", lvl)
	}
	if lvl := d.Level(50, 0); lvl != 0.5 {
		t.Errorf("Level at score 50 = %f, expected 0.5", lvl)
	}
	if lvl := d.Level(200, 0); lvl != 1.0 {
		t.Errorf("Level past max_at should clamp to 1.0, got %f", lvl)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if d.IsEnabled() {
		t.Error("difficulty should report disabled")
	}
	if lvl := d.Level(1000, 0); lvl != 0.3 {
		t.Errorf("disabled difficulty should stay at initial level, got %f", lvl)
	}
}

func TestDifficultyFallSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.5},
	})

	if s := d.FallSpeed(8.0, 0, 0); s != 8.0 {
		t.Errorf("FallSpeed at level 0 = %f, expected base 8.0", s)
	}
	if s := d.FallSpeed(8.0, 100, 0); s != 20.0 {
		t.Errorf("FallSpeed at max level = %f, expected 20.0", s)
	}
}

func TestDifficultyDelayFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:      ScalingConfig{DelayReduction: 0.9},
	})

	if delay := d.Delay(0.1, 100, 0); delay < 0.05 {
		t.Errorf("Delay should never go below the floor, got %f", delay)
	}
}
