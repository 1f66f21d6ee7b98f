package core

import "testing"

func TestClockAdvance(t *testing.T) {
	c := NewClock()

	c.Advance(0.5)
	c.Advance(0.25)

	if c.Real() != 0.75 {
		t.Errorf("Real() = %f, expected 0.75", c.Real())
	}
	if c.Sim() != 0.75 {
		t.Errorf("Sim() = %f, expected 0.75", c.Sim())
	}
}

func TestClockHalt(t *testing.T) {
	c := NewClock()
	c.Advance(1.0)

	c.SetScale(0)
	if !c.Halted() {
		t.Error("clock should report halted at scale 0")
	}

	c.Advance(1.0)

	// Real time keeps flowing, sim time does not
	if c.Real() != 2.0 {
		t.Errorf("Real() = %f, expected 2.0", c.Real())
	}
	if c.Sim() != 1.0 {
		t.Errorf("Sim() = %f, expected 1.0", c.Sim())
	}

	if c.Scaled(0.1) != 0 {
		t.Errorf("Scaled() under halt = %f, expected 0", c.Scaled(0.1))
	}
}

func TestClockResume(t *testing.T) {
	c := NewClock()
	c.SetScale(0)
	c.Advance(1.0)
	c.SetScale(1.0)
	c.Advance(1.0)

	if c.Halted() {
		t.Error("clock should not report halted at scale 1")
	}
	if c.Sim() != 1.0 {
		t.Errorf("Sim() = %f, expected 1.0", c.Sim())
	}
}

func TestClockNegativeInputs(t *testing.T) {
	c := NewClock()
	c.SetScale(-2)
	if c.Scale() != 0 {
		t.Errorf("negative scale should clamp to 0, got %f", c.Scale())
	}

	c.SetScale(1)
	c.Advance(-5)
	if c.Real() != 0 || c.Sim() != 0 {
		t.Errorf("negative delta should be ignored, real=%f sim=%f", c.Real(), c.Sim())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock()
	c.Advance(3)
	c.SetScale(0)

	c.Reset()

	if c.Real() != 0 || c.Sim() != 0 {
		t.Error("Reset should zero accumulators")
	}
	if c.Scale() != 1.0 {
		t.Errorf("Reset should restore scale 1.0, got %f", c.Scale())
	}
}
