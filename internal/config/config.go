// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

// SkyfallConfig contains all configuration for the Skyfall game.
type SkyfallConfig struct {
	Player     SkyfallPlayer    `yaml:"player"`
	Hazards    SkyfallHazards   `yaml:"hazards"`
	Spawn      SkyfallSpawn     `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkyfallPlayer defines player parameters for Skyfall.
type SkyfallPlayer struct {
	MoveSpeed    float64 `yaml:"move_speed"`    // Horizontal speed in cells/sec
	Width        int     `yaml:"width"`         // Sprite width in cells
	Height       int     `yaml:"height"`        // Sprite height in cells
	BottomOffset int     `yaml:"bottom_offset"` // Rows between sprite bottom and screen bottom
}

// SkyfallHazards defines falling-hazard parameters for Skyfall.
type SkyfallHazards struct {
	Count     int     `yaml:"count"`      // Hazards per spawn run
	FallSpeed float64 `yaml:"fall_speed"` // Fall speed in cells/sec
	DelayMin  float64 `yaml:"delay_min"`  // Minimum gap between spawns, seconds
	DelayMax  float64 `yaml:"delay_max"`  // Maximum gap between spawns, seconds
	Width     int     `yaml:"width"`      // Sprite width in cells
	Height    int     `yaml:"height"`     // Sprite height in cells
}

// SkyfallSpawn defines the spawn region for Skyfall hazards.
// When UseViewportBounds is set the region is derived from the screen;
// the explicit fields are used otherwise.
type SkyfallSpawn struct {
	UseViewportBounds bool    `yaml:"use_viewport_bounds"`
	MinX              float64 `yaml:"min_x"`
	MaxX              float64 `yaml:"max_x"`
	Height            float64 `yaml:"height"`     // Spawn row (may be above the screen, i.e. negative)
	TopMargin         float64 `yaml:"top_margin"` // Rows above the viewport top when viewport-derived
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Fraction shaved off spawn delays at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
