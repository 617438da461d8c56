package config

import "math"

// DifficultyManager maps progress (a level number or a score) onto a
// curve in [0, 1] and derives scaled parameters from it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// MaxAt returns the progress value at which the curve tops out.
func (d *DifficultyManager) MaxAt() int {
	return max(d.cfg.Progression.MaxAt, 1)
}

// Level returns the position on the curve for a progress value. For the
// "level" type progress 1 is the start; for "score" it is 0.
func (d *DifficultyManager) Level(progress int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var t float64
	switch d.cfg.Progression.Type {
	case "level":
		span := float64(d.MaxAt() - 1)
		if span <= 0 {
			span = 1
		}
		t = float64(progress-1) / span
	case "score":
		t = float64(progress) / float64(d.MaxAt())
	default:
		return d.initialLevel
	}

	t = clampF(t, 0.0, 1.0)
	return d.initialLevel + t*(1.0-d.initialLevel)
}

// Speed scales base up to base * (1 + speed_multiplier) at the top.
func (d *DifficultyManager) Speed(base float64, progress int) float64 {
	return base * (1.0 + d.Level(progress)*d.cfg.Scaling.SpeedMultiplier)
}

// Weight scales base up to base * (1 + weight_multiplier) at the top.
func (d *DifficultyManager) Weight(base float64, progress int) float64 {
	return base * (1.0 + d.Level(progress)*d.cfg.Scaling.WeightMultiplier)
}

// Count adds up to extra items to base along the curve.
func (d *DifficultyManager) Count(base, extra int, progress int) int {
	return base + int(math.Round(d.Level(progress)*float64(extra)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
