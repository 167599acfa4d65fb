package patterns

import (
	"math"

	"github.com/tsawler/screenlens/layout"
)

// ComplexityLevel is the qualitative bucket for a complexity score.
type ComplexityLevel int

const (
	ComplexitySimple ComplexityLevel = iota
	ComplexityModerate
	ComplexityComplex
	ComplexityVeryComplex
)

// String returns a string representation of the complexity level.
func (l ComplexityLevel) String() string {
	switch l {
	case ComplexitySimple:
		return "simple"
	case ComplexityModerate:
		return "moderate"
	case ComplexityComplex:
		return "complex"
	case ComplexityVeryComplex:
		return "very_complex"
	default:
		return "unknown"
	}
}

// ComplexityConfig holds the weights and scales for the visual complexity
// score. The weights sum to 1 by default so the score stays in [0,1].
type ComplexityConfig struct {
	// ComponentWeight scales the component count factor.
	// Default: 0.3
	ComponentWeight float64 `yaml:"component_weight"`

	// ColorWeight scales the color count factor.
	// Default: 0.2
	ColorWeight float64 `yaml:"color_weight"`

	// LayoutWeight scales the layout type factor.
	// Default: 0.2
	LayoutWeight float64 `yaml:"layout_weight"`

	// EdgeWeight scales the edge density factor.
	// Default: 0.3
	EdgeWeight float64 `yaml:"edge_weight"`

	// ComponentScale is the component count at which the component
	// factor saturates.
	// Default: 30
	ComponentScale float64 `yaml:"component_scale"`

	// ColorScale is the color count at which the color factor
	// saturates.
	// Default: 12
	ColorScale float64 `yaml:"color_scale"`
}

// DefaultComplexityConfig returns sensible default configuration.
func DefaultComplexityConfig() ComplexityConfig {
	return ComplexityConfig{
		ComponentWeight: 0.3,
		ColorWeight:     0.2,
		LayoutWeight:    0.2,
		EdgeWeight:      0.3,
		ComponentScale:  30,
		ColorScale:      12,
	}
}

// ComplexityFactors is the per-input breakdown behind the complexity score.
// Every factor is in [0,1].
type ComplexityFactors struct {
	Components float64
	Colors     float64
	Layout     float64
	Edges      float64
}

// Complexity is the visual complexity assessment of a screenshot.
type Complexity struct {
	// Score is the weighted complexity in [0,1].
	Score float64

	// Level is the qualitative bucket for Score.
	Level ComplexityLevel

	// Factors is the breakdown behind Score.
	Factors ComplexityFactors
}

// layoutComplexity ranks layout types by how hard they are to take in.
// Regular structure reads easier than free-form arrangement.
func layoutComplexity(t layout.Type) float64 {
	switch t {
	case layout.TypeEmpty:
		return 0
	case layout.TypeGrid:
		return 0.3
	case layout.TypeFlow:
		return 0.4
	case layout.TypeFlexbox:
		return 0.5
	case layout.TypeCustom:
		return 0.9
	default:
		return 0.5
	}
}

// assessComplexity blends component count, color count, layout type, and
// edge density into a single weighted score with a qualitative bucket.
func assessComplexity(cfg ComplexityConfig, in Input, layoutType layout.Type) Complexity {
	factors := ComplexityFactors{
		Layout: layoutComplexity(layoutType),
		Edges:  math.Min(1, math.Max(0, in.EdgeDensity)),
	}
	if cfg.ComponentScale > 0 {
		factors.Components = math.Min(1, float64(len(in.Components))/cfg.ComponentScale)
	}
	if cfg.ColorScale > 0 {
		factors.Colors = math.Min(1, float64(in.ColorCount)/cfg.ColorScale)
	}

	score := factors.Components*cfg.ComponentWeight +
		factors.Colors*cfg.ColorWeight +
		factors.Layout*cfg.LayoutWeight +
		factors.Edges*cfg.EdgeWeight
	score = math.Min(1, score)

	return Complexity{
		Score:   score,
		Level:   complexityLevel(score),
		Factors: factors,
	}
}

// complexityLevel buckets a score at the 0.3, 0.6, and 0.8 thresholds.
func complexityLevel(score float64) ComplexityLevel {
	switch {
	case score < 0.3:
		return ComplexitySimple
	case score < 0.6:
		return ComplexityModerate
	case score < 0.8:
		return ComplexityComplex
	default:
		return ComplexityVeryComplex
	}
}
