package layout

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/screenlens/model"
)

// Type classifies the overall layout structure of a screenshot.
type Type int

const (
	// TypeEmpty means no components were supplied.
	TypeEmpty Type = iota

	// TypeGrid means the components form a detected regular grid.
	TypeGrid

	// TypeFlexbox means one alignment axis dominates with consistent
	// spacing, as a flex row or column would produce.
	TypeFlexbox

	// TypeFlow means components stack top to bottom without strong
	// horizontal structure.
	TypeFlow

	// TypeCustom is everything else.
	TypeCustom
)

// String returns a string representation of the layout type.
func (t Type) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeGrid:
		return "grid"
	case TypeFlexbox:
		return "flexbox"
	case TypeFlow:
		return "flow"
	case TypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// QualityConfig holds the sub-factor weights for the aggregate layout
// quality score. The defaults are calibrated heuristics, not derived
// constants.
type QualityConfig struct {
	// AlignmentWeight scales the mean alignment group quality.
	// Default: 0.4
	AlignmentWeight float64 `yaml:"alignment_weight"`

	// SpacingWeight scales the mean spacing consistency.
	// Default: 0.3
	SpacingWeight float64 `yaml:"spacing_weight"`

	// RegularityWeight scales the grid regularity.
	// Default: 0.3
	RegularityWeight float64 `yaml:"regularity_weight"`
}

// DefaultQualityConfig returns sensible default configuration.
func DefaultQualityConfig() QualityConfig {
	return QualityConfig{
		AlignmentWeight:  0.4,
		SpacingWeight:    0.3,
		RegularityWeight: 0.3,
	}
}

// Config holds configuration for the layout analyzer and its detectors.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Alignment AlignmentConfig `yaml:"alignment"`
	Spacing   SpacingConfig   `yaml:"spacing"`
	Quality   QualityConfig   `yaml:"quality"`

	// FlexboxCoverage is the minimum fraction of components the largest
	// alignment group must cover for the flexbox classification.
	// Default: 0.6
	FlexboxCoverage float64 `yaml:"flexbox_coverage"`

	// FlexboxConsistency is the minimum spacing consistency for the
	// flexbox classification.
	// Default: 0.6
	FlexboxConsistency float64 `yaml:"flexbox_consistency"`
}

// DefaultConfig returns a configuration with sensible defaults for typical
// screenshot analysis.
func DefaultConfig() Config {
	return Config{
		Grid:               DefaultGridConfig(),
		Alignment:          DefaultAlignmentConfig(),
		Spacing:            DefaultSpacingConfig(),
		Quality:            DefaultQualityConfig(),
		FlexboxCoverage:    0.6,
		FlexboxConsistency: 0.6,
	}
}

// QualityFactors is the sub-factor breakdown of the aggregate quality score.
type QualityFactors struct {
	// Alignment is the mean quality of all alignment groups.
	Alignment float64

	// Spacing is the mean spacing consistency across axes.
	Spacing float64

	// Regularity is the grid regularity score.
	Regularity float64
}

// Stats contains counts from the layout analysis.
type Stats struct {
	ComponentCount       int
	RowCount             int
	ColumnCount          int
	HorizontalGroupCount int
	VerticalGroupCount   int
	EdgeAlignmentCount   int
	CenterAlignmentCount int
}

// Report is the complete result of layout analysis. It is newly allocated
// per call and shares no mutable state with other reports.
type Report struct {
	// Type is the overall layout classification.
	Type Type

	// Grid is the grid detection result.
	Grid *GridLayout

	// Alignment is the alignment detection result.
	Alignment *AlignmentLayout

	// Spacing is the spacing analysis result.
	Spacing *SpacingLayout

	// Quality is the aggregate layout quality score in [0,1].
	Quality float64

	// Factors is the sub-factor breakdown behind Quality.
	Factors QualityFactors

	// Image is the analyzed screenshot's dimensions.
	Image model.ImageDimensions

	// Stats holds counts from the analysis.
	Stats Stats
}

// Analyzer orchestrates grid, alignment, and spacing detection into a
// unified layout report.
type Analyzer struct {
	config    Config
	grid      *GridDetector
	alignment *AlignmentDetector
	spacing   *SpacingDetector
}

// NewAnalyzer creates a layout analyzer with default configuration.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

// NewAnalyzerWithConfig creates a layout analyzer with the specified
// configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{
		config:    config,
		grid:      NewGridDetectorWithConfig(config.Grid),
		alignment: NewAlignmentDetectorWithConfig(config.Alignment),
		spacing:   NewSpacingDetectorWithConfig(config.Spacing),
	}
}

// Analyze runs grid, alignment, and spacing detection and classifies the
// layout. It never fails; empty input yields an empty report.
func (a *Analyzer) Analyze(components []model.Component, dims model.ImageDimensions) *Report {
	report := &Report{
		Image: dims,
		Stats: Stats{ComponentCount: len(components)},
	}

	report.Grid = a.grid.Detect(components)
	report.Alignment = a.alignment.Detect(components)
	report.Spacing = a.spacing.Detect(components)

	report.Stats.RowCount = len(report.Grid.Rows)
	report.Stats.ColumnCount = len(report.Grid.Columns)
	report.Stats.HorizontalGroupCount = len(report.Alignment.HorizontalGroups)
	report.Stats.VerticalGroupCount = len(report.Alignment.VerticalGroups)
	report.Stats.EdgeAlignmentCount = len(report.Alignment.EdgeAlignments)
	report.Stats.CenterAlignmentCount = len(report.Alignment.CenterAlignments)

	report.Type = a.classify(components, report)
	report.Factors = a.qualityFactors(report)
	report.Quality = a.quality(report.Factors)

	return report
}

// classify decides the overall layout type.
func (a *Analyzer) classify(components []model.Component, report *Report) Type {
	n := len(components)
	if n == 0 {
		return TypeEmpty
	}

	if report.Grid.Grid.Detected {
		return TypeGrid
	}

	if largest := report.Alignment.LargestGroup(); largest != nil && n > 1 {
		coverage := float64(largest.Size()) / float64(n)
		if coverage >= a.config.FlexboxCoverage &&
			report.Spacing.MeanConsistency() >= a.config.FlexboxConsistency {
			return TypeFlexbox
		}
	}

	if a.isFlow(components) {
		return TypeFlow
	}

	return TypeCustom
}

// isFlow reports whether components stack cleanly top to bottom: sorted by
// Y, no component starts above the vertical extent of its predecessor.
func (a *Analyzer) isFlow(components []model.Component) bool {
	if len(components) < 2 {
		return true
	}

	sorted := make([]model.Component, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.Y < sorted[j].Position.Y
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1].Position, sorted[i].Position
		if cur.Top() < prev.Top()+a.config.Grid.GridTolerance &&
			!(cur.Top() >= prev.Bottom()) {
			// Two components share a band without stacking.
			return false
		}
		if cur.Top() < prev.Bottom()-a.config.Grid.GridTolerance {
			return false
		}
	}

	return true
}

// qualityFactors computes the sub-factor scores.
func (a *Analyzer) qualityFactors(report *Report) QualityFactors {
	var factors QualityFactors

	var qualities []float64
	for _, g := range report.Alignment.HorizontalGroups {
		qualities = append(qualities, g.Quality)
	}
	for _, g := range report.Alignment.VerticalGroups {
		qualities = append(qualities, g.Quality)
	}
	if len(qualities) > 0 {
		factors.Alignment = stat.Mean(qualities, nil)
	}

	factors.Spacing = report.Spacing.MeanConsistency()
	factors.Regularity = report.Grid.Grid.Regularity

	return factors
}

// quality blends the sub-factors with the configured weights, normalized so
// the result stays in [0,1] even with custom weights.
func (a *Analyzer) quality(factors QualityFactors) float64 {
	cfg := a.config.Quality
	totalWeight := cfg.AlignmentWeight + cfg.SpacingWeight + cfg.RegularityWeight
	if totalWeight <= 0 {
		return 0
	}

	weighted := factors.Alignment*cfg.AlignmentWeight +
		factors.Spacing*cfg.SpacingWeight +
		factors.Regularity*cfg.RegularityWeight

	return weighted / totalWeight
}
