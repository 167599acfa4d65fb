package patterns

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/screenlens/layout"
	"github.com/tsawler/screenlens/model"
)

// Config holds configuration for pattern matching.
type Config struct {
	// MinConfidence is the acceptance threshold for a detection.
	// Default: 0.7
	MinConfidence float64 `yaml:"min_confidence"`

	// NavTopRegion is the fraction of image height below which a
	// horizontal navigation group earns the higher confidence.
	// Default: 0.2
	NavTopRegion float64 `yaml:"nav_top_region"`

	// NavMinGroup is the minimum number of navigation-like components
	// a horizontal group needs to read as navigation.
	// Default: 3
	NavMinGroup int `yaml:"nav_min_group"`

	// BreadcrumbTopY is the y threshold below which breadcrumb text
	// earns the higher confidence, in pixels.
	// Default: 200
	BreadcrumbTopY float64 `yaml:"breadcrumb_top_y"`

	// HeroRegion is the fraction of image height considered the hero
	// band at the top of the page.
	// Default: 0.4
	HeroRegion float64 `yaml:"hero_region"`

	// HeroMinHeight is the minimum height for a component to anchor a
	// hero section, in pixels.
	// Default: 100
	HeroMinHeight float64 `yaml:"hero_min_height"`

	// HeroSpanRatio is the fraction of image width a hero element must
	// span to count as a full-width banner.
	// Default: 0.6
	HeroSpanRatio float64 `yaml:"hero_span_ratio"`

	// LargeFontSize is the font size at which text reads as display
	// text, in points.
	// Default: 24
	LargeFontSize float64 `yaml:"large_font_size"`

	// ColumnSpacingDelta is the maximum difference between column gaps
	// for columns to read as evenly spaced, in pixels.
	// Default: 50
	ColumnSpacingDelta float64 `yaml:"column_spacing_delta"`

	// MinCards is the minimum number of card-like components for the
	// card grid and gallery detectors.
	// Default: 4
	MinCards int `yaml:"min_cards"`

	// CardUniformityMin is the minimum area uniformity for a card grid.
	// Default: 0.7
	CardUniformityMin float64 `yaml:"card_uniformity_min"`

	// LabelDistance is how far a label may sit from an input and still
	// count toward form label coverage, in pixels.
	// Default: 100
	LabelDistance float64 `yaml:"label_distance"`

	// FormMinInputs is the minimum number of input fields for the form
	// layout detector.
	// Default: 2
	FormMinInputs int `yaml:"form_min_inputs"`

	// SidebarHeightRatio is the minimum fraction of image height a
	// sidebar must span.
	// Default: 0.6
	SidebarHeightRatio float64 `yaml:"sidebar_height_ratio"`

	// SidebarWidthRatio is the maximum fraction of image width a
	// sidebar may occupy.
	// Default: 0.3
	SidebarWidthRatio float64 `yaml:"sidebar_width_ratio"`

	// SidebarEdgeRatio is the fraction of image width from either edge
	// within which a sidebar reads as edge-anchored.
	// Default: 0.1
	SidebarEdgeRatio float64 `yaml:"sidebar_edge_ratio"`

	// MasonryUniformityMax is the height uniformity below which a
	// multi-column arrangement reads as masonry rather than a grid.
	// Default: 0.5
	MasonryUniformityMax float64 `yaml:"masonry_uniformity_max"`

	// Complexity configures the visual complexity score.
	Complexity ComplexityConfig `yaml:"complexity"`
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MinConfidence:        0.7,
		NavTopRegion:         0.2,
		NavMinGroup:          3,
		BreadcrumbTopY:       200,
		HeroRegion:           0.4,
		HeroMinHeight:        100,
		HeroSpanRatio:        0.6,
		LargeFontSize:        24,
		ColumnSpacingDelta:   50,
		MinCards:             4,
		CardUniformityMin:    0.7,
		LabelDistance:        100,
		FormMinInputs:        2,
		SidebarHeightRatio:   0.6,
		SidebarWidthRatio:    0.3,
		SidebarEdgeRatio:     0.1,
		MasonryUniformityMax: 0.5,
		Complexity:           DefaultComplexityConfig(),
	}
}

// Input carries everything a detector may consult. Layout may be nil when no
// layout analysis ran; detectors that need it report nothing in that case.
type Input struct {
	Components []model.Component
	Texts      []model.TextElement
	Layout     *layout.Report
	Image      model.ImageDimensions

	// ColorCount and EdgeDensity come from external pixel-level
	// analysis and only feed the complexity score. EdgeDensity is a
	// fraction in [0,1].
	ColorCount  int
	EdgeDensity float64
}

// Detection is one recognized UI pattern.
type Detection struct {
	// Name identifies the pattern, e.g. "horizontal_nav".
	Name string

	// Confidence is the match confidence in [0,1].
	Confidence float64

	// Evidence lists human-readable observations behind the match.
	Evidence []string

	// Characteristics holds numeric facts about the match.
	Characteristics map[string]float64
}

// DetectorFunc evaluates one pattern against the input. It returns a zero
// Detection when the pattern is absent; the matcher fills in Name.
type DetectorFunc func(in Input, cfg Config) Detection

// catalogEntry pairs a pattern name with its detector.
type catalogEntry struct {
	name   string
	detect DetectorFunc
}

// Report is the complete result of pattern matching. It is newly allocated
// per call and shares no mutable state with other reports.
type Report struct {
	// Patterns are the accepted detections, in catalog order.
	Patterns []Detection

	// Overall is the mean confidence of accepted detections, 0 when
	// none matched.
	Overall float64

	// Complexity is the visual complexity assessment.
	Complexity Complexity
}

// Matcher evaluates a catalog of named pattern detectors. The built-in
// catalog is resolved at construction; Register extends it.
type Matcher struct {
	config  Config
	catalog []catalogEntry
}

// NewMatcher creates a pattern matcher with default configuration.
func NewMatcher() *Matcher {
	return NewMatcherWithConfig(DefaultConfig())
}

// NewMatcherWithConfig creates a pattern matcher with the specified
// configuration.
func NewMatcherWithConfig(config Config) *Matcher {
	return &Matcher{
		config: config,
		catalog: []catalogEntry{
			{"horizontal_nav", detectHorizontalNav},
			{"breadcrumb", detectBreadcrumb},
			{"hero_section", detectHeroSection},
			{"three_column", detectThreeColumn},
			{"card_grid", detectCardGrid},
			{"form_layout", detectFormLayout},
			{"gallery", detectGallery},
			{"article", detectArticle},
			{"sidebar", detectSidebar},
			{"masonry", detectMasonry},
		},
	}
}

// Register adds a detector under the given name, replacing any existing
// detector with the same name. New names run after the built-in catalog.
func (m *Matcher) Register(name string, detect DetectorFunc) {
	for i := range m.catalog {
		if m.catalog[i].name == name {
			m.catalog[i].detect = detect
			return
		}
	}
	m.catalog = append(m.catalog, catalogEntry{name: name, detect: detect})
}

// Match runs every catalog detector and keeps the detections at or above the
// configured confidence threshold.
func (m *Matcher) Match(in Input) *Report {
	report := &Report{}

	var confidences []float64
	for _, entry := range m.catalog {
		det := entry.detect(in, m.config)
		if det.Confidence < m.config.MinConfidence {
			continue
		}
		det.Name = entry.name
		report.Patterns = append(report.Patterns, det)
		confidences = append(confidences, det.Confidence)
	}

	if len(confidences) > 0 {
		report.Overall = stat.Mean(confidences, nil)
	}

	layoutType := layout.TypeEmpty
	if in.Layout != nil {
		layoutType = in.Layout.Type
	}
	report.Complexity = assessComplexity(m.config.Complexity, in, layoutType)

	return report
}
