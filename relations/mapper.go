package relations

import (
	"sort"

	"github.com/tsawler/screenlens/model"
)

// Config holds configuration for relationship mapping. All distance values
// are pixels; all thresholds are confidences in [0,1]. The defaults are
// calibrated heuristics, not derived constants.
type Config struct {
	// AlignmentTolerance is the maximum coordinate delta for two
	// components to count as axis-aligned.
	// Default: 10
	AlignmentTolerance float64 `yaml:"alignment_tolerance"`

	// ContainmentPadding is the slack allowed when testing whether one
	// box lies fully inside another.
	// Default: 5
	ContainmentPadding float64 `yaml:"containment_padding"`

	// ProximityThreshold is the maximum edge-to-edge distance for the
	// adjacency classification.
	// Default: 50
	ProximityThreshold float64 `yaml:"proximity_threshold"`

	// AlignedProximityMax is the maximum center distance for the
	// aligned-proximity classification.
	// Default: 200
	AlignedProximityMax float64 `yaml:"aligned_proximity_max"`

	// FunctionalThreshold gates additive functional rule confidences.
	// Default: 0.6
	FunctionalThreshold float64 `yaml:"functional_threshold"`

	// FunctionalNearDistance and FunctionalFarDistance bound the
	// proximity bonuses of the additive functional scorer.
	// Defaults: 100, 200
	FunctionalNearDistance float64 `yaml:"functional_near_distance"`
	FunctionalFarDistance  float64 `yaml:"functional_far_distance"`

	// GroupingDistance is the absorption radius for proximity grouping.
	// Default: 150
	GroupingDistance float64 `yaml:"grouping_distance"`

	// FlowDistance is the maximum button-to-input distance for an
	// interaction flow.
	// Default: 400
	FlowDistance float64 `yaml:"flow_distance"`

	// HeaderContentMax is the maximum header-to-content vertical gap.
	// Default: 200
	HeaderContentMax float64 `yaml:"header_content_max"`

	// CaptionMax is the maximum image-to-caption vertical gap.
	// Default: 150
	CaptionMax float64 `yaml:"caption_max"`

	// StrongStrength is the floor (exclusive) for a relationship to be
	// listed in the summary's strong set.
	// Default: 0.8
	StrongStrength float64 `yaml:"strong_strength"`

	// StrongLimit caps the summary's strong set.
	// Default: 5
	StrongLimit int `yaml:"strong_limit"`
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		AlignmentTolerance:     10.0,
		ContainmentPadding:     5.0,
		ProximityThreshold:     50.0,
		AlignedProximityMax:    200.0,
		FunctionalThreshold:    0.6,
		FunctionalNearDistance: 100.0,
		FunctionalFarDistance:  200.0,
		GroupingDistance:       150.0,
		FlowDistance:           400.0,
		HeaderContentMax:       200.0,
		CaptionMax:             150.0,
		StrongStrength:         0.8,
		StrongLimit:            5,
	}
}

// Summary aggregates the relationship report.
type Summary struct {
	// Total is the number of relationships across all categories.
	Total int

	// Per-category counts.
	SpatialCount      int
	FunctionalCount   int
	HierarchicalCount int
	SemanticCount     int

	// Relative position distribution over spatial relationships.
	LeftCount  int
	RightCount int
	AboveCount int
	BelowCount int

	// Strong lists the highest-strength relationships above the
	// configured floor, strongest first, capped at StrongLimit.
	Strong []Relationship

	// GraphDensity is the fraction of unordered component pairs with at
	// least one relationship: edges / (n*(n-1)/2). Zero when fewer than
	// two components were supplied.
	GraphDensity float64
}

// Report is the complete result of relationship mapping. It is newly
// allocated per call and shares no mutable state with other reports.
type Report struct {
	Spatial      []Relationship
	Functional   []Relationship
	Hierarchical []Relationship
	Semantic     []Relationship

	// Groups are derived component clusters.
	Groups []ComponentGroup

	// Flows are predicted input-to-button interaction flows.
	Flows []InteractionFlow

	// Summary aggregates the lists above.
	Summary Summary
}

// All returns every relationship across categories in report order.
func (r *Report) All() []Relationship {
	out := make([]Relationship, 0,
		len(r.Spatial)+len(r.Functional)+len(r.Hierarchical)+len(r.Semantic))
	out = append(out, r.Spatial...)
	out = append(out, r.Functional...)
	out = append(out, r.Hierarchical...)
	out = append(out, r.Semantic...)
	return out
}

// Mapper computes pairwise component relationships, derives component
// groups, and predicts interaction flows. Pairwise analysis is O(n²) over
// the component count, which is acceptable for the low hundreds of elements
// a screenshot yields; the Mapper boundary would let a spatial index replace
// the scans without changing contracts.
type Mapper struct {
	config             Config
	functionalRules    []functionalRule
	hierarchyDetectors []HierarchyDetector
}

// NewMapper creates a relationship mapper with default configuration.
func NewMapper() *Mapper {
	return NewMapperWithConfig(DefaultConfig())
}

// NewMapperWithConfig creates a relationship mapper with custom
// configuration. The functional rule table and hierarchy extension points
// are resolved here, once.
func NewMapperWithConfig(config Config) *Mapper {
	m := &Mapper{config: config}
	m.functionalRules = m.newFunctionalRules()
	m.hierarchyDetectors = []HierarchyDetector{sizeHierarchy, stackingHierarchy}
	return m
}

// RegisterHierarchyDetector adds a hierarchy extension detector. Detectors
// run after containment-chain analysis in registration order.
func (m *Mapper) RegisterHierarchyDetector(d HierarchyDetector) {
	m.hierarchyDetectors = append(m.hierarchyDetectors, d)
}

// Map computes all relationship categories, groups, and flows for the given
// input. Inputs are never mutated; the mapper recomputes its own geometric
// predicates rather than consuming a layout report. It never fails; empty
// input yields an empty report.
func (m *Mapper) Map(components []model.Component, texts []model.TextElement) *Report {
	// Stable element ordering: every pair is recorded once, with
	// ComponentA before ComponentB in id order.
	sorted := make([]model.Component, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	report := &Report{
		Spatial:      m.spatialRelationships(sorted),
		Functional:   m.functionalRelationships(sorted),
		Hierarchical: m.hierarchicalRelationships(sorted),
		Semantic:     m.semanticRelationships(sorted, texts),
		Groups:       m.proximityGroups(sorted),
		Flows:        m.interactionFlows(sorted),
	}

	report.Summary = m.summarize(report, len(components))

	return report
}

// summarize aggregates counts, the strong set, and graph density.
func (m *Mapper) summarize(report *Report, componentCount int) Summary {
	summary := Summary{
		SpatialCount:      len(report.Spatial),
		FunctionalCount:   len(report.Functional),
		HierarchicalCount: len(report.Hierarchical),
		SemanticCount:     len(report.Semantic),
	}

	all := report.All()
	summary.Total = len(all)

	for _, rel := range report.Spatial {
		switch rel.RelativePosition {
		case RelPosLeft:
			summary.LeftCount++
		case RelPosRight:
			summary.RightCount++
		case RelPosAbove:
			summary.AboveCount++
		case RelPosBelow:
			summary.BelowCount++
		}
	}

	// Strong set: strength strictly above the floor, strongest first.
	var strong []Relationship
	for _, rel := range all {
		if rel.Strength > m.config.StrongStrength {
			strong = append(strong, rel)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool {
		if strong[i].Strength != strong[j].Strength {
			return strong[i].Strength > strong[j].Strength
		}
		if strong[i].ComponentA != strong[j].ComponentA {
			return strong[i].ComponentA < strong[j].ComponentA
		}
		return strong[i].ComponentB < strong[j].ComponentB
	})
	limit := m.config.StrongLimit
	if limit <= 0 {
		limit = 5
	}
	if len(strong) > limit {
		strong = strong[:limit]
	}
	summary.Strong = strong

	// Graph density over distinct related pairs.
	if componentCount >= 2 {
		pairs := make(map[[2]string]bool)
		for _, rel := range all {
			pairs[[2]string{rel.ComponentA, rel.ComponentB}] = true
		}
		totalPairs := componentCount * (componentCount - 1) / 2
		summary.GraphDensity = float64(len(pairs)) / float64(totalPairs)
		if summary.GraphDensity > 1 {
			summary.GraphDensity = 1
		}
	}

	return summary
}
