package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/screenlens/model"
)

// Axis identifies the alignment axis of a group.
type Axis int

const (
	// AxisHorizontal groups components sharing a Y coordinate (a row).
	AxisHorizontal Axis = iota

	// AxisVertical groups components sharing an X coordinate (a column).
	AxisVertical
)

// String returns a string representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Edge identifies which bounding edge two components share.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns a string representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// AlignmentConfig holds configuration for alignment detection.
type AlignmentConfig struct {
	// Tolerance is the maximum coordinate delta in pixels for two
	// components to be considered aligned.
	// Default: 10
	Tolerance float64 `yaml:"tolerance"`

	// MinGroupSize is the smallest retained alignment group.
	// Default: 2
	MinGroupSize int `yaml:"min_group_size"`
}

// DefaultAlignmentConfig returns sensible default configuration.
func DefaultAlignmentConfig() AlignmentConfig {
	return AlignmentConfig{
		Tolerance:    10.0,
		MinGroupSize: 2,
	}
}

// AlignmentGroup is a set of components sharing an origin coordinate within
// tolerance on one axis.
type AlignmentGroup struct {
	// ID is a stable identifier derived from the member component ids.
	ID string

	// Axis the group is aligned on.
	Axis Axis

	// Components in the group, in first-seen order.
	Components []model.Component

	// Coordinate is the mean origin coordinate of the members (Y for
	// horizontal groups, X for vertical).
	Coordinate float64

	// Quality is the alignment quality score in [0,1]; 1 means perfectly
	// aligned.
	Quality float64
}

// Size returns the number of components in the group.
func (g *AlignmentGroup) Size() int {
	return len(g.Components)
}

// MeanY returns the mean origin Y coordinate of the group's members.
func (g *AlignmentGroup) MeanY() float64 {
	if len(g.Components) == 0 {
		return 0
	}
	ys := make([]float64, len(g.Components))
	for i, c := range g.Components {
		ys[i] = c.Position.Y
	}
	return stat.Mean(ys, nil)
}

// EdgeAlignment records a pair of components sharing a bounding edge within
// tolerance. Computed independently of the greedy groups.
type EdgeAlignment struct {
	ComponentA string
	ComponentB string
	Edge       Edge

	// Delta is the absolute coordinate difference of the shared edge.
	Delta float64
}

// CenterAlignment records a pair of components sharing a center coordinate
// within tolerance.
type CenterAlignment struct {
	ComponentA string
	ComponentB string

	// Axis is AxisVertical for a shared horizontal-center (X) coordinate
	// and AxisHorizontal for a shared vertical-center (Y) coordinate.
	Axis Axis

	// Delta is the absolute center coordinate difference.
	Delta float64
}

// AlignmentLayout is the result of alignment detection over a component set.
type AlignmentLayout struct {
	// HorizontalGroups share a Y coordinate (rows), VerticalGroups an X
	// coordinate (columns).
	HorizontalGroups []AlignmentGroup
	VerticalGroups   []AlignmentGroup

	// EdgeAlignments are pairwise shared-edge matches.
	EdgeAlignments []EdgeAlignment

	// CenterAlignments are pairwise shared-center matches.
	CenterAlignments []CenterAlignment

	// Config used for detection.
	Config AlignmentConfig
}

// LargestGroup returns the alignment group with the most members across both
// axes, or nil if there are no groups.
func (l *AlignmentLayout) LargestGroup() *AlignmentGroup {
	var best *AlignmentGroup
	for i := range l.HorizontalGroups {
		if best == nil || l.HorizontalGroups[i].Size() > best.Size() {
			best = &l.HorizontalGroups[i]
		}
	}
	for i := range l.VerticalGroups {
		if best == nil || l.VerticalGroups[i].Size() > best.Size() {
			best = &l.VerticalGroups[i]
		}
	}
	return best
}

// AlignmentDetector finds groups of components sharing an edge or center
// coordinate within tolerance.
//
// Group assignment is greedy and first-seen-wins: a component joins the first
// group whose anchor it matches and appears in at most one group per axis.
// This is not optimal clustering; a component equidistant from two anchors
// always joins the earlier one.
type AlignmentDetector struct {
	config AlignmentConfig
}

// NewAlignmentDetector creates an alignment detector with default configuration.
func NewAlignmentDetector() *AlignmentDetector {
	return &AlignmentDetector{config: DefaultAlignmentConfig()}
}

// NewAlignmentDetectorWithConfig creates an alignment detector with custom
// configuration.
func NewAlignmentDetectorWithConfig(config AlignmentConfig) *AlignmentDetector {
	return &AlignmentDetector{config: config}
}

// Detect computes alignment groups and pairwise edge/center alignments.
// It never fails; empty input yields an empty layout.
func (d *AlignmentDetector) Detect(components []model.Component) *AlignmentLayout {
	result := &AlignmentLayout{Config: d.config}

	if len(components) == 0 {
		return result
	}

	result.HorizontalGroups = d.groupByAxis(components, AxisHorizontal)
	result.VerticalGroups = d.groupByAxis(components, AxisVertical)
	result.EdgeAlignments = d.edgeAlignments(components)
	result.CenterAlignments = d.centerAlignments(components)

	return result
}

// groupByAxis greedily clusters components by origin coordinate on one axis.
func (d *AlignmentDetector) groupByAxis(components []model.Component, axis Axis) []AlignmentGroup {
	coord := func(c model.Component) float64 {
		if axis == AxisHorizontal {
			return c.Position.Y
		}
		return c.Position.X
	}

	assigned := make([]bool, len(components))
	var groups []AlignmentGroup

	for i := range components {
		if assigned[i] {
			continue
		}

		anchor := coord(components[i])
		group := AlignmentGroup{Axis: axis}

		for j := i; j < len(components); j++ {
			if assigned[j] {
				continue
			}
			if math.Abs(coord(components[j])-anchor) <= d.config.Tolerance {
				assigned[j] = true
				group.Components = append(group.Components, components[j])
			}
		}

		if len(group.Components) < d.config.MinGroupSize {
			continue
		}

		coords := make([]float64, len(group.Components))
		ids := make([]string, len(group.Components))
		for k, c := range group.Components {
			coords[k] = coord(c)
			ids[k] = c.ID
		}

		group.Coordinate = stat.Mean(coords, nil)
		group.Quality = math.Max(0, 1-stat.PopVariance(coords, nil)/100)
		group.ID = groupID("alignment/"+axis.String(), ids)

		groups = append(groups, group)
	}

	return groups
}

// edgeAlignments computes pairwise shared-edge matches, independent of the
// greedy groups.
func (d *AlignmentDetector) edgeAlignments(components []model.Component) []EdgeAlignment {
	var result []EdgeAlignment

	edges := []struct {
		edge  Edge
		value func(model.Position) float64
	}{
		{EdgeLeft, model.Position.Left},
		{EdgeRight, model.Position.Right},
		{EdgeTop, model.Position.Top},
		{EdgeBottom, model.Position.Bottom},
	}

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i], components[j]
			for _, e := range edges {
				delta := math.Abs(e.value(a.Position) - e.value(b.Position))
				if delta <= d.config.Tolerance {
					result = append(result, EdgeAlignment{
						ComponentA: a.ID,
						ComponentB: b.ID,
						Edge:       e.edge,
						Delta:      delta,
					})
				}
			}
		}
	}

	return result
}

// centerAlignments computes pairwise shared-center matches.
func (d *AlignmentDetector) centerAlignments(components []model.Component) []CenterAlignment {
	var result []CenterAlignment

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i], components[j]
			ca, cb := a.Position.Center(), b.Position.Center()

			if delta := math.Abs(ca.X - cb.X); delta <= d.config.Tolerance {
				result = append(result, CenterAlignment{
					ComponentA: a.ID,
					ComponentB: b.ID,
					Axis:       AxisVertical,
					Delta:      delta,
				})
			}
			if delta := math.Abs(ca.Y - cb.Y); delta <= d.config.Tolerance {
				result = append(result, CenterAlignment{
					ComponentA: a.ID,
					ComponentB: b.ID,
					Axis:       AxisHorizontal,
					Delta:      delta,
				})
			}
		}
	}

	return result
}

// groupID derives a stable UUIDv5 identifier from a scope and the member
// component ids, so repeated analyses of the same input produce identical
// group ids.
func groupID(scope string, memberIDs []string) string {
	sorted := make([]string, len(memberIDs))
	copy(sorted, memberIDs)
	sort.Strings(sorted)
	name := "screenlens/" + scope + "/" + strings.Join(sorted, ",")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
