package relations

import (
	"fmt"
	"math"

	"github.com/tsawler/screenlens/model"
)

// spatialRelationships computes one spatial relationship per unordered pair,
// applying subtype precedence: containment, then overlap, then aligned
// proximity, then adjacency. Pairs matching none are skipped. The relative
// position label is recorded on every emitted relationship.
func (m *Mapper) spatialRelationships(components []model.Component) []Relationship {
	var result []Relationship

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			if rel, ok := m.spatialPair(components[i], components[j]); ok {
				result = append(result, rel)
			}
		}
	}

	return result
}

// spatialPair classifies the spatial relationship between a and b, if any.
func (m *Mapper) spatialPair(a, b model.Component) (Relationship, bool) {
	rel := Relationship{
		ComponentA:       a.ID,
		ComponentB:       b.ID,
		Category:         CategorySpatial,
		RelativePosition: relativePosition(a.Position, b.Position),
	}

	centerDist := a.Position.CenterDistance(b.Position)

	// Containment, either direction, with padding slack.
	pad := m.config.ContainmentPadding
	if a.Position.Expand(pad).Contains(b.Position) {
		rel.Subtype = SubtypeContainment
		rel.Strength = containmentStrength
		rel.Evidence = []string{fmt.Sprintf("%s fully contains %s", a.ID, b.ID)}
		return rel, true
	}
	if b.Position.Expand(pad).Contains(a.Position) {
		rel.Subtype = SubtypeContainment
		rel.Strength = containmentStrength
		rel.Evidence = []string{fmt.Sprintf("%s fully contains %s", b.ID, a.ID)}
		return rel, true
	}

	// Overlap.
	if a.Position.Intersects(b.Position) {
		rel.Subtype = SubtypeOverlap
		rel.Strength = 0.8
		rel.Evidence = []string{
			fmt.Sprintf("boxes overlap with ratio %.2f", a.Position.OverlapRatio(b.Position)),
		}
		return rel, true
	}

	// Alignment with proximity.
	if centerDist < m.config.AlignedProximityMax && m.axisAligned(a.Position, b.Position) {
		rel.Subtype = SubtypeAlignedProximity
		rel.Strength = math.Max(0, 0.7-centerDist/500)
		rel.Evidence = []string{
			fmt.Sprintf("aligned within tolerance at %.1fpx center distance", centerDist),
		}
		return rel, true
	}

	// Adjacency.
	edgeDist := a.Position.EdgeDistance(b.Position)
	if edgeDist < m.config.ProximityThreshold {
		rel.Subtype = SubtypeAdjacency
		rel.Strength = math.Max(0, 0.6-edgeDist/100)
		rel.Evidence = []string{
			fmt.Sprintf("edges within %.1fpx", edgeDist),
		}
		return rel, true
	}

	return Relationship{}, false
}

// axisAligned reports whether the two boxes share an origin coordinate on
// either axis within the alignment tolerance.
func (m *Mapper) axisAligned(a, b model.Position) bool {
	return math.Abs(a.Y-b.Y) <= m.config.AlignmentTolerance ||
		math.Abs(a.X-b.X) <= m.config.AlignmentTolerance
}

// relativePosition labels where b sits relative to a, chosen by the dominant
// axis of the center-to-center delta.
func relativePosition(a, b model.Position) RelativePosition {
	ac, bc := a.Center(), b.Center()
	dx := bc.X - ac.X
	dy := bc.Y - ac.Y

	if dx == 0 && dy == 0 {
		return RelPosNone
	}

	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return RelPosRight
		}
		return RelPosLeft
	}
	if dy > 0 {
		return RelPosBelow
	}
	return RelPosAbove
}
