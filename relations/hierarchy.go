package relations

import (
	"fmt"

	"github.com/tsawler/screenlens/model"
)

// containmentStrength is the fixed strength of a containment relationship.
const containmentStrength = 0.9

// HierarchyDetector is an extension point for additional hierarchy sources
// (size-based, stacking-order-based). A detector may legitimately return no
// relationships.
type HierarchyDetector func(components []model.Component) []Relationship

// contains reports whether container geometrically contains child, with the
// configured padding slack. A component never contains itself.
func (m *Mapper) contains(container, child model.Component) bool {
	if container.ID == child.ID {
		return false
	}
	return container.Position.Expand(m.config.ContainmentPadding).Contains(child.Position)
}

// hierarchicalRelationships derives nesting relationships from containment
// chains, then runs any registered extension detectors.
func (m *Mapper) hierarchicalRelationships(components []model.Component) []Relationship {
	var result []Relationship

	// Nesting level per component: the number of ancestors that contain it.
	levels := make(map[string]int, len(components))
	for _, c := range components {
		level := 0
		for _, other := range components {
			if m.contains(other, c) {
				level++
			}
		}
		levels[c.ID] = level
	}

	// Emit one relationship per direct container/child pair. A pair is
	// direct when no intermediate component sits between them in the
	// containment chain.
	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i], components[j]

			var container, child model.Component
			switch {
			case m.contains(a, b):
				container, child = a, b
			case m.contains(b, a):
				container, child = b, a
			default:
				continue
			}

			if !m.directlyContains(container, child, components) {
				continue
			}

			result = append(result, Relationship{
				ComponentA: a.ID,
				ComponentB: b.ID,
				Category:   CategoryHierarchical,
				Subtype:    SubtypeNesting,
				Strength:   containmentStrength,
				Level:      levels[child.ID],
				Evidence: []string{
					fmt.Sprintf("%s nests inside %s at level %d", child.ID, container.ID, levels[child.ID]),
				},
			})
		}
	}

	for _, detect := range m.hierarchyDetectors {
		result = append(result, detect(components)...)
	}

	return result
}

// directlyContains reports whether no intermediate component sits between
// container and child in the containment chain.
func (m *Mapper) directlyContains(container, child model.Component, components []model.Component) bool {
	for _, mid := range components {
		if mid.ID == container.ID || mid.ID == child.ID {
			continue
		}
		if m.contains(container, mid) && m.contains(mid, child) {
			return false
		}
	}
	return true
}

// sizeHierarchy is an extension point for size-ranking hierarchy. It
// currently reports nothing.
func sizeHierarchy([]model.Component) []Relationship {
	return nil
}

// stackingHierarchy is an extension point for z-order hierarchy. The input
// model carries no stacking information, so it reports nothing.
func stackingHierarchy([]model.Component) []Relationship {
	return nil
}
