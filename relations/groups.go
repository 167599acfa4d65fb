package relations

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/screenlens/internal/textmatch"
	"github.com/tsawler/screenlens/model"
)

// GroupKind identifies how a component group was derived.
type GroupKind int

const (
	// GroupProximity clusters components by center distance.
	GroupProximity GroupKind = iota

	// GroupFunctional and GroupVisual are extension points; no detector
	// currently produces them.
	GroupFunctional
	GroupVisual
)

// String returns a string representation of the group kind.
func (k GroupKind) String() string {
	switch k {
	case GroupProximity:
		return "proximity"
	case GroupFunctional:
		return "functional"
	case GroupVisual:
		return "visual"
	default:
		return "unknown"
	}
}

// ComponentGroup is a derived cluster of components.
type ComponentGroup struct {
	// ID is a stable identifier derived from the member component ids.
	ID string

	// Kind records the grouping strategy that produced the group.
	Kind GroupKind

	// ComponentIDs are the member ids in absorption order.
	ComponentIDs []string

	// Bounds is the union of member bounding boxes.
	Bounds model.Position

	// Centroid is the mean of member centers.
	Centroid model.Point
}

// InteractionFlow is a predicted user flow: fill the inputs, press the
// trigger button.
type InteractionFlow struct {
	// ID is a stable identifier derived from the member ids.
	ID string

	// InputIDs are the participating form fields, top to bottom.
	InputIDs []string

	// TriggerID is the action button that completes the flow.
	TriggerID string

	// Confidence of the predicted flow.
	Confidence float64
}

// proximityGroups clusters components greedily: take the first unclustered
// component, absorb every other unclustered component within the grouping
// distance of it, and repeat. Groups with at least two members are retained.
func (m *Mapper) proximityGroups(components []model.Component) []ComponentGroup {
	clustered := make(map[string]bool, len(components))
	var groups []ComponentGroup

	for _, seed := range components {
		if clustered[seed.ID] {
			continue
		}
		clustered[seed.ID] = true

		members := []model.Component{seed}
		for _, other := range components {
			if clustered[other.ID] {
				continue
			}
			if seed.Position.CenterDistance(other.Position) <= m.config.GroupingDistance {
				clustered[other.ID] = true
				members = append(members, other)
			}
		}

		if len(members) < 2 {
			continue
		}

		groups = append(groups, buildGroup(GroupProximity, members))
	}

	return groups
}

// buildGroup assembles a ComponentGroup from its members.
func buildGroup(kind GroupKind, members []model.Component) ComponentGroup {
	ids := make([]string, len(members))
	bounds := members[0].Position
	var sumX, sumY float64

	for i, c := range members {
		ids[i] = c.ID
		bounds = bounds.Union(c.Position)
		center := c.Position.Center()
		sumX += center.X
		sumY += center.Y
	}

	return ComponentGroup{
		ID:           derivedID("group/"+kind.String(), ids),
		Kind:         kind,
		ComponentIDs: ids,
		Bounds:       bounds,
		Centroid: model.Point{
			X: sumX / float64(len(members)),
			Y: sumY / float64(len(members)),
		},
	}
}

// interactionFlows pairs each action-labeled button with the form fields
// within flow distance of it. The flow orders inputs top to bottom and ends
// at the button.
func (m *Mapper) interactionFlows(components []model.Component) []InteractionFlow {
	var flows []InteractionFlow

	for _, button := range components {
		if button.Type != model.ComponentButton || !textmatch.IsAction(button.TextContent) {
			continue
		}

		var inputs []model.Component
		for _, c := range components {
			if !isFormField(c.Type) {
				continue
			}
			if button.Position.CenterDistance(c.Position) <= m.config.FlowDistance {
				inputs = append(inputs, c)
			}
		}

		if len(inputs) == 0 {
			continue
		}

		sort.SliceStable(inputs, func(i, j int) bool {
			if inputs[i].Position.Y != inputs[j].Position.Y {
				return inputs[i].Position.Y < inputs[j].Position.Y
			}
			return inputs[i].Position.X < inputs[j].Position.X
		})

		ids := make([]string, len(inputs))
		for i, c := range inputs {
			ids[i] = c.ID
		}

		flows = append(flows, InteractionFlow{
			ID:         derivedID("flow", append(append([]string{}, ids...), button.ID)),
			InputIDs:   ids,
			TriggerID:  button.ID,
			Confidence: 0.8,
		})
	}

	return flows
}

// derivedID computes a stable UUIDv5 from a scope and member ids, so
// repeated analyses of the same input yield identical identifiers.
func derivedID(scope string, memberIDs []string) string {
	sorted := make([]string, len(memberIDs))
	copy(sorted, memberIDs)
	sort.Strings(sorted)
	name := "screenlens/" + scope + "/" + strings.Join(sorted, ",")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
