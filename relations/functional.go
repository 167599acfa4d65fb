package relations

import (
	"fmt"
	"math"

	"github.com/tsawler/screenlens/internal/textmatch"
	"github.com/tsawler/screenlens/model"
)

// functionalRule maps a type pair to a relationship subtype with its own
// scorer. The rule table is resolved once at Mapper construction; rules are
// tried in order and the first type match wins.
type functionalRule struct {
	primary   model.ComponentType
	secondary model.ComponentType
	subtype   Subtype

	// score returns the confidence and supporting evidence for a matched
	// pair. primary/secondary report which input matched which role.
	score func(primary, secondary model.Component, centerDist float64) (float64, []string)

	// floor is the acceptance threshold for this rule's confidence.
	floor float64
}

// isFormField reports whether the type accepts user input.
func isFormField(t model.ComponentType) bool {
	return t == model.ComponentInput || t == model.ComponentCheckbox || t == model.ComponentDropdown
}

// newFunctionalRules builds the ordered rule table. Distance-decay rules
// (form_group) accept any positive confidence; additive rules are gated by
// the configured functional threshold.
func (m *Mapper) newFunctionalRules() []functionalRule {
	threshold := m.config.FunctionalThreshold

	var rules []functionalRule

	// Form field feeding an action button.
	for _, field := range []model.ComponentType{model.ComponentInput, model.ComponentCheckbox, model.ComponentDropdown} {
		rules = append(rules, functionalRule{
			primary:   field,
			secondary: model.ComponentButton,
			subtype:   SubtypeFormSubmission,
			floor:     threshold,
			score: func(field, button model.Component, dist float64) (float64, []string) {
				evidence := []string{"form field paired with button"}
				text := 0.0
				if textmatch.IsAction(button.TextContent) {
					text = 0.3
					evidence = append(evidence, fmt.Sprintf("button text %q is an action verb", button.TextContent))
				} else if button.TextContent != "" {
					text = 0.1
				}
				return m.additiveScore(dist, text), evidence
			},
		})
	}

	// Label annotating a form field.
	for _, field := range []model.ComponentType{model.ComponentInput, model.ComponentCheckbox, model.ComponentDropdown} {
		rules = append(rules, functionalRule{
			primary:   model.ComponentLabel,
			secondary: field,
			subtype:   SubtypeFormLabeling,
			floor:     threshold,
			score: func(label, field model.Component, dist float64) (float64, []string) {
				evidence := []string{"label adjacent to form field"}
				text := 0.0
				if label.TextContent != "" {
					text = 0.15
					evidence = append(evidence, fmt.Sprintf("label carries text %q", label.TextContent))
				}
				return m.additiveScore(dist, text), evidence
			},
		})
	}

	// Two inputs forming a field group. Distance-decay scorer, accepted
	// whenever positive.
	rules = append(rules, functionalRule{
		primary:   model.ComponentInput,
		secondary: model.ComponentInput,
		subtype:   SubtypeFormGroup,
		floor:     0,
		score: func(a, b model.Component, dist float64) (float64, []string) {
			confidence := math.Max(0, 0.7-dist/300)
			evidence := []string{fmt.Sprintf("inputs %.0fpx apart", dist)}
			return confidence, evidence
		},
	})

	// Navigation entries grouping together.
	rules = append(rules, functionalRule{
		primary:   model.ComponentNavigation,
		secondary: model.ComponentNavigation,
		subtype:   SubtypeNavGroup,
		floor:     threshold,
		score: func(a, b model.Component, dist float64) (float64, []string) {
			evidence := []string{"navigation components paired"}
			text := 0.0
			if textmatch.IsNavKeyword(a.TextContent) || textmatch.IsNavKeyword(b.TextContent) {
				text = 0.3
				evidence = append(evidence, "navigation keyword label present")
			} else if a.TextContent != "" && b.TextContent != "" {
				text = 0.15
			}
			return m.additiveScore(dist, text), evidence
		},
	})

	return rules
}

// additiveScore is the shared functional confidence formula: 0.4 for the
// type match, a proximity bonus, and up to 0.3 of textual evidence, capped
// at 1.
func (m *Mapper) additiveScore(dist, textEvidence float64) float64 {
	score := 0.4
	switch {
	case dist < m.config.FunctionalNearDistance:
		score += 0.3
	case dist < m.config.FunctionalFarDistance:
		score += 0.2
	}
	score += math.Min(0.3, textEvidence)
	return math.Min(1, score)
}

// functionalRelationships applies the rule table to every unordered pair.
func (m *Mapper) functionalRelationships(components []model.Component) []Relationship {
	var result []Relationship

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i], components[j]
			if rel, ok := m.functionalPair(a, b); ok {
				result = append(result, rel)
			}
		}
	}

	return result
}

// functionalPair finds the first rule matching the pair's types, in either
// orientation, and scores it.
func (m *Mapper) functionalPair(a, b model.Component) (Relationship, bool) {
	dist := a.Position.CenterDistance(b.Position)

	for _, rule := range m.functionalRules {
		var primary, secondary model.Component
		switch {
		case a.Type == rule.primary && b.Type == rule.secondary:
			primary, secondary = a, b
		case b.Type == rule.primary && a.Type == rule.secondary:
			primary, secondary = b, a
		default:
			continue
		}

		confidence, evidence := rule.score(primary, secondary, dist)
		if confidence <= 0 || confidence < rule.floor {
			return Relationship{}, false
		}

		return Relationship{
			ComponentA: a.ID,
			ComponentB: b.ID,
			Category:   CategoryFunctional,
			Subtype:    rule.subtype,
			Strength:   confidence,
			Evidence:   evidence,
		}, true
	}

	return Relationship{}, false
}
