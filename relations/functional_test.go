package relations

import (
	"math"
	"testing"

	"github.com/tsawler/screenlens/model"
)

func findFunctional(report *Report, subtype Subtype) *Relationship {
	for i := range report.Functional {
		if report.Functional[i].Subtype == subtype {
			return &report.Functional[i]
		}
	}
	return nil
}

func TestFunctional_FormGroup(t *testing.T) {
	mapper := NewMapper()

	// Two inputs on the same row, centers 120px apart.
	components := []model.Component{
		makeComponent("a", model.ComponentInput, 0, 100, 80, 30),
		makeComponent("b", model.ComponentInput, 120, 100, 80, 30),
	}

	report := mapper.Map(components, nil)

	rel := findFunctional(report, SubtypeFormGroup)
	if rel == nil {
		t.Fatal("expected a form_group relationship")
	}

	want := 0.7 - 120.0/300.0
	if math.Abs(rel.Strength-want) > 1e-9 {
		t.Errorf("expected confidence %f, got %f", want, rel.Strength)
	}
}

func TestFunctional_FormGroupDecaysToZero(t *testing.T) {
	mapper := NewMapper()

	// 300px apart: 0.7 - 300/300 ≤ 0, so no relationship.
	components := []model.Component{
		makeComponent("a", model.ComponentInput, 0, 100, 80, 30),
		makeComponent("b", model.ComponentInput, 300, 100, 80, 30),
	}

	report := mapper.Map(components, nil)

	if rel := findFunctional(report, SubtypeFormGroup); rel != nil {
		t.Errorf("expected no form_group at 300px, got confidence %f", rel.Strength)
	}
}

func TestFunctional_FormSubmission(t *testing.T) {
	mapper := NewMapper()

	components := []model.Component{
		makeComponent("field", model.ComponentInput, 0, 0, 200, 30),
		{
			ID:          "go",
			Type:        model.ComponentButton,
			Position:    model.NewPosition(0, 50, 100, 30),
			Confidence:  0.9,
			TextContent: "Submit",
		},
	}

	report := mapper.Map(components, nil)

	rel := findFunctional(report, SubtypeFormSubmission)
	if rel == nil {
		t.Fatal("expected a form_submission relationship")
	}

	// Type match 0.4 + near proximity 0.3 + action verb 0.3.
	if math.Abs(rel.Strength-1.0) > 1e-9 {
		t.Errorf("expected confidence 1.0, got %f", rel.Strength)
	}
}

func TestFunctional_ThresholdRejectsWeakPair(t *testing.T) {
	mapper := NewMapper()

	// Label and input 250px apart: 0.4 base, no proximity bonus, text
	// evidence 0.15 -> 0.55 < 0.6 threshold.
	components := []model.Component{
		{
			ID:          "lbl",
			Type:        model.ComponentLabel,
			Position:    model.NewPosition(0, 0, 80, 20),
			Confidence:  0.9,
			TextContent: "Email",
		},
		makeComponent("field", model.ComponentInput, 250, 0, 200, 20),
	}

	report := mapper.Map(components, nil)

	if rel := findFunctional(report, SubtypeFormLabeling); rel != nil {
		t.Errorf("expected weak labeling pair rejected, got confidence %f", rel.Strength)
	}
}

func TestFunctional_FormLabeling(t *testing.T) {
	mapper := NewMapper()

	components := []model.Component{
		{
			ID:          "lbl",
			Type:        model.ComponentLabel,
			Position:    model.NewPosition(0, 0, 80, 20),
			Confidence:  0.9,
			TextContent: "Email",
		},
		makeComponent("field", model.ComponentInput, 0, 30, 200, 30),
	}

	report := mapper.Map(components, nil)

	rel := findFunctional(report, SubtypeFormLabeling)
	if rel == nil {
		t.Fatal("expected a form_labeling relationship")
	}
	if rel.Strength < 0.6 {
		t.Errorf("expected confidence above threshold, got %f", rel.Strength)
	}
}

func TestFunctional_NavGroup(t *testing.T) {
	mapper := NewMapper()

	components := []model.Component{
		{
			ID:          "n1",
			Type:        model.ComponentNavigation,
			Position:    model.NewPosition(0, 10, 80, 30),
			Confidence:  0.9,
			TextContent: "Home",
		},
		{
			ID:          "n2",
			Type:        model.ComponentNavigation,
			Position:    model.NewPosition(100, 10, 80, 30),
			Confidence:  0.9,
			TextContent: "About",
		},
	}

	report := mapper.Map(components, nil)

	rel := findFunctional(report, SubtypeNavGroup)
	if rel == nil {
		t.Fatal("expected a nav_group relationship")
	}
	// Type match 0.4 + near proximity 0.3 + nav keyword 0.3.
	if math.Abs(rel.Strength-1.0) > 1e-9 {
		t.Errorf("expected confidence 1.0, got %f", rel.Strength)
	}
}

func TestFunctional_NoRuleNoRelationship(t *testing.T) {
	mapper := NewMapper()

	components := []model.Component{
		makeComponent("a", model.ComponentImage, 0, 0, 100, 100),
		makeComponent("b", model.ComponentCard, 120, 0, 100, 100),
	}

	report := mapper.Map(components, nil)

	if len(report.Functional) != 0 {
		t.Errorf("expected no functional relationships, got %d", len(report.Functional))
	}
}
