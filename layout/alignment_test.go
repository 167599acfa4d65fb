package layout

import (
	"math"
	"testing"

	"github.com/tsawler/screenlens/model"
)

func TestAlignmentDetector_EmptyInput(t *testing.T) {
	detector := NewAlignmentDetector()

	result := detector.Detect(nil)

	if result == nil {
		t.Fatal("expected non-nil layout")
	}
	if len(result.HorizontalGroups) != 0 || len(result.VerticalGroups) != 0 {
		t.Error("empty input should produce no groups")
	}
}

func TestAlignmentDetector_WithinToleranceShareGroup(t *testing.T) {
	detector := NewAlignmentDetector()

	// |y1 - y2| = 10, exactly at the default tolerance.
	components := []model.Component{
		makeComponent("a", model.ComponentButton, 0, 100, 50, 20),
		makeComponent("b", model.ComponentButton, 100, 110, 50, 20),
	}

	result := detector.Detect(components)

	if len(result.HorizontalGroups) != 1 {
		t.Fatalf("expected 1 horizontal group, got %d", len(result.HorizontalGroups))
	}
	if result.HorizontalGroups[0].Size() != 2 {
		t.Errorf("expected group size 2, got %d", result.HorizontalGroups[0].Size())
	}
}

func TestAlignmentDetector_BeyondToleranceSplit(t *testing.T) {
	detector := NewAlignmentDetector()

	components := []model.Component{
		makeComponent("a", model.ComponentButton, 0, 100, 50, 20),
		makeComponent("b", model.ComponentButton, 100, 120, 50, 20),
	}

	result := detector.Detect(components)

	if len(result.HorizontalGroups) != 0 {
		t.Errorf("expected no horizontal groups, got %d", len(result.HorizontalGroups))
	}
}

func TestAlignmentDetector_GroupQuality(t *testing.T) {
	detector := NewAlignmentDetector()

	components := []model.Component{
		makeComponent("a", model.ComponentButton, 0, 100, 50, 20),
		makeComponent("b", model.ComponentButton, 100, 108, 50, 20),
	}

	result := detector.Detect(components)

	if len(result.HorizontalGroups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result.HorizontalGroups))
	}

	// Population variance of [100,108] is 16, so quality is 0.84.
	quality := result.HorizontalGroups[0].Quality
	if math.Abs(quality-0.84) > 1e-9 {
		t.Errorf("expected quality 0.84, got %f", quality)
	}
}

func TestAlignmentDetector_PerfectAlignmentQuality(t *testing.T) {
	detector := NewAlignmentDetector()

	components := []model.Component{
		makeComponent("a", model.ComponentNavigation, 0, 10, 80, 30),
		makeComponent("b", model.ComponentNavigation, 100, 10, 80, 30),
		makeComponent("c", model.ComponentNavigation, 200, 10, 80, 30),
	}

	result := detector.Detect(components)

	if len(result.HorizontalGroups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result.HorizontalGroups))
	}
	if q := result.HorizontalGroups[0].Quality; q != 1.0 {
		t.Errorf("expected quality 1.0 for perfect alignment, got %f", q)
	}
}

func TestAlignmentDetector_FirstSeenWins(t *testing.T) {
	detector := NewAlignmentDetector()

	// b is within tolerance of both a (anchor 100) and c (anchor 118),
	// greedy assignment puts it in a's group.
	components := []model.Component{
		makeComponent("a", model.ComponentText, 0, 100, 50, 20),
		makeComponent("b", model.ComponentText, 60, 109, 50, 20),
		makeComponent("c", model.ComponentText, 120, 118, 50, 20),
	}

	result := detector.Detect(components)

	if len(result.HorizontalGroups) != 1 {
		t.Fatalf("expected 1 retained group, got %d", len(result.HorizontalGroups))
	}

	group := result.HorizontalGroups[0]
	if group.Size() != 2 {
		t.Fatalf("expected group of 2, got %d", group.Size())
	}
	if group.Components[0].ID != "a" || group.Components[1].ID != "b" {
		t.Errorf("expected members a and b, got %s and %s",
			group.Components[0].ID, group.Components[1].ID)
	}
}

func TestAlignmentDetector_VerticalGroups(t *testing.T) {
	detector := NewAlignmentDetector()

	components := []model.Component{
		makeComponent("a", model.ComponentCard, 50, 0, 100, 80),
		makeComponent("b", model.ComponentCard, 55, 100, 100, 80),
		makeComponent("c", model.ComponentCard, 400, 0, 100, 80),
	}

	result := detector.Detect(components)

	if len(result.VerticalGroups) != 1 {
		t.Fatalf("expected 1 vertical group, got %d", len(result.VerticalGroups))
	}
	if result.VerticalGroups[0].Size() != 2 {
		t.Errorf("expected group size 2, got %d", result.VerticalGroups[0].Size())
	}
}

func TestAlignmentDetector_EdgeAlignments(t *testing.T) {
	detector := NewAlignmentDetector()

	// Shared left edge (delta 0) and shared right edge (both width 100).
	components := []model.Component{
		makeComponent("a", model.ComponentCard, 50, 0, 100, 80),
		makeComponent("b", model.ComponentCard, 50, 200, 100, 80),
	}

	result := detector.Detect(components)

	var hasLeft, hasRight bool
	for _, ea := range result.EdgeAlignments {
		switch ea.Edge {
		case EdgeLeft:
			hasLeft = true
		case EdgeRight:
			hasRight = true
		}
	}

	if !hasLeft {
		t.Error("expected a left edge alignment")
	}
	if !hasRight {
		t.Error("expected a right edge alignment")
	}
}

func TestAlignmentDetector_CenterAlignments(t *testing.T) {
	detector := NewAlignmentDetector()

	// Different widths but identical horizontal centers (x+w/2 == 100).
	components := []model.Component{
		makeComponent("a", model.ComponentText, 50, 0, 100, 20),
		makeComponent("b", model.ComponentText, 75, 100, 50, 20),
	}

	result := detector.Detect(components)

	var found bool
	for _, ca := range result.CenterAlignments {
		if ca.Axis == AxisVertical && ca.Delta == 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected a shared horizontal-center alignment")
	}
}

func TestAlignmentDetector_StableGroupIDs(t *testing.T) {
	detector := NewAlignmentDetector()

	components := []model.Component{
		makeComponent("a", model.ComponentButton, 0, 10, 50, 20),
		makeComponent("b", model.ComponentButton, 100, 10, 50, 20),
	}

	first := detector.Detect(components)
	second := detector.Detect(components)

	if first.HorizontalGroups[0].ID != second.HorizontalGroups[0].ID {
		t.Error("group ids should be identical across runs on the same input")
	}
	if first.HorizontalGroups[0].ID == "" {
		t.Error("group id should not be empty")
	}
}
