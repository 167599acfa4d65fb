package screenlens

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/screenlens/layout"
	"github.com/tsawler/screenlens/model"
)

func makeComponent(id string, typ model.ComponentType, x, y, width, height float64) model.Component {
	return model.Component{
		ID:         id,
		Type:       typ,
		Position:   model.NewPosition(x, y, width, height),
		Confidence: 0.9,
	}
}

// navBarInput is a header band with three navigation entries across the top
// of a 1000x800 screenshot.
func navBarInput() Input {
	return Input{
		Components: []model.Component{
			makeComponent("header", model.ComponentHeader, 0, 0, 1000, 60),
			makeComponent("nav1", model.ComponentNavigation, 20, 10, 80, 30),
			makeComponent("nav2", model.ComponentNavigation, 320, 10, 80, 30),
			makeComponent("nav3", model.ComponentNavigation, 620, 10, 80, 30),
		},
		Image: model.ImageDimensions{Width: 1000, Height: 800},
	}
}

func TestAnalyze_NavBarScenario(t *testing.T) {
	engine := New()

	result, err := engine.Analyze(navBarInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The navigation boxes share a horizontal band.
	var navGroup *layout.AlignmentGroup
	for i := range result.Layout.Alignment.HorizontalGroups {
		group := &result.Layout.Alignment.HorizontalGroups[i]
		nav := 0
		for _, c := range group.Components {
			if c.Type == model.ComponentNavigation {
				nav++
			}
		}
		if nav >= 3 {
			navGroup = group
		}
	}
	if navGroup == nil {
		t.Fatal("expected a horizontal group holding the 3 navigation boxes")
	}

	found := false
	for _, p := range result.Patterns.Patterns {
		if p.Name == "horizontal_nav" {
			found = true
			if p.Confidence < 0.7 {
				t.Errorf("expected nav confidence at least 0.7, got %f", p.Confidence)
			}
		}
	}
	if !found {
		t.Error("expected the horizontal_nav pattern")
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	engine := New()

	result, err := engine.Analyze(Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Layout == nil || result.Layout.Type != layout.TypeEmpty {
		t.Error("expected an empty layout report")
	}
	if result.Relationships == nil || result.Relationships.Summary.Total != 0 {
		t.Error("expected an empty relationship report")
	}
	if result.Patterns == nil || len(result.Patterns.Patterns) != 0 {
		t.Error("expected an empty pattern report")
	}
}

func TestAnalyze_Determinism(t *testing.T) {
	engine := New()
	in := navBarInput()

	first, err1 := engine.Analyze(in)
	second, err2 := engine.Analyze(in)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input produced different results")
	}
}

func TestAnalyze_ResultsAreIndependent(t *testing.T) {
	engine := New()

	first, _ := engine.Analyze(navBarInput())
	first.Layout.Stats.ComponentCount = -1

	second, _ := engine.Analyze(navBarInput())
	if second.Layout.Stats.ComponentCount == -1 {
		t.Error("mutating one result leaked into the next analysis")
	}
}

func TestPartialEntryPoints(t *testing.T) {
	engine := New()
	in := navBarInput()

	full, err := engine.Analyze(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	layoutOnly := engine.AnalyzeLayout(in.Components, in.Image)
	if layoutOnly.Type != full.Layout.Type {
		t.Error("standalone layout analysis should match the full pipeline")
	}

	relsOnly := engine.AnalyzeRelationships(in.Components, in.Texts)
	if relsOnly.Summary.Total != full.Relationships.Summary.Total {
		t.Error("standalone relationship mapping should match the full pipeline")
	}

	patternsOnly := engine.MatchPatterns(in)
	if !reflect.DeepEqual(patternsOnly, full.Patterns) {
		t.Error("standalone pattern matching should match the full pipeline")
	}
}

func TestWithConfig_RaisedThresholdDropsPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patterns.MinConfidence = 0.95

	engine := New(WithConfig(cfg))

	result, err := engine.Analyze(navBarInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Patterns.Patterns) != 0 {
		t.Errorf("expected all patterns below 0.95 dropped, got %d", len(result.Patterns.Patterns))
	}
}

func TestWithLogger_EmitsStageLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	engine := New(WithLogger(logger))
	if _, err := engine.Analyze(navBarInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "analysis started") {
		t.Error("expected an analysis start log line")
	}
	if !strings.Contains(out, "stage complete") {
		t.Error("expected stage completion log lines")
	}
}

func TestRunStage_ConvertsPanic(t *testing.T) {
	engine := New()

	err := engine.runStage("layout", func() {
		panic("boom")
	})

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected a StageError, got %v", err)
	}
	if stageErr.Stage != "layout" {
		t.Errorf("expected stage name layout, got %s", stageErr.Stage)
	}
	if !strings.Contains(stageErr.Error(), "boom") {
		t.Errorf("expected the panic value in the message, got %s", stageErr.Error())
	}
}

func TestAnalyze_PanickingStageLeavesOthersIntact(t *testing.T) {
	engine := New()
	engine.patterns = nil // forces a nil dereference in the pattern stage

	result, err := engine.Analyze(navBarInput())

	if err == nil {
		t.Fatal("expected an error from the pattern stage")
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != "patterns" {
		t.Fatalf("expected a patterns StageError, got %v", err)
	}
	if result.Layout == nil || result.Relationships == nil {
		t.Error("expected the surviving stages to report")
	}
	if result.Patterns != nil {
		t.Error("expected the failed stage to leave its report nil")
	}
}
