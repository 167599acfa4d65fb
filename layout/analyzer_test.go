package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/screenlens/model"
)

var testDims = model.ImageDimensions{Width: 1000, Height: 800}

func TestAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(nil, testDims)

	if report == nil {
		t.Fatal("expected non-nil report")
	}
	if report.Type != TypeEmpty {
		t.Errorf("expected empty layout type, got %v", report.Type)
	}
	if report.Quality != 0 {
		t.Errorf("expected zero quality, got %f", report.Quality)
	}
	if report.Grid == nil || report.Alignment == nil || report.Spacing == nil {
		t.Error("sub-reports should be allocated even for empty input")
	}
}

func TestAnalyzer_GridLayout(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(makeGrid3x3(), testDims)

	if report.Type != TypeGrid {
		t.Errorf("expected grid layout, got %v", report.Type)
	}
	if !report.Grid.Grid.Detected {
		t.Error("expected detected grid")
	}
	if report.Quality <= 0 || report.Quality > 1 {
		t.Errorf("expected quality in (0,1], got %f", report.Quality)
	}
}

func TestAnalyzer_FlexboxRow(t *testing.T) {
	analyzer := NewAnalyzer()

	// One evenly spaced row; a single alignment group covers everything.
	components := []model.Component{
		makeComponent("a", model.ComponentButton, 0, 10, 80, 30),
		makeComponent("b", model.ComponentButton, 100, 10, 80, 30),
		makeComponent("c", model.ComponentButton, 200, 10, 80, 30),
	}

	report := analyzer.Analyze(components, testDims)

	if report.Type != TypeFlexbox {
		t.Errorf("expected flexbox layout, got %v", report.Type)
	}
}

func TestAnalyzer_FlowLayout(t *testing.T) {
	analyzer := NewAnalyzer()

	// Vertically stacked, horizontally scattered boxes.
	components := []model.Component{
		makeComponent("a", model.ComponentText, 0, 0, 300, 40),
		makeComponent("b", model.ComponentText, 40, 60, 250, 40),
		makeComponent("c", model.ComponentText, 15, 120, 280, 40),
	}

	report := analyzer.Analyze(components, testDims)

	if report.Type != TypeFlow {
		t.Errorf("expected flow layout, got %v", report.Type)
	}
}

func TestAnalyzer_QualityFactorsInRange(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(makeGrid3x3(), testDims)

	factors := []float64{report.Factors.Alignment, report.Factors.Spacing, report.Factors.Regularity}
	for i, f := range factors {
		if f < 0 || f > 1 {
			t.Errorf("factor %d out of range: %f", i, f)
		}
	}
}

func TestAnalyzer_Determinism(t *testing.T) {
	analyzer := NewAnalyzer()
	components := makeGrid3x3()

	first := analyzer.Analyze(components, testDims)
	second := analyzer.Analyze(components, testDims)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input produced different reports")
	}
}

func TestAnalyzer_Stats(t *testing.T) {
	analyzer := NewAnalyzer()

	report := analyzer.Analyze(makeGrid3x3(), testDims)

	if report.Stats.ComponentCount != 9 {
		t.Errorf("expected 9 components, got %d", report.Stats.ComponentCount)
	}
	if report.Stats.RowCount != 3 {
		t.Errorf("expected 3 rows, got %d", report.Stats.RowCount)
	}
	if report.Stats.ColumnCount != 3 {
		t.Errorf("expected 3 columns, got %d", report.Stats.ColumnCount)
	}
	if report.Stats.HorizontalGroupCount != 3 {
		t.Errorf("expected 3 horizontal groups, got %d", report.Stats.HorizontalGroupCount)
	}
}

func TestLayoutTypeString(t *testing.T) {
	cases := map[Type]string{
		TypeEmpty:   "empty",
		TypeGrid:    "grid",
		TypeFlexbox: "flexbox",
		TypeFlow:    "flow",
		TypeCustom:  "custom",
	}

	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}
