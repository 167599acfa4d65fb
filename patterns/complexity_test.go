package patterns

import (
	"math"
	"testing"

	"github.com/tsawler/screenlens/layout"
	"github.com/tsawler/screenlens/model"
)

func TestComplexityLevel_Buckets(t *testing.T) {
	cases := []struct {
		score float64
		want  ComplexityLevel
	}{
		{0, ComplexitySimple},
		{0.29, ComplexitySimple},
		{0.3, ComplexityModerate},
		{0.59, ComplexityModerate},
		{0.6, ComplexityComplex},
		{0.79, ComplexityComplex},
		{0.8, ComplexityVeryComplex},
		{1.0, ComplexityVeryComplex},
	}
	for _, tc := range cases {
		if got := complexityLevel(tc.score); got != tc.want {
			t.Errorf("score %f: expected %v, got %v", tc.score, tc.want, got)
		}
	}
}

func TestComplexityLevel_Strings(t *testing.T) {
	cases := map[ComplexityLevel]string{
		ComplexitySimple:      "simple",
		ComplexityModerate:    "moderate",
		ComplexityComplex:     "complex",
		ComplexityVeryComplex: "very_complex",
	}
	for level, want := range cases {
		if level.String() != want {
			t.Errorf("expected %q, got %q", want, level.String())
		}
	}
}

func TestAssessComplexity_SaturatedInput(t *testing.T) {
	components := make([]model.Component, 30)
	for i := range components {
		components[i] = makeComponent("c", model.ComponentCard, 0, 0, 10, 10)
	}
	in := Input{
		Components:  components,
		ColorCount:  12,
		EdgeDensity: 1.0,
	}

	got := assessComplexity(DefaultComplexityConfig(), in, layout.TypeCustom)

	// 1*0.3 + 1*0.2 + 0.9*0.2 + 1*0.3 = 0.98.
	if math.Abs(got.Score-0.98) > 1e-9 {
		t.Errorf("expected score 0.98, got %f", got.Score)
	}
	if got.Level != ComplexityVeryComplex {
		t.Errorf("expected very_complex, got %v", got.Level)
	}
}

func TestAssessComplexity_SparseInput(t *testing.T) {
	in := Input{
		Components: []model.Component{
			makeComponent("only", model.ComponentText, 0, 0, 100, 40),
		},
		ColorCount:  2,
		EdgeDensity: 0.05,
	}

	got := assessComplexity(DefaultComplexityConfig(), in, layout.TypeFlow)

	if got.Level != ComplexitySimple {
		t.Errorf("expected simple, got %v (score %f)", got.Level, got.Score)
	}
	if got.Factors.Layout != 0.4 {
		t.Errorf("expected flow layout factor 0.4, got %f", got.Factors.Layout)
	}
}

func TestAssessComplexity_EdgeDensityClamped(t *testing.T) {
	got := assessComplexity(DefaultComplexityConfig(), Input{EdgeDensity: 3.0}, layout.TypeEmpty)

	if got.Factors.Edges != 1.0 {
		t.Errorf("expected edge factor clamped to 1, got %f", got.Factors.Edges)
	}
}

func TestAssessComplexity_RegularGridReadsSimpler(t *testing.T) {
	in := Input{
		Components: make([]model.Component, 12),
		ColorCount: 6,
	}
	grid := assessComplexity(DefaultComplexityConfig(), in, layout.TypeGrid)
	custom := assessComplexity(DefaultComplexityConfig(), in, layout.TypeCustom)

	if grid.Score >= custom.Score {
		t.Errorf("grid should score below custom: %f vs %f", grid.Score, custom.Score)
	}
}
