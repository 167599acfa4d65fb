package patterns

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/screenlens/internal/textmatch"
	"github.com/tsawler/screenlens/layout"
	"github.com/tsawler/screenlens/model"
)

// isNavLike reports whether a component could be a navigation entry.
func isNavLike(c model.Component) bool {
	return c.Type == model.ComponentNavigation || c.Type == model.ComponentButton
}

// isCardLike reports whether a component could be a grid card.
func isCardLike(c model.Component) bool {
	return c.Type == model.ComponentCard || c.Type == model.ComponentRectangle
}

// areaUniformity scores how uniform the component areas are: 1 minus the
// population variance normalized by the squared mean, floored at 0.
func areaUniformity(components []model.Component) float64 {
	if len(components) < 2 {
		return 1.0
	}
	areas := make([]float64, len(components))
	for i, c := range components {
		areas[i] = c.Position.Area()
	}
	mean := stat.Mean(areas, nil)
	if mean == 0 {
		return 0
	}
	return math.Max(0, 1-stat.PopVariance(areas, nil)/(mean*mean))
}

// detectHorizontalNav looks for a horizontal alignment group of at least
// three navigation-like components. A group near the top of the image scores
// 0.9, anywhere else 0.7.
func detectHorizontalNav(in Input, cfg Config) Detection {
	if in.Layout == nil || in.Layout.Alignment == nil {
		return Detection{}
	}

	var best *layout.AlignmentGroup
	bestNav := 0
	for i := range in.Layout.Alignment.HorizontalGroups {
		group := &in.Layout.Alignment.HorizontalGroups[i]
		nav := 0
		for _, c := range group.Components {
			if isNavLike(c) {
				nav++
			}
		}
		if nav >= cfg.NavMinGroup && nav > bestNav {
			best, bestNav = group, nav
		}
	}
	if best == nil {
		return Detection{}
	}

	meanY := best.MeanY()
	confidence := 0.7
	evidence := []string{
		fmt.Sprintf("%d navigation components aligned horizontally", bestNav),
	}
	if in.Image.Height > 0 && meanY < cfg.NavTopRegion*in.Image.Height {
		confidence = 0.9
		evidence = append(evidence, "group sits in the top band of the image")
	}

	return Detection{
		Confidence: confidence,
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"nav_count": float64(bestNav),
			"mean_y":    meanY,
		},
	}
}

// detectBreadcrumb looks for text fragments carrying a breadcrumb separator.
// Fragments near the top of the page score 0.8, lower ones 0.6.
func detectBreadcrumb(in Input, cfg Config) Detection {
	var ys []float64
	for _, t := range in.Texts {
		if textmatch.HasBreadcrumbSeparator(t.Text) {
			ys = append(ys, t.Position.Y)
		}
	}
	if len(ys) == 0 {
		return Detection{}
	}

	meanY := stat.Mean(ys, nil)
	confidence := 0.6
	if meanY < cfg.BreadcrumbTopY {
		confidence = 0.8
	}

	return Detection{
		Confidence: confidence,
		Evidence: []string{
			fmt.Sprintf("%d text fragments with breadcrumb separators", len(ys)),
		},
		Characteristics: map[string]float64{
			"fragment_count": float64(len(ys)),
			"mean_y":         meanY,
		},
	}
}

// detectHeroSection looks for a hero band at the top of the image: a tall
// element combined with display text, a call-to-action button, or a
// full-width banner. Confidence is additive and capped at 1.
func detectHeroSection(in Input, cfg Config) Detection {
	if in.Image.Height <= 0 {
		return Detection{}
	}
	heroBottom := cfg.HeroRegion * in.Image.Height

	var anchors []model.Component
	for _, c := range in.Components {
		if c.Position.Height > cfg.HeroMinHeight && c.Position.Top() < heroBottom {
			anchors = append(anchors, c)
		}
	}
	if len(anchors) == 0 {
		return Detection{}
	}

	confidence := 0.0
	var evidence []string

	for _, t := range in.Texts {
		if t.Position.Top() >= heroBottom {
			continue
		}
		large := t.Type == model.TextHeader ||
			(t.Font != nil && t.Font.Size >= cfg.LargeFontSize)
		if large {
			confidence += 0.4
			evidence = append(evidence, "display text in the hero band")
			break
		}
	}

	for _, c := range in.Components {
		if c.Type == model.ComponentButton && c.Position.Top() < heroBottom &&
			textmatch.IsAction(c.TextContent) {
			confidence += 0.3
			evidence = append(evidence, "call-to-action button in the hero band")
			break
		}
	}

	if in.Image.Width > 0 {
		for _, c := range anchors {
			if c.Position.Width > cfg.HeroSpanRatio*in.Image.Width {
				confidence += 0.3
				evidence = append(evidence, "full-width banner element")
				break
			}
		}
	}

	return Detection{
		Confidence: math.Min(1, confidence),
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"anchor_count": float64(len(anchors)),
		},
	}
}

// detectThreeColumn looks for exactly three vertical alignment groups. Evenly
// spaced columns score 0.9, uneven ones 0.7.
func detectThreeColumn(in Input, cfg Config) Detection {
	if in.Layout == nil || in.Layout.Alignment == nil {
		return Detection{}
	}

	var coords []float64
	for i := range in.Layout.Alignment.VerticalGroups {
		coords = append(coords, in.Layout.Alignment.VerticalGroups[i].Coordinate)
	}
	if len(coords) != 3 {
		return Detection{}
	}
	sort.Float64s(coords)

	left := coords[1] - coords[0]
	right := coords[2] - coords[1]
	delta := math.Abs(left - right)

	confidence := 0.7
	evidence := []string{"three vertical column groups"}
	if delta < cfg.ColumnSpacingDelta {
		confidence = 0.9
		evidence = append(evidence, "columns evenly spaced")
	}

	return Detection{
		Confidence: confidence,
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"spacing_delta": delta,
		},
	}
}

// detectCardGrid looks for four or more uniformly sized card components.
// With a detected grid behind them the confidence is 0.9, otherwise 0.7.
func detectCardGrid(in Input, cfg Config) Detection {
	var cards []model.Component
	for _, c := range in.Components {
		if isCardLike(c) {
			cards = append(cards, c)
		}
	}
	if len(cards) < cfg.MinCards {
		return Detection{}
	}

	uniformity := areaUniformity(cards)
	if uniformity <= cfg.CardUniformityMin {
		return Detection{}
	}

	confidence := 0.7
	evidence := []string{
		fmt.Sprintf("%d uniformly sized cards", len(cards)),
	}
	if in.Layout != nil && in.Layout.Grid != nil && in.Layout.Grid.Grid.Detected {
		confidence = 0.9
		evidence = append(evidence, "cards fall on a detected grid")
	}

	return Detection{
		Confidence: confidence,
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"card_count": float64(len(cards)),
			"uniformity": uniformity,
		},
	}
}

// isFormInput reports whether a component collects user input.
func isFormInput(c model.Component) bool {
	switch c.Type {
	case model.ComponentInput, model.ComponentCheckbox, model.ComponentDropdown:
		return true
	}
	return false
}

// detectFormLayout scores a form additively: enough input fields, labels
// covering at least half of them, and an action-verb button.
func detectFormLayout(in Input, cfg Config) Detection {
	var inputs []model.Component
	for _, c := range in.Components {
		if isFormInput(c) {
			inputs = append(inputs, c)
		}
	}
	if len(inputs) < cfg.FormMinInputs {
		return Detection{}
	}

	confidence := 0.4
	evidence := []string{
		fmt.Sprintf("%d input fields", len(inputs)),
	}

	labeled := 0
	for _, input := range inputs {
		if hasNearbyLabel(input, in, cfg.LabelDistance) {
			labeled++
		}
	}
	coverage := float64(labeled) / float64(len(inputs))
	if coverage >= 0.5 {
		confidence += 0.3
		evidence = append(evidence, fmt.Sprintf("%d of %d inputs labeled", labeled, len(inputs)))
	}

	for _, c := range in.Components {
		if c.Type == model.ComponentButton && textmatch.IsAction(c.TextContent) {
			confidence += 0.3
			evidence = append(evidence, fmt.Sprintf("action button %q", c.TextContent))
			break
		}
	}

	return Detection{
		Confidence: math.Min(1, confidence),
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"input_count":    float64(len(inputs)),
			"label_coverage": coverage,
		},
	}
}

// hasNearbyLabel reports whether a label component or label text sits within
// maxDistance of the input's center.
func hasNearbyLabel(input model.Component, in Input, maxDistance float64) bool {
	for _, c := range in.Components {
		if c.Type == model.ComponentLabel &&
			c.Position.CenterDistance(input.Position) < maxDistance {
			return true
		}
	}
	for _, t := range in.Texts {
		if t.Type == model.TextLabel &&
			t.Position.CenterDistance(input.Position) < maxDistance {
			return true
		}
	}
	return false
}

// detectGallery looks for four or more image components. Uniform sizes score
// 0.85, mixed sizes 0.7.
func detectGallery(in Input, cfg Config) Detection {
	var images []model.Component
	for _, c := range in.Components {
		if c.Type == model.ComponentImage {
			images = append(images, c)
		}
	}
	if len(images) < cfg.MinCards {
		return Detection{}
	}

	uniformity := areaUniformity(images)
	confidence := 0.7
	evidence := []string{
		fmt.Sprintf("%d image components", len(images)),
	}
	if uniformity > cfg.CardUniformityMin {
		confidence = 0.85
		evidence = append(evidence, "images uniformly sized")
	}

	return Detection{
		Confidence: confidence,
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"image_count": float64(len(images)),
			"uniformity":  uniformity,
		},
	}
}

// detectArticle looks for long-form reading content: several paragraphs,
// ideally introduced by a header.
func detectArticle(in Input, cfg Config) Detection {
	paragraphs := 0
	headers := 0
	for _, t := range in.Texts {
		switch t.Type {
		case model.TextParagraph:
			paragraphs++
		case model.TextHeader:
			headers++
		}
	}
	if paragraphs < 3 {
		return Detection{}
	}

	confidence := 0.7
	evidence := []string{
		fmt.Sprintf("%d paragraphs", paragraphs),
	}
	if headers > 0 {
		confidence = 0.8
		evidence = append(evidence, "headed by a title")
	}

	return Detection{
		Confidence: confidence,
		Evidence:   evidence,
		Characteristics: map[string]float64{
			"paragraph_count": float64(paragraphs),
			"header_count":    float64(headers),
		},
	}
}

// detectSidebar looks for a tall, narrow component. One anchored to the left
// or right edge scores 0.85, a free-floating one 0.7.
func detectSidebar(in Input, cfg Config) Detection {
	if in.Image.Width <= 0 || in.Image.Height <= 0 {
		return Detection{}
	}

	best := Detection{}
	for _, c := range in.Components {
		if c.Position.Height < cfg.SidebarHeightRatio*in.Image.Height ||
			c.Position.Width > cfg.SidebarWidthRatio*in.Image.Width {
			continue
		}

		confidence := 0.7
		evidence := []string{
			fmt.Sprintf("tall narrow component %s", c.ID),
		}
		edge := cfg.SidebarEdgeRatio * in.Image.Width
		if c.Position.Left() < edge || c.Position.Right() > in.Image.Width-edge {
			confidence = 0.85
			evidence = append(evidence, "anchored to a screen edge")
		}

		if confidence > best.Confidence {
			best = Detection{
				Confidence: confidence,
				Evidence:   evidence,
				Characteristics: map[string]float64{
					"width":  c.Position.Width,
					"height": c.Position.Height,
				},
			}
		}
	}

	return best
}

// detectMasonry looks for card or image components arranged in two or more
// columns with deliberately varied heights, the Pinterest arrangement.
func detectMasonry(in Input, cfg Config) Detection {
	if in.Layout == nil || in.Layout.Alignment == nil {
		return Detection{}
	}

	var items []model.Component
	for _, c := range in.Components {
		if isCardLike(c) || c.Type == model.ComponentImage {
			items = append(items, c)
		}
	}
	if len(items) < cfg.MinCards {
		return Detection{}
	}

	columns := 0
	for i := range in.Layout.Alignment.VerticalGroups {
		if in.Layout.Alignment.VerticalGroups[i].Size() >= 2 {
			columns++
		}
	}
	if columns < 2 {
		return Detection{}
	}

	heights := make([]float64, len(items))
	for i, c := range items {
		heights[i] = c.Position.Height
	}
	mean := stat.Mean(heights, nil)
	if mean == 0 {
		return Detection{}
	}
	uniformity := math.Max(0, 1-stat.PopVariance(heights, nil)/(mean*mean))
	if uniformity >= cfg.MasonryUniformityMax {
		return Detection{}
	}

	return Detection{
		Confidence: 0.75,
		Evidence: []string{
			fmt.Sprintf("%d items in %d columns with varied heights", len(items), columns),
		},
		Characteristics: map[string]float64{
			"item_count":        float64(len(items)),
			"column_count":      float64(columns),
			"height_uniformity": uniformity,
		},
	}
}
