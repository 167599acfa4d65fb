package relations

import (
	"fmt"
	"math"

	"github.com/tsawler/screenlens/model"
)

// semanticRelationships derives meaning-level pairings: headers above the
// content they introduce and captions below the image they describe. Header
// elements may come from the component set (header-typed components) or the
// text set (header-typed fragments).
func (m *Mapper) semanticRelationships(components []model.Component, texts []model.TextElement) []Relationship {
	var result []Relationship

	result = append(result, m.headerContent(components, texts)...)
	result = append(result, m.imageCaptions(components, texts)...)

	return result
}

// headerEntry is a header candidate from either input set.
type headerEntry struct {
	id  string
	pos model.Position
}

// headerContent pairs each header with the content elements directly below
// it. Confidence decays with the vertical gap: 0.8 - gap/400, gap < 200.
func (m *Mapper) headerContent(components []model.Component, texts []model.TextElement) []Relationship {
	var headers []headerEntry
	for _, c := range components {
		if c.Type == model.ComponentHeader {
			headers = append(headers, headerEntry{id: c.ID, pos: c.Position})
		}
	}
	for _, t := range texts {
		if t.Type == model.TextHeader {
			headers = append(headers, headerEntry{id: t.ID, pos: t.Position})
		}
	}

	var result []Relationship
	for _, h := range headers {
		for _, c := range components {
			if c.ID == h.id || c.Type == model.ComponentHeader {
				continue
			}
			if h.pos.Y >= c.Position.Y {
				continue
			}

			gap := math.Max(0, c.Position.Top()-h.pos.Bottom())
			if gap >= m.config.HeaderContentMax {
				continue
			}

			result = append(result, Relationship{
				ComponentA: h.id,
				ComponentB: c.ID,
				Category:   CategorySemantic,
				Subtype:    SubtypeHeaderContent,
				Strength:   math.Max(0, 0.8-gap/400),
				Evidence: []string{
					fmt.Sprintf("header %.0fpx above content", gap),
				},
			})
		}
	}

	return result
}

// imageCaptions pairs each image with caption-like text directly below it.
// Confidence decays with the vertical gap: 0.7 - gap/300, gap < 150.
func (m *Mapper) imageCaptions(components []model.Component, texts []model.TextElement) []Relationship {
	var result []Relationship

	for _, c := range components {
		if c.Type != model.ComponentImage {
			continue
		}
		for _, t := range texts {
			if t.Type != model.TextCaption && t.Type != model.TextLabel {
				continue
			}
			if t.Position.Y <= c.Position.Y {
				continue
			}

			gap := math.Max(0, t.Position.Top()-c.Position.Bottom())
			if gap >= m.config.CaptionMax {
				continue
			}

			result = append(result, Relationship{
				ComponentA: c.ID,
				ComponentB: t.ID,
				Category:   CategorySemantic,
				Subtype:    SubtypeImageCaption,
				Strength:   math.Max(0, 0.7-gap/300),
				Evidence: []string{
					fmt.Sprintf("caption %.0fpx below image", gap),
				},
			})
		}
	}

	return result
}
