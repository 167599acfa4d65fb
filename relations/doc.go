// Package relations computes the relationships between a screenshot's
// components: spatial (containment, overlap, alignment, adjacency),
// functional (form fields feeding buttons, labels annotating inputs),
// hierarchical (nesting chains), and semantic (headers above content,
// captions below images). It also derives proximity-based component groups
// and predicted interaction flows.
//
// The [Mapper] is the entry point:
//
//	mapper := relations.NewMapper()
//	report := mapper.Map(components, texts)
//
// Every unordered component pair is examined once, with the pair's elements
// ordered stably by id, so no relationship is ever duplicated with swapped
// endpoints. All strengths lie in [0,1]; containment strength is exactly
// 0.9; no component relates to itself.
//
// Mapping is pure computation: inputs are never mutated and repeated calls
// on the same input produce identical reports.
package relations
