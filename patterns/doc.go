// Package patterns recognizes named UI patterns in classified screenshot
// components: navigation bars, breadcrumbs, hero sections, column layouts,
// card grids, forms, galleries, articles, sidebars, and masonry
// arrangements.
//
// The Matcher evaluates an ordered catalog of detectors against the
// components, text elements, and layout analysis of a screenshot. Each
// detector is a pure function returning a confidence and its supporting
// evidence; detections below the configured threshold are dropped. The
// matcher also produces a visual complexity assessment blending component
// count, color count, layout type, and edge density.
//
// The catalog is extensible: Register adds or replaces a detector without
// touching the dispatch mechanism.
package patterns
