// Package model defines the shared data model for screenshot analysis.
//
// It contains the geometric primitives ([Position], [Point]) and the
// read-only input types supplied by upstream detection stages:
//
//   - [Component] - a classified visual primitive (button, input, card, ...)
//   - [TextElement] - a recognized text fragment with position and role
//   - [ImageDimensions] - the pixel size of the analyzed screenshot
//
// All coordinates are pixel-space with the origin at the top-left corner of
// the image; Y increases downward. The analysis packages (layout, patterns,
// relations) never mutate these inputs.
package model
