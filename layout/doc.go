// Package layout analyzes the geometric structure of a screenshot's
// components: its grid organization, alignment groups, and spacing rhythm.
//
// The [Analyzer] orchestrates all detection components:
//
//	analyzer := layout.NewAnalyzer()
//	report := analyzer.Analyze(components, dims)
//
// # Detectors
//
// The package includes specialized detectors, each usable on its own:
//
//   - [GridDetector] - partitions components into rows and columns and
//     decides whether they form a regular grid
//   - [AlignmentDetector] - finds groups sharing an edge or center
//     coordinate within tolerance
//   - [SpacingDetector] - measures the consistency of gaps between aligned
//     neighbors
//
// # Configuration
//
// Each detector can be configured independently:
//
//	config := layout.DefaultConfig()
//	config.Grid.GridTolerance = 20
//	config.Alignment.Tolerance = 8
//	analyzer := layout.NewAnalyzerWithConfig(config)
//
// All detection is pure computation over the supplied components; nothing is
// mutated and repeated calls on the same input produce identical reports.
package layout
