package layout

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/screenlens/model"
)

// SpacingConfig holds configuration for spacing analysis.
type SpacingConfig struct {
	// AlignmentTolerance is the maximum coordinate delta in pixels for two
	// components to share a row (or column) for gap measurement.
	// Default: 10
	AlignmentTolerance float64 `yaml:"alignment_tolerance"`

	// BucketSize is the rounding granularity in pixels for common gap
	// values.
	// Default: 5
	BucketSize float64 `yaml:"bucket_size"`

	// CommonValueCount is how many top gap buckets to report.
	// Default: 3
	CommonValueCount int `yaml:"common_value_count"`
}

// DefaultSpacingConfig returns sensible default configuration.
func DefaultSpacingConfig() SpacingConfig {
	return SpacingConfig{
		AlignmentTolerance: 10.0,
		BucketSize:         5.0,
		CommonValueCount:   3,
	}
}

// GapBucket is a rounded gap value with its occurrence count.
type GapBucket struct {
	// Value is the gap rounded to the nearest BucketSize pixels.
	Value float64

	// Count is how many measured gaps fall into this bucket.
	Count int
}

// GapStats summarizes a list of measured gaps along one axis.
type GapStats struct {
	// Gaps are the raw non-negative gap values in measurement order.
	Gaps []float64

	// Count is the number of measured gaps.
	Count int

	// Mean is the average gap.
	Mean float64

	// Consistency is max(0, 1 - variance/(mean^2+1)), in [0,1].
	Consistency float64

	// CommonValues are the most frequent gap buckets, largest count first.
	CommonValues []GapBucket
}

// SpacingLayout is the result of spacing analysis over a component set.
type SpacingLayout struct {
	// Horizontal summarizes gaps between row neighbors.
	Horizontal GapStats

	// Vertical summarizes gaps between column neighbors.
	Vertical GapStats

	// Config used for analysis.
	Config SpacingConfig
}

// MeanConsistency averages the horizontal and vertical consistency scores,
// counting only axes that have measured gaps.
func (l *SpacingLayout) MeanConsistency() float64 {
	var sum float64
	var n int
	if l.Horizontal.Count > 0 {
		sum += l.Horizontal.Consistency
		n++
	}
	if l.Vertical.Count > 0 {
		sum += l.Vertical.Consistency
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// SpacingDetector measures the consistency of gaps between aligned neighbors.
type SpacingDetector struct {
	config SpacingConfig
}

// NewSpacingDetector creates a spacing detector with default configuration.
func NewSpacingDetector() *SpacingDetector {
	return &SpacingDetector{config: DefaultSpacingConfig()}
}

// NewSpacingDetectorWithConfig creates a spacing detector with custom
// configuration.
func NewSpacingDetectorWithConfig(config SpacingConfig) *SpacingDetector {
	return &SpacingDetector{config: config}
}

// Detect measures horizontal gaps between row neighbors and vertical gaps
// between column neighbors and summarizes each list. It never fails; empty
// input yields zero-valued stats.
func (d *SpacingDetector) Detect(components []model.Component) *SpacingLayout {
	result := &SpacingLayout{Config: d.config}

	if len(components) < 2 {
		return result
	}

	hGaps := d.collectGaps(components, true)
	vGaps := d.collectGaps(components, false)

	result.Horizontal = d.summarize(hGaps)
	result.Vertical = d.summarize(vGaps)

	return result
}

// collectGaps clusters components into rows (horizontal=true) or columns,
// sorts each cluster along its axis, and records the non-negative gaps
// between consecutive bounding edges. Overlapping neighbors (negative gaps)
// are dropped.
func (d *SpacingDetector) collectGaps(components []model.Component, horizontal bool) []float64 {
	clusterCoord := func(c model.Component) float64 {
		if horizontal {
			return c.Position.Y
		}
		return c.Position.X
	}

	assigned := make([]bool, len(components))
	var gaps []float64

	for i := range components {
		if assigned[i] {
			continue
		}

		anchor := clusterCoord(components[i])
		var cluster []model.Component
		for j := i; j < len(components); j++ {
			if assigned[j] {
				continue
			}
			if math.Abs(clusterCoord(components[j])-anchor) <= d.config.AlignmentTolerance {
				assigned[j] = true
				cluster = append(cluster, components[j])
			}
		}

		if len(cluster) < 2 {
			continue
		}

		if horizontal {
			sort.SliceStable(cluster, func(a, b int) bool {
				return cluster[a].Position.X < cluster[b].Position.X
			})
			for k := 1; k < len(cluster); k++ {
				gap := cluster[k].Position.X - cluster[k-1].Position.Right()
				if gap >= 0 {
					gaps = append(gaps, gap)
				}
			}
		} else {
			sort.SliceStable(cluster, func(a, b int) bool {
				return cluster[a].Position.Y < cluster[b].Position.Y
			})
			for k := 1; k < len(cluster); k++ {
				gap := cluster[k].Position.Y - cluster[k-1].Position.Bottom()
				if gap >= 0 {
					gaps = append(gaps, gap)
				}
			}
		}
	}

	return gaps
}

// summarize computes count, mean, consistency, and the most common gap
// buckets for a gap list.
func (d *SpacingDetector) summarize(gaps []float64) GapStats {
	stats := GapStats{Gaps: gaps, Count: len(gaps)}

	if len(gaps) == 0 {
		return stats
	}

	stats.Mean = stat.Mean(gaps, nil)
	variance := stat.PopVariance(gaps, nil)
	stats.Consistency = math.Max(0, 1-variance/(stats.Mean*stats.Mean+1))
	stats.CommonValues = d.commonValues(gaps)

	return stats
}

// commonValues rounds gaps to the nearest BucketSize pixels and returns the
// top buckets by count. Ties break toward the smaller gap value so results
// are deterministic.
func (d *SpacingDetector) commonValues(gaps []float64) []GapBucket {
	bucketSize := d.config.BucketSize
	if bucketSize <= 0 {
		bucketSize = 5.0
	}

	counts := make(map[float64]int)
	for _, g := range gaps {
		bucket := math.Round(g/bucketSize) * bucketSize
		counts[bucket]++
	}

	buckets := make([]GapBucket, 0, len(counts))
	for v, c := range counts {
		buckets = append(buckets, GapBucket{Value: v, Count: c})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Value < buckets[j].Value
	})

	limit := d.config.CommonValueCount
	if limit <= 0 {
		limit = 3
	}
	if len(buckets) > limit {
		buckets = buckets[:limit]
	}

	return buckets
}
