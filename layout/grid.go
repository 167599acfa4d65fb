package layout

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/screenlens/model"
)

// GridConfig holds configuration for grid detection.
type GridConfig struct {
	// GridTolerance is the maximum Y (or X) delta in pixels for a component
	// to join the current row (or column).
	// Default: 15
	GridTolerance float64 `yaml:"grid_tolerance"`

	// AlignmentTolerance is the maximum coordinate delta for two components
	// to count as mutually aligned in the grid alignment score.
	// Default: 10
	AlignmentTolerance float64 `yaml:"alignment_tolerance"`

	// MinGridElements is the minimum total component count for a grid to be
	// reported as detected.
	// Default: 3
	MinGridElements int `yaml:"min_grid_elements"`

	// MaxPopulationVariance is the maximum variance of row (and column)
	// population sizes for the layout to qualify as a grid.
	// Default: 1
	MaxPopulationVariance float64 `yaml:"max_population_variance"`
}

// DefaultGridConfig returns sensible default configuration.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		GridTolerance:         15.0,
		AlignmentTolerance:    10.0,
		MinGridElements:       3,
		MaxPopulationVariance: 1.0,
	}
}

// Row is a horizontal band of components sharing a Y anchor within tolerance.
type Row struct {
	// Index of the row (0-based, top to bottom)
	Index int

	// AnchorY is the Y coordinate of the first component placed in the row
	AnchorY float64

	// Components in this row, sorted left to right
	Components []model.Component
}

// Column is a vertical band of components sharing an X anchor within tolerance.
type Column struct {
	// Index of the column (0-based, left to right)
	Index int

	// AnchorX is the X coordinate of the first component placed in the column
	AnchorX float64

	// Components in this column, sorted top to bottom
	Components []model.Component
}

// GridCell references at most one component at a row/column intersection.
type GridCell struct {
	Row int
	Col int

	// ComponentID is the occupying component's id ("" for an empty cell)
	ComponentID string
}

// Grid describes the detected grid structure, if any.
type Grid struct {
	// Detected reports whether the component set forms a grid: at least
	// 2 rows, 2 columns, MinGridElements components, and near-uniform
	// row/column population.
	Detected bool

	// Rows and Columns are the detected counts
	Rows    int
	Columns int

	// Cells are the populated grid cells (one component each)
	Cells []GridCell

	// Regularity is the average inverse-variance spacing score over all
	// rows and columns with at least two members, in [0,1].
	Regularity float64

	// AlignmentScore is the fraction of component pairs mutually aligned
	// horizontally or vertically within tolerance, counting both axes.
	AlignmentScore float64
}

// GridLayout is the result of grid detection over a component set.
type GridLayout struct {
	// Rows are the detected rows (sorted top to bottom)
	Rows []Row

	// Columns are the detected columns (sorted left to right)
	Columns []Column

	// Grid is the derived grid structure
	Grid Grid

	// Config used for detection
	Config GridConfig
}

// GridDetector partitions components into rows and columns and decides
// whether they form a regular grid.
type GridDetector struct {
	config GridConfig
}

// NewGridDetector creates a grid detector with default configuration.
func NewGridDetector() *GridDetector {
	return &GridDetector{config: DefaultGridConfig()}
}

// NewGridDetectorWithConfig creates a grid detector with custom configuration.
func NewGridDetectorWithConfig(config GridConfig) *GridDetector {
	return &GridDetector{config: config}
}

// Detect partitions the components into rows and columns and computes the
// grid structure. It never fails; empty input yields an empty layout.
func (d *GridDetector) Detect(components []model.Component) *GridLayout {
	result := &GridLayout{Config: d.config}

	if len(components) == 0 {
		return result
	}

	result.Rows = d.partitionRows(components)
	result.Columns = d.partitionColumns(components)

	result.Grid = Grid{
		Rows:           len(result.Rows),
		Columns:        len(result.Columns),
		Regularity:     d.regularity(result.Rows, result.Columns),
		AlignmentScore: d.alignmentScore(components),
	}

	result.Grid.Detected = d.isGrid(result.Rows, result.Columns, len(components))
	if result.Grid.Detected {
		result.Grid.Cells = d.assignCells(result.Rows, result.Columns)
	}

	return result
}

// partitionRows walks components in Y order, starting a new row whenever the
// component's Y drifts more than GridTolerance from the row anchor.
func (d *GridDetector) partitionRows(components []model.Component) []Row {
	sorted := make([]model.Component, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.Y < sorted[j].Position.Y
	})

	var rows []Row
	current := Row{AnchorY: sorted[0].Position.Y}

	for _, c := range sorted {
		if math.Abs(c.Position.Y-current.AnchorY) > d.config.GridTolerance {
			rows = append(rows, current)
			current = Row{AnchorY: c.Position.Y}
		}
		current.Components = append(current.Components, c)
	}
	rows = append(rows, current)

	for i := range rows {
		rows[i].Index = i
		sort.SliceStable(rows[i].Components, func(a, b int) bool {
			return rows[i].Components[a].Position.X < rows[i].Components[b].Position.X
		})
	}

	return rows
}

// partitionColumns is the symmetric operation on X.
func (d *GridDetector) partitionColumns(components []model.Component) []Column {
	sorted := make([]model.Component, len(components))
	copy(sorted, components)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.X < sorted[j].Position.X
	})

	var cols []Column
	current := Column{AnchorX: sorted[0].Position.X}

	for _, c := range sorted {
		if math.Abs(c.Position.X-current.AnchorX) > d.config.GridTolerance {
			cols = append(cols, current)
			current = Column{AnchorX: c.Position.X}
		}
		current.Components = append(current.Components, c)
	}
	cols = append(cols, current)

	for i := range cols {
		cols[i].Index = i
		sort.SliceStable(cols[i].Components, func(a, b int) bool {
			return cols[i].Components[a].Position.Y < cols[i].Components[b].Position.Y
		})
	}

	return cols
}

// isGrid applies the detection gate: at least 2 rows and 2 columns,
// MinGridElements total components, and near-uniform population of both rows
// and columns.
func (d *GridDetector) isGrid(rows []Row, cols []Column, total int) bool {
	if len(rows) < 2 || len(cols) < 2 || total < d.config.MinGridElements {
		return false
	}

	rowSizes := make([]float64, len(rows))
	for i, r := range rows {
		rowSizes[i] = float64(len(r.Components))
	}
	colSizes := make([]float64, len(cols))
	for i, c := range cols {
		colSizes[i] = float64(len(c.Components))
	}

	return stat.PopVariance(rowSizes, nil) < d.config.MaxPopulationVariance &&
		stat.PopVariance(colSizes, nil) < d.config.MaxPopulationVariance
}

// regularity averages, over all rows and columns with at least two members,
// the inverse-variance score of the gaps between consecutive bounding edges.
func (d *GridDetector) regularity(rows []Row, cols []Column) float64 {
	var scores []float64

	for _, r := range rows {
		if len(r.Components) < 2 {
			continue
		}
		gaps := make([]float64, 0, len(r.Components)-1)
		for i := 1; i < len(r.Components); i++ {
			prev := r.Components[i-1].Position
			gaps = append(gaps, r.Components[i].Position.X-prev.Right())
		}
		scores = append(scores, varianceScore(gaps))
	}

	for _, c := range cols {
		if len(c.Components) < 2 {
			continue
		}
		gaps := make([]float64, 0, len(c.Components)-1)
		for i := 1; i < len(c.Components); i++ {
			prev := c.Components[i-1].Position
			gaps = append(gaps, c.Components[i].Position.Y-prev.Bottom())
		}
		scores = append(scores, varianceScore(gaps))
	}

	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(scores, nil)
}

// alignmentScore returns the fraction of unordered component pairs that are
// mutually aligned within tolerance, counting horizontal and vertical
// alignment separately, clamped to 1.
func (d *GridDetector) alignmentScore(components []model.Component) float64 {
	n := len(components)
	if n < 2 {
		return 0
	}

	aligned := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := components[i].Position, components[j].Position
			if math.Abs(a.Y-b.Y) <= d.config.AlignmentTolerance {
				aligned++
			}
			if math.Abs(a.X-b.X) <= d.config.AlignmentTolerance {
				aligned++
			}
		}
	}

	totalPairs := n * (n - 1) / 2
	return math.Min(1, float64(aligned)/float64(totalPairs))
}

// assignCells places each component into its row/column intersection. A cell
// holds at most one component; later claimants on an occupied cell are
// dropped.
func (d *GridDetector) assignCells(rows []Row, cols []Column) []GridCell {
	colIndex := make(map[string]int)
	for ci, col := range cols {
		for _, c := range col.Components {
			if _, seen := colIndex[c.ID]; !seen {
				colIndex[c.ID] = ci
			}
		}
	}

	occupied := make(map[[2]int]bool)
	var cells []GridCell

	for ri, row := range rows {
		for _, c := range row.Components {
			ci, ok := colIndex[c.ID]
			if !ok {
				continue
			}
			key := [2]int{ri, ci}
			if occupied[key] {
				continue
			}
			occupied[key] = true
			cells = append(cells, GridCell{Row: ri, Col: ci, ComponentID: c.ID})
		}
	}

	return cells
}

// varianceScore maps a gap list to the normalized inverse-variance score
// max(0, 1 - popVariance/100).
func varianceScore(gaps []float64) float64 {
	if len(gaps) < 2 {
		return 1.0
	}
	return math.Max(0, 1-stat.PopVariance(gaps, nil)/100)
}
