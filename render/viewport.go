package render

import (
	"math"

	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/parameter"
)

// Viewport maps playfield units to terminal cells below the HUD
type Viewport struct {
	Cols, Rows int // Playfield area in cells
	Top        int // First playfield row
	sx, sy     float64
}

// NewViewport fits the playfield into a cols x rows screen
func NewViewport(cols, rows int) Viewport {
	v := Viewport{
		Cols: max(cols, 1),
		Rows: max(rows-parameter.HUDRows, 1),
		Top:  parameter.HUDRows,
	}
	v.sx = float64(v.Cols) / parameter.PlayfieldWidth
	v.sy = float64(v.Rows) / parameter.PlayfieldHeight
	return v
}

// Cell returns the cell containing playfield point (x, y)
func (v Viewport) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.Top + int(math.Floor(y*v.sy))
}

// CellRect returns the inclusive cell span covered by r, at least one cell each way
func (v Viewport) CellRect(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.Cell(r.X, r.Y)
	x1 = max(int(math.Ceil(r.Right()*v.sx))-1, x0)
	y1 = max(v.Top+int(math.Ceil(r.Bottom()*v.sy))-1, y0)
	return x0, y0, x1, y1
}

// Visible reports whether a cell lies in the playfield area
func (v Viewport) Visible(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= v.Top && y < v.Top+v.Rows
}
