package board

import (
	"fmt"

	"minewalk/types"
)

// Board coordinate system:
// - Columns: A-Z, west to east, one letter per column
// - Rows: 1-26, counted from the south edge
// - Example: (0, 0) -> A1, (2, 6) -> C7

// ColumnLegend returns the letter naming a column index.
func ColumnLegend(x int) string {
	return string(rune('A' + x))
}

// PositionLabel converts a board position to its legend notation, e.g. C7.
// Positions west of the field have no label.
func PositionLabel(p types.Position) string {
	if p.X < 0 || p.Y < 0 {
		return "--"
	}
	return fmt.Sprintf("%s%d", ColumnLegend(p.X), p.Y+1)
}
