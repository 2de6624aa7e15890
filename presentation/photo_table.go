package presentation

import (
	"sync"

	"photoview/application"
	"photoview/core/grid"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var _ application.TableView = (*PhotoTable)(nil)

// PhotoTable is a read-only table of photo records with a header row.
// Selecting a cell reports it as an activation and clears the selection so
// the same cell can be activated again.
type PhotoTable struct {
	widget.Table

	grid        *grid.Grid
	gridMu      sync.RWMutex
	onActivated func(row, col int)
}

// NewPhotoTable creates an empty photo table.
func NewPhotoTable() *PhotoTable {
	pt := &PhotoTable{grid: grid.Empty()}

	pt.Table = widget.Table{
		Length: func() (int, int) {
			pt.gridMu.RLock()
			defer pt.gridMu.RUnlock()
			return pt.grid.Rows(), grid.ColumnCount
		},
		CreateCell: func() fyne.CanvasObject {
			return canvas.NewText("", theme.Color(theme.ColorNameForeground))
		},
		UpdateCell: func(id widget.TableCellID, obj fyne.CanvasObject) {
			pt.updateCell(id, obj)
		},
		CreateHeader: func() fyne.CanvasObject {
			return widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		},
		UpdateHeader: func(id widget.TableCellID, obj fyne.CanvasObject) {
			if id.Col >= 0 && id.Col < grid.ColumnCount {
				obj.(*widget.Label).SetText(grid.Headers[id.Col])
			}
		},
		ShowHeaderRow: true,
	}

	pt.Table.OnSelected = func(id widget.TableCellID) {
		pt.gridMu.RLock()
		fn := pt.onActivated
		pt.gridMu.RUnlock()

		pt.Table.UnselectAll()
		if fn != nil {
			fn(id.Row, id.Col)
		}
	}

	pt.ExtendBaseWidget(pt)
	for col, width := range grid.ColumnWidths {
		pt.SetColumnWidth(col, width)
	}
	return pt
}

// SetGrid replaces the displayed grid.
func (pt *PhotoTable) SetGrid(g *grid.Grid) {
	if g == nil {
		g = grid.Empty()
	}
	pt.gridMu.Lock()
	pt.grid = g
	pt.gridMu.Unlock()
	pt.Refresh()
}

// SetOnCellActivated registers the activation handler.
func (pt *PhotoTable) SetOnCellActivated(fn func(row, col int)) {
	pt.gridMu.Lock()
	pt.onActivated = fn
	pt.gridMu.Unlock()
}

// Grid returns the displayed grid.
func (pt *PhotoTable) Grid() *grid.Grid {
	pt.gridMu.RLock()
	defer pt.gridMu.RUnlock()
	return pt.grid
}

func (pt *PhotoTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	pt.gridMu.RLock()
	cell, ok := pt.grid.Cell(id.Row, id.Col)
	pt.gridMu.RUnlock()

	text := obj.(*canvas.Text)
	if !ok {
		text.Text = ""
		text.Refresh()
		return
	}

	text.Text = cell.Text
	text.Alignment = textAlign(cell.Align)
	text.TextStyle = fyne.TextStyle{Bold: cell.Bold}
	if cell.Color != nil {
		text.Color = cell.Color
	} else {
		text.Color = theme.Color(theme.ColorNameForeground)
	}
	text.Refresh()
}

func textAlign(a grid.Alignment) fyne.TextAlign {
	switch a {
	case grid.AlignCenter:
		return fyne.TextAlignCenter
	case grid.AlignTrailing:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}
