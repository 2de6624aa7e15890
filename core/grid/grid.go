// Package grid defines the row/column model that backs the photo table.
package grid

import (
	"image/color"

	"photoview/domain/photo"
)

// ColumnCount is the fixed number of data columns.
const ColumnCount = photo.FieldCount

// Column indices, in query order.
const (
	ColID = iota
	ColOriginalPath
	ColCompressedPath
	ColOriginalSize
	ColCompressedSize
)

// Headers are the column titles shown above the table.
var Headers = [ColumnCount]string{"ID", "Photo", "Compressed Photo", "Size", "Compressed Size"}

// ColumnWidths are the default column widths in device-independent pixels.
var ColumnWidths = [ColumnCount]float32{180, 250, 250, 200, 200}

// IDColor is the foreground color of the identifier column.
var IDColor = color.NRGBA{R: 0x00, G: 0xb5, B: 0xe2, A: 0xff}

// Alignment is the horizontal text alignment of a cell.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignCenter
	AlignTrailing
)

// Cell is a single stringified, styled grid value.
type Cell struct {
	Text     string
	Align    Alignment
	Editable bool
	Bold     bool
	// Color is nil for the default foreground.
	Color color.Color
}

// Grid is an immutable point-in-time snapshot of the photo table.
type Grid struct {
	records []*photo.Photo
	cells   [][ColumnCount]Cell
}

// Empty returns a grid with no rows.
func Empty() *Grid {
	return &Grid{}
}

// FromPhotos builds a grid with one row per photo, in the given order.
// Nil entries produce a row of empty cells so row indices stay aligned
// with the query result.
func FromPhotos(photos []*photo.Photo) *Grid {
	g := &Grid{
		records: make([]*photo.Photo, len(photos)),
		cells:   make([][ColumnCount]Cell, len(photos)),
	}

	for r, p := range photos {
		g.records[r] = p
		var fields [ColumnCount]string
		if p != nil {
			fields = p.Fields()
		}
		for c, text := range fields {
			g.cells[r][c] = newCell(c, text)
		}
	}

	return g
}

func newCell(col int, text string) Cell {
	cell := Cell{
		Text:     text,
		Align:    AlignCenter,
		Editable: true,
	}
	if col == ColID {
		cell.Editable = false
		cell.Bold = true
		cell.Color = IDColor
	}
	return cell
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// Cols returns the number of columns. It is ColumnCount for every grid.
func (g *Grid) Cols() int {
	return ColumnCount
}

// Cell returns the cell at (row, col). ok is false when out of range.
func (g *Grid) Cell(row, col int) (cell Cell, ok bool) {
	if !g.inRange(row, col) {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// Text returns the text at (row, col), or "" when out of range.
func (g *Grid) Text(row, col int) string {
	cell, _ := g.Cell(row, col)
	return cell.Text
}

// Record returns the photo behind a row, or nil when out of range.
func (g *Grid) Record(row int) *photo.Photo {
	if g == nil || row < 0 || row >= len(g.records) {
		return nil
	}
	return g.records[row]
}

func (g *Grid) inRange(row, col int) bool {
	return g != nil && row >= 0 && row < len(g.cells) && col >= 0 && col < ColumnCount
}
