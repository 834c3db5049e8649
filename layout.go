// wplace-hallofshame - hall of shame panel renderer
// Copyright (C) 2026  The wplace-hallofshame authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render

import "fmt"

// ExtraTrailingRows is the number of empty rows kept below the last
// populated row, so that the panel always shows room for new entries.
const ExtraTrailingRows = 1

// LineWidth is the thickness of the lines between cells.
const LineWidth = 1

// GridSpec describes the grid of a panel.
type GridSpec struct {
	Entries     int // number of entries, including unlabeled ones
	PerRow      int // entries per row
	EntryWidth  int // nominal cell width, including one separator line
	EntryHeight int // cell height, excluding the line below

	// Width is the total panel width. Zero selects MinWidth.
	Width int
}

// MinWidth returns the narrowest panel that fits all columns and the
// outer border.
func (s GridSpec) MinWidth() int {
	return s.PerRow*s.EntryWidth + 2
}

// Rows returns the number of rows, including the trailing empty rows.
func (s GridSpec) Rows() int {
	return (s.Entries+s.PerRow-1)/s.PerRow + ExtraTrailingRows
}

// Span is a horizontal pixel range.
type Span struct {
	X     int
	Width int
}

// Layout holds the geometry of a panel, as computed by ComputeLayout.
type Layout struct {
	Spec   GridSpec
	Rows   int
	Width  int
	Height int

	// EntryStarts is the x coordinate at which each column begins.
	// The first column is one pixel narrower than the others.
	EntryStarts []int

	// RowStarts is the y coordinate of the top of each row.
	RowStarts []int

	// Columns is the white content area of each column.
	Columns []Span

	// Verticals and Horizontals list the positions of the grid lines,
	// including the outer edges of the panel.
	Verticals   []int
	Horizontals []int
}

// ComputeLayout derives the panel geometry from spec.
// The result depends only on spec.
func ComputeLayout(spec GridSpec) (*Layout, error) {
	if spec.Width == 0 {
		spec.Width = spec.MinWidth()
	}
	switch {
	case spec.Entries < 0:
		return nil, fmt.Errorf("%w: negative entry count %d", ErrInvalidGrid, spec.Entries)
	case spec.PerRow < 1:
		return nil, fmt.Errorf("%w: %d entries per row", ErrInvalidGrid, spec.PerRow)
	case spec.EntryWidth < 3:
		return nil, fmt.Errorf("%w: entry width %d is below 3", ErrInvalidGrid, spec.EntryWidth)
	case spec.EntryHeight < 1:
		return nil, fmt.Errorf("%w: entry height %d", ErrInvalidGrid, spec.EntryHeight)
	case spec.Width < spec.MinWidth():
		return nil, fmt.Errorf("%w: width %d is below %d", ErrInvalidGrid, spec.Width, spec.MinWidth())
	}

	rows := spec.Rows()
	l := &Layout{
		Spec:   spec,
		Rows:   rows,
		Width:  spec.Width,
		Height: 1 + rows*(spec.EntryHeight+LineWidth),
	}

	x := 1 // right of the outer left border
	for c := range spec.PerRow {
		l.EntryStarts = append(l.EntryStarts, x)
		if c == 0 {
			x += spec.EntryWidth - 1
		} else {
			x += spec.EntryWidth
		}
		if c < spec.PerRow-1 {
			x += LineWidth
		}
	}

	for r := range rows {
		l.RowStarts = append(l.RowStarts, r*(spec.EntryHeight+LineWidth))
	}

	// Column 0 is preceded by the outer border and the row border; every
	// other column by a single separator.
	l.Columns = append(l.Columns, Span{X: 2, Width: spec.EntryWidth - 2})
	for c := 1; c < spec.PerRow; c++ {
		l.Columns = append(l.Columns, Span{X: c*spec.EntryWidth + 1, Width: spec.EntryWidth - 1})
	}

	l.Verticals = append(l.Verticals, 0)
	for c := 1; c < spec.PerRow; c++ {
		l.Verticals = append(l.Verticals, l.EntryStarts[c]-c)
	}
	l.Verticals = append(l.Verticals, l.Width-1)

	l.Horizontals = append(l.Horizontals, 0)
	for _, y := range l.RowStarts[1:] {
		l.Horizontals = append(l.Horizontals, y-1)
	}
	l.Horizontals = append(l.Horizontals, l.Height-1)

	return l, nil
}

// RightBorder returns the x coordinate of the border closing each row.
func (l *Layout) RightBorder() int {
	last := l.Columns[len(l.Columns)-1]
	return last.X + last.Width
}

// Cells returns the number of cells in the grid.
func (l *Layout) Cells() int {
	return l.Rows * l.Spec.PerRow
}

// CellSpan returns the content area of cell i: its x range and the y
// coordinate of its top row. Cells are numbered row by row.
func (l *Layout) CellSpan(i int) (Span, int) {
	row, col := i/l.Spec.PerRow, i%l.Spec.PerRow
	return l.Columns[col], l.RowStarts[row]
}

// LabelOrigin returns the position of the label of cell i, one pixel in
// from the top-left corner of its content area.
func (l *Layout) LabelOrigin(i int) (x, y int) {
	span, top := l.CellSpan(i)
	return span.X + 1, top + 1
}
