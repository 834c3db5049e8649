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

// BottomBorder is the thickness of the line closing the panel at the bottom.
const BottomBorder = 2

// Palette selects the colours of the grid.
type Palette struct {
	Border Color // grid lines and the ring of each intersection sprite
	Fill   Color // cell background
	Accent Color // centre pixel of each intersection sprite
}

// DefaultPalette is black lines on white cells with red accents.
var DefaultPalette = Palette{
	Border: Black,
	Fill:   White,
	Accent: Accent,
}

// DrawGrid draws the outer frame, the cell backgrounds and the separators
// between cells. Intersections are drawn separately by DrawIntersections.
func DrawGrid(dst *Buffer, l *Layout, p Palette) {
	dst.FillRect(0, 0, 1, l.Height, p.Border)
	dst.FillRect(l.Width-1, 0, 1, l.Height, p.Border)
	dst.FillRect(0, l.Height-BottomBorder, l.Width, BottomBorder, p.Border)

	h := l.Spec.EntryHeight
	for r, y := range l.RowStarts {
		dst.FillRect(1, y, 1, h, p.Border)
		for c, col := range l.Columns {
			if c > 0 {
				dst.FillRect(col.X-1, y, 1, h, p.Border)
			}
			dst.FillRect(col.X, y, col.Width, h, p.Fill)
		}
		dst.FillRect(l.RightBorder(), y, 1, h, p.Border)

		if r < l.Rows-1 {
			dst.FillRect(1, y+h, l.Width-2, 1, p.Border)
		}
	}
}

// IntersectionCenter returns where the sprite for the crossing at (x, y)
// is centred on a w×h panel. Sprites on the left and right edge move
// inward. Sprites on the top and bottom edge both move up: at the top
// this pushes the sprite partly off the panel.
func IntersectionCenter(x, y, w, h int) (int, int) {
	cx, cy := x, y
	if x == 0 {
		cx = x + 1
	}
	if x == w-1 {
		cx = x - 1
	}
	if y == 0 {
		cy = y - 1
	}
	if y == h-1 {
		cy = y - 1
	}
	return cx, cy
}

// DrawIntersection draws one 3×3 sprite centred on (cx, cy): a ring of
// border pixels around an accent pixel. Pixels outside dst are skipped.
func DrawIntersection(dst *Buffer, cx, cy int, p Palette) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := p.Border
			if dx == 0 && dy == 0 {
				c = p.Accent
			}
			dst.Set(cx+dx, cy+dy, c)
		}
	}
}

// DrawIntersections draws a sprite at every crossing of a vertical and a
// horizontal grid line.
func DrawIntersections(dst *Buffer, l *Layout, p Palette) {
	for _, y := range l.Horizontals {
		for _, x := range l.Verticals {
			cx, cy := IntersectionCenter(x, y, l.Width, l.Height)
			DrawIntersection(dst, cx, cy, p)
		}
	}
}
