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

// glyphBitmaps holds the built-in glyphs, one string per pixel row.
// 'X' is ink, '.' is background. Row lengths equal the glyph widths.
var glyphBitmaps = map[rune][GlyphHeight]string{
	'#': {
		".X..X.",
		".X..X.",
		"XXXXXX",
		".X..X.",
		"XXXXXX",
		".X..X.",
		".X..X.",
	},
	'1': {
		".X.",
		"XX.",
		".X.",
		".X.",
		".X.",
		".X.",
		"XXX",
	},
	'2': {
		".XXX.",
		"X...X",
		"....X",
		"...X.",
		"..X..",
		".X...",
		"XXXXX",
	},
	'3': {
		"XXX.",
		"...X",
		"...X",
		".XX.",
		"...X",
		"...X",
		"XXX.",
	},
	'4': {
		"...XX.",
		"..X.X.",
		".X..X.",
		"X...X.",
		"XXXXXX",
		"....X.",
		"....X.",
	},
	'5': {
		"XXXX",
		"X...",
		"XXX.",
		"...X",
		"...X",
		"...X",
		"XXX.",
	},
	'6': {
		"..XX.",
		".X...",
		"X....",
		"XXXX.",
		"X...X",
		"X...X",
		".XXX.",
	},
	'7': {
		"XXXX",
		"...X",
		"...X",
		"..X.",
		"..X.",
		".X..",
		".X..",
	},
	'8': {
		".XXX.",
		"X...X",
		"X...X",
		".XXX.",
		"X...X",
		"X...X",
		".XXX.",
	},
	'9': {
		".XXX.",
		"X...X",
		"X...X",
		".XXXX",
		"....X",
		"...X.",
		".XX..",
	},
	'0': {
		".XXX.",
		"X...X",
		"X..XX",
		"X.X.X",
		"XX..X",
		"X...X",
		".XXX.",
	},
}

// DefaultSheet renders the built-in glyphs into a new font sheet laid out
// as described by DefaultGlyphTable: black ink on a white background.
func DefaultSheet() *Buffer {
	t := DefaultGlyphTable()
	sheet := NewBuffer(t.Extent(), GlyphHeight)
	sheet.FillRect(0, 0, sheet.Width, sheet.Height, White)
	for _, g := range t.Glyphs() {
		rows := glyphBitmaps[g.Char]
		for y, row := range rows {
			for x := range g.Width {
				if row[x] == 'X' {
					sheet.Set(g.X+x, y, Black)
				}
			}
		}
	}
	return sheet
}
