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

const (
	// GlyphHeight is the height of every glyph in pixels.
	GlyphHeight = 7

	// GlyphGap is the horizontal space between glyphs, both in the font
	// sheet and in rendered text.
	GlyphGap = 1
)

// DefaultGlyphOrder lists the glyphs of the font sheet from left to right.
const DefaultGlyphOrder = "#1234567890"

// defaultWidths holds the pixel width of each glyph in the font sheet.
var defaultWidths = map[rune]int{
	'#': 6,
	'1': 3,
	'2': 5,
	'3': 4,
	'4': 6,
	'5': 4,
	'6': 5,
	'7': 4,
	'8': 5,
	'9': 5,
	'0': 5,
}

// Glyph locates one character inside the font sheet.
type Glyph struct {
	Char  rune
	Width int // in pixels
	X     int // left edge in the font sheet
}

// GlyphTable maps characters to their position in a font sheet.
// A GlyphTable is immutable and may be shared freely.
type GlyphTable struct {
	glyphs map[rune]Glyph
	order  []rune
	extent int // width of the sheet area covered by the table
}

// NewGlyphTable lays out the glyphs of order left to right, separated by
// GlyphGap pixels, using the given widths. Every rune of order needs a
// positive width and may occur only once.
func NewGlyphTable(order string, widths map[rune]int) (*GlyphTable, error) {
	t := &GlyphTable{glyphs: make(map[rune]Glyph)}
	x := 0
	for _, ch := range order {
		w, ok := widths[ch]
		if !ok || w <= 0 {
			return nil, fmt.Errorf("glyph %q: missing or invalid width", ch)
		}
		if _, dup := t.glyphs[ch]; dup {
			return nil, fmt.Errorf("glyph %q: listed twice", ch)
		}
		t.glyphs[ch] = Glyph{Char: ch, Width: w, X: x}
		t.order = append(t.order, ch)
		t.extent = x + w
		x += w + GlyphGap
	}
	return t, nil
}

var defaultGlyphTable = mustGlyphTable(DefaultGlyphOrder, defaultWidths)

func mustGlyphTable(order string, widths map[rune]int) *GlyphTable {
	t, err := NewGlyphTable(order, widths)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultGlyphTable returns the table for the '#' and digit glyphs.
func DefaultGlyphTable() *GlyphTable {
	return defaultGlyphTable
}

// Lookup returns the glyph for ch. The second result is false if the
// table has no such glyph.
func (t *GlyphTable) Lookup(ch rune) (Glyph, bool) {
	g, ok := t.glyphs[ch]
	return g, ok
}

// Glyphs returns the glyphs in sheet order.
func (t *GlyphTable) Glyphs() []Glyph {
	res := make([]Glyph, len(t.order))
	for i, ch := range t.order {
		res[i] = t.glyphs[ch]
	}
	return res
}

// Extent returns the minimal sheet width required by the table.
func (t *GlyphTable) Extent() int {
	return t.extent
}

// Font draws text by copying glyph rectangles out of a font sheet.
type Font struct {
	sheet  *Buffer
	glyphs *GlyphTable
}

// NewFont combines a font sheet with the table describing it.
func NewFont(sheet *Buffer, glyphs *GlyphTable) (*Font, error) {
	if sheet == nil || glyphs == nil {
		return nil, fmt.Errorf("%w: missing sheet or table", ErrFontSheet)
	}
	if sheet.Height < GlyphHeight || sheet.Width < glyphs.Extent() {
		return nil, fmt.Errorf("%w: sheet is %dx%d, need at least %dx%d",
			ErrFontSheet, sheet.Width, sheet.Height, glyphs.Extent(), GlyphHeight)
	}
	return &Font{sheet: sheet, glyphs: glyphs}, nil
}

// DefaultFont returns a font using the built-in glyph sheet.
func DefaultFont() *Font {
	return &Font{sheet: DefaultSheet(), glyphs: defaultGlyphTable}
}

// Glyph returns the glyph used to draw ch, if any.
func (f *Font) Glyph(ch rune) (Glyph, bool) {
	return f.glyphs.Lookup(ch)
}

// Measure returns the width in pixels which DrawText covers for text.
// Characters without a glyph do not count.
func (f *Font) Measure(text string) int {
	width, n := 0, 0
	for _, ch := range text {
		g, ok := f.glyphs.Lookup(ch)
		if !ok {
			continue
		}
		width += g.Width
		n++
	}
	if n > 1 {
		width += (n - 1) * GlyphGap
	}
	return width
}

// DrawText copies the glyphs of text into dst, starting with the top-left
// corner of the first glyph at (x, y). Characters without a glyph are
// skipped. The return value is the width covered, as reported by Measure.
//
// Every glyph must fit inside dst; DrawText panics otherwise.
func (f *Font) DrawText(dst *Buffer, text string, x, y int) int {
	cursor := x
	for _, ch := range text {
		g, ok := f.glyphs.Lookup(ch)
		if !ok {
			continue
		}
		dst.BlitRegion(f.sheet, g.X, 0, g.Width, GlyphHeight, cursor, y)
		cursor += g.Width + GlyphGap
	}
	if cursor == x {
		return 0
	}
	return cursor - x - GlyphGap
}
