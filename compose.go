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

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Label is the value shown in one cell. Cells without a value stay empty.
type Label struct {
	Value   int
	Present bool
}

// LabelOf returns the label for an entry value. Zero is treated as no
// value, since the entry list uses it for unused slots as well.
func LabelOf(v int) Label {
	return Label{Value: v, Present: v != 0}
}

// Labels converts entry values into labels using LabelOf.
func Labels(values ...int) []Label {
	res := make([]Label, len(values))
	for i, v := range values {
		res[i] = LabelOf(v)
	}
	return res
}

// LabelText returns the text for cell i, e.g. "#123".
// The second result is false if the cell has no label.
func LabelText(labels []Label, i int) (string, bool) {
	if i < 0 || i >= len(labels) || !labels[i].Present {
		return "", false
	}
	return "#" + strconv.Itoa(labels[i].Value), true
}

// DefaultGrid is the grid of the hall of shame panel.
var DefaultGrid = GridSpec{
	PerRow:      4,
	EntryWidth:  32,
	EntryHeight: 9,
	Width:       130,
}

// Composer renders complete panels.
type Composer struct {
	// Grid selects the cell geometry. Grid.Entries is ignored; the
	// number of labels passed to Compose is used instead.
	Grid GridSpec

	Font    *Font
	Palette Palette
}

// NewComposer returns a Composer for the default grid, font and palette.
func NewComposer() *Composer {
	return &Composer{
		Grid:    DefaultGrid,
		Font:    DefaultFont(),
		Palette: DefaultPalette,
	}
}

// Compose renders a panel with one cell per label, plus the trailing
// empty row. The panel is returned only if every step succeeds.
func (c *Composer) Compose(labels []Label) (*Buffer, error) {
	if c.Font == nil {
		return nil, errors.New("compose: no font")
	}

	spec := c.Grid
	spec.Entries = len(labels)
	l, err := ComputeLayout(spec)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	panel := NewBuffer(l.Width, l.Height)
	DrawGrid(panel, l, c.Palette)

	drawn := 0
	for i := range l.Cells() {
		text, ok := LabelText(labels, i)
		if !ok {
			continue
		}
		x, y := l.LabelOrigin(i)
		if w := c.Font.Measure(text); x+w > l.Width || y+GlyphHeight > l.Height {
			return nil, fmt.Errorf("compose: cell %d: %q (%dx%d) at (%d, %d) on %dx%d panel: %w",
				i, text, w, GlyphHeight, x, y, l.Width, l.Height, ErrLabelOverflow)
		}
		c.Font.DrawText(panel, text, x, y)
		drawn++
	}

	DrawIntersections(panel, l, c.Palette)

	Logger().Debug("composed panel",
		zap.Int("rows", l.Rows),
		zap.Int("width", l.Width),
		zap.Int("height", l.Height),
		zap.Int("labels", drawn))
	return panel, nil
}
