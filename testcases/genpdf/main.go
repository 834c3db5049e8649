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

// Command genpdf generates reference images for the panel tests.
// It draws every test case as vector rectangles into a PDF and renders
// the PDF to PNG using Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	render "github.com/cfpwastaken/wplace-hallofshame"
	"github.com/cfpwastaken/wplace-hallofshame/testcases"
)

const refDir = "testdata/reference"

// Gray levels used for the panel colours.
const (
	grayBorder = 0
	grayFill   = 1
	grayAccent = 0.358 // luminance of the accent red
)

// shape is one filled rectangle, in panel pixel coordinates.
type shape struct {
	r    rect.Rect
	gray float64
}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			l, shapes, err := panelShapes(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePDF(l, shapes, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// panelShapes lists the rectangles making up the panel, in painting order.
func panelShapes(tc testcases.TestCase) (*render.Layout, []shape, error) {
	l, err := render.ComputeLayout(render.GridSpec{
		Entries:     len(tc.Entries),
		PerRow:      tc.Grid.PerRow,
		EntryWidth:  tc.Grid.EntryWidth,
		EntryHeight: tc.Grid.EntryHeight,
		Width:       tc.Grid.Width,
	})
	if err != nil {
		return nil, nil, err
	}

	var shapes []shape
	add := func(x, y, w, h int, gray float64) {
		shapes = append(shapes, shape{
			r: rect.Rect{
				LLx: float64(x),
				LLy: float64(y),
				URx: float64(x + w),
				URy: float64(y + h),
			},
			gray: gray,
		})
	}

	// frame
	add(0, 0, 1, l.Height, grayBorder)
	add(l.Width-1, 0, 1, l.Height, grayBorder)
	add(0, l.Height-render.BottomBorder, l.Width, render.BottomBorder, grayBorder)

	// rows
	h := tc.Grid.EntryHeight
	for r, y := range l.RowStarts {
		add(1, y, 1, h, grayBorder)
		for c, col := range l.Columns {
			if c > 0 {
				add(col.X-1, y, 1, h, grayBorder)
			}
			add(col.X, y, col.Width, h, grayFill)
		}
		add(l.RightBorder(), y, 1, h, grayBorder)
		if r < l.Rows-1 {
			add(1, y+h, l.Width-2, 1, grayBorder)
		}
	}

	// labels, one square per ink pixel of the glyph sheet
	sheet := render.DefaultSheet()
	glyphs := render.DefaultGlyphTable()
	labels := render.Labels(tc.Entries...)
	for i := range l.Cells() {
		text, ok := render.LabelText(labels, i)
		if !ok {
			continue
		}
		x, y := l.LabelOrigin(i)
		for _, ch := range text {
			g, ok := glyphs.Lookup(ch)
			if !ok {
				continue
			}
			for gy := range render.GlyphHeight {
				for gx := range g.Width {
					if sheet.At(g.X+gx, gy) == render.Black {
						add(x+gx, y+gy, 1, 1, grayBorder)
					}
				}
			}
			x += g.Width + render.GlyphGap
		}
	}

	// intersections: a ring of border pixels around the accent pixel
	for _, y := range l.Horizontals {
		for _, x := range l.Verticals {
			cx, cy := render.IntersectionCenter(x, y, l.Width, l.Height)
			add(cx-1, cy-1, 3, 3, grayBorder)
			add(cx, cy, 1, 1, grayAccent)
		}
	}

	return l, shapes, nil
}

func generatePDF(l *render.Layout, shapes []shape, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(l.Width),
		URy: float64(l.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the panel uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(l.Height)})

	// Parts of the sprites along the top edge lie outside the page and
	// are clipped by the page boundary, as on the raster panel.
	gray := -1.0
	for _, s := range shapes {
		if s.gray != gray {
			gray = s.gray
			page.SetFillColor(color.DeviceGray(gray))
		}
		for cmd, pts := range rectangle(s.r) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// rectangle builds a closed path around r.
func rectangle(r rect.Rect) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: r.LLx, Y: r.LLy}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: r.URx, Y: r.LLy}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: r.URx, Y: r.URy}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: r.LLx, Y: r.URy}}) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, the panel is pixel aligned
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
