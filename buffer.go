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
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Buffer is a fixed-size raster of non-premultiplied RGBA pixels.
//
// Pixel (x, y) occupies Pix[4*(y*Width+x) : 4*(y*Width+x)+4].
// A Buffer is not safe for concurrent use.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte // row-major RGBA, stride 4*Width
}

// NewBuffer allocates a fully transparent w×h buffer.
// Both dimensions must be positive.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: invalid buffer size %dx%d", w, h))
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*4),
	}
}

// FromImage copies img into a new buffer with its top-left corner at (0, 0).
func FromImage(img image.Image) *Buffer {
	r := img.Bounds()
	b := NewBuffer(r.Dx(), r.Dy())
	dst := b.Image()
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return b
}

// Image returns a view of the buffer as an *image.NRGBA.
// The returned image shares its pixels with b.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// InBounds reports whether (x, y) is a pixel of b.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.Width + x) << 2
}

// At returns the colour at (x, y), or the zero Color outside the buffer.
func (b *Buffer) At(x, y int) Color {
	if !b.InBounds(x, y) {
		return Color{}
	}
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	return Color{p[0], p[1], p[2], p[3]}
}

// Set stores c at (x, y). Writes outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// FillRect sets every pixel of the w×h rectangle at (x, y) to c.
// The rectangle is clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int, c Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.Width), min(y+h, b.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for yy := y0; yy < y1; yy++ {
		row := b.Pix[b.offset(x0, yy):b.offset(x1, yy)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// Blit copies all of src into b with the top-left corner at (dstX, dstY).
// Pixels are overwritten, not blended.
// The whole of src must fit inside b; otherwise Blit panics.
func (b *Buffer) Blit(src *Buffer, dstX, dstY int) {
	b.BlitRegion(src, 0, 0, src.Width, src.Height, dstX, dstY)
}

// BlitRegion copies the w×h rectangle of src at (srcX, srcY) into b at
// (dstX, dstY), row by row. Both rectangles must lie inside their buffers;
// otherwise BlitRegion panics.
func (b *Buffer) BlitRegion(src *Buffer, srcX, srcY, w, h, dstX, dstY int) {
	if w <= 0 || h <= 0 {
		return
	}
	if srcX < 0 || srcY < 0 || srcX+w > src.Width || srcY+h > src.Height {
		panic(fmt.Sprintf("render: source region %dx%d+%d+%d outside %dx%d buffer",
			w, h, srcX, srcY, src.Width, src.Height))
	}
	if dstX < 0 || dstY < 0 || dstX+w > b.Width || dstY+h > b.Height {
		panic(fmt.Sprintf("render: destination region %dx%d+%d+%d outside %dx%d buffer",
			w, h, dstX, dstY, b.Width, b.Height))
	}

	n := w << 2
	for row := range h {
		si := src.offset(srcX, srcY+row)
		di := b.offset(dstX, dstY+row)
		copy(b.Pix[di:di+n], src.Pix[si:si+n])
	}
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    bytes.Clone(b.Pix),
	}
}

// Equal reports whether b and other have the same size and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.Width == other.Width && b.Height == other.Height &&
		bytes.Equal(b.Pix, other.Pix)
}
