package render

import (
	"image"
	"image/color"
	"testing"
)

func TestSetAt(t *testing.T) {
	b := NewBuffer(4, 3)
	b.Set(2, 1, Accent)

	if got := b.At(2, 1); got != Accent {
		t.Errorf("At(2, 1) = %v, want %v", got, Accent)
	}
	if got := b.At(1, 2); got != (Color{}) {
		t.Errorf("At(1, 2) = %v, want transparent", got)
	}
	// the pixel lives at offset 4*(1*4+2)
	if got := b.Pix[24:28]; got[0] != 237 || got[1] != 28 || got[2] != 36 || got[3] != 255 {
		t.Errorf("Pix[24:28] = %v", got)
	}
}

func TestOutOfBounds(t *testing.T) {
	b := NewBuffer(3, 3)
	before := b.Clone()

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-5, 17}} {
		b.Set(p.X, p.Y, Black)
		if got := b.At(p.X, p.Y); got != (Color{}) {
			t.Errorf("At(%d, %d) = %v, want zero Color", p.X, p.Y, got)
		}
	}
	if !b.Equal(before) {
		t.Error("writes outside the buffer changed its pixels")
	}
}

func TestFillRectClipped(t *testing.T) {
	b := NewBuffer(5, 4)
	b.FillRect(-2, 2, 4, 10, White)

	for y := range b.Height {
		for x := range b.Width {
			want := Color{}
			if x < 2 && y >= 2 {
				want = White
			}
			if got := b.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectEmpty(t *testing.T) {
	b := NewBuffer(4, 4)
	b.FillRect(1, 1, 0, 3, Black)
	b.FillRect(1, 1, 3, -1, Black)
	b.FillRect(4, 0, 2, 2, Black)
	if !b.Equal(NewBuffer(4, 4)) {
		t.Error("empty rectangles changed the buffer")
	}
}

func TestFillRectIdempotent(t *testing.T) {
	once := NewBuffer(8, 6)
	once.FillRect(1, 2, 5, 3, Accent)

	twice := NewBuffer(8, 6)
	twice.FillRect(1, 2, 5, 3, Accent)
	twice.FillRect(1, 2, 5, 3, Accent)

	if !once.Equal(twice) {
		t.Error("filling twice differs from filling once")
	}
}

func TestBlit(t *testing.T) {
	src := NewBuffer(2, 2)
	src.Set(0, 0, Black)
	src.Set(1, 0, White)
	src.Set(0, 1, Accent)
	// (1, 1) stays transparent and must overwrite the destination

	dst := NewBuffer(5, 4)
	dst.FillRect(0, 0, 5, 4, White)
	dst.Blit(src, 3, 2)

	checks := []struct {
		x, y int
		want Color
	}{
		{3, 2, Black},
		{4, 2, White},
		{3, 3, Accent},
		{4, 3, Color{}},
		{2, 2, White},
		{3, 1, White},
	}
	for _, c := range checks {
		if got := dst.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestBlitRegionPanics(t *testing.T) {
	src := NewBuffer(4, 4)
	dst := NewBuffer(4, 4)

	cases := []struct {
		name                 string
		sx, sy, w, h, dx, dy int
	}{
		{"source right", 2, 0, 3, 1, 0, 0},
		{"source negative", -1, 0, 2, 2, 0, 0},
		{"destination right", 0, 0, 2, 2, 3, 0},
		{"destination below", 0, 0, 2, 2, 0, 3},
		{"destination negative", 0, 0, 1, 1, 0, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("BlitRegion did not panic")
				}
			}()
			dst.BlitRegion(src, c.sx, c.sy, c.w, c.h, c.dx, c.dy)
		})
	}
}

func TestImageSharesPixels(t *testing.T) {
	b := NewBuffer(3, 2)
	img := b.Image()
	img.SetNRGBA(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	if got := b.At(2, 1); got != (Color{1, 2, 3, 4}) {
		t.Errorf("At(2, 1) = %v after writing through Image", got)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Image().Bounds() = %v", img.Bounds())
	}
}

func TestFromImage(t *testing.T) {
	// source with a non-zero origin
	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.RGBA{R: 237, G: 28, B: 36, A: 255})
	src.Set(12, 21, color.White)

	b := FromImage(src)
	if b.Width != 3 || b.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width, b.Height)
	}
	if got := b.At(0, 0); got != Accent {
		t.Errorf("At(0, 0) = %v, want %v", got, Accent)
	}
	if got := b.At(2, 1); got != White {
		t.Errorf("At(2, 1) = %v, want %v", got, White)
	}
	if got := b.At(1, 0); got != (Color{}) {
		t.Errorf("At(1, 0) = %v, want transparent", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Accent.RGBA()
	if r != 237*0x101 || g != 28*0x101 || b != 36*0x101 || a != 0xffff {
		t.Errorf("Accent.RGBA() = %d %d %d %d", r, g, b, a)
	}
	if got := Accent.Hex(); got != "#ed1c24" {
		t.Errorf("Accent.Hex() = %q", got)
	}
}
