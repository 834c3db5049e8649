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

import "testing"

func TestIntersectionCenter(t *testing.T) {
	const w, h = 130, 21
	cases := []struct {
		x, y   int
		cx, cy int
	}{
		{0, 0, 1, -1},
		{32, 0, 32, -1},
		{129, 0, 128, -1},
		{0, 9, 1, 9},
		{64, 9, 64, 9},
		{129, 9, 128, 9},
		{0, 20, 1, 19},
		{96, 20, 96, 19},
		{129, 20, 128, 19},
	}
	for _, c := range cases {
		cx, cy := IntersectionCenter(c.x, c.y, w, h)
		if cx != c.cx || cy != c.cy {
			t.Errorf("IntersectionCenter(%d, %d) = (%d, %d), want (%d, %d)",
				c.x, c.y, cx, cy, c.cx, c.cy)
		}
	}
}

func TestDrawIntersection(t *testing.T) {
	b := NewBuffer(7, 7)
	DrawIntersection(b, 3, 3, DefaultPalette)

	for y := range b.Height {
		for x := range b.Width {
			want := Color{}
			switch {
			case x == 3 && y == 3:
				want = Accent
			case x >= 2 && x <= 4 && y >= 2 && y <= 4:
				want = Black
			}
			if got := b.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawIntersectionTopEdge(t *testing.T) {
	b := NewBuffer(10, 4)
	DrawIntersection(b, 5, -1, DefaultPalette)

	for y := range b.Height {
		for x := range b.Width {
			want := Color{}
			if y == 0 && x >= 4 && x <= 6 {
				want = Black
			}
			if got := b.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawGrid(t *testing.T) {
	spec := DefaultGrid
	spec.Entries = 3
	l, err := ComputeLayout(spec)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBuffer(l.Width, l.Height)
	DrawGrid(b, l, DefaultPalette)

	isBorder := func(x, y int) bool {
		switch {
		case x == 0 || x == l.Width-1 || y >= l.Height-BottomBorder:
			return true
		case x == 1 || x == 32 || x == 64 || x == 96 || x == 128:
			return true
		case y == 9:
			return true
		}
		return false
	}
	for y := range b.Height {
		for x := range b.Width {
			want := White
			if isBorder(x, y) {
				want = Black
			}
			if got := b.At(x, y); got != want {
				t.Fatalf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawIntersectionsCount(t *testing.T) {
	spec := DefaultGrid
	spec.Entries = 9
	l, err := ComputeLayout(spec)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBuffer(l.Width, l.Height)
	DrawGrid(b, l, DefaultPalette)
	DrawIntersections(b, l, DefaultPalette)

	// every crossing contributes one accent pixel, except those on the
	// top edge, whose centre lies above the panel
	want := (len(l.Horizontals) - 1) * len(l.Verticals)
	if got := countColor(b, Accent); got != want {
		t.Errorf("%d accent pixels, want %d", got, want)
	}
	for _, y := range l.Horizontals[1:] {
		for _, x := range l.Verticals {
			cx, cy := IntersectionCenter(x, y, l.Width, l.Height)
			if b.At(cx, cy) != Accent {
				t.Errorf("no accent at (%d, %d)", cx, cy)
			}
		}
	}
	// the top row of the panel carries the lower ring of the top sprites
	for _, x := range l.Verticals {
		cx, _ := IntersectionCenter(x, 0, l.Width, l.Height)
		for dx := -1; dx <= 1; dx++ {
			if b.At(cx+dx, 0) != Black {
				t.Errorf("At(%d, 0) is not black", cx+dx)
			}
		}
	}
}

func countColor(b *Buffer, c Color) int {
	n := 0
	for y := range b.Height {
		for x := range b.Width {
			if b.At(x, y) == c {
				n++
			}
		}
	}
	return n
}
