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

package testcases

// TestCase defines a single panel rendering test.
type TestCase struct {
	Name    string // lowercase a-z, 0-9 and _ only
	Entries []int  // entry values in cell order; 0 leaves a cell empty
	Grid    Grid   // cell geometry
}

// Grid mirrors the cell geometry of a panel.
type Grid struct {
	PerRow      int // entries per row
	EntryWidth  int // nominal cell width in pixels
	EntryHeight int // cell height in pixels
	Width       int // panel width (0 means as narrow as possible)
}

// hallOfShame is the geometry used for the published panel.
var hallOfShame = Grid{
	PerRow:      4,
	EntryWidth:  32,
	EntryHeight: 9,
	Width:       130,
}

// sequence returns the entries first, first+step, ... (n values).
func sequence(first, step, n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = first + i*step
	}
	return res
}
