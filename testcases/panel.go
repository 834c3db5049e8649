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

// panelCases use the published panel geometry with varying entry lists.
var panelCases = []TestCase{
	{
		Name:    "empty",
		Entries: nil,
		Grid:    hallOfShame,
	},
	{
		Name:    "one_entry",
		Entries: []int{7},
		Grid:    hallOfShame,
	},
	{
		// labels in cells 0 and 2, cells 1 and 3 unused
		Name:    "sparse_row",
		Entries: []int{101, 0, 205, 0},
		Grid:    hallOfShame,
	},
	{
		Name:    "full_row",
		Entries: []int{1, 22, 333, 4321},
		Grid:    hallOfShame,
	},
	{
		Name:    "partial_second_row",
		Entries: sequence(1000, 111, 6),
		Grid:    hallOfShame,
	},
	{
		Name:    "many_rows",
		Entries: sequence(17, 97, 22),
		Grid:    hallOfShame,
	},
}

// glyphCases draw every glyph of the font at least once.
var glyphCases = []TestCase{
	{
		Name:    "digits",
		Entries: []int{1234, 5678, 9012, 3456, 7890},
		Grid:    hallOfShame,
	},
	{
		Name:    "repeated",
		Entries: []int{1111, 8888, 4444, 7777},
		Grid:    hallOfShame,
	},
	{
		Name:    "negative",
		Entries: []int{-12, 34, -56},
		Grid:    hallOfShame,
	},
}

// gridCases vary the geometry of the grid.
var gridCases = []TestCase{
	{
		Name:    "single_column",
		Entries: []int{3, 14, 159},
		Grid:    Grid{PerRow: 1, EntryWidth: 32, EntryHeight: 9},
	},
	{
		Name:    "two_columns_wide",
		Entries: []int{42, 0, 4242},
		Grid:    Grid{PerRow: 2, EntryWidth: 40, EntryHeight: 9, Width: 90},
	},
	{
		Name:    "tall_cells",
		Entries: []int{5, 55, 555},
		Grid:    Grid{PerRow: 3, EntryWidth: 30, EntryHeight: 15},
	},
	{
		Name:    "narrow_cells",
		Entries: []int{1, 2, 3, 4, 5, 6, 7, 8},
		Grid:    Grid{PerRow: 8, EntryWidth: 12, EntryHeight: 9},
	},
}
