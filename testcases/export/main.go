// Command export writes the panel test cases and their computed geometry
// to JSON, for use by external reference tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	render "github.com/cfpwastaken/wplace-hallofshame"
	"github.com/cfpwastaken/wplace-hallofshame/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name          string      `json:"name"`
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	Rows          int         `json:"rows"`
	EntryWidth    int         `json:"entry_width"`
	EntryHeight   int         `json:"entry_height"`
	EntryStarts   []int       `json:"entry_starts"`
	RowStarts     []int       `json:"row_starts"`
	Verticals     []int       `json:"verticals"`
	Horizontals   []int       `json:"horizontals"`
	Intersections [][2]int    `json:"intersections"`
	Labels        []jsonLabel `json:"labels,omitempty"`
}

type jsonLabel struct {
	Cell  int    `json:"cell"`
	Text  string `json:"text"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Width int    `json:"width"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	spec := render.GridSpec{
		Entries:     len(tc.Entries),
		PerRow:      tc.Grid.PerRow,
		EntryWidth:  tc.Grid.EntryWidth,
		EntryHeight: tc.Grid.EntryHeight,
		Width:       tc.Grid.Width,
	}
	l, err := render.ComputeLayout(spec)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Width:       l.Width,
		Height:      l.Height,
		Rows:        l.Rows,
		EntryWidth:  spec.EntryWidth,
		EntryHeight: spec.EntryHeight,
		EntryStarts: l.EntryStarts,
		RowStarts:   l.RowStarts,
		Verticals:   l.Verticals,
		Horizontals: l.Horizontals,
	}
	for _, y := range l.Horizontals {
		for _, x := range l.Verticals {
			cx, cy := render.IntersectionCenter(x, y, l.Width, l.Height)
			jtc.Intersections = append(jtc.Intersections, [2]int{cx, cy})
		}
	}

	font := render.DefaultFont()
	labels := render.Labels(tc.Entries...)
	for i := range l.Cells() {
		text, ok := render.LabelText(labels, i)
		if !ok {
			continue
		}
		x, y := l.LabelOrigin(i)
		jtc.Labels = append(jtc.Labels, jsonLabel{
			Cell:  i,
			Text:  text,
			X:     x,
			Y:     y,
			Width: font.Measure(text),
		})
	}
	return jtc, nil
}
