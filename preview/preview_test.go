package preview

import (
	"io"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	render "github.com/cfpwastaken/wplace-hallofshame"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestKeyFor(t *testing.T) {
	none := render.Color{}
	cases := []struct {
		top, bottom render.Color
		want        cellKey
	}{
		{none, none, cellKey{ch: ' '}},
		{render.Black, none, cellKey{ch: upperHalf, fg: "#000000"}},
		{none, render.Accent, cellKey{ch: lowerHalf, fg: "#ed1c24"}},
		{render.White, render.Black, cellKey{ch: upperHalf, fg: "#ffffff", bg: "#000000"}},
	}
	for _, c := range cases {
		if got := keyFor(c.top, c.bottom); got != c.want {
			t.Errorf("keyFor(%v, %v) = %+v, want %+v", c.top, c.bottom, got, c.want)
		}
	}
}

func TestRenderShape(t *testing.T) {
	panel, err := render.NewComposer().Compose(render.Labels(1, 22, 333))
	if err != nil {
		t.Fatal(err)
	}
	out := NewRenderer(io.Discard).Render(panel)

	lines := strings.Split(out, "\n")
	if len(lines) != (panel.Height+1)/2 {
		t.Fatalf("%d lines for a panel of height %d", len(lines), panel.Height)
	}
	for i, line := range lines {
		plain := ansi.ReplaceAllString(line, "")
		if n := utf8.RuneCountInString(plain); n != panel.Width {
			t.Errorf("line %d has %d cells, want %d", i, n, panel.Width)
		}
	}

	// the panel height is odd, so the last line shows only upper halves
	last := ansi.ReplaceAllString(lines[len(lines)-1], "")
	if strings.Trim(last, string(upperHalf)) != "" {
		t.Errorf("last line = %q", last)
	}
}

func TestRenderTransparent(t *testing.T) {
	buf := render.NewBuffer(5, 4)
	buf.Set(2, 1, render.Black)

	out := NewRenderer(io.Discard).Render(buf)
	plain := ansi.ReplaceAllString(out, "")
	if want := "  " + string(lowerHalf) + "  \n     "; plain != want {
		t.Errorf("Render = %q, want %q", plain, want)
	}
}
